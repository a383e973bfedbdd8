package services

import (
	"context"
	"log"
	"time"

	"apoio-gestao/internal/adapters/persistence/repositories"
	"apoio-gestao/internal/config"
	"apoio-gestao/internal/pkg/pix"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// reconciliacaoSpec runs the overdue sweep every day at 06:00
const reconciliacaoSpec = "0 6 * * *"

// CronService schedules the daily reconciliation of overdue dues
type CronService struct {
	cron               *cron.Cron
	mensalidadeService *MensalidadeService
}

// NewCronService creates the scheduler with its own repository wiring
func NewCronService(db *gorm.DB, cfg *config.Config) *CronService {
	mensalidadeRepo := repositories.NewMensalidadeRepository(db)
	associadoRepo := repositories.NewAssociadoRepository(db)
	pixGen := pix.NewGenerator(cfg.Pix.Chave, cfg.Pix.NomeRecebedor, cfg.Pix.Cidade)

	return &CronService{
		cron: cron.New(),
		mensalidadeService: NewMensalidadeService(
			mensalidadeRepo,
			associadoRepo,
			pixGen,
			cfg.Mensalidade.Valor,
		),
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(reconciliacaoSpec, s.reconciliarAtrasadas); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("✅ Cron scheduler stopped")
}

func (s *CronService) reconciliarAtrasadas() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	atualizadas, err := s.mensalidadeService.ReconciliarAtrasadas(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Reconciliação de mensalidades falhou: %v", err)
		return
	}
	log.Printf("✅ Reconciliação concluída: %d mensalidades marcadas como atrasadas", atualizadas)
}

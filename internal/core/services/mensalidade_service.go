package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"apoio-gestao/internal/adapters/persistence/models"
	"apoio-gestao/internal/adapters/persistence/repositories"
	"apoio-gestao/internal/core/domain"
	"apoio-gestao/internal/pkg/pix"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MensalidadeService drives the dues ledger: monthly generation, payment
// recording and the overdue sweep
type MensalidadeService struct {
	mensalidadeRepo repositories.MensalidadeRepository
	associadoRepo   repositories.AssociadoRepository
	pixGen          *pix.Generator
	valorMensal     decimal.Decimal
}

// NewMensalidadeService creates a new mensalidade service. valorMensal is
// the flat monthly fee from configuration.
func NewMensalidadeService(
	mensalidadeRepo repositories.MensalidadeRepository,
	associadoRepo repositories.AssociadoRepository,
	pixGen *pix.Generator,
	valorMensal decimal.Decimal,
) *MensalidadeService {
	return &MensalidadeService{
		mensalidadeRepo: mensalidadeRepo,
		associadoRepo:   associadoRepo,
		pixGen:          pixGen,
		valorMensal:     valorMensal,
	}
}

// ResultadoGeracao aggregates the outcome of one generation run
type ResultadoGeracao struct {
	Geradas        int `json:"geradas"`
	JaExistiam     int `json:"ja_existiam"`
	TotalElegiveis int `json:"total_elegiveis"`
}

// GerarParaPeriodo creates one mensalidade per active associado for the
// given period. Re-running it is idempotent: existing records are skipped
// and counted in JaExistiam.
func (s *MensalidadeService) GerarParaPeriodo(ctx context.Context, mes, ano int) (*ResultadoGeracao, error) {
	if mes < 1 || mes > 12 || ano < 1 {
		return nil, domain.ErrPeriodoInvalido
	}

	ativos, err := s.associadoRepo.ListAtivos(ctx)
	if err != nil {
		return nil, err
	}

	resultado := &ResultadoGeracao{TotalElegiveis: len(ativos)}
	for _, associado := range ativos {
		criada, err := s.gerar(ctx, associado, mes, ano)
		if err != nil {
			return nil, err
		}
		if criada != nil {
			resultado.Geradas++
		} else {
			resultado.JaExistiam++
		}
	}

	return resultado, nil
}

// GerarParaAssociado runs the same check/create for a single associado
func (s *MensalidadeService) GerarParaAssociado(ctx context.Context, mes, ano int, associadoID string) (*domain.Mensalidade, error) {
	if mes < 1 || mes > 12 || ano < 1 {
		return nil, domain.ErrPeriodoInvalido
	}

	associado, err := s.associadoRepo.FindByID(ctx, associadoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssociadoNaoEncontrado
		}
		return nil, err
	}
	if !associado.Ativo {
		return nil, domain.ErrAssociadoInativo
	}

	m, err := s.gerar(ctx, associado, mes, ano)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMensalidadeJaExiste
	}

	return m, nil
}

// gerar performs one check-then-create step, returning the created entity
// or nil when a record for the period already exists. Two concurrent
// invocations can both pass the existence check; the composite unique index
// decides and the loser is folded into the "already existed" outcome.
func (s *MensalidadeService) gerar(ctx context.Context, associado *domain.Associado, mes, ano int) (*domain.Mensalidade, error) {
	exists, err := s.mensalidadeRepo.ExistsForPeriodo(ctx, associado.ID.String(), mes, ano)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	m, err := domain.NovaMensalidade(associado.ID, mes, ano, s.valorMensal)
	if err != nil {
		return nil, err
	}

	descricao := fmt.Sprintf("Mensalidade %02d/%04d - %s", mes, ano, associado.Nome)
	m.PixCopiaECola = s.pixGen.CopiaECola(m.Valor, m.PixTxID, descricao)

	if err := s.mensalidadeRepo.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, err
	}

	return m, nil
}

// RegistrarPagamento marks a mensalidade as paid, fixing payment time and
// method. A mensalidade already PAGA fails with ErrMensalidadeJaPaga.
func (s *MensalidadeService) RegistrarPagamento(ctx context.Context, id string, forma *domain.FormaPagamento) (*domain.Mensalidade, error) {
	m, err := s.mensalidadeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMensalidadeNaoEncontrada
		}
		return nil, err
	}

	if err := m.RegistrarPagamento(time.Now(), forma); err != nil {
		return nil, err
	}

	if err := s.mensalidadeRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// ReconciliarAtrasadas sweeps PENDENTE records past their due date into
// ATRASADA and returns how many transitioned. The repository pre-filters
// candidates and the due date is re-checked here, but the transition itself
// is a conditional status update keyed on PENDENTE: a payment committed
// between the candidate fetch and the write wins, and the record stays PAGA.
// Safe to run any number of times per day.
func (s *MensalidadeService) ReconciliarAtrasadas(ctx context.Context, hoje time.Time) (int, error) {
	vencidas, err := s.mensalidadeRepo.FindPendentesVencidas(ctx, hoje)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range vencidas {
		if !m.AtualizarStatus(hoje) {
			continue
		}
		mudou, err := s.mensalidadeRepo.MarcarAtrasada(ctx, m.ID.String())
		if err != nil {
			return count, err
		}
		if mudou {
			count++
		}
	}

	return count, nil
}

// GetByID gets a mensalidade by ID
func (s *MensalidadeService) GetByID(ctx context.Context, id string) (*domain.Mensalidade, error) {
	m, err := s.mensalidadeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMensalidadeNaoEncontrada
		}
		return nil, err
	}
	return m, nil
}

// List lists mensalidade rows with filters and pagination
func (s *MensalidadeService) List(ctx context.Context, filtro *repositories.MensalidadeFiltro, offset, limit int) ([]*models.Mensalidade, int64, error) {
	return s.mensalidadeRepo.List(ctx, filtro, offset, limit)
}

package repositories

import (
	"context"
	"time"

	"apoio-gestao/internal/adapters/persistence/models"
	"apoio-gestao/internal/core/domain"

	"gorm.io/gorm"
)

// mensalidadeRepository implements MensalidadeRepository
type mensalidadeRepository struct {
	db *gorm.DB
}

// NewMensalidadeRepository creates a new mensalidade repository
func NewMensalidadeRepository(db *gorm.DB) MensalidadeRepository {
	return &mensalidadeRepository{db: db}
}

// Create persists a new mensalidade. A violation of the composite unique
// index (associado, mes, ano) surfaces as gorm.ErrDuplicatedKey, which the
// generation engine recovers as "already existed".
func (r *mensalidadeRepository) Create(ctx context.Context, m *domain.Mensalidade) error {
	return r.db.WithContext(ctx).Create(models.FromDomainMensalidade(m)).Error
}

// GetByID gets a mensalidade by ID
func (r *mensalidadeRepository) GetByID(ctx context.Context, id string) (*domain.Mensalidade, error) {
	var row models.Mensalidade
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return row.ToDomain()
}

// ExistsForPeriodo checks for an existing record keyed on member and period.
// Keyed on the period columns rather than the PIX txid so regeneration
// still works after a manual row deletion.
func (r *mensalidadeRepository) ExistsForPeriodo(ctx context.Context, associadoID string, mes, ano int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Mensalidade{}).
		Where("associado_id = ? AND mes_referencia = ? AND ano_referencia = ?", associadoID, mes, ano).
		Count(&count).Error
	return count > 0, err
}

// FindPendentesVencidas lists PENDENTE records whose due date is strictly
// before ref, the candidate set for the overdue sweep
func (r *mensalidadeRepository) FindPendentesVencidas(ctx context.Context, ref time.Time) ([]*domain.Mensalidade, error) {
	var rows []*models.Mensalidade
	err := r.db.WithContext(ctx).
		Where("status = ? AND data_vencimento < ?", string(domain.StatusPendente), ref).
		Order("data_vencimento ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	vencidas := make([]*domain.Mensalidade, 0, len(rows))
	for _, row := range rows {
		m, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		vencidas = append(vencidas, m)
	}
	return vencidas, nil
}

// MarcarAtrasada flips a single PENDENTE row to ATRASADA. The status guard
// in the WHERE clause makes the transition conditional: a payment committed
// after the sweep picked its candidates wins, and the row stays PAGA.
// Returns whether the transition happened.
func (r *mensalidadeRepository) MarcarAtrasada(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Mensalidade{}).
		Where("id = ? AND status = ?", id, string(domain.StatusPendente)).
		Update("status", string(domain.StatusAtrasada))
	return res.RowsAffected > 0, res.Error
}

// Update saves the full state of a mensalidade
func (r *mensalidadeRepository) Update(ctx context.Context, m *domain.Mensalidade) error {
	return r.db.WithContext(ctx).Save(models.FromDomainMensalidade(m)).Error
}

// List lists mensalidades with optional filters and pagination
func (r *mensalidadeRepository) List(ctx context.Context, filtro *MensalidadeFiltro, offset, limit int) ([]*models.Mensalidade, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Mensalidade{})

	if filtro != nil {
		if filtro.AssociadoID != "" {
			query = query.Where("associado_id = ?", filtro.AssociadoID)
		}
		if filtro.Status != "" {
			query = query.Where("status = ?", filtro.Status)
		}
		if filtro.Mes > 0 {
			query = query.Where("mes_referencia = ?", filtro.Mes)
		}
		if filtro.Ano > 0 {
			query = query.Where("ano_referencia = ?", filtro.Ano)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var mensalidades []*models.Mensalidade
	err := query.
		Preload("Associado").
		Order("ano_referencia DESC, mes_referencia DESC").
		Offset(offset).
		Limit(limit).
		Find(&mensalidades).Error
	if err != nil {
		return nil, 0, err
	}

	return mensalidades, total, nil
}

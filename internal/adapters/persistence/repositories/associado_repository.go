package repositories

import (
	"context"

	"apoio-gestao/internal/adapters/persistence/models"
	"apoio-gestao/internal/core/domain"

	"gorm.io/gorm"
)

// associadoRepository implements AssociadoRepository
type associadoRepository struct {
	db *gorm.DB
}

// NewAssociadoRepository creates a new associado repository
func NewAssociadoRepository(db *gorm.DB) AssociadoRepository {
	return &associadoRepository{db: db}
}

// Create creates a new associado
func (r *associadoRepository) Create(ctx context.Context, associado *models.Associado) error {
	return r.db.WithContext(ctx).Create(associado).Error
}

// GetByID gets an associado row by ID
func (r *associadoRepository) GetByID(ctx context.Context, id string) (*models.Associado, error) {
	var associado models.Associado
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&associado).Error
	if err != nil {
		return nil, err
	}
	return &associado, nil
}

// FindByID resolves the domain view for the billing engine
func (r *associadoRepository) FindByID(ctx context.Context, id string) (*domain.Associado, error) {
	associado, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return associado.ToDomain()
}

// ListAtivos lists all active associados (billing eligibility set)
func (r *associadoRepository) ListAtivos(ctx context.Context) ([]*domain.Associado, error) {
	var rows []*models.Associado
	err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("nome ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ativos := make([]*domain.Associado, 0, len(rows))
	for _, row := range rows {
		a, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		ativos = append(ativos, a)
	}
	return ativos, nil
}

// List lists associados with pagination
func (r *associadoRepository) List(ctx context.Context, offset, limit int) ([]*models.Associado, int64, error) {
	var associados []*models.Associado
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Associado{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("nome ASC").
		Offset(offset).
		Limit(limit).
		Find(&associados).Error
	if err != nil {
		return nil, 0, err
	}

	return associados, total, nil
}

// Update updates an associado
func (r *associadoRepository) Update(ctx context.Context, associado *models.Associado) error {
	return r.db.WithContext(ctx).Save(associado).Error
}

// Delete soft deletes an associado
func (r *associadoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Associado{}).Error
}

// ExistsByEmail checks if an email is already registered
func (r *associadoRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Associado{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

package repositories

import (
	"context"

	"apoio-gestao/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// VendaRepository handles venda data access
type VendaRepository struct {
	db *gorm.DB
}

// NewVendaRepository creates a new venda repository
func NewVendaRepository(db *gorm.DB) *VendaRepository {
	return &VendaRepository{db: db}
}

// Create creates a new venda
func (r *VendaRepository) Create(ctx context.Context, venda *models.Venda) error {
	return r.db.WithContext(ctx).Create(venda).Error
}

// GetByID gets a venda by ID
func (r *VendaRepository) GetByID(ctx context.Context, id uint) (*models.Venda, error) {
	var venda models.Venda
	err := r.db.WithContext(ctx).First(&venda, id).Error
	if err != nil {
		return nil, err
	}
	return &venda, nil
}

// List lists vendas with pagination, optionally filtered by categoria
func (r *VendaRepository) List(ctx context.Context, categoria string, offset, limit int) ([]*models.Venda, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Venda{})
	if categoria != "" {
		query = query.Where("categoria = ?", categoria)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vendas []*models.Venda
	err := query.
		Order("data_venda DESC").
		Offset(offset).
		Limit(limit).
		Find(&vendas).Error

	return vendas, total, err
}

// Delete soft deletes a venda
func (r *VendaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Venda{}, id).Error
}

// DoacaoRepository handles doação data access
type DoacaoRepository struct {
	db *gorm.DB
}

// NewDoacaoRepository creates a new doação repository
func NewDoacaoRepository(db *gorm.DB) *DoacaoRepository {
	return &DoacaoRepository{db: db}
}

// Create creates a new doação
func (r *DoacaoRepository) Create(ctx context.Context, doacao *models.Doacao) error {
	return r.db.WithContext(ctx).Create(doacao).Error
}

// GetByID gets a doação by ID
func (r *DoacaoRepository) GetByID(ctx context.Context, id uint) (*models.Doacao, error) {
	var doacao models.Doacao
	err := r.db.WithContext(ctx).First(&doacao, id).Error
	if err != nil {
		return nil, err
	}
	return &doacao, nil
}

// List lists doações with pagination
func (r *DoacaoRepository) List(ctx context.Context, offset, limit int) ([]*models.Doacao, int64, error) {
	var doacoes []*models.Doacao
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Doacao{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("data_doacao DESC").
		Offset(offset).
		Limit(limit).
		Find(&doacoes).Error

	return doacoes, total, err
}

// Delete soft deletes a doação
func (r *DoacaoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Doacao{}, id).Error
}

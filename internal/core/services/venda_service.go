package services

import (
	"context"
	"errors"
	"time"

	"apoio-gestao/internal/adapters/persistence/models"
	"apoio-gestao/internal/adapters/persistence/repositories"
	"apoio-gestao/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Venda service errors
var (
	ErrVendaNotFound     = errors.New("venda not found")
	ErrCategoriaInvalida = errors.New("invalid categoria")
)

// VendaService handles point-of-sale transactions
type VendaService struct {
	vendaRepo *repositories.VendaRepository
}

// NewVendaService creates a new venda service
func NewVendaService(vendaRepo *repositories.VendaRepository) *VendaService {
	return &VendaService{vendaRepo: vendaRepo}
}

// CreateVendaInput represents create venda input
type CreateVendaInput struct {
	Descricao      string          `json:"descricao"`
	Categoria      string          `json:"categoria"`
	Valor          decimal.Decimal `json:"valor"`
	FormaPagamento string          `json:"forma_pagamento"`
	DataVenda      *time.Time      `json:"data_venda,omitempty"`
}

// Create records a new venda
func (s *VendaService) Create(ctx context.Context, input *CreateVendaInput, userID uint) (*models.Venda, error) {
	switch input.Categoria {
	case models.CategoriaCantina, models.CategoriaBazar, models.CategoriaEvento:
	default:
		return nil, ErrCategoriaInvalida
	}
	if !domain.ValidFormaPagamento(input.FormaPagamento) {
		return nil, domain.ErrFormaPagamentoInvalida
	}

	dataVenda := time.Now()
	if input.DataVenda != nil {
		dataVenda = *input.DataVenda
	}

	venda := &models.Venda{
		Descricao:      input.Descricao,
		Categoria:      input.Categoria,
		Valor:          input.Valor,
		FormaPagamento: input.FormaPagamento,
		DataVenda:      dataVenda,
		RegistradaPor:  userID,
	}

	if err := s.vendaRepo.Create(ctx, venda); err != nil {
		return nil, err
	}

	return venda, nil
}

// List lists vendas
func (s *VendaService) List(ctx context.Context, categoria string, offset, limit int) ([]*models.Venda, int64, error) {
	return s.vendaRepo.List(ctx, categoria, offset, limit)
}

// Delete removes a venda from the ledger (soft delete)
func (s *VendaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.vendaRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVendaNotFound
		}
		return err
	}
	return s.vendaRepo.Delete(ctx, id)
}

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

// ErrDoacaoNotFound when no doação matches the given id
var ErrDoacaoNotFound = errors.New("doacao not found")

// DoacaoService handles donations
type DoacaoService struct {
	doacaoRepo *repositories.DoacaoRepository
}

// NewDoacaoService creates a new doação service
func NewDoacaoService(doacaoRepo *repositories.DoacaoRepository) *DoacaoService {
	return &DoacaoService{doacaoRepo: doacaoRepo}
}

// CreateDoacaoInput represents create doação input
type CreateDoacaoInput struct {
	NomeDoador     string          `json:"nome_doador,omitempty"`
	Anonima        bool            `json:"anonima"`
	Valor          decimal.Decimal `json:"valor"`
	FormaPagamento string          `json:"forma_pagamento"`
	Mensagem       string          `json:"mensagem,omitempty"`
	DataDoacao     *time.Time      `json:"data_doacao,omitempty"`
}

// Create records a new doação. Anonymous donations drop the donor name.
func (s *DoacaoService) Create(ctx context.Context, input *CreateDoacaoInput, userID uint) (*models.Doacao, error) {
	if !domain.ValidFormaPagamento(input.FormaPagamento) {
		return nil, domain.ErrFormaPagamentoInvalida
	}

	dataDoacao := time.Now()
	if input.DataDoacao != nil {
		dataDoacao = *input.DataDoacao
	}

	nome := input.NomeDoador
	if input.Anonima {
		nome = ""
	}

	doacao := &models.Doacao{
		NomeDoador:     nome,
		Anonima:        input.Anonima,
		Valor:          input.Valor,
		FormaPagamento: input.FormaPagamento,
		Mensagem:       input.Mensagem,
		DataDoacao:     dataDoacao,
		RegistradaPor:  userID,
	}

	if err := s.doacaoRepo.Create(ctx, doacao); err != nil {
		return nil, err
	}

	return doacao, nil
}

// List lists doações
func (s *DoacaoService) List(ctx context.Context, offset, limit int) ([]*models.Doacao, int64, error) {
	return s.doacaoRepo.List(ctx, offset, limit)
}

// Delete removes a doação from the ledger (soft delete)
func (s *DoacaoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.doacaoRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDoacaoNotFound
		}
		return err
	}
	return s.doacaoRepo.Delete(ctx, id)
}

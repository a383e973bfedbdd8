package services

import (
	"context"
	"errors"

	"apoio-gestao/internal/adapters/persistence/models"
	"apoio-gestao/internal/adapters/persistence/repositories"
	"apoio-gestao/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssociadoService handles associado business logic
type AssociadoService struct {
	associadoRepo repositories.AssociadoRepository
}

// NewAssociadoService creates a new associado service
func NewAssociadoService(associadoRepo repositories.AssociadoRepository) *AssociadoService {
	return &AssociadoService{associadoRepo: associadoRepo}
}

// CreateAssociadoInput represents create associado input
type CreateAssociadoInput struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
}

// Create registers a new associado, active by default
func (s *AssociadoService) Create(ctx context.Context, input *CreateAssociadoInput) (*models.Associado, error) {
	exists, err := s.associadoRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailJaCadastrado
	}

	associado := &models.Associado{
		ID:       uuid.New().String(),
		Nome:     input.Nome,
		Email:    input.Email,
		Telefone: input.Telefone,
		Ativo:    true,
	}

	if err := s.associadoRepo.Create(ctx, associado); err != nil {
		return nil, err
	}

	return associado, nil
}

// GetByID gets an associado by ID
func (s *AssociadoService) GetByID(ctx context.Context, id string) (*models.Associado, error) {
	associado, err := s.associadoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssociadoNaoEncontrado
		}
		return nil, err
	}
	return associado, nil
}

// List lists associados with pagination
func (s *AssociadoService) List(ctx context.Context, offset, limit int) ([]*models.Associado, int64, error) {
	return s.associadoRepo.List(ctx, offset, limit)
}

// UpdateAssociadoInput represents update associado input
type UpdateAssociadoInput struct {
	Nome     *string `json:"nome,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
	Ativo    *bool   `json:"ativo,omitempty"`
}

// Update updates an associado. Deactivation removes the associado from
// future billing runs but keeps the dues ledger untouched.
func (s *AssociadoService) Update(ctx context.Context, id string, input *UpdateAssociadoInput) (*models.Associado, error) {
	associado, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nome != nil {
		associado.Nome = *input.Nome
	}
	if input.Email != nil && *input.Email != associado.Email {
		exists, err := s.associadoRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrEmailJaCadastrado
		}
		associado.Email = *input.Email
	}
	if input.Telefone != nil {
		associado.Telefone = *input.Telefone
	}
	if input.Ativo != nil {
		associado.Ativo = *input.Ativo
	}

	if err := s.associadoRepo.Update(ctx, associado); err != nil {
		return nil, err
	}

	return associado, nil
}

// Delete soft deletes an associado
func (s *AssociadoService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.associadoRepo.Delete(ctx, id)
}

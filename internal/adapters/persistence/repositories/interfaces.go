package repositories

import (
	"context"
	"time"

	"apoio-gestao/internal/adapters/persistence/models"
	"apoio-gestao/internal/core/domain"
)

// UserRepository defines the back-office operator repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AssociadoRepository defines the member directory interface consumed by
// the billing engine. ListAtivos feeds generation; FindByID resolves the
// per-member variant.
type AssociadoRepository interface {
	Create(ctx context.Context, associado *models.Associado) error
	GetByID(ctx context.Context, id string) (*models.Associado, error)
	FindByID(ctx context.Context, id string) (*domain.Associado, error)
	ListAtivos(ctx context.Context) ([]*domain.Associado, error)
	List(ctx context.Context, offset, limit int) ([]*models.Associado, int64, error)
	Update(ctx context.Context, associado *models.Associado) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// MensalidadeFiltro narrows mensalidade listings
type MensalidadeFiltro struct {
	AssociadoID string
	Status      string
	Mes         int
	Ano         int
}

// MensalidadeRepository persists the dues ledger. It speaks in domain
// entities; row mapping stays inside the implementation.
type MensalidadeRepository interface {
	Create(ctx context.Context, m *domain.Mensalidade) error
	GetByID(ctx context.Context, id string) (*domain.Mensalidade, error)
	ExistsForPeriodo(ctx context.Context, associadoID string, mes, ano int) (bool, error)
	FindPendentesVencidas(ctx context.Context, ref time.Time) ([]*domain.Mensalidade, error)
	MarcarAtrasada(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, m *domain.Mensalidade) error
	List(ctx context.Context, filtro *MensalidadeFiltro, offset, limit int) ([]*models.Mensalidade, int64, error)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents an operator role in the back office
type Role string

const (
	RoleOperador Role = "OPERADOR"
	RoleAdmin    Role = "ADMIN"
)

// User represents a back-office operator in the domain layer
type User struct {
	ID        uint
	Username  string
	Email     string
	Password  string // Hashed
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Associado represents an association member.
// Only active associados are eligible for monthly billing.
type Associado struct {
	ID        uuid.UUID
	Nome      string
	Email     string
	Telefone  string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FormaPagamento enumerates the accepted payment methods
type FormaPagamento string

const (
	PagamentoPix      FormaPagamento = "PIX"
	PagamentoDinheiro FormaPagamento = "DINHEIRO"
)

// ValidFormaPagamento reports whether v names a known payment method
func ValidFormaPagamento(v string) bool {
	switch FormaPagamento(v) {
	case PagamentoPix, PagamentoDinheiro:
		return true
	}
	return false
}

package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Associado errors
var (
	ErrAssociadoNaoEncontrado = errors.New("associado not found")
	ErrAssociadoInativo       = errors.New("associado is inactive")
	ErrEmailJaCadastrado      = errors.New("email already registered")
)

// Mensalidade errors
var (
	ErrPeriodoInvalido          = errors.New("invalid reference period")
	ErrMensalidadeNaoEncontrada = errors.New("mensalidade not found")
	ErrMensalidadeJaExiste      = errors.New("mensalidade already exists for this period")
	ErrMensalidadeJaPaga        = errors.New("mensalidade already paid")
	ErrFormaPagamentoInvalida   = errors.New("invalid payment method")
)

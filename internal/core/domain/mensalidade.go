package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusMensalidade represents the lifecycle state of a mensalidade.
// PENDENTE is the initial state; ATRASADA is reached only through the
// overdue sweep; PAGA is terminal.
type StatusMensalidade string

const (
	StatusPendente StatusMensalidade = "PENDENTE"
	StatusAtrasada StatusMensalidade = "ATRASADA"
	StatusPaga     StatusMensalidade = "PAGA"
)

// DiaVencimento is the fixed due day for every billing period
const DiaVencimento = 10

// PixTxIDPrefixo tags every mensalidade txid
const PixTxIDPrefixo = "MENS"

// Mensalidade is one associado's billing obligation for one calendar month.
// Status must only change through RegistrarPagamento and AtualizarStatus.
type Mensalidade struct {
	ID             uuid.UUID
	AssociadoID    uuid.UUID
	MesReferencia  int
	AnoReferencia  int
	Valor          decimal.Decimal
	Status         StatusMensalidade
	DataVencimento time.Time
	DataPagamento  *time.Time
	FormaPagamento *FormaPagamento
	PixTxID        string
	PixCopiaECola  string
	CriadaEm       time.Time
}

// NovaMensalidade builds a pending mensalidade for the given period.
// The due date is always day 10 of the reference month.
func NovaMensalidade(associadoID uuid.UUID, mes, ano int, valor decimal.Decimal) (*Mensalidade, error) {
	if mes < 1 || mes > 12 {
		return nil, ErrPeriodoInvalido
	}
	if ano < 1 {
		return nil, ErrPeriodoInvalido
	}

	return &Mensalidade{
		ID:             uuid.New(),
		AssociadoID:    associadoID,
		MesReferencia:  mes,
		AnoReferencia:  ano,
		Valor:          valor,
		Status:         StatusPendente,
		DataVencimento: time.Date(ano, time.Month(mes), DiaVencimento, 0, 0, 0, 0, time.UTC),
		PixTxID:        PixTxID(associadoID, mes, ano),
		CriadaEm:       time.Now(),
	}, nil
}

// PixTxID derives the deterministic PIX identifier for an associado and
// period. It is reproducible without storage, so it doubles as a natural
// idempotence key for generation and webhook reconciliation.
func PixTxID(associadoID uuid.UUID, mes, ano int) string {
	return fmt.Sprintf("%s%s%02d%04d", PixTxIDPrefixo, associadoID.String()[:8], mes, ano)
}

// RegistrarPagamento transitions the mensalidade to PAGA, fixing payment
// time and method permanently. A second call fails with ErrMensalidadeJaPaga
// and leaves the record untouched.
func (m *Mensalidade) RegistrarPagamento(quando time.Time, forma *FormaPagamento) error {
	if m.Status == StatusPaga {
		return ErrMensalidadeJaPaga
	}

	m.Status = StatusPaga
	m.DataPagamento = &quando
	m.FormaPagamento = forma
	return nil
}

// AtualizarStatus moves a PENDENTE mensalidade to ATRASADA when hoje is
// strictly after the due date. Any other state is a no-op. Returns whether
// a transition happened.
func (m *Mensalidade) AtualizarStatus(hoje time.Time) bool {
	if m.Status != StatusPendente {
		return false
	}
	if !m.EstaVencida(hoje) {
		return false
	}

	m.Status = StatusAtrasada
	return true
}

// EstaVencida reports whether hoje is past the due date, regardless of the
// stored status. Used for read-time checks distinct from persisted state.
func (m *Mensalidade) EstaVencida(hoje time.Time) bool {
	return hoje.After(m.DataVencimento)
}

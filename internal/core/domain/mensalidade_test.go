package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var valorPadrao = decimal.RequireFromString("10.90")

func TestNovaMensalidade(t *testing.T) {
	associadoID := uuid.New()

	m, err := NovaMensalidade(associadoID, 3, 2024, valorPadrao)
	require.NoError(t, err)

	assert.Equal(t, associadoID, m.AssociadoID)
	assert.Equal(t, 3, m.MesReferencia)
	assert.Equal(t, 2024, m.AnoReferencia)
	assert.Equal(t, StatusPendente, m.Status)
	assert.True(t, valorPadrao.Equal(m.Valor))
	assert.Nil(t, m.DataPagamento)
	assert.Nil(t, m.FormaPagamento)

	// Due date is always day 10 of the reference month
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), m.DataVencimento)
}

func TestNovaMensalidade_PeriodoInvalido(t *testing.T) {
	tests := []struct {
		name string
		mes  int
		ano  int
	}{
		{"month zero", 0, 2024},
		{"month thirteen", 13, 2024},
		{"negative month", -1, 2024},
		{"year zero", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NovaMensalidade(uuid.New(), tt.mes, tt.ano, valorPadrao)
			assert.ErrorIs(t, err, ErrPeriodoInvalido)
		})
	}
}

func TestPixTxID(t *testing.T) {
	associadoID := uuid.New()

	txid := PixTxID(associadoID, 3, 2024)

	assert.Equal(t, fmt.Sprintf("MENS%s032024", associadoID.String()[:8]), txid)
	assert.LessOrEqual(t, len(txid), 25)

	// Deterministic: same inputs always produce the same txid
	assert.Equal(t, txid, PixTxID(associadoID, 3, 2024))
	assert.NotEqual(t, txid, PixTxID(associadoID, 4, 2024))
	assert.NotEqual(t, txid, PixTxID(uuid.New(), 3, 2024))
}

func TestRegistrarPagamento(t *testing.T) {
	m, err := NovaMensalidade(uuid.New(), 3, 2024, valorPadrao)
	require.NoError(t, err)

	quando := time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC)
	forma := PagamentoPix

	require.NoError(t, m.RegistrarPagamento(quando, &forma))

	assert.Equal(t, StatusPaga, m.Status)
	require.NotNil(t, m.DataPagamento)
	assert.Equal(t, quando, *m.DataPagamento)
	require.NotNil(t, m.FormaPagamento)
	assert.Equal(t, PagamentoPix, *m.FormaPagamento)
}

func TestRegistrarPagamento_JaPaga(t *testing.T) {
	m, err := NovaMensalidade(uuid.New(), 3, 2024, valorPadrao)
	require.NoError(t, err)

	primeira := time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC)
	pix := PagamentoPix
	require.NoError(t, m.RegistrarPagamento(primeira, &pix))

	// Second attempt with a different method must fail and change nothing
	segunda := time.Date(2024, time.March, 9, 9, 0, 0, 0, time.UTC)
	dinheiro := PagamentoDinheiro
	err = m.RegistrarPagamento(segunda, &dinheiro)

	assert.ErrorIs(t, err, ErrMensalidadeJaPaga)
	assert.Equal(t, StatusPaga, m.Status)
	assert.Equal(t, primeira, *m.DataPagamento)
	assert.Equal(t, PagamentoPix, *m.FormaPagamento)
}

func TestRegistrarPagamento_DeAtrasada(t *testing.T) {
	m, err := NovaMensalidade(uuid.New(), 3, 2024, valorPadrao)
	require.NoError(t, err)

	require.True(t, m.AtualizarStatus(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, StatusAtrasada, m.Status)

	forma := PagamentoDinheiro
	require.NoError(t, m.RegistrarPagamento(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), &forma))
	assert.Equal(t, StatusPaga, m.Status)
}

func TestAtualizarStatus(t *testing.T) {
	dueDate := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		hoje       time.Time
		wantMudou  bool
		wantStatus StatusMensalidade
	}{
		{
			name:       "before due date stays pending",
			hoje:       time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
			wantMudou:  false,
			wantStatus: StatusPendente,
		},
		{
			name:       "on due date stays pending",
			hoje:       dueDate,
			wantMudou:  false,
			wantStatus: StatusPendente,
		},
		{
			name:       "after due date becomes overdue",
			hoje:       time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
			wantMudou:  true,
			wantStatus: StatusAtrasada,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NovaMensalidade(uuid.New(), 3, 2024, valorPadrao)
			require.NoError(t, err)
			require.Equal(t, dueDate, m.DataVencimento)

			assert.Equal(t, tt.wantMudou, m.AtualizarStatus(tt.hoje))
			assert.Equal(t, tt.wantStatus, m.Status)
		})
	}
}

func TestAtualizarStatus_NaoTocaPaga(t *testing.T) {
	m, err := NovaMensalidade(uuid.New(), 3, 2024, valorPadrao)
	require.NoError(t, err)

	forma := PagamentoPix
	require.NoError(t, m.RegistrarPagamento(time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), &forma))

	// Paid stays paid even long past the due date
	assert.False(t, m.AtualizarStatus(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, StatusPaga, m.Status)
}

func TestValidFormaPagamento(t *testing.T) {
	assert.True(t, ValidFormaPagamento("PIX"))
	assert.True(t, ValidFormaPagamento("DINHEIRO"))
	assert.False(t, ValidFormaPagamento("CARTAO"))
	assert.False(t, ValidFormaPagamento(""))
	assert.False(t, ValidFormaPagamento("pix"))
}

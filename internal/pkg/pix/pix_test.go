package pix

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumCRC16(t *testing.T) {
	tests := []struct {
		name string
		data string
		want uint16
	}{
		{
			name: "reference vector",
			data: "123456789",
			want: 0x29B1,
		},
		{
			name: "empty input keeps initial value",
			data: "",
			want: 0xFFFF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChecksumCRC16(tt.data))
		})
	}
}

func TestCopiaECola_Framing(t *testing.T) {
	gen := NewGenerator("contato@apoio.org.br", "Associacao Apoio", "Sao Paulo")

	payload := gen.CopiaECola(decimal.RequireFromString("10.90"), "MENS1a2b3c4d032024", "Mensalidade 03/2024")

	// Static payload markers
	assert.True(t, strings.HasPrefix(payload, "000201"), "payload format indicator")
	assert.Contains(t, payload, "010211", "static initiation method")
	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, "contato@apoio.org.br")
	assert.Contains(t, payload, "5303986", "BRL currency")
	assert.Contains(t, payload, "540510.90", "amount with two decimals")
	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "ASSOCIACAO APOIO", "merchant name uppercased")
	assert.Contains(t, payload, "SAO PAULO", "city uppercased")
	assert.Contains(t, payload, "MENS1a2b3c4d032024")

	// CRC is the last field: "6304" + 4 uppercase hex digits over the rest
	require.GreaterOrEqual(t, len(payload), 8)
	crcIdx := len(payload) - 8
	assert.Equal(t, "6304", payload[crcIdx:crcIdx+4])

	wantCRC := ChecksumCRC16(payload[:crcIdx+4])
	assert.Equal(t, payload[crcIdx+4:], strings.ToUpper(payload[crcIdx+4:]))
	assert.Equal(t, wantCRC, mustParseHex(t, payload[crcIdx+4:]))
}

func TestCopiaECola_Deterministic(t *testing.T) {
	gen := NewGenerator("11999990000", "Associacao Apoio", "Sao Paulo")
	valor := decimal.RequireFromString("10.90")

	a := gen.CopiaECola(valor, "MENSdeadbeef012025", "Mensalidade 01/2025")
	b := gen.CopiaECola(valor, "MENSdeadbeef012025", "Mensalidade 01/2025")

	assert.Equal(t, a, b)
}

func TestCopiaECola_TruncatesLongFields(t *testing.T) {
	gen := NewGenerator(
		"contato@apoio.org.br",
		"Associacao Beneficente de Amparo Comunitario",
		"Sao Jose dos Campos do Norte",
	)

	payload := gen.CopiaECola(decimal.RequireFromString("5.00"), "MENS1a2b3c4d012024", "")

	assert.Contains(t, payload, "ASSOCIACAO BENEFICENTE DE"[:MaxNomeRecebedor])
	assert.NotContains(t, payload, "AMPARO COMUNITARIO")
	assert.Contains(t, payload, "SAO JOSE DOS CA")
}

func TestCopiaECola_CamposAcentuados(t *testing.T) {
	gen := NewGenerator(
		"contato@apoio.org.br",
		"Associação São João Batista",
		"São José dos Campos",
	)

	payload := gen.CopiaECola(decimal.RequireFromString("2.50"), "MENS1a2b3c4d042024", "Doação")

	// Truncation counts characters and never cuts mid-rune
	assert.True(t, utf8.ValidString(payload))
	assert.Contains(t, payload, "ASSOCIAÇÃO SÃO JOÃO BATIS")
	assert.NotContains(t, payload, "BATISTA")
	assert.Contains(t, payload, "SÃO JOSÉ DOS CA")

	// TLV lengths are character counts: "Doação" is 6 characters
	assert.Contains(t, payload, "0206Doação")

	// CRC still closes the payload
	crcIdx := len(payload) - 8
	assert.Equal(t, "6304", payload[crcIdx:crcIdx+4])
	assert.Equal(t, ChecksumCRC16(payload[:crcIdx+4]), mustParseHex(t, payload[crcIdx+4:]))
}

func TestCopiaECola_OmitsEmptyDescription(t *testing.T) {
	gen := NewGenerator("chave", "Nome", "Cidade")

	com := gen.CopiaECola(decimal.RequireFromString("1.00"), "TX1", "Rifa")
	sem := gen.CopiaECola(decimal.RequireFromString("1.00"), "TX1", "")

	// Merchant account block carries only GUI and key when there is no description
	assert.Contains(t, com, "Rifa")
	assert.NotContains(t, sem, "Rifa")
	assert.Less(t, len(sem), len(com))
}

func mustParseHex(t *testing.T, s string) uint16 {
	t.Helper()
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint16
		switch {
		case c >= '0' && c <= '9':
			d = uint16(c - '0')
		case c >= 'A' && c <= 'F':
			d = uint16(c-'A') + 10
		default:
			t.Fatalf("not uppercase hex: %q", s)
		}
		v = v<<4 | d
	}
	return v
}

// Package pix builds static PIX "copia e cola" payloads (EMV QRCPS-MPM
// tag-length-value format) for charging mensalidades, vendas and doações.
package pix

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field limits from the BCB payload manual
const (
	MaxNomeRecebedor = 25
	MaxCidade        = 15
	MaxDescricao     = 40
	MaxTxID          = 25
)

// EMV tag identifiers used in the payload
const (
	tagPayloadFormat   = "00"
	tagInitMethod      = "01"
	tagMerchantAccount = "26"
	tagMerchantCat     = "52"
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCountry         = "58"
	tagMerchantName    = "59"
	tagMerchantCity    = "60"
	tagAdditionalData  = "62"
	tagCRC             = "63"

	tagGUI       = "00"
	tagChave     = "01"
	tagDescricao = "02"
	tagTxID      = "05"

	guiPix      = "br.gov.bcb.pix"
	moedaBRL    = "986" // ISO 4217
	paisBR      = "BR"
	categoriaMC = "0000"
)

// Generator produces payloads for a fixed payee (the association's PIX key)
type Generator struct {
	chave  string
	nome   string
	cidade string
}

// NewGenerator creates a payload generator for the given payee key,
// merchant name and city. Name and city are truncated to the EMV limits.
func NewGenerator(chave, nome, cidade string) *Generator {
	return &Generator{
		chave:  chave,
		nome:   truncate(strings.ToUpper(nome), MaxNomeRecebedor),
		cidade: truncate(strings.ToUpper(cidade), MaxCidade),
	}
}

// CopiaECola builds the full static payload for one charge. The trailing
// CRC field is computed over everything before it, including the "6304"
// tag-length prefix, per the EMV spec.
func (g *Generator) CopiaECola(valor decimal.Decimal, txid, descricao string) string {
	var b strings.Builder

	b.WriteString(emv(tagPayloadFormat, "01"))
	b.WriteString(emv(tagInitMethod, "11"))

	conta := emv(tagGUI, guiPix) + emv(tagChave, g.chave)
	if descricao != "" {
		conta += emv(tagDescricao, truncate(descricao, MaxDescricao))
	}
	b.WriteString(emv(tagMerchantAccount, conta))

	b.WriteString(emv(tagMerchantCat, categoriaMC))
	b.WriteString(emv(tagCurrency, moedaBRL))
	b.WriteString(emv(tagAmount, valor.StringFixed(2)))
	b.WriteString(emv(tagCountry, paisBR))
	b.WriteString(emv(tagMerchantName, g.nome))
	b.WriteString(emv(tagMerchantCity, g.cidade))
	b.WriteString(emv(tagAdditionalData, emv(tagTxID, truncate(txid, MaxTxID))))

	payload := b.String() + tagCRC + "04"
	return payload + fmt.Sprintf("%04X", ChecksumCRC16(payload))
}

// emv encodes one tag-length-value field. Length is counted in characters,
// not bytes, so accented values stay readable. Lengths above 99 would break
// the two-digit framing, hence the value truncation upstream.
func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, utf8.RuneCountInString(value), value)
}

// ChecksumCRC16 computes CRC-16/CCITT-FALSE (polynomial 0x1021, initial
// value 0xFFFF) over data, as required by the payload's field 63.
func ChecksumCRC16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// truncate cuts s down to max characters on rune boundaries, never mid-rune
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

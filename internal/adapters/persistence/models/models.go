package models

import (
	"time"

	"apoio-gestao/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Operadores (back-office users)
// ============================================================

// User represents the users table (back-office operators)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'OPERADOR'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ============================================================
// Associados
// ============================================================

// Associado represents the associados table
type Associado struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	Nome      string         `gorm:"size:150;not null" json:"nome"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Telefone  string         `gorm:"size:20" json:"telefone"`
	Ativo     bool           `gorm:"default:true;index" json:"ativo"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Associado) TableName() string {
	return "associados"
}

// ToDomain converts the row into the domain view consumed by billing
func (a *Associado) ToDomain() (*domain.Associado, error) {
	id, err := uuid.Parse(a.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Associado{
		ID:        id,
		Nome:      a.Nome,
		Email:     a.Email,
		Telefone:  a.Telefone,
		Ativo:     a.Ativo,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}

// ============================================================
// Mensalidades
// ============================================================

// Mensalidade represents the mensalidades table. The composite unique index
// over (associado_id, mes_referencia, ano_referencia) is the hard guard
// behind the generation engine's check-then-create sequence.
type Mensalidade struct {
	ID             string          `gorm:"type:char(36);primaryKey" json:"id"`
	AssociadoID    string          `gorm:"type:char(36);not null;uniqueIndex:ux_mensalidades_periodo" json:"associado_id"`
	MesReferencia  int             `gorm:"not null;uniqueIndex:ux_mensalidades_periodo" json:"mes_referencia"`
	AnoReferencia  int             `gorm:"not null;uniqueIndex:ux_mensalidades_periodo" json:"ano_referencia"`
	Valor          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Status         string          `gorm:"size:20;not null;default:'PENDENTE';index" json:"status"`
	DataVencimento time.Time       `gorm:"not null;index" json:"data_vencimento"`
	DataPagamento  *time.Time      `json:"data_pagamento"`
	FormaPagamento *string         `gorm:"size:20" json:"forma_pagamento"`
	PixTxid        string          `gorm:"size:35;uniqueIndex" json:"pix_txid"`
	PixCopiaECola  string          `gorm:"type:text" json:"pix_copia_e_cola"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Associado *Associado `gorm:"foreignKey:AssociadoID" json:"associado,omitempty"`
}

func (Mensalidade) TableName() string {
	return "mensalidades"
}

// FromDomainMensalidade maps a domain entity into a persistable row
func FromDomainMensalidade(m *domain.Mensalidade) *Mensalidade {
	var forma *string
	if m.FormaPagamento != nil {
		f := string(*m.FormaPagamento)
		forma = &f
	}
	return &Mensalidade{
		ID:             m.ID.String(),
		AssociadoID:    m.AssociadoID.String(),
		MesReferencia:  m.MesReferencia,
		AnoReferencia:  m.AnoReferencia,
		Valor:          m.Valor,
		Status:         string(m.Status),
		DataVencimento: m.DataVencimento,
		DataPagamento:  m.DataPagamento,
		FormaPagamento: forma,
		PixTxid:        m.PixTxID,
		PixCopiaECola:  m.PixCopiaECola,
		CreatedAt:      m.CriadaEm,
	}
}

// ToDomain rebuilds the domain entity from the row
func (m *Mensalidade) ToDomain() (*domain.Mensalidade, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	associadoID, err := uuid.Parse(m.AssociadoID)
	if err != nil {
		return nil, err
	}

	var forma *domain.FormaPagamento
	if m.FormaPagamento != nil {
		f := domain.FormaPagamento(*m.FormaPagamento)
		forma = &f
	}

	return &domain.Mensalidade{
		ID:             id,
		AssociadoID:    associadoID,
		MesReferencia:  m.MesReferencia,
		AnoReferencia:  m.AnoReferencia,
		Valor:          m.Valor,
		Status:         domain.StatusMensalidade(m.Status),
		DataVencimento: m.DataVencimento,
		DataPagamento:  m.DataPagamento,
		FormaPagamento: forma,
		PixTxID:        m.PixTxid,
		PixCopiaECola:  m.PixCopiaECola,
		CriadaEm:       m.CreatedAt,
	}, nil
}

// ============================================================
// Vendas
// ============================================================

// Venda categories
const (
	CategoriaCantina = "CANTINA"
	CategoriaBazar   = "BAZAR"
	CategoriaEvento  = "EVENTO"
)

// Venda represents the vendas table (point-of-sale transactions)
type Venda struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Descricao      string          `gorm:"size:200;not null" json:"descricao"`
	Categoria      string          `gorm:"size:30;not null;index" json:"categoria"`
	Valor          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	FormaPagamento string          `gorm:"size:20;not null" json:"forma_pagamento"`
	DataVenda      time.Time       `gorm:"not null;index" json:"data_venda"`
	RegistradaPor  uint            `gorm:"not null" json:"registrada_por"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	Operador *User `gorm:"foreignKey:RegistradaPor" json:"operador,omitempty"`
}

func (Venda) TableName() string {
	return "vendas"
}

// ============================================================
// Doações
// ============================================================

// Doacao represents the doacoes table
type Doacao struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	NomeDoador     string          `gorm:"size:150" json:"nome_doador"`
	Anonima        bool            `gorm:"default:false" json:"anonima"`
	Valor          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	FormaPagamento string          `gorm:"size:20;not null" json:"forma_pagamento"`
	Mensagem       string          `gorm:"type:text" json:"mensagem"`
	DataDoacao     time.Time       `gorm:"not null;index" json:"data_doacao"`
	RegistradaPor  uint            `gorm:"not null" json:"registrada_por"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Doacao) TableName() string {
	return "doacoes"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Associado{},
		&Mensalidade{},
		&Venda{},
		&Doacao{},
	)
}

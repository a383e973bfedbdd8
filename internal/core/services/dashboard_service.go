package services

import (
	"context"
	"time"

	"apoio-gestao/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardService aggregates revenue for the back-office dashboard
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// ReceitaPorForma breaks one revenue category down by payment method
type ReceitaPorForma struct {
	FormaPagamento string          `json:"forma_pagamento"`
	Total          decimal.Decimal `json:"total"`
}

// VendaPorCategoria breaks sales revenue down by categoria
type VendaPorCategoria struct {
	Categoria string          `json:"categoria"`
	Total     decimal.Decimal `json:"total"`
}

// DashboardData represents the dashboard payload
type DashboardData struct {
	// Associados
	TotalAssociados  int64 `json:"total_associados"`
	AssociadosAtivos int64 `json:"associados_ativos"`

	// Mensalidades (filtered period)
	MensalidadesPendentes int64 `json:"mensalidades_pendentes"`
	MensalidadesAtrasadas int64 `json:"mensalidades_atrasadas"`
	MensalidadesPagas     int64 `json:"mensalidades_pagas"`

	// Revenue by category
	ReceitaMensalidades decimal.Decimal `json:"receita_mensalidades"`
	ReceitaVendas       decimal.Decimal `json:"receita_vendas"`
	ReceitaDoacoes      decimal.Decimal `json:"receita_doacoes"`
	ReceitaTotal        decimal.Decimal `json:"receita_total"`

	// Revenue by payment method (all categories combined)
	PorFormaPagamento []ReceitaPorForma `json:"por_forma_pagamento"`

	// Sales revenue by categoria
	VendasPorCategoria []VendaPorCategoria `json:"vendas_por_categoria"`
}

// GetDashboard returns revenue aggregates. When mes/ano are zero the whole
// ledger is summarized; otherwise totals are restricted to that period
// (mensalidades by reference period, vendas/doações by calendar month).
func (s *DashboardService) GetDashboard(ctx context.Context, mes, ano int) (*DashboardData, error) {
	data := &DashboardData{}
	filtered := mes >= 1 && mes <= 12 && ano > 0

	// Associado counts
	s.db.WithContext(ctx).Table("associados").Where("deleted_at IS NULL").Count(&data.TotalAssociados)
	s.db.WithContext(ctx).Table("associados").Where("ativo = ? AND deleted_at IS NULL", true).Count(&data.AssociadosAtivos)

	// Mensalidade status counts
	mensalidades := func() *gorm.DB {
		q := s.db.WithContext(ctx).Table("mensalidades")
		if filtered {
			q = q.Where("mes_referencia = ? AND ano_referencia = ?", mes, ano)
		}
		return q
	}
	mensalidades().Where("status = ?", string(domain.StatusPendente)).Count(&data.MensalidadesPendentes)
	mensalidades().Where("status = ?", string(domain.StatusAtrasada)).Count(&data.MensalidadesAtrasadas)
	mensalidades().Where("status = ?", string(domain.StatusPaga)).Count(&data.MensalidadesPagas)

	// Revenue: mensalidades count only once paid
	mensalidades().
		Where("status = ?", string(domain.StatusPaga)).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&data.ReceitaMensalidades)

	vendas := func() *gorm.DB {
		q := s.db.WithContext(ctx).Table("vendas").Where("deleted_at IS NULL")
		if filtered {
			inicio, fim := periodoJanela(mes, ano)
			q = q.Where("data_venda >= ? AND data_venda < ?", inicio, fim)
		}
		return q
	}
	vendas().Select("COALESCE(SUM(valor), 0)").Scan(&data.ReceitaVendas)

	doacoes := func() *gorm.DB {
		q := s.db.WithContext(ctx).Table("doacoes").Where("deleted_at IS NULL")
		if filtered {
			inicio, fim := periodoJanela(mes, ano)
			q = q.Where("data_doacao >= ? AND data_doacao < ?", inicio, fim)
		}
		return q
	}
	doacoes().Select("COALESCE(SUM(valor), 0)").Scan(&data.ReceitaDoacoes)

	data.ReceitaTotal = data.ReceitaMensalidades.Add(data.ReceitaVendas).Add(data.ReceitaDoacoes)

	// By payment method, across the three ledgers
	data.PorFormaPagamento = make([]ReceitaPorForma, 0, 2)
	for _, forma := range []domain.FormaPagamento{domain.PagamentoPix, domain.PagamentoDinheiro} {
		var m, v, d decimal.Decimal
		mensalidades().
			Where("status = ? AND forma_pagamento = ?", string(domain.StatusPaga), string(forma)).
			Select("COALESCE(SUM(valor), 0)").
			Scan(&m)
		vendas().Where("forma_pagamento = ?", string(forma)).Select("COALESCE(SUM(valor), 0)").Scan(&v)
		doacoes().Where("forma_pagamento = ?", string(forma)).Select("COALESCE(SUM(valor), 0)").Scan(&d)

		data.PorFormaPagamento = append(data.PorFormaPagamento, ReceitaPorForma{
			FormaPagamento: string(forma),
			Total:          m.Add(v).Add(d),
		})
	}

	// Sales by categoria
	var porCategoria []VendaPorCategoria
	vendas().
		Select("categoria, COALESCE(SUM(valor), 0) as total").
		Group("categoria").
		Order("total DESC").
		Scan(&porCategoria)
	data.VendasPorCategoria = porCategoria
	if data.VendasPorCategoria == nil {
		data.VendasPorCategoria = []VendaPorCategoria{}
	}

	return data, nil
}

// periodoJanela returns the [start, end) calendar window of a period
func periodoJanela(mes, ano int) (time.Time, time.Time) {
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	return inicio, inicio.AddDate(0, 1, 0)
}

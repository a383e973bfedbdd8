package handlers

import (
	"errors"
	"strconv"
	"time"

	"apoio-gestao/internal/adapters/persistence/models"
	"apoio-gestao/internal/adapters/persistence/repositories"
	"apoio-gestao/internal/core/domain"
	"apoio-gestao/internal/core/services"
	"apoio-gestao/internal/pkg/pagination"
	"apoio-gestao/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MensalidadeHandler handles mensalidade endpoints
type MensalidadeHandler struct {
	mensalidadeService *services.MensalidadeService
}

// NewMensalidadeHandler creates a new mensalidade handler
func NewMensalidadeHandler(mensalidadeService *services.MensalidadeService) *MensalidadeHandler {
	return &MensalidadeHandler{
		mensalidadeService: mensalidadeService,
	}
}

// GerarRequest represents the monthly generation request body
type GerarRequest struct {
	Mes int `json:"mes"`
	Ano int `json:"ano"`
}

// PagamentoRequest represents the payment registration request body
type PagamentoRequest struct {
	FormaPagamento string `json:"forma_pagamento"`
}

// Gerar handles the monthly dues generation for all active associados
// @Summary Generate monthly dues
// @Description Create the month's mensalidade for every active associado, skipping the ones that already exist
// @Tags Mensalidades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GerarRequest true "Reference period"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /mensalidades/gerar [post]
func (h *MensalidadeHandler) Gerar(c *fiber.Ctx) error {
	var req GerarRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	resultado, err := h.mensalidadeService.GerarParaPeriodo(c.Context(), req.Mes, req.Ano)
	if err != nil {
		if errors.Is(err, domain.ErrPeriodoInvalido) {
			return response.BadRequest(c, "Invalid reference period")
		}
		return response.InternalServerError(c, "Failed to generate mensalidades")
	}

	return response.Success(c, "Mensalidades generated successfully", resultado)
}

// GerarParaAssociado handles dues generation for a single associado
// @Summary Generate a mensalidade for one associado
// @Description Create a mensalidade for a specific associado and period
// @Tags Mensalidades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Associado ID"
// @Param body body GerarRequest true "Reference period"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /associados/{id}/mensalidades [post]
func (h *MensalidadeHandler) GerarParaAssociado(c *fiber.Ctx) error {
	associadoID := c.Params("id")

	var req GerarRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	mensalidade, err := h.mensalidadeService.GerarParaAssociado(c.Context(), req.Mes, req.Ano, associadoID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPeriodoInvalido):
			return response.BadRequest(c, "Invalid reference period")
		case errors.Is(err, domain.ErrAssociadoNaoEncontrado):
			return response.NotFound(c, "Associado not found")
		case errors.Is(err, domain.ErrAssociadoInativo):
			return response.UnprocessableEntity(c, "Associado is inactive")
		case errors.Is(err, domain.ErrMensalidadeJaExiste):
			return response.Conflict(c, "Mensalidade already exists for this period")
		default:
			return response.InternalServerError(c, "Failed to generate mensalidade")
		}
	}

	return response.Created(c, "Mensalidade generated successfully", models.FromDomainMensalidade(mensalidade))
}

// RegistrarPagamento handles manual payment registration
// @Summary Register a payment
// @Description Mark a mensalidade as paid, fixing payment time and method
// @Tags Mensalidades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mensalidade ID"
// @Param body body PagamentoRequest true "Payment method"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /mensalidades/{id}/pagamento [post]
func (h *MensalidadeHandler) RegistrarPagamento(c *fiber.Ctx) error {
	id := c.Params("id")

	var req PagamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var forma *domain.FormaPagamento
	if req.FormaPagamento != "" {
		if !domain.ValidFormaPagamento(req.FormaPagamento) {
			return response.BadRequest(c, "Invalid payment method")
		}
		f := domain.FormaPagamento(req.FormaPagamento)
		forma = &f
	}

	mensalidade, err := h.mensalidadeService.RegistrarPagamento(c.Context(), id, forma)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMensalidadeNaoEncontrada):
			return response.NotFound(c, "Mensalidade not found")
		case errors.Is(err, domain.ErrMensalidadeJaPaga):
			return response.Conflict(c, "Mensalidade is already paid")
		default:
			return response.InternalServerError(c, "Failed to register payment")
		}
	}

	return response.Success(c, "Payment registered successfully", models.FromDomainMensalidade(mensalidade))
}

// Reconciliar triggers the overdue sweep on demand
// @Summary Reconcile overdue dues
// @Description Mark every pending mensalidade past its due date as overdue
// @Tags Mensalidades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /mensalidades/reconciliar [post]
func (h *MensalidadeHandler) Reconciliar(c *fiber.Ctx) error {
	atualizadas, err := h.mensalidadeService.ReconciliarAtrasadas(c.Context(), time.Now())
	if err != nil {
		return response.InternalServerError(c, "Failed to reconcile mensalidades")
	}

	return response.Success(c, "Reconciliation completed", fiber.Map{
		"atualizadas": atualizadas,
	})
}

// GetByID returns a single mensalidade
// @Summary Get mensalidade
// @Description Get a mensalidade by ID, including its PIX payload
// @Tags Mensalidades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mensalidade ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mensalidades/{id} [get]
func (h *MensalidadeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	mensalidade, err := h.mensalidadeService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMensalidadeNaoEncontrada) {
			return response.NotFound(c, "Mensalidade not found")
		}
		return response.InternalServerError(c, "Failed to get mensalidade")
	}

	return response.Success(c, "Mensalidade retrieved successfully", models.FromDomainMensalidade(mensalidade))
}

// List returns mensalidades filtered by associado, status and period
// @Summary List mensalidades
// @Description List mensalidades with optional filters
// @Tags Mensalidades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param associado_id query string false "Filter by associado"
// @Param status query string false "Filter by status" Enums(PENDENTE, ATRASADA, PAGA)
// @Param mes query int false "Filter by reference month"
// @Param ano query int false "Filter by reference year"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /mensalidades [get]
func (h *MensalidadeHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	filtro := &repositories.MensalidadeFiltro{
		AssociadoID: c.Query("associado_id"),
		Status:      c.Query("status"),
	}
	if mes, err := strconv.Atoi(c.Query("mes")); err == nil {
		filtro.Mes = mes
	}
	if ano, err := strconv.Atoi(c.Query("ano")); err == nil {
		filtro.Ano = ano
	}

	mensalidades, total, err := h.mensalidadeService.List(c.Context(), filtro, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list mensalidades")
	}

	return response.Success(c, "Mensalidades retrieved successfully",
		pagination.NewResponse(mensalidades, params, total))
}

package handlers

import (
	"errors"
	"strconv"

	"apoio-gestao/internal/core/domain"
	"apoio-gestao/internal/core/services"
	"apoio-gestao/internal/pkg/pagination"
	"apoio-gestao/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VendaHandler handles venda endpoints
type VendaHandler struct {
	vendaService *services.VendaService
}

// NewVendaHandler creates a new venda handler
func NewVendaHandler(vendaService *services.VendaService) *VendaHandler {
	return &VendaHandler{
		vendaService: vendaService,
	}
}

// Create records a point-of-sale venda
// @Summary Create venda
// @Description Record a sale from cantina, bazar or evento
// @Tags Vendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateVendaInput true "Venda data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /vendas [post]
func (h *VendaHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateVendaInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	venda, err := h.vendaService.Create(c.Context(), &input, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoriaInvalida):
			return response.BadRequest(c, "Invalid category")
		case errors.Is(err, domain.ErrFormaPagamentoInvalida):
			return response.BadRequest(c, "Invalid payment method")
		default:
			return response.InternalServerError(c, "Failed to create venda")
		}
	}

	return response.Created(c, "Venda created successfully", venda)
}

// List returns vendas paginated, optionally filtered by category
// @Summary List vendas
// @Description List vendas with pagination and optional category filter
// @Tags Vendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoria query string false "Filter by category" Enums(CANTINA, BAZAR, EVENTO)
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /vendas [get]
func (h *VendaHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	vendas, total, err := h.vendaService.List(c.Context(), c.Query("categoria"), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list vendas")
	}

	return response.Success(c, "Vendas retrieved successfully",
		pagination.NewResponse(vendas, params, total))
}

// Delete removes a venda (soft delete)
// @Summary Delete venda
// @Description Soft-delete a venda registered by mistake
// @Tags Vendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Venda ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vendas/{id} [delete]
func (h *VendaHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid venda ID")
	}

	if err := h.vendaService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrVendaNotFound) {
			return response.NotFound(c, "Venda not found")
		}
		return response.InternalServerError(c, "Failed to delete venda")
	}

	return response.Success(c, "Venda deleted successfully", nil)
}

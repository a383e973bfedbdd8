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

// DoacaoHandler handles doação endpoints
type DoacaoHandler struct {
	doacaoService *services.DoacaoService
}

// NewDoacaoHandler creates a new doação handler
func NewDoacaoHandler(doacaoService *services.DoacaoService) *DoacaoHandler {
	return &DoacaoHandler{
		doacaoService: doacaoService,
	}
}

// Create records a doação
// @Summary Create doação
// @Description Record a donation, optionally anonymous
// @Tags Doacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateDoacaoInput true "Doação data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doacoes [post]
func (h *DoacaoHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateDoacaoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	doacao, err := h.doacaoService.Create(c.Context(), &input, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFormaPagamentoInvalida) {
			return response.BadRequest(c, "Invalid payment method")
		}
		return response.InternalServerError(c, "Failed to create doação")
	}

	return response.Created(c, "Doação created successfully", doacao)
}

// List returns doações paginated
// @Summary List doações
// @Description List donations with pagination
// @Tags Doacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /doacoes [get]
func (h *DoacaoHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	doacoes, total, err := h.doacaoService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list doações")
	}

	return response.Success(c, "Doações retrieved successfully",
		pagination.NewResponse(doacoes, params, total))
}

// Delete removes a doação (soft delete)
// @Summary Delete doação
// @Description Soft-delete a donation registered by mistake
// @Tags Doacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doação ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doacoes/{id} [delete]
func (h *DoacaoHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid doação ID")
	}

	if err := h.doacaoService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrDoacaoNotFound) {
			return response.NotFound(c, "Doação not found")
		}
		return response.InternalServerError(c, "Failed to delete doação")
	}

	return response.Success(c, "Doação deleted successfully", nil)
}

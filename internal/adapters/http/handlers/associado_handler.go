package handlers

import (
	"errors"
	"strings"

	"apoio-gestao/internal/core/domain"
	"apoio-gestao/internal/core/services"
	"apoio-gestao/internal/pkg/pagination"
	"apoio-gestao/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AssociadoHandler handles associado endpoints
type AssociadoHandler struct {
	associadoService *services.AssociadoService
}

// NewAssociadoHandler creates a new associado handler
func NewAssociadoHandler(associadoService *services.AssociadoService) *AssociadoHandler {
	return &AssociadoHandler{
		associadoService: associadoService,
	}
}

// Create handles associado registration
// @Summary Create associado
// @Description Register a new associado, active by default
// @Tags Associados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateAssociadoInput true "Associado data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /associados [post]
func (h *AssociadoHandler) Create(c *fiber.Ctx) error {
	var input services.CreateAssociadoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.Nome = strings.TrimSpace(input.Nome)
	input.Email = strings.TrimSpace(input.Email)

	if input.Nome == "" {
		return response.BadRequest(c, "Nome is required")
	}
	if input.Email == "" {
		return response.BadRequest(c, "Email is required")
	}

	associado, err := h.associadoService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailJaCadastrado) {
			return response.Conflict(c, "Email already registered")
		}
		return response.InternalServerError(c, "Failed to create associado")
	}

	return response.Created(c, "Associado created successfully", associado)
}

// GetByID returns a single associado
// @Summary Get associado
// @Description Get an associado by ID
// @Tags Associados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Associado ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /associados/{id} [get]
func (h *AssociadoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	associado, err := h.associadoService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAssociadoNaoEncontrado) {
			return response.NotFound(c, "Associado not found")
		}
		return response.InternalServerError(c, "Failed to get associado")
	}

	return response.Success(c, "Associado retrieved successfully", associado)
}

// List returns associados paginated
// @Summary List associados
// @Description List associados with pagination
// @Tags Associados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /associados [get]
func (h *AssociadoHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	associados, total, err := h.associadoService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list associados")
	}

	return response.Success(c, "Associados retrieved successfully",
		pagination.NewResponse(associados, params, total))
}

// Update handles partial associado updates
// @Summary Update associado
// @Description Update an associado's data. Deactivation excludes it from future billing runs.
// @Tags Associados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Associado ID"
// @Param body body services.UpdateAssociadoInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /associados/{id} [put]
func (h *AssociadoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var input services.UpdateAssociadoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	associado, err := h.associadoService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAssociadoNaoEncontrado):
			return response.NotFound(c, "Associado not found")
		case errors.Is(err, domain.ErrEmailJaCadastrado):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to update associado")
		}
	}

	return response.Success(c, "Associado updated successfully", associado)
}

// Delete removes an associado (soft delete)
// @Summary Delete associado
// @Description Soft-delete an associado. Its dues ledger is kept.
// @Tags Associados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Associado ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /associados/{id} [delete]
func (h *AssociadoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.associadoService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAssociadoNaoEncontrado) {
			return response.NotFound(c, "Associado not found")
		}
		return response.InternalServerError(c, "Failed to delete associado")
	}

	return response.Success(c, "Associado deleted successfully", nil)
}

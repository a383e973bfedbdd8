package handlers

import (
	"strconv"

	"apoio-gestao/internal/core/services"
	"apoio-gestao/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the revenue dashboard
// @Summary Revenue dashboard
// @Description Get consolidated revenue from mensalidades, vendas and doações, optionally scoped to a reference period
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mes query int false "Reference month"
// @Param ano query int false "Reference year"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	mes, _ := strconv.Atoi(c.Query("mes", "0"))
	ano, _ := strconv.Atoi(c.Query("ano", "0"))

	// Period filter is all-or-nothing
	if (mes == 0) != (ano == 0) {
		return response.BadRequest(c, "mes and ano must be provided together")
	}
	if mes != 0 && (mes < 1 || mes > 12) {
		return response.BadRequest(c, "Invalid reference month")
	}

	data, err := h.dashboardService.GetDashboard(c.Context(), mes, ano)
	if err != nil {
		return response.InternalServerError(c, "Failed to get dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", data)
}

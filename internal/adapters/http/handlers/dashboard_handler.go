package handlers

import (
	"bms-api/internal/core/services"
	"bms-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	statsService *services.StatsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(statsService *services.StatsService) *DashboardHandler {
	return &DashboardHandler{
		statsService: statsService,
	}
}

// Stats returns headline dashboard figures
// @Summary Dashboard statistics
// @Description Get headline banking figures for the dashboard
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.statsService.Current(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard statistics")
	}

	return response.Success(c, "Dashboard statistics retrieved successfully", stats)
}

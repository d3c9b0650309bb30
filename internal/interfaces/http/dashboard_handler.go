package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
)

// DashboardHandler expone el resumen del panel de control.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen GET /api/dashboard
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.GetResumen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(out)
}

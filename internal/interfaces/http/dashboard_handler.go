package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Procurement-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del tablero.
// GET /api/dashboard
//
// Respuesta: DashboardSummaryDTO (vendorsByStatus, openRfx, liveAuctions, purchaseOrders,
// totalSpend, topVendors[5], pendingApprovals del usuario autenticado).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/analytics"
)

// DashboardHandler expone el resumen del inventario para el administrador.
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
}

// NewDashboardHandler crea el handler del dashboard.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Summary godoc
// @Summary Resumen del inventario
// @Description Totales de productos, categorías y usuarios más el listado de stock bajo
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.dashboardUC.GetSummary(c.UserContext())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(summary)
}

// Report godoc
// @Summary Reporte de inventario en PDF
// @Description Genera el inventario completo como documento PDF descargable
// @Tags dashboard
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/reporte.pdf [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.dashboardUC.InventoryReportPDF(c.UserContext())
	if err != nil {
		return domainError(c, err)
	}
	filename := fmt.Sprintf("inventario_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

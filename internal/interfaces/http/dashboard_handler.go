package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestion-carnes/internal/application/analytics"
	"github.com/jhoicas/gestion-carnes/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen financiero
// @Description  Ingresos, costo FIFO, ganancia bruta, gastos, resultado neto, margen y totales de distribución.
// @Tags         dashboard
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.DashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	var rng dto.DateRange
	if err := bindQuery(c, &rng); err != nil {
		return writeError(c, err)
	}
	summary, err := h.uc.GetSummary(c.UserContext(), rng)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

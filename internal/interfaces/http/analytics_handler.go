package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestion-carnes/internal/application/analytics"
	"github.com/jhoicas/gestion-carnes/internal/application/dto"
)

// AnalyticsHandler expone el ranking de rentabilidad por producto.
type AnalyticsHandler struct {
	uc *appanalytics.MarginsUseCase
}

func NewAnalyticsHandler(uc *appanalytics.MarginsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetProductMargins godoc
// @Summary      Ranking de productos por ganancia
// @Description  Ganancia, margen y participación en ingresos por producto con análisis Pareto 80/20.
// @Tags         analytics
// @Produce      json
// @Param        from   query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to     query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        top_n  query  int     false  "Máximo de productos (default 20, max 200)"
// @Success      200  {object}  dto.MarginsReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/products [get]
func (h *AnalyticsHandler) GetProductMargins(c *fiber.Ctx) error {
	var req dto.MarginsReportRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	report, err := h.uc.GetMarginsReport(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

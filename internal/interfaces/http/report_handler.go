package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/application/reports"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ReportHandler exportaciones XLSX y PDF.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesXLSX godoc
// @Summary      Exportar ventas (XLSX)
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/sales.xlsx [get]
func (h *ReportHandler) SalesXLSX(c *fiber.Ctx) error {
	b, name, err := h.uc.SalesXLSX(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, b, name, mimeXLSX)
}

// DistributionsXLSX godoc
// @Summary      Exportar distribuciones (XLSX)
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/distributions.xlsx [get]
func (h *ReportHandler) DistributionsXLSX(c *fiber.Ctx) error {
	var rng dto.DateRange
	if err := bindQuery(c, &rng); err != nil {
		return writeError(c, err)
	}
	b, name, err := h.uc.DistributionsXLSX(c.UserContext(), rng)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, b, name, mimeXLSX)
}

// SettlementPDF godoc
// @Summary      Liquidación de distribuciones (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/distributions.pdf [get]
func (h *ReportHandler) SettlementPDF(c *fiber.Ctx) error {
	var rng dto.DateRange
	if err := bindQuery(c, &rng); err != nil {
		return writeError(c, err)
	}
	b, name, err := h.uc.SettlementPDF(c.UserContext(), rng)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, b, name, mimePDF)
}

func sendFile(c *fiber.Ctx, b []byte, name, mime string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(b)
}

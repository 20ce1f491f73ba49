package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-carnes/internal/application/distribution"
	"github.com/jhoicas/gestion-carnes/internal/application/dto"
)

// DistributionHandler reparto de ganancia socio/proveedor.
type DistributionHandler struct {
	uc *distribution.UseCase
}

// NewDistributionHandler construye el handler.
func NewDistributionHandler(uc *distribution.UseCase) *DistributionHandler {
	return &DistributionHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular reparto (sin guardar)
// @Tags         distributions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateDistributionRequest  true  "Precios y porcentaje"
// @Success      200   {object}  dto.DistributionPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse  "INVALID_DISTRIBUTION"
// @Router       /api/distributions/calculate [post]
func (h *DistributionHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateDistributionRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Calculate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar distribución
// @Tags         distributions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterDistributionRequest  true  "Distribución"
// @Success      201   {object}  dto.DistributionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "MISSING_REFERENCE"
// @Failure      422   {object}  dto.ErrorResponse  "INVALID_DISTRIBUTION"
// @Router       /api/distributions [post]
func (h *DistributionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterDistributionRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de distribuciones con totales
// @Tags         distributions
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.DistributionListResponse
// @Router       /api/distributions [get]
func (h *DistributionHandler) List(c *fiber.Ctx) error {
	var rng dto.DateRange
	if err := bindQuery(c, &rng); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), rng)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar distribución
// @Tags         distributions
// @Param        id  path  string  true  "ID de la distribución"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributions/{id} [delete]
func (h *DistributionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Defaults godoc
// @Summary      Valores sugeridos para el formulario
// @Description  Precio base = costo promedio actual; precio de venta = última venta del producto.
// @Tags         distributions
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.DistributionDefaultsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributions/defaults/{productId} [get]
func (h *DistributionHandler) Defaults(c *fiber.Ctx) error {
	out, err := h.uc.Defaults(c.UserContext(), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

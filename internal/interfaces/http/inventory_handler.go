package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-carnes/internal/application/inventory"
)

// InventoryHandler vista de stock y costos promedio.
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Stock godoc
// @Summary      Stock por producto
// @Description  Stock total, costo promedio ponderado, valor, próximo lote FIFO y precio sugerido.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.StockResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.GetStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AverageCost godoc
// @Summary      Costo promedio ponderado por producto
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.AverageCostResponse
// @Router       /api/inventory/average-cost [get]
func (h *InventoryHandler) AverageCost(c *fiber.Ctx) error {
	out, err := h.uc.AverageCosts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

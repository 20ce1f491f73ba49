package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/application/inventory"
)

// PurchaseHandler compras (lotes).
type PurchaseHandler struct {
	uc *inventory.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *inventory.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar compra
// @Description  Crea un lote con disponible = cantidad. Fecha vacía = hoy.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPurchaseRequest  true  "Lote"
// @Success      201   {object}  dto.PurchaseLotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPurchaseRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.RegisterPurchase(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar lotes de compra
// @Tags         purchases
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        available   query  bool    false  "Solo lotes con stock"
// @Success      200  {object}  dto.PurchaseLotListResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var filter dto.PurchaseLotFilter
	if err := bindQuery(c, &filter); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListLots(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Description  Las ventas que consumieron el lote no se recalculan.
// @Tags         purchases
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteLot(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

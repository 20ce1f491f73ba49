package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-carnes/internal/application/usecase"
)

// CatalogHandler catálogo público.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo público
// @Tags         catalog
// @Produce      json
// @Param        q  query  string  false  "Buscar por nombre"
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

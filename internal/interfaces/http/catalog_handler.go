package http

import (
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler listados de productos y clientes para la búsqueda del carrinho.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// Products godoc
// @Summary      Listar produtos
// @Description  Recarga la vista de produtos de la sesión desde el backend.
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   entity.Product
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	if err := sess.View.RefreshProducts(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(sess.View.Products())
}

// Clients godoc
// @Summary      Listar clientes
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Param        ativos  query  bool  false  "solo clientes activos"
// @Success      200  {array}   entity.Client
// @Router       /api/clients [get]
func (h *CatalogHandler) Clients(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	list, err := sess.Backend.ListClients(c.Context(), c.QueryBool("ativos", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/infostock-dashboard/internal/application/cart"
	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/sales"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
)

// CartHandler carrinho de la sesión y finalización de venda.
type CartHandler struct {
	sales *sales.Service
}

// NewCartHandler construye el handler.
func NewCartHandler(s *sales.Service) *CartHandler {
	return &CartHandler{sales: s}
}

// Get godoc
// @Summary      Ver carrinho
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	var out dto.CartResponse
	sess.WithCart(func(ct *cart.Cart) {
		out = toCartResponse(ct)
	})
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrinho
// @Description  Suma una unidad; si el producto ya está en el carrinho incrementa su cantidad.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "produto_id"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ProductID == 0 {
		return writeError(c, domain.ErrInvalidProduct)
	}

	product, ok := sess.View.Product(in.ProductID)
	if !ok {
		// la vista puede no estar cargada todavía
		if err := sess.View.RefreshProducts(c.Context()); err != nil {
			return writeError(c, err)
		}
		if product, ok = sess.View.Product(in.ProductID); !ok {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
	}

	var out dto.CartResponse
	sess.WithCart(func(ct *cart.Cart) {
		ct.Add(product)
		out = toCartResponse(ct)
	})
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Cambiar cantidad
// @Description  Fija la cantidad exacta; cero o negativo elimina la línea.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "produto_id"
// @Param        body  body  dto.UpdateCartItemRequest  true  "quantidade"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var out dto.CartResponse
	sess.WithCart(func(ct *cart.Cart) {
		ct.UpdateQuantity(id, in.Quantity)
		out = toCartResponse(ct)
	})
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar carrinho
// @Tags         cart
// @Security     BearerAuth
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	sess.WithCart(func(ct *cart.Cart) {
		ct.Clear()
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Finalizar venda
// @Description  Crea la venda en el backend con el carrinho de la sesión y lo vacía.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "cliente_id"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res := h.sales.Checkout(c.Context(), sess, in.ClientID)
	if !res.Success {
		return writeError(c, res.Err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{Sale: res.Data, Warning: res.Warnings()})
}

func toCartResponse(ct *cart.Cart) dto.CartResponse {
	lines := ct.Lines()
	out := dto.CartResponse{Items: make([]dto.CartLineResponse, 0, len(lines)), Total: ct.Total()}
	for _, l := range lines {
		out.Items = append(out.Items, dto.CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			SKU:       l.SKU,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return out
}

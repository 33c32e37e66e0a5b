package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/stock"
)

// StockHandler ajustes y consultas de estoque.
type StockHandler struct{}

// NewStockHandler construye el handler.
func NewStockHandler() *StockHandler { return &StockHandler{} }

// In godoc
// @Summary      Entrada de estoque
// @Description  Envía la entrada al backend y recarga produtos y movimentações. Sin origem usa COMPRA_FORNECEDOR.
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockAdjustmentRequest  true  "produto_id, quantidade, origem"
// @Success      201   {object}  dto.StockAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stock/entrada [post]
func (h *StockHandler) In(c *fiber.Ctx) error {
	return h.adjust(c, (*stock.Submitter).AddStock)
}

// Out godoc
// @Summary      Saída de estoque
// @Description  Envía la salida al backend y recarga produtos y movimentações. Sin origem usa AJUSTE_INVENTARIO.
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockAdjustmentRequest  true  "produto_id, quantidade, origem"
// @Success      201   {object}  dto.StockAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stock/saida [post]
func (h *StockHandler) Out(c *fiber.Ctx) error {
	return h.adjust(c, (*stock.Submitter).RemoveStock)
}

type adjustFunc func(s *stock.Submitter, ctx context.Context, productID uint, quantity int, origin string) stock.Result

func (h *StockHandler) adjust(c *fiber.Ctx, fn adjustFunc) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	var in dto.StockAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res := fn(sess.Stock, c.Context(), in.ProductID, in.Quantity, in.Origin)
	if !res.Success {
		return writeError(c, res.Err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockAdjustmentResponse{Movement: res.Data, Warning: res.Warnings()})
}

// Movements godoc
// @Summary      Movimentações de estoque
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  entity.StockMovement
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	if err := sess.View.Refresh(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(sess.View.Movements())
}

// Low godoc
// @Summary      Estoque baixo
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Param        limite  query  int  false  "cantidad máxima (default 10)"
// @Success      200  {array}  entity.Product
// @Router       /api/stock/low [get]
func (h *StockHandler) Low(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	list, err := sess.View.LowStock(c.Context(), c.QueryInt("limite", 10))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// OutOfStock godoc
// @Summary      Produtos sem estoque
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/stock/out [get]
func (h *StockHandler) OutOfStock(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	list, err := sess.View.OutOfStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

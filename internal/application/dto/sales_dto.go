package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// CreateSaleRequest body para POST /vendas del backend.
type CreateSaleRequest struct {
	UserID   uint               `json:"usuario_id"`
	ClientID uint               `json:"cliente_id"`
	Items    []entity.OrderLine `json:"itens"`
}

// SaleResponse venta persistida tal como la devuelve el backend.
// Cliente, usuario y producto pueden venir como string, id u objeto (ver entity.Ref).
type SaleResponse struct {
	ID       uint               `json:"id"`
	SaleDate string             `json:"data_venda,omitempty"`
	Date     string             `json:"data,omitempty"`
	Client   entity.Ref         `json:"cliente"`
	User     entity.Ref         `json:"usuario"`
	Items    []SaleItemResponse `json:"itens"`
	Total    decimal.Decimal    `json:"valor_total"`
	Status   string             `json:"status"`
	Invoice  *entity.Invoice    `json:"nota_fiscal,omitempty"`
}

// When devuelve la fecha de la venta (data_venda tiene prioridad sobre data).
func (s SaleResponse) When() string {
	if s.SaleDate != "" {
		return s.SaleDate
	}
	return s.Date
}

// SaleItemResponse línea de una venta persistida.
type SaleItemResponse struct {
	ID         uint            `json:"id"`
	ProductID  uint            `json:"produto_id,omitempty"`
	Product    entity.Ref      `json:"produto"`
	ProductSKU string          `json:"produto_sku,omitempty"`
	Quantity   int             `json:"quantidade"`
	UnitPrice  decimal.Decimal `json:"preco_unitario"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// CheckoutResponse respuesta de POST /api/cart/checkout.
type CheckoutResponse struct {
	Sale    *SaleResponse `json:"venda"`
	Warning string        `json:"aviso,omitempty"`
}

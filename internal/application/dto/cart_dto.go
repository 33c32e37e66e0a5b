package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest body para POST /api/cart/items.
type AddCartItemRequest struct {
	ProductID uint `json:"produto_id"`
}

// UpdateCartItemRequest body para PATCH /api/cart/items/:id (cantidad absoluta).
type UpdateCartItemRequest struct {
	Quantity int `json:"quantidade"`
}

// CheckoutRequest body para POST /api/cart/checkout.
type CheckoutRequest struct {
	ClientID uint `json:"cliente_id"`
}

// CartLineResponse línea del carrinho en respuestas.
type CartLineResponse struct {
	ProductID uint            `json:"produto_id"`
	Name      string          `json:"nome"`
	SKU       string          `json:"sku,omitempty"`
	UnitPrice decimal.Decimal `json:"preco"`
	Quantity  int             `json:"quantidade"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse estado completo del carrinho.
type CartResponse struct {
	Items []CartLineResponse `json:"itens"`
	Total decimal.Decimal    `json:"total"`
}

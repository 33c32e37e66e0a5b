package entity

import "github.com/shopspring/decimal"

// Estados de producto en el backend.
const (
	ProductStatusActive   = "ATIVO"
	ProductStatusInactive = "INATIVO"
)

// Product es la copia local (refrescable) de un producto del catálogo.
// QuantityInStock solo cambia vía movimientos de estoque en el backend; aquí es de lectura.
type Product struct {
	ID              uint            `json:"id"`
	Name            string          `json:"nome"`
	SKU             string          `json:"sku"`
	Category        string          `json:"categoria"`
	Price           decimal.Decimal `json:"preco"`
	QuantityInStock int             `json:"quantidade_estoque"`
	Status          string          `json:"status"`
	Suppliers       []Supplier      `json:"fornecedores,omitempty"`
}

// Supplier proveedor vinculado a un producto.
type Supplier struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

// IsActive indica si el producto puede venderse.
func (p Product) IsActive() bool {
	return p.Status == "" || p.Status == ProductStatusActive
}

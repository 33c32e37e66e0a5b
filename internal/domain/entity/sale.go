package entity

// Estados de venta asignados por el backend.
const (
	SaleStatusOpen      = "ABERTA"
	SaleStatusConfirmed = "CONFIRMADA"
	SaleStatusCanceled  = "CANCELADA"
)

// OrderLine línea del pedido enviada al backend al finalizar la venta.
type OrderLine struct {
	ProductID uint `json:"produto_id"`
	Quantity  int  `json:"quantidade"`
}

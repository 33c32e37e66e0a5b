package entity

// Tipos de movimiento de estoque.
const (
	MovementTypeIn  = "ENTRADA"
	MovementTypeOut = "SAIDA"
)

// Códigos de origen (motivo) de un movimiento.
const (
	OriginSupplierPurchase    = "COMPRA_FORNECEDOR"
	OriginReturn              = "DEVOLUCAO"
	OriginInventoryAdjustment = "AJUSTE_INVENTARIO"
	OriginSale                = "VENDA"
	OriginLoss                = "PERDA"
)

var allowedOrigins = map[string][]string{
	MovementTypeIn:  {OriginSupplierPurchase, OriginReturn, OriginInventoryAdjustment},
	MovementTypeOut: {OriginSale, OriginInventoryAdjustment, OriginLoss},
}

// AllowedOrigins devuelve los orígenes válidos para el tipo; nil si el tipo no existe.
func AllowedOrigins(movementType string) []string {
	origins, ok := allowedOrigins[movementType]
	if !ok {
		return nil
	}
	return append([]string(nil), origins...)
}

// IsValidOrigin indica si origin es aceptado para movementType.
func IsValidOrigin(movementType, origin string) bool {
	for _, o := range allowedOrigins[movementType] {
		if o == origin {
			return true
		}
	}
	return false
}

// DefaultOrigin origen usado cuando el operador no elige uno.
func DefaultOrigin(movementType string) string {
	if movementType == MovementTypeIn {
		return OriginSupplierPurchase
	}
	return OriginInventoryAdjustment
}

// StockMovement registro devuelto por el backend tras una entrada o salida.
// Nunca se construye en el cliente más allá del payload del request.
// Date se guarda tal como llega: el backend la envía con o sin zona horaria.
type StockMovement struct {
	ID        uint   `json:"id"`
	Type      string `json:"tipo"`
	ProductID uint   `json:"produto_id"`
	Quantity  int    `json:"quantidade"`
	Origin    string `json:"origem"`
	Date      Text   `json:"data"`
	User      Ref    `json:"usuario"`
}

package dto

import "github.com/jhoicas/infostock-dashboard/internal/domain/entity"

// StockAdjustmentRequest body de POST /estoque/entrada y /estoque/saida
// (mismo formato en la API del dashboard y en el backend).
type StockAdjustmentRequest struct {
	ProductID uint   `json:"produto_id"`
	Quantity  int    `json:"quantidade"`
	Origin    string `json:"origem,omitempty"`
}

// StockAdjustmentResponse respuesta de POST /api/stock/entrada|saida.
// Warning trae el error de la recarga cuando el ajuste se aplicó pero la recarga falló.
type StockAdjustmentResponse struct {
	Movement *entity.StockMovement `json:"movimentacao"`
	Warning  string                `json:"aviso,omitempty"`
}

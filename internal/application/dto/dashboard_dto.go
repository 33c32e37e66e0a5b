package dto

import (
	"encoding/json"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// DashboardSummary datos del painel inicial. Estatísticas, vendas por mês y produtos
// mais vendidos se reenvían tal como los calcula el backend.
type DashboardSummary struct {
	Stats        json.RawMessage  `json:"estatisticas" swaggertype:"object"`
	SalesByMonth json.RawMessage  `json:"vendas_por_mes" swaggertype:"array,object"`
	TopProducts  json.RawMessage  `json:"produtos_mais_vendidos" swaggertype:"array,object"`
	LowStock     []entity.Product `json:"estoque_baixo"`
}

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

func TestText_UnmarshalJSON(t *testing.T) {
	cases := map[string]entity.Text{
		`"000123"`:               "000123",
		`123`:                    "123",
		`" 2024-01-15T10:30:00"`: "2024-01-15T10:30:00",
		`null`:                   "",
		`{"v": 1}`:               "",
		`false`:                  "",
	}
	for raw, want := range cases {
		var got entity.Text
		require.NoError(t, json.Unmarshal([]byte(raw), &got), raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestInvoice_NumeroYSerieNumericos(t *testing.T) {
	var inv entity.Invoice

	require.NoError(t, json.Unmarshal([]byte(`{"id": "4", "numero": 123, "serie": 1, "chave_acesso": "3524"}`), &inv))

	assert.Equal(t, entity.Invoice{ID: 4, Number: "123", Series: "1", AccessKey: "3524"}, inv)
}

func TestInvoice_FormaDesconocidaQuedaVacia(t *testing.T) {
	var rec struct {
		ID   uint            `json:"id"`
		Nota *entity.Invoice `json:"nota_fiscal"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id": 8, "nota_fiscal": "pendente"}`), &rec))

	assert.Equal(t, uint(8), rec.ID)
	require.NotNil(t, rec.Nota)
	assert.Equal(t, entity.Invoice{}, *rec.Nota)
}

func TestStockMovement_FechaSinZona(t *testing.T) {
	var mov entity.StockMovement

	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "tipo": "ENTRADA", "data": "2024-01-15T10:30:00", "usuario": "Ana"}`), &mov))

	assert.Equal(t, entity.Text("2024-01-15T10:30:00"), mov.Date)
	assert.Equal(t, "Ana", mov.User.Name)
}

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

func TestRef_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want entity.Ref
	}{
		{"string", `" Maria Oliveira "`, entity.Ref{Name: "Maria Oliveira"}},
		{"número", `7`, entity.Ref{ID: 7}},
		{"número negativo", `-3`, entity.Ref{}},
		{"número decimal", `7.5`, entity.Ref{}},
		{"objeto", `{"id": 2, "nome": "Carlos", "sku": "S-1"}`, entity.Ref{ID: 2, Name: "Carlos", SKU: "S-1"}},
		{"objeto con id string", `{"id": "7", "nome": "Ana"}`, entity.Ref{ID: 7, Name: "Ana"}},
		{"objeto con id no numérico", `{"id": "x", "nome": "Ana"}`, entity.Ref{Name: "Ana"}},
		{"objeto con nome numérico", `{"id": 1, "nome": 3}`, entity.Ref{ID: 1, Name: "3"}},
		{"objeto con campos anidados", `{"id": {"v": 1}, "nome": ["a"]}`, entity.Ref{}},
		{"objeto vacío", `{}`, entity.Ref{}},
		{"null", `null`, entity.Ref{}},
		{"booleano", `true`, entity.Ref{}},
		{"array", `[1, 2]`, entity.Ref{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r entity.Ref
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &r))
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestRef_SubObjetoCorruptoNoFallaElRegistro(t *testing.T) {
	var rec struct {
		ID      uint       `json:"id"`
		Cliente entity.Ref `json:"cliente"`
		Usuario entity.Ref `json:"usuario"`
	}

	err := json.Unmarshal([]byte(`{"id": 15, "cliente": {"id": "7", "nome": {"x": 1}}, "usuario": [true]}`), &rec)

	require.NoError(t, err)
	assert.Equal(t, uint(15), rec.ID)
	assert.Equal(t, entity.Ref{ID: 7}, rec.Cliente)
	assert.True(t, rec.Usuario.IsZero())
}

func TestRef_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(entity.Ref{ID: 2, Name: "Carlos"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 2, "nome": "Carlos"}`, string(out))

	out, err = json.Marshal(entity.Ref{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestRef_Fallbacks(t *testing.T) {
	assert.Equal(t, "N/A", entity.Ref{ID: 3}.DisplayName("N/A"))
	assert.Equal(t, "Ana", entity.Ref{Name: "Ana"}.DisplayName("N/A"))
	assert.Equal(t, "N/A", entity.Ref{}.SKUOr("N/A"))
}

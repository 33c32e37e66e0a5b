package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

type fakeSource struct {
	months, top, limit int
	topErr             error
}

func (f *fakeSource) DashboardStats(context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{"total_vendas": 12}`), nil
}

func (f *fakeSource) SalesByMonth(_ context.Context, months int) (json.RawMessage, error) {
	f.months = months
	return json.RawMessage(`[]`), nil
}

func (f *fakeSource) TopProducts(_ context.Context, limit int) (json.RawMessage, error) {
	f.top = limit
	return json.RawMessage(`[{"nome": "SSD"}]`), f.topErr
}

func (f *fakeSource) LowStock(_ context.Context, limit int) ([]entity.Product, error) {
	f.limit = limit
	return nil, nil
}

func TestGetSummary(t *testing.T) {
	src := &fakeSource{}

	out, err := NewDashboardUseCase().GetSummary(context.Background(), src)

	require.NoError(t, err)
	assert.JSONEq(t, `{"total_vendas": 12}`, string(out.Stats))
	assert.NotNil(t, out.LowStock)
	assert.Equal(t, 8, src.months)
	assert.Equal(t, 5, src.top)
	assert.Equal(t, 10, src.limit)
}

func TestGetSummary_FalloParcialFallaTodo(t *testing.T) {
	src := &fakeSource{topErr: errors.New("Erro ao buscar produtos mais vendidos")}

	out, err := NewDashboardUseCase().GetSummary(context.Background(), src)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, src.topErr)
}

package stock_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/stock"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	inCalls   []dto.StockAdjustmentRequest
	outCalls  []dto.StockAdjustmentRequest
	submitErr error

	// estado "autoritativo" que devuelven las lecturas
	products      []entity.Product
	movements     []entity.StockMovement
	productReads  int
	movementReads int
	listErr       error
}

func (f *fakeBackend) StockIn(_ context.Context, in dto.StockAdjustmentRequest) (*entity.StockMovement, error) {
	f.inCalls = append(f.inCalls, in)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &entity.StockMovement{ID: uint(len(f.inCalls)), Type: entity.MovementTypeIn, ProductID: in.ProductID, Quantity: in.Quantity, Origin: in.Origin}, nil
}

func (f *fakeBackend) StockOut(_ context.Context, in dto.StockAdjustmentRequest) (*entity.StockMovement, error) {
	f.outCalls = append(f.outCalls, in)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &entity.StockMovement{ID: uint(len(f.outCalls)), Type: entity.MovementTypeOut, ProductID: in.ProductID, Quantity: in.Quantity, Origin: in.Origin}, nil
}

func (f *fakeBackend) ListProducts(context.Context) ([]entity.Product, error) {
	f.productReads++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeBackend) ListMovements(context.Context) ([]entity.StockMovement, error) {
	f.movementReads++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.movements, nil
}

func (f *fakeBackend) LowStock(_ context.Context, limit int) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.QuantityInStock <= limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBackend) OutOfStock(ctx context.Context) ([]entity.Product, error) {
	return f.LowStock(ctx, 0)
}

type countingObserver struct {
	ok, failed int
}

func (o *countingObserver) StockSubmitted(_ string, ok bool) {
	if ok {
		o.ok++
	} else {
		o.failed++
	}
}

func newSubmitter(be *fakeBackend) (*stock.Submitter, *stock.View, *countingObserver) {
	view := stock.NewView(be)
	obs := &countingObserver{}
	return stock.NewSubmitter(be, view, obs, nil), view, obs
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAddStock_ExitosoRecargaProductosYMovimientos(t *testing.T) {
	be := &fakeBackend{
		products: []entity.Product{{ID: 7, Name: "SSD 1TB", Price: decimal.NewFromInt(450), QuantityInStock: 3}},
	}
	sub, view, obs := newSubmitter(be)

	// el backend autoritativo aplica su propia lógica: la cantidad que devuelve
	// no tiene por qué ser 3 + 10
	be.products = []entity.Product{{ID: 7, Name: "SSD 1TB", Price: decimal.NewFromInt(450), QuantityInStock: 12}}
	be.movements = []entity.StockMovement{{ID: 1, Type: entity.MovementTypeIn, ProductID: 7, Quantity: 10, Origin: entity.OriginSupplierPurchase}}

	res := sub.AddStock(context.Background(), 7, 10, entity.OriginSupplierPurchase)

	require.True(t, res.Success, res.Error)
	require.Len(t, be.inCalls, 1)
	assert.Equal(t, dto.StockAdjustmentRequest{ProductID: 7, Quantity: 10, Origin: "COMPRA_FORNECEDOR"}, be.inCalls[0])
	assert.Equal(t, 1, be.productReads, "debe recargar /produtos")
	assert.Equal(t, 1, be.movementReads, "debe recargar /estoque/movimentacoes")

	p, ok := view.Product(7)
	require.True(t, ok)
	assert.Equal(t, 12, p.QuantityInStock, "la cantidad mostrada es la que devuelve la recarga")
	assert.Len(t, view.Movements(), 1)
	assert.Equal(t, 1, obs.ok)
	assert.Empty(t, sub.LastError())
	assert.False(t, sub.Loading())
}

func TestRemoveStock_OrigenPorDefecto(t *testing.T) {
	be := &fakeBackend{}
	sub, _, _ := newSubmitter(be)

	res := sub.RemoveStock(context.Background(), 3, 1, "")

	require.True(t, res.Success)
	require.Len(t, be.outCalls, 1)
	assert.Equal(t, entity.OriginInventoryAdjustment, be.outCalls[0].Origin)
}

func TestAddStock_OrigenPorDefecto(t *testing.T) {
	be := &fakeBackend{}
	sub, _, _ := newSubmitter(be)

	sub.AddStock(context.Background(), 3, 1, "")

	require.Len(t, be.inCalls, 1)
	assert.Equal(t, entity.OriginSupplierPurchase, be.inCalls[0].Origin)
}

func TestSubmit_PrecondicionesNoLlamanAlBackend(t *testing.T) {
	cases := []struct {
		name      string
		run       func(*stock.Submitter) stock.Result
		wantError error
	}{
		{"cantidad cero", func(s *stock.Submitter) stock.Result {
			return s.AddStock(context.Background(), 1, 0, entity.OriginReturn)
		}, domain.ErrInvalidQuantity},
		{"cantidad negativa", func(s *stock.Submitter) stock.Result {
			return s.RemoveStock(context.Background(), 1, -3, entity.OriginLoss)
		}, domain.ErrInvalidQuantity},
		{"sin producto", func(s *stock.Submitter) stock.Result {
			return s.AddStock(context.Background(), 0, 1, entity.OriginReturn)
		}, domain.ErrInvalidProduct},
		{"PERDA no es origen de entrada", func(s *stock.Submitter) stock.Result {
			return s.AddStock(context.Background(), 1, 1, entity.OriginLoss)
		}, domain.ErrInvalidOrigin},
		{"DEVOLUCAO no es origen de salida", func(s *stock.Submitter) stock.Result {
			return s.RemoveStock(context.Background(), 1, 1, entity.OriginReturn)
		}, domain.ErrInvalidOrigin},
		{"origen desconocido", func(s *stock.Submitter) stock.Result {
			return s.RemoveStock(context.Background(), 1, 1, "ROUBO")
		}, domain.ErrInvalidOrigin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			be := &fakeBackend{}
			sub, _, obs := newSubmitter(be)

			res := tc.run(sub)

			assert.False(t, res.Success)
			assert.ErrorIs(t, res.Err, tc.wantError)
			assert.True(t, stock.IsPrecondition(res.Err))
			assert.Empty(t, be.inCalls)
			assert.Empty(t, be.outCalls)
			assert.Zero(t, be.productReads)
			assert.Zero(t, obs.ok+obs.failed)
			assert.Equal(t, res.Error, sub.LastError())
		})
	}
}

func TestSubmit_RechazoDelBackendSeMuestraVerbatimSinRecarga(t *testing.T) {
	be := &fakeBackend{submitErr: errors.New("Estoque insuficiente para o produto SSD 1TB")}
	sub, view, obs := newSubmitter(be)

	res := sub.RemoveStock(context.Background(), 7, 100, entity.OriginSale)

	assert.False(t, res.Success)
	assert.Equal(t, "Estoque insuficiente para o produto SSD 1TB", res.Error)
	assert.Equal(t, "Estoque insuficiente para o produto SSD 1TB", sub.LastError())
	assert.Len(t, be.outCalls, 1, "sin reintentos")
	assert.Zero(t, be.productReads, "sin recarga tras un fallo")
	assert.Empty(t, view.Products(), "la vista local no cambia")
	assert.Equal(t, 1, obs.failed)
}

func TestSubmit_DobleClickGeneraDosLlamadas(t *testing.T) {
	be := &fakeBackend{}
	sub, _, _ := newSubmitter(be)

	sub.AddStock(context.Background(), 7, 1, entity.OriginReturn)
	sub.AddStock(context.Background(), 7, 1, entity.OriginReturn)

	assert.Len(t, be.inCalls, 2, "no hay deduplicación de envíos")
}

func TestSubmit_FalloDeRecargaNoInvalidaElAjuste(t *testing.T) {
	be := &fakeBackend{listErr: errors.New("Erro ao buscar produtos")}
	sub, _, _ := newSubmitter(be)

	res := sub.AddStock(context.Background(), 7, 5, entity.OriginInventoryAdjustment)

	assert.True(t, res.Success)
	assert.NotNil(t, res.Data)
	assert.Contains(t, res.RefreshError, "Erro ao buscar produtos")
}

func TestSubmit_ExitoLimpiaUltimoError(t *testing.T) {
	be := &fakeBackend{submitErr: errors.New("boom")}
	sub, _, _ := newSubmitter(be)

	sub.AddStock(context.Background(), 7, 1, "")
	require.Equal(t, "boom", sub.LastError())

	be.submitErr = nil
	sub.AddStock(context.Background(), 7, 1, "")
	assert.Empty(t, sub.LastError())
}

func TestSubmit_RespuestaIlegibleCuentaComoExitoConAviso(t *testing.T) {
	unreadable := fmt.Errorf("%w: stock_in: json", domain.ErrUnreadableResponse)
	be := &fakeBackend{submitErr: unreadable}
	sub, _, obs := newSubmitter(be)

	res := sub.AddStock(context.Background(), 7, 5, entity.OriginSupplierPurchase)

	require.True(t, res.Success, "el backend registró el movimiento")
	assert.Nil(t, res.Data)
	assert.Equal(t, stock.UnreadableWarning, res.Warning)
	assert.Equal(t, stock.UnreadableWarning, res.Warnings())
	assert.Equal(t, 1, be.productReads, "la recarga trae el estado real")
	assert.Equal(t, 1, be.movementReads)
	assert.Equal(t, 1, obs.ok)
	assert.Empty(t, sub.LastError())
}

func TestResult_WarningsUneAvisos(t *testing.T) {
	res := stock.Result{Warning: "a", RefreshError: "b"}
	assert.Equal(t, "a; b", res.Warnings())
	assert.Equal(t, "b", stock.Result{RefreshError: "b"}.Warnings())
	assert.Empty(t, stock.Result{}.Warnings())
}

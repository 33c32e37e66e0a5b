package stock

import (
	"context"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// Gateway envía ajustes de estoque al backend (POST /estoque/entrada y /estoque/saida).
type Gateway interface {
	StockIn(ctx context.Context, in dto.StockAdjustmentRequest) (*entity.StockMovement, error)
	StockOut(ctx context.Context, in dto.StockAdjustmentRequest) (*entity.StockMovement, error)
}

// CatalogSource lecturas que alimentan la vista local de productos y movimientos.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListMovements(ctx context.Context) ([]entity.StockMovement, error)
	LowStock(ctx context.Context, limit int) ([]entity.Product, error)
	OutOfStock(ctx context.Context) ([]entity.Product, error)
}

// Refresher recarga las vistas que dependen del estoque tras un ajuste exitoso.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Observer recibe el resultado de cada envío (métricas).
type Observer interface {
	StockSubmitted(movementType string, ok bool)
}

type nopObserver struct{}

func (nopObserver) StockSubmitted(string, bool) {}

package stock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// View copia local y refrescable de productos y movimientos.
// Nunca se modifica a mano: solo Refresh la reemplaza con lo que devuelve el backend.
type View struct {
	src CatalogSource

	mu          sync.RWMutex
	products    []entity.Product
	movements   []entity.StockMovement
	refreshedAt time.Time
}

// NewView construye la vista vacía; llamar Refresh para cargarla.
func NewView(src CatalogSource) *View {
	return &View{src: src}
}

// Refresh recarga /produtos y /estoque/movimentacoes. Si alguna falla, la vista conserva
// la copia anterior completa (desactualizada pero consistente).
func (v *View) Refresh(ctx context.Context) error {
	products, err := v.src.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("stock: recargar produtos: %w", err)
	}
	movements, err := v.src.ListMovements(ctx)
	if err != nil {
		return fmt.Errorf("stock: recargar movimentações: %w", err)
	}

	v.mu.Lock()
	v.products = products
	v.movements = movements
	v.refreshedAt = time.Now()
	v.mu.Unlock()
	return nil
}

// RefreshProducts recarga solo /produtos (búsqueda del carrinho).
func (v *View) RefreshProducts(ctx context.Context) error {
	products, err := v.src.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("stock: recargar produtos: %w", err)
	}
	v.mu.Lock()
	v.products = products
	v.mu.Unlock()
	return nil
}

// Products copia de la lista de productos.
func (v *View) Products() []entity.Product {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]entity.Product(nil), v.products...)
}

// Movements copia de la lista de movimientos.
func (v *View) Movements() []entity.StockMovement {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]entity.StockMovement(nil), v.movements...)
}

// Product busca un producto en la última copia cargada.
func (v *View) Product(id uint) (entity.Product, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, p := range v.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// RefreshedAt momento de la última recarga completa (cero si nunca).
func (v *View) RefreshedAt() time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.refreshedAt
}

// LowStock productos con estoque <= limit según el backend.
func (v *View) LowStock(ctx context.Context, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	return v.src.LowStock(ctx, limit)
}

// OutOfStock productos sin estoque según el backend.
func (v *View) OutOfStock(ctx context.Context) ([]entity.Product, error) {
	return v.src.OutOfStock(ctx)
}

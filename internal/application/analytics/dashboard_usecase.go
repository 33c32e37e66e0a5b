// Package analytics arma el painel inicial del dashboard a partir de los agregados que
// calcula el backend.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/ports"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// Valores por defecto del painel.
const (
	DefaultMonths        = 8
	DefaultTopProducts   = 5
	DefaultLowStockLimit = 10
)

// Source lecturas que alimentan el painel.
type Source interface {
	ports.DashboardSource
	LowStock(ctx context.Context, limit int) ([]entity.Product, error)
}

// DashboardUseCase genera el resumen del painel.
type DashboardUseCase struct{}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase() *DashboardUseCase {
	return &DashboardUseCase{}
}

// GetSummary construye el DashboardSummary.
//
// Cuatro llamadas en paralelo:
//  1. DashboardStats             → Stats
//  2. SalesByMonth(8)            → SalesByMonth
//  3. TopProducts(5)             → TopProducts
//  4. LowStock(10)               → LowStock
//
// Si cualquiera falla, falla el painel completo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, src Source) (*dto.DashboardSummary, error) {
	type rawResult struct {
		data json.RawMessage
		err  error
	}
	type stockResult struct {
		products []entity.Product
		err      error
	}

	statsCh := make(chan rawResult, 1)
	monthCh := make(chan rawResult, 1)
	topCh := make(chan rawResult, 1)
	lowCh := make(chan stockResult, 1)

	go func() {
		data, err := src.DashboardStats(ctx)
		statsCh <- rawResult{data, err}
	}()
	go func() {
		data, err := src.SalesByMonth(ctx, DefaultMonths)
		monthCh <- rawResult{data, err}
	}()
	go func() {
		data, err := src.TopProducts(ctx, DefaultTopProducts)
		topCh <- rawResult{data, err}
	}()
	go func() {
		products, err := src.LowStock(ctx, DefaultLowStockLimit)
		lowCh <- stockResult{products, err}
	}()

	stats := <-statsCh
	month := <-monthCh
	top := <-topCh
	low := <-lowCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: estatísticas: %w", stats.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: vendas por mês: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: produtos mais vendidos: %w", top.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", low.err)
	}

	if low.products == nil {
		low.products = []entity.Product{}
	}
	return &dto.DashboardSummary{
		Stats:        stats.data,
		SalesByMonth: month.data,
		TopProducts:  top.data,
		LowStock:     low.products,
	}, nil
}

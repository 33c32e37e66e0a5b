package ports

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// SalesGateway operaciones de vendas del backend REST.
type SalesGateway interface {
	CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error)
	ListSales(ctx context.Context) ([]dto.SaleResponse, error)
	GetSale(ctx context.Context, id uint) (*dto.SaleResponse, error)
	SalesByClient(ctx context.Context, clientID uint) ([]dto.SaleResponse, error)
	SalesByPeriod(ctx context.Context, start, end string) ([]dto.SaleResponse, error)
	ConfirmSale(ctx context.Context, id uint) (*dto.SaleResponse, error)
	CancelSale(ctx context.Context, id uint) (*dto.SaleResponse, error)
}

// ClientDirectory lectura de clientes.
type ClientDirectory interface {
	ListClients(ctx context.Context, onlyActive bool) ([]entity.Client, error)
}

// InvoiceFiles archivos de notas fiscais que guarda el backend.
type InvoiceFiles interface {
	// InvoiceXML devuelve el XML firmado sin modificar.
	InvoiceXML(ctx context.Context, invoiceID uint) ([]byte, error)
}

// DashboardSource agregados que el backend calcula para el painel. La forma del JSON es
// del backend; se reenvía sin interpretar.
type DashboardSource interface {
	DashboardStats(ctx context.Context) (json.RawMessage, error)
	SalesByMonth(ctx context.Context, months int) (json.RawMessage, error)
	TopProducts(ctx context.Context, limit int) (json.RawMessage, error)
}

// Backend el contrato completo que una sesión usa contra el backend, atado a su token.
// Los métodos de estoque satisfacen stock.Gateway y stock.CatalogSource.
type Backend interface {
	SalesGateway
	ClientDirectory
	InvoiceFiles
	DashboardSource

	StockIn(ctx context.Context, in dto.StockAdjustmentRequest) (*entity.StockMovement, error)
	StockOut(ctx context.Context, in dto.StockAdjustmentRequest) (*entity.StockMovement, error)
	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListMovements(ctx context.Context) ([]entity.StockMovement, error)
	LowStock(ctx context.Context, limit int) ([]entity.Product, error)
	OutOfStock(ctx context.Context) ([]entity.Product, error)
}

// BackendFactory construye un Backend para el token de una sesión.
type BackendFactory func(token string) Backend

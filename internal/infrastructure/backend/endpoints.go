package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/ports"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// Login POST /login. No requiere token.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.BackendLoginResponse, error) {
	var out dto.BackendLoginResponse
	err := c.doJSON(ctx, "", call{
		operation: "login",
		method:    http.MethodPost,
		path:      "/login",
		body:      in,
		fallback:  "Erro ao fazer login",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// ListProducts GET /produtos.
func (a *API) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	err := a.client.doJSON(ctx, a.token, call{
		operation: "list_products",
		method:    http.MethodGet,
		path:      "/produtos",
		fallback:  "Erro ao buscar produtos",
	}, &out)
	return out, err
}

// ListClients GET /clientes (o /clientes/ativos si onlyActive).
func (a *API) ListClients(ctx context.Context, onlyActive bool) ([]entity.Client, error) {
	path := "/clientes"
	if onlyActive {
		path = "/clientes/ativos"
	}
	var out []entity.Client
	err := a.client.doJSON(ctx, a.token, call{
		operation: "list_clients",
		method:    http.MethodGet,
		path:      path,
		fallback:  "Erro ao buscar clientes",
	}, &out)
	return out, err
}

// ── Vendas ────────────────────────────────────────────────────────────────────

// CreateSale POST /vendas.
func (a *API) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	var out dto.SaleResponse
	err := a.client.doJSON(ctx, a.token, call{
		operation: "create_sale",
		method:    http.MethodPost,
		path:      "/vendas",
		body:      in,
		fallback:  "Erro ao criar venda",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSales GET /vendas.
func (a *API) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	return a.listSales(ctx, "list_sales", "/vendas", nil)
}

// SalesByClient GET /vendas/cliente/:id.
func (a *API) SalesByClient(ctx context.Context, clientID uint) ([]dto.SaleResponse, error) {
	return a.listSales(ctx, "sales_by_client", "/vendas/cliente/"+idPath(clientID), nil)
}

// SalesByPeriod GET /vendas/periodo?data_inicio=&data_fim=.
func (a *API) SalesByPeriod(ctx context.Context, start, end string) ([]dto.SaleResponse, error) {
	q := url.Values{}
	q.Set("data_inicio", start)
	q.Set("data_fim", end)
	return a.listSales(ctx, "sales_by_period", "/vendas/periodo", q)
}

func (a *API) listSales(ctx context.Context, op, path string, q url.Values) ([]dto.SaleResponse, error) {
	var out []dto.SaleResponse
	err := a.client.doJSON(ctx, a.token, call{
		operation: op,
		method:    http.MethodGet,
		path:      path,
		query:     q,
		fallback:  "Erro ao buscar vendas",
	}, &out)
	return out, err
}

// GetSale GET /vendas/:id.
func (a *API) GetSale(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	var out dto.SaleResponse
	err := a.client.doJSON(ctx, a.token, call{
		operation: "get_sale",
		method:    http.MethodGet,
		path:      "/vendas/" + idPath(id),
		fallback:  "Erro ao buscar venda",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmSale PUT /vendas/:id/confirmar.
func (a *API) ConfirmSale(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	return a.saleTransition(ctx, "confirm_sale", id, "confirmar", "Erro ao confirmar venda")
}

// CancelSale PUT /vendas/:id/cancelar.
func (a *API) CancelSale(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	return a.saleTransition(ctx, "cancel_sale", id, "cancelar", "Erro ao cancelar venda")
}

func (a *API) saleTransition(ctx context.Context, op string, id uint, action, fallback string) (*dto.SaleResponse, error) {
	var out dto.SaleResponse
	err := a.client.doJSON(ctx, a.token, call{
		operation: op,
		method:    http.MethodPut,
		path:      "/vendas/" + idPath(id) + "/" + action,
		fallback:  fallback,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Estoque ───────────────────────────────────────────────────────────────────

// StockIn POST /estoque/entrada.
func (a *API) StockIn(ctx context.Context, in dto.StockAdjustmentRequest) (*entity.StockMovement, error) {
	return a.stockMovement(ctx, "stock_in", "/estoque/entrada", in, "Erro ao adicionar estoque")
}

// StockOut POST /estoque/saida.
func (a *API) StockOut(ctx context.Context, in dto.StockAdjustmentRequest) (*entity.StockMovement, error) {
	return a.stockMovement(ctx, "stock_out", "/estoque/saida", in, "Erro ao remover estoque")
}

func (a *API) stockMovement(ctx context.Context, op, path string, in dto.StockAdjustmentRequest, fallback string) (*entity.StockMovement, error) {
	var out entity.StockMovement
	err := a.client.doJSON(ctx, a.token, call{
		operation: op,
		method:    http.MethodPost,
		path:      path,
		body:      in,
		fallback:  fallback,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMovements GET /estoque/movimentacoes.
func (a *API) ListMovements(ctx context.Context) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	err := a.client.doJSON(ctx, a.token, call{
		operation: "list_movements",
		method:    http.MethodGet,
		path:      "/estoque/movimentacoes",
		fallback:  "Erro ao buscar movimentações",
	}, &out)
	return out, err
}

// LowStock GET /estoque/estoque-baixo?limite=.
func (a *API) LowStock(ctx context.Context, limit int) ([]entity.Product, error) {
	q := url.Values{}
	q.Set("limite", strconv.Itoa(limit))
	var out []entity.Product
	err := a.client.doJSON(ctx, a.token, call{
		operation: "low_stock",
		method:    http.MethodGet,
		path:      "/estoque/estoque-baixo",
		query:     q,
		fallback:  "Erro ao buscar estoque baixo",
	}, &out)
	return out, err
}

// OutOfStock GET /estoque/sem-estoque.
func (a *API) OutOfStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	err := a.client.doJSON(ctx, a.token, call{
		operation: "out_of_stock",
		method:    http.MethodGet,
		path:      "/estoque/sem-estoque",
		fallback:  "Erro ao buscar produtos sem estoque",
	}, &out)
	return out, err
}

// ── Notas fiscais ─────────────────────────────────────────────────────────────

// InvoiceXML GET /notas-fiscais/:id/xml. Devuelve el XML firmado sin tocar.
func (a *API) InvoiceXML(ctx context.Context, invoiceID uint) ([]byte, error) {
	raw, _, err := a.client.do(ctx, a.token, call{
		operation: "invoice_xml",
		method:    http.MethodGet,
		path:      "/notas-fiscais/" + idPath(invoiceID) + "/xml",
		fallback:  "Erro ao baixar XML",
	})
	return raw, err
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardStats GET /dashboard/estatisticas.
func (a *API) DashboardStats(ctx context.Context) (json.RawMessage, error) {
	return a.raw(ctx, call{
		operation: "dashboard_stats",
		method:    http.MethodGet,
		path:      "/dashboard/estatisticas",
		fallback:  "Erro ao buscar estatísticas",
	})
}

// SalesByMonth GET /vendas/por-mes?meses=.
func (a *API) SalesByMonth(ctx context.Context, months int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("meses", strconv.Itoa(months))
	return a.raw(ctx, call{
		operation: "sales_by_month",
		method:    http.MethodGet,
		path:      "/vendas/por-mes",
		query:     q,
		fallback:  "Erro ao buscar vendas mensais",
	})
}

// TopProducts GET /vendas/produtos-mais-vendidos?limite=.
func (a *API) TopProducts(ctx context.Context, limit int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("limite", strconv.Itoa(limit))
	return a.raw(ctx, call{
		operation: "top_products",
		method:    http.MethodGet,
		path:      "/vendas/produtos-mais-vendidos",
		query:     q,
		fallback:  "Erro ao buscar produtos mais vendidos",
	})
}

// raw devuelve el cuerpo JSON sin decodificar; un cuerpo que no es JSON es 502.
func (a *API) raw(ctx context.Context, cl call) (json.RawMessage, error) {
	body, _, err := a.client.do(ctx, a.token, cl)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, &APIError{Status: http.StatusBadGateway, Operation: cl.operation, Message: cl.fallback}
	}
	return json.RawMessage(body), nil
}

func idPath(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Asegurar que API implementa ports.Backend.
var _ ports.Backend = (*API)(nil)

package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/infostock-dashboard/internal/application/analytics"
	"github.com/jhoicas/infostock-dashboard/internal/application/auth"
	"github.com/jhoicas/infostock-dashboard/internal/application/billing"
	"github.com/jhoicas/infostock-dashboard/internal/application/sales"
	"github.com/jhoicas/infostock-dashboard/internal/application/session"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	Sessions  *session.Registry
	Sales     *sales.Service
	PDF       *billing.PDFUseCase
	XML       *billing.XMLUseCase
	Dashboard *appanalytics.DashboardUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y sesión activa)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))
	managers := RequireRole(entity.ProfileAdmin, entity.ProfileManager)

	protected.Post("/auth/logout", authHandler.Logout)

	// Carrinho
	cartHandler := NewCartHandler(deps.Sales)
	protected.Get("/cart", cartHandler.Get)
	protected.Delete("/cart", cartHandler.Clear)
	protected.Post("/cart/items", cartHandler.AddItem)
	protected.Patch("/cart/items/:id", cartHandler.UpdateItem)
	protected.Post("/cart/checkout", cartHandler.Checkout)

	// Catálogo
	catalog := NewCatalogHandler()
	protected.Get("/products", catalog.Products)
	protected.Get("/clients", catalog.Clients)

	// Estoque
	stockHandler := NewStockHandler()
	protected.Post("/stock/entrada", managers, stockHandler.In)
	protected.Post("/stock/saida", managers, stockHandler.Out)
	protected.Get("/stock/movements", stockHandler.Movements)
	protected.Get("/stock/low", stockHandler.Low)
	protected.Get("/stock/out", stockHandler.OutOfStock)

	// Vendas y NF-e
	salesHandler := NewSalesHandler(deps.Sales)
	invoiceHandler := NewInvoiceHandler(deps.PDF, deps.XML)
	protected.Get("/sales", salesHandler.List)
	protected.Get("/sales/:id/nfe.pdf", invoiceHandler.PDF)
	protected.Get("/sales/:id/nfe.xml", invoiceHandler.XML)
	protected.Get("/sales/:id", salesHandler.Get)
	protected.Put("/sales/:id/confirm", managers, salesHandler.Confirm)
	protected.Put("/sales/:id/cancel", managers, salesHandler.Cancel)

	// Reportes y dashboard
	protected.Get("/reports/sales.xlsx", salesHandler.Report)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}

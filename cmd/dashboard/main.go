package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/infostock-dashboard/docs"
	appanalytics "github.com/jhoicas/infostock-dashboard/internal/application/analytics"
	"github.com/jhoicas/infostock-dashboard/internal/application/auth"
	"github.com/jhoicas/infostock-dashboard/internal/application/billing"
	"github.com/jhoicas/infostock-dashboard/internal/application/ports"
	"github.com/jhoicas/infostock-dashboard/internal/application/sales"
	"github.com/jhoicas/infostock-dashboard/internal/application/session"
	"github.com/jhoicas/infostock-dashboard/internal/infrastructure/backend"
	"github.com/jhoicas/infostock-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/infostock-dashboard/internal/infrastructure/nfexml"
	infrapdf "github.com/jhoicas/infostock-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/infostock-dashboard/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/infostock-dashboard/internal/interfaces/http"
	"github.com/jhoicas/infostock-dashboard/pkg/config"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET vacío")
	}

	m := metrics.New()
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log, m)

	// Una sesión por login; el token del backend queda dentro de la sesión.
	sessions := session.NewRegistry(func(token string) ports.Backend {
		return client.ForToken(token)
	}, cfg.Session.TTL(), m, log)

	authUC := auth.NewAuthUseCase(client, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	salesSvc := sales.NewService(m, xlsx.NewSalesReportWriter(), log)

	// NF-e: documento armado aquí, XML firmado por el backend
	assembler := billing.NewAssembler(cfg.App.Location())
	pdfUC := billing.NewPDFUseCase(assembler, infrapdf.NewMarotoDANFERenderer(), m, log)
	xmlUC := billing.NewXMLUseCase(nfexml.NewInspector(), log)
	dashboardUC := appanalytics.NewDashboardUseCase()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "InfoStock Dashboard API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": sessions.Len()})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		Sessions:  sessions,
		Sales:     salesSvc,
		PDF:       pdfUC,
		XML:       xmlUC,
		Dashboard: dashboardUC,
		JWTSecret: cfg.JWT.Secret,
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sweepSessions(ctx, sessions, log)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// sweepSessions descarta cada minuto las sesiones vencidas.
func sweepSessions(ctx context.Context, sessions *session.Registry, log *logger.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				log.Info().Int("sesiones", n).Msg("sesiones vencidas descartadas")
			}
		}
	}
}

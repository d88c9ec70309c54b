package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abdoulayediaw-ops/orsre/docs"
	appanalytics "github.com/abdoulayediaw-ops/orsre/internal/application/analytics"
	"github.com/abdoulayediaw-ops/orsre/internal/application/auth"
	"github.com/abdoulayediaw-ops/orsre/internal/application/inventory"
	"github.com/abdoulayediaw-ops/orsre/internal/application/report"
	"github.com/abdoulayediaw-ops/orsre/internal/application/state"
	"github.com/abdoulayediaw-ops/orsre/internal/application/usecase"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/ledger"
	infraai "github.com/abdoulayediaw-ops/orsre/internal/infrastructure/ai"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/geo"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/metrics"
	infrapdf "github.com/abdoulayediaw-ops/orsre/internal/infrastructure/pdf"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/snapshot"
	httpRouter "github.com/abdoulayediaw-ops/orsre/internal/interfaces/http"
	"github.com/abdoulayediaw-ops/orsre/pkg/config"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: solo válido en development")
		cfg.JWT.Secret = "orsre-dev-secret"
	}

	policy, err := ledger.ParsePolicy(cfg.Ledger.Policy)
	if err != nil {
		log.Fatal().Err(err).Msg("LEDGER_POLICY")
	}

	ctx := context.Background()
	repo, closeRepo, err := snapshot.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento del snapshot")
	}
	defer closeRepo()

	store := state.NewStore(repo, log)
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga del snapshot")
	}

	rec := metrics.New()
	engine := ledger.NewEngine(policy)

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	warehouseUC := usecase.NewWarehouseUseCase(store, log)
	userUC := usecase.NewUserUseCase(store, log)
	movementUC := inventory.NewMovementUseCase(store, rec, log)
	resolveUC := inventory.NewResolveMovementUseCase(store, engine, rec, log)
	dashboardUC := appanalytics.NewDashboardUseCase(store)

	llm := infraai.NewFromConfig(cfg.AI)
	if llm == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("sin API key del asistente IA: se usará el mensaje de respaldo")
	}
	aiUC := usecase.NewAIUseCase(store, llm, cfg.AI.Timeout, rec, log)

	// PDF: informe de stock por almacén
	reportUC := report.NewReportUseCase(store, infrapdf.NewMarotoPDFGenerator())

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:        cfg.App.Name,
		SwaggerEnabled: cfg.App.SwaggerEnabled,
		Observer:       rec,
	}, log)

	app.Get("/api/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       store,
		AuthUC:      authUC,
		WarehouseUC: warehouseUC,
		UserUC:      userUC,
		MovementUC:  movementUC,
		ResolveUC:   resolveUC,
		DashboardUC: dashboardUC,
		AIUC:        aiUC,
		ReportUC:    reportUC,
		Map:         geo.NewMapService(store),
		Metrics:     rec.Handler(),
		ServiceName: cfg.App.Name,
		JWTSecret:   cfg.JWT.Secret,
	})

	log.Info().Str("policy", string(policy)).Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

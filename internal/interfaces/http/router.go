package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/abdoulayediaw-ops/orsre/internal/application/analytics"
	"github.com/abdoulayediaw-ops/orsre/internal/application/auth"
	"github.com/abdoulayediaw-ops/orsre/internal/application/inventory"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/application/report"
	"github.com/abdoulayediaw-ops/orsre/internal/application/usecase"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       ports.SnapshotStore
	AuthUC      *auth.AuthUseCase
	WarehouseUC *usecase.WarehouseUseCase
	UserUC      *usecase.UserUseCase
	MovementUC  *inventory.MovementUseCase
	ResolveUC   *inventory.ResolveMovementUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AIUC        *usecase.AIUseCase
	ReportUC    *report.ReportUseCase
	Map         mapProvider
	Metrics     http.Handler // nil = sin /metrics
	ServiceName string
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.Store, deps.ServiceName).Check)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.AIUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/dashboard/insights", dashboardHandler.GetInsights)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	protected.Get("/warehouses", warehouseHandler.List)
	protected.Post("/warehouses", warehouseHandler.Create)
	protected.Get("/warehouses/:id", warehouseHandler.GetByID)
	protected.Delete("/warehouses/:id", adminOnly, warehouseHandler.Delete)

	mapHandler := NewMapHandler(deps.Map)
	protected.Get("/map/markers", mapHandler.Markers)
	protected.Get("/map/warehouses.kml", mapHandler.KML)

	// export.* antes de /:id para que no lo capture el parámetro
	movementHandler := NewMovementHandler(deps.MovementUC, deps.ReportUC)
	protected.Get("/movements/export.csv", movementHandler.ExportCSV)
	protected.Get("/movements/export.xlsx", movementHandler.ExportXLSX)
	protected.Get("/movements", movementHandler.List)
	protected.Post("/movements", movementHandler.Create)
	protected.Get("/movements/:id", movementHandler.GetByID)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/stock.pdf", reportHandler.StockPDF)

	// Validación y administración (solo ADMIN)
	validationHandler := NewValidationHandler(deps.MovementUC, deps.ResolveUC)
	validations := protected.Group("/validations", adminOnly)
	validations.Get("/", validationHandler.ListPending)
	validations.Post("/:id/approve", validationHandler.Approve)
	validations.Post("/:id/reject", validationHandler.Reject)

	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)
}

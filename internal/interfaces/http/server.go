package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/goccy/go-json"

	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

// ServerConfig opciones del servidor Fiber.
type ServerConfig struct {
	AppName        string
	SwaggerEnabled bool
	SwaggerFile    string // ruta al swagger.json
	Observer       HTTPObserver
}

// NewApp crea la app Fiber con recover, request id, logging y (opcional) Swagger UI.
func NewApp(cfg ServerConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el resumen IA puede tardar hasta AI_TIMEOUT_SECONDS
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(log, cfg.Observer))
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerEnabled {
		file := cfg.SwaggerFile
		if file == "" {
			file = "./docs/swagger.json"
		}
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: file,
			Path:     "docs",
			Title:    "ORSRE Stock API",
		}))
	}
	return app
}

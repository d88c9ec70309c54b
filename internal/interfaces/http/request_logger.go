package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

// HTTPObserver recibe la duración de cada request (métricas).
type HTTPObserver interface {
	ObserveHTTP(method, route, status string, seconds float64)
}

// RequestLogger registra cada request con zerolog. Usar después de requestid.New()
// para que el X-Request-ID ya esté en la respuesta.
func RequestLogger(log *logger.Logger, obs HTTPObserver) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja que el ErrorHandler escriba la respuesta antes de leer el status
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()

		route := c.Route().Path
		if obs != nil {
			obs.ObserveHTTP(c.Method(), route, strconv.Itoa(status), elapsed.Seconds())
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if err, ok := c.Locals(localError).(error); ok {
			ev = ev.Err(err)
		}
		ev.Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}

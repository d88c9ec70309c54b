package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
)

// errorStatus traduce un error de dominio a status HTTP, código y mensaje visible.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", "datos inválidos"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "login o contraseña incorrectos"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión inválida"
	case errors.Is(err, domain.ErrRootUserProtected):
		return fiber.StatusForbidden, "ROOT_USER_PROTECTED", domain.ErrRootUserProtected.Error()
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"
	case errors.Is(err, domain.ErrMovementNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "movimiento no encontrado"
	case errors.Is(err, domain.ErrWarehouseNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "almacén no encontrado"
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "usuario no encontrado"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrAlreadyResolved):
		return fiber.StatusConflict, "ALREADY_RESOLVED", "el movimiento ya fue resuelto"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK", err.Error()
	case errors.Is(err, domain.ErrStockOverflow):
		return fiber.StatusConflict, "STOCK_OVERFLOW", err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE", "el recurso ya existe"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT", err.Error()
	default:
		return fiber.StatusInternalServerError, "INTERNAL", "error interno"
	}
}

// writeError responde con dto.ErrorResponse; VALIDATION incluye los errores por campo.
func writeError(c *fiber.Ctx, err error) error {
	status, code, msg := errorStatus(err)
	resp := dto.ErrorResponse{Code: code, Message: msg}
	if code == "VALIDATION" {
		resp.Details = dto.FieldErrors(err)
	}
	if status == fiber.StatusInternalServerError {
		// el detalle queda en el log del request, no en la respuesta
		c.Locals(localError, err)
	}
	return c.Status(status).JSON(resp)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler para fiber.Config: errores no capturados por los handlers (404 de ruta, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "INTERNAL"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusBadRequest:
			code = "BAD_REQUEST"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	c.Locals(localError, err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

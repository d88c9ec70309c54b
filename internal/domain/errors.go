package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrMovementNotFound   = errors.New("movimiento no encontrado")
	ErrWarehouseNotFound  = errors.New("almacén no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyResolved    = errors.New("el movimiento ya fue resuelto")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStockOverflow      = errors.New("el stock resultante excede la capacidad representable")
	ErrRootUserProtected  = errors.New("la cuenta de administrador raíz no puede eliminarse")
)

package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnauthenticated    = errors.New("sesión no autenticada")
	ErrAuth               = errors.New("fallo al consultar identidad o rol")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrRemoteWrite        = errors.New("escritura remota rechazada")
)

// InsufficientStockError indica que el stock re-leído no alcanza para la cantidad
// solicitada. Available lleva la disponibilidad real para que el caller refresque
// su vista del producto.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente (disponible: %d)", e.Available)
}

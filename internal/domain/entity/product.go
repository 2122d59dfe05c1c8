package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock nunca puede ser negativo: el decremento se hace con un update
// condicional (stock >= cantidad) dentro de una transacción.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio unitario de venta (>= 0)
	Stock       int             // unidades disponibles (>= 0)
	Category    string
	ImageURL    string // URL pública en el object storage de la plataforma
	CreatedAt   time.Time
}

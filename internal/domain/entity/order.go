package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una compra de un usuario. Se crea únicamente desde el
// flujo de compra y nunca se modifica ni se elimina.
// TotalPrice = precio unitario del producto al momento de la compra × Quantity;
// no se recalcula después.
type Order struct {
	ID         string
	UserID     string
	ProductID  string
	Quantity   int // > 0
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// OrderWithProduct es una orden con los campos del producto que necesita el
// historial de compras (lectura con join; el producto puede haber cambiado
// de precio, por eso TotalPrice vive en la orden).
type OrderWithProduct struct {
	Order
	ProductName     string
	ProductPrice    decimal.Decimal
	ProductImageURL string
}

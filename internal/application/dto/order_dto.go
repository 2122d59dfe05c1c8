package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest intención de compra: producto + cantidad deseada.
type PlaceOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse resultado de una compra exitosa. El caller debe navegar al
// historial de compras al recibirla.
type OrderResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderProduct campos del producto que acompañan cada ítem del historial.
type OrderProduct struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
}

// OrderHistoryItem ítem del historial de compras (orden + producto unido).
type OrderHistoryItem struct {
	ID         string          `json:"id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	Product    OrderProduct    `json:"product"`
}

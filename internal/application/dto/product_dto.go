package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductInput entrada del alta de producto (multipart: campos + imagen).
// Price y Stock llegan como texto de formulario; el handler los parsea y
// responde VALIDATION si no son numéricos.
type CreateProductInput struct {
	Name             string
	Description      string
	Price            decimal.Decimal
	Stock            int
	Category         string
	ImageData        []byte
	ImageContentType string
	ImageExt         string // extensión del archivo original, ej. ".jpg"
}

// ProductResponse representación JSON de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

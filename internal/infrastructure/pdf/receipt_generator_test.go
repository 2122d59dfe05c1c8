package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/pdf"
)

func testOrder() *entity.Order {
	return &entity.Order{
		ID:         "11111111-1111-1111-1111-111111111111",
		UserID:     "u1",
		ProductID:  "p1",
		Quantity:   2,
		TotalPrice: decimal.NewFromInt(50000),
		CreatedAt:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func testUser() *entity.User {
	return &entity.User{ID: "u1", Email: "cliente@test.local", Name: "Cliente Test"}
}

func TestGenerateReceiptPDF_ProduceDocumento(t *testing.T) {
	gen := pdf.NewMarotoReceiptGenerator("Tienda Test")
	product := &entity.Product{ID: "p1", Name: "Café de origen 500g", Price: decimal.NewFromInt(25000)}

	out, err := gen.GenerateReceiptPDF(context.Background(), testOrder(), product, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "el resultado debe ser un PDF válido")
}

// El comprobante debe poder generarse aunque el producto ya no exista en el
// catálogo (fue eliminado después de la compra).
func TestGenerateReceiptPDF_ProductoEliminado(t *testing.T) {
	gen := pdf.NewMarotoReceiptGenerator("Tienda Test")

	out, err := gen.GenerateReceiptPDF(context.Background(), testOrder(), nil, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

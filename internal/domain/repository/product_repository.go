package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// Las lecturas devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List lista productos más recientes primero; category vacío = sin filtro.
	List(category string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
	// DecrementStock resta quantity del stock solo si stock >= quantity
	// (update condicional atómico). Devuelve false si no afectó filas:
	// producto inexistente o stock insuficiente; el caller decide cuál
	// re-leyendo el producto.
	DecrementStock(id string, quantity int) (bool, error)
}

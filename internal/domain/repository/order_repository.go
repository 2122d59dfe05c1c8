package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes (insert-only).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// ListByUser devuelve el historial de compras del usuario con los campos
	// del producto unidos, más recientes primero.
	ListByUser(userID string) ([]*entity.OrderWithProduct, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden nueva. Las órdenes nunca se actualizan ni se eliminan.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, product_id, quantity, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.ProductID, order.Quantity, order.TotalPrice, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, product_id, quantity, total_price, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.TotalPrice, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByUser devuelve el historial del usuario con los campos del producto
// unidos, más recientes primero. LEFT JOIN: la orden sobrevive aunque el
// producto haya sido eliminado del catálogo.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.OrderWithProduct, error) {
	query := `
		SELECT o.id, o.user_id, o.product_id, o.quantity, o.total_price, o.created_at,
		       COALESCE(p.name, ''), COALESCE(p.price, 0), COALESCE(p.image_url, '')
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderWithProduct
	for rows.Next() {
		var o entity.OrderWithProduct
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.TotalPrice, &o.CreatedAt,
			&o.ProductName, &o.ProductPrice, &o.ProductImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

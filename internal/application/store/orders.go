package store

import (
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// OrdersUseCase historial de compras por usuario.
type OrdersUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrdersUseCase construye el caso de uso.
func NewOrdersUseCase(orderRepo repository.OrderRepository) *OrdersUseCase {
	return &OrdersUseCase{orderRepo: orderRepo}
}

// ListUserOrders devuelve el historial del usuario con los campos del
// producto unidos, más recientes primero.
func (uc *OrdersUseCase) ListUserOrders(userID string) ([]dto.OrderHistoryItem, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	orders, err := uc.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderHistoryItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.OrderHistoryItem{
			ID:         o.ID,
			Quantity:   o.Quantity,
			TotalPrice: o.TotalPrice,
			CreatedAt:  o.CreatedAt,
			Product: dto.OrderProduct{
				Name:     o.ProductName,
				Price:    o.ProductPrice,
				ImageURL: o.ProductImageURL,
			},
		})
	}
	return items, nil
}

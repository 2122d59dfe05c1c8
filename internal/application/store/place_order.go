package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PlaceOrderUseCase convierte la intención de compra (producto + cantidad) en
// un decremento durable de inventario y una orden durable, sin sobreventa.
//
// El decremento es un update condicional (stock >= cantidad) que corre en la
// misma transacción que el insert de la orden: dos compras concurrentes del
// mismo producto no pueden pasar ambas la verificación, y el stock nunca
// queda decrementado sin orden correspondiente.
type PlaceOrderUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{txRunner: txRunner, productRepo: productRepo}
}

// PlaceOrder ejecuta el flujo de compra:
//
//  1. Re-lee el producto (el valor que vio el usuario puede estar viejo);
//     si no existe, ErrNotFound. El precio unitario sale de este snapshot.
//  2. En una transacción: decremento condicional del stock; cero filas
//     afectadas aborta y se distingue entre producto eliminado
//     (ErrNotFound) y stock insuficiente (InsufficientStockError con la
//     disponibilidad re-leída, para que el caller refresque su vista).
//  3. En la misma transacción: insert de la orden con
//     total = precio unitario × cantidad.
//
// Sin reintentos: cualquier error aborta la operación completa.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, userID string, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	order := &entity.Order{
		ID:         uuid.New().String(),
		UserID:     userID,
		ProductID:  product.ID,
		Quantity:   in.Quantity,
		TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		CreatedAt:  time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		ok, err := productRepo.DecrementStock(product.ID, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			current, err := productRepo.GetByID(product.ID)
			if err != nil {
				return err
			}
			if current == nil {
				return domain.ErrNotFound
			}
			return &domain.InsufficientStockError{Available: current.Stock}
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.Is(err, domain.ErrNotFound) || errors.As(err, &insufficient) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteWrite, err)
	}

	return &dto.OrderResponse{
		ID:         order.ID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}, nil
}

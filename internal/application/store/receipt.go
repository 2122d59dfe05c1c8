package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante de compra (PDF) de una orden.
// Solo el dueño de la orden puede descargarlo.
type ReceiptUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// DownloadReceipt carga orden, producto y usuario, verifica propiedad y
// genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la orden no existe.
//   - domain.ErrForbidden        si la orden no pertenece al usuario.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, userID, orderID string) (pdfBytes []byte, filename string, err error) {
	if userID == "" {
		return nil, "", domain.ErrUnauthenticated
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, "", domain.ErrForbidden
	}

	product, err := uc.productRepo.GetByID(order.ProductID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener producto: %w", err)
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener usuario: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	pdf, err := uc.generator.GenerateReceiptPDF(ctx, order, product, user)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("comprobante-%s.pdf", order.ID), nil
}

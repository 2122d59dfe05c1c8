package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CatalogUseCase lecturas del catálogo y CRUD de administración.
// El alta sube la imagen al bucket product-images antes del insert; la baja
// elimina fila e imagen referenciada.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	storage     ObjectStorage
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository, storage ObjectStorage) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, storage: storage}
}

// List lista productos más recientes primero; category vacío = todo el catálogo.
func (uc *CatalogUseCase) List(category string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID obtiene un producto por ID (página de detalle/compra).
func (uc *CatalogUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create valida el formulario, sube la imagen al bucket bajo un nombre
// aleatorio y persiste el producto con la URL pública devuelta.
// Si el insert falla después de subir, la imagen se elimina (best-effort)
// para no dejar objetos huérfanos.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CreateProductInput) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Description == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.ImageData) == 0 {
		return nil, domain.ErrInvalidInput
	}

	objectName := uuid.New().String() + in.ImageExt
	imageURL, err := uc.storage.Upload(ctx, objectName, in.ImageContentType, in.ImageData)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		if rmErr := uc.storage.Remove(ctx, objectName); rmErr != nil {
			log.Warn().Err(rmErr).Str("object", objectName).Msg("no se pudo limpiar la imagen tras fallo del insert")
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto y, si tiene imagen referenciada, el objeto del
// bucket. La fila es lo autoritativo: un fallo al borrar el objeto se
// registra y no se propaga.
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return err
	}
	if product.ImageURL != "" {
		objectName := objectNameFromURL(product.ImageURL)
		if objectName != "" {
			if err := uc.storage.Remove(ctx, objectName); err != nil {
				log.Warn().Err(err).Str("object", objectName).Str("product_id", id).
					Msg("producto eliminado pero la imagen quedó en el bucket")
			}
		}
	}
	return nil
}

// objectNameFromURL extrae el nombre del objeto (último segmento del path)
// de la URL pública guardada en el producto.
func objectNameFromURL(imageURL string) string {
	idx := strings.LastIndex(imageURL, "/")
	if idx < 0 || idx == len(imageURL)-1 {
		return ""
	}
	return imageURL[idx+1:]
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

package catalog

import "context"

// ObjectStorage puerto de salida hacia el object storage de la plataforma
// (bucket de imágenes de producto). La implementación concreta usa la API
// HTTP del storage; para tests se inyecta un fake.
type ObjectStorage interface {
	// Upload sube el objeto y devuelve su URL pública.
	Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error)
	// Remove elimina el objeto del bucket.
	Remove(ctx context.Context, objectName string) error
}

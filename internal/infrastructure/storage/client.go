// Package storage implementa el cliente HTTP del object storage de la
// plataforma (bucket de imágenes de producto).
//
// La API es la del storage hospedado:
//
//	POST   {url}/storage/v1/object/{bucket}/{object}         sube el objeto
//	DELETE {url}/storage/v1/object/{bucket}/{object}         lo elimina
//	GET    {url}/storage/v1/object/public/{bucket}/{object}  URL pública
//
// Usa net/http de la stdlib; no requiere librerías de terceros.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/pkg/config"
)

var _ catalog.ObjectStorage = (*Client)(nil)

// Client cliente del bucket de imágenes.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// NewClient construye el cliente con un timeout de 30 s (las subidas de
// imagen pueden tardar).
func NewClient(cfg config.StorageConfig) *Client {
	return &Client{
		baseURL:    cfg.URL,
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sube el objeto al bucket y devuelve su URL pública.
func (c *Client) Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectURL(objectName), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: subir objeto: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage: subir objeto: status %d: %s", resp.StatusCode, body)
	}
	return c.PublicURL(objectName), nil
}

// Remove elimina el objeto del bucket.
func (c *Client) Remove(ctx context.Context, objectName string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(objectName), nil)
	if err != nil {
		return fmt.Errorf("storage: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage: eliminar objeto: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage: eliminar objeto: status %d: %s", resp.StatusCode, body)
	}
	return nil
}

// PublicURL devuelve la URL pública de lectura del objeto.
func (c *Client) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, url.PathEscape(objectName))
}

func (c *Client) objectURL(objectName string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, url.PathEscape(objectName))
}

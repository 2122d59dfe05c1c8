package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/application/store"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CatalogUC    *catalog.CatalogUseCase
	PlaceOrderUC *store.PlaceOrderUseCase
	OrdersUC     *store.OrdersUseCase
	ReceiptUC    *store.ReceiptUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Products: lectura pública, escritura solo admin
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Orders (protegido, requiere sesión)
	orders := api.Group("/orders", AuthMiddleware(deps.JWTSecret))
	orderHandler := NewOrderHandler(deps.PlaceOrderUC, deps.OrdersUC, deps.ReceiptUC)
	orders.Post("/", orderHandler.Place)
	orders.Get("/", orderHandler.History)
	orders.Get("/:id/receipt", orderHandler.Receipt)
}

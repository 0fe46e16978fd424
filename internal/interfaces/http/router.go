package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/manufacturing"
	"github.com/tu-usuario/almacen-api/internal/application/orders"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CatalogUC   *usecase.CatalogUseCase
	WarehouseUC *usecase.WarehouseUseCase
	CostumerUC  *usecase.CostumerUseCase
	ReportUC    *usecase.ReportUseCase
	StockUC     *stock.UseCase
	OrdersUC    *orders.UseCase
	ManufUC     *manufacturing.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authGroup2 := protected.Group("/auth")
	authGroup2.Get("/me", authHandler.Me)
	authGroup2.Get("/users", RequireRole(entity.RoleAdmin, entity.RoleBoss), authHandler.ListUsers)

	// Catálogo: escritura solo admin/boss, lectura para cualquier empleado
	manage := RequireRole(entity.RoleAdmin, entity.RoleBoss)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	productHandler := NewProductHandler(deps.ProductUC)

	products := protected.Group("/products")
	products.Post("/", manage, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", manage, productHandler.Update)
	products.Delete("/:id", manage, productHandler.Delete)

	categories := protected.Group("/categories")
	categories.Post("/", manage, catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:id/products", productHandler.ListByCategory)

	units := protected.Group("/units")
	units.Post("/", manage, catalogHandler.CreateUnit)
	units.Get("/", catalogHandler.ListUnits)

	resources := protected.Group("/resources")
	resources.Post("/", manage, catalogHandler.CreateResource)
	resources.Get("/", catalogHandler.ListResources)

	equipment := protected.Group("/equipment")
	equipment.Post("/", manage, catalogHandler.CreateEquipment)
	equipment.Get("/", catalogHandler.ListEquipment)

	recipes := protected.Group("/recipes")
	recipes.Post("/", manage, catalogHandler.CreateRecipe)
	recipes.Get("/:id", catalogHandler.ListRecipe)

	// Bodegas
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", manage, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id/products", warehouseHandler.ListProducts)

	// Libro de stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/locations", stockHandler.AddLocation)
	stockGroup.Get("/locations", stockHandler.ListLocations)
	stockGroup.Post("/transfer", stockHandler.Transfer)
	stockGroup.Get("/history", stockHandler.History)

	// Clientes
	costumers := protected.Group("/costumers")
	costumerHandler := NewCostumerHandler(deps.CostumerUC)
	costumers.Post("/", costumerHandler.Create)
	costumers.Get("/", costumerHandler.List)
	costumers.Get("/:id", costumerHandler.GetByID)

	// Órdenes de venta
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrdersUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Post("/:id/confirm", orderHandler.Confirm)
	ordersGroup.Get("/costumer/:id", orderHandler.ListByCostumer)

	// Procesos de fabricación
	composites := protected.Group("/composites")
	compositeHandler := NewCompositeHandler(deps.ManufUC)
	composites.Post("/", compositeHandler.Start)
	composites.Get("/", compositeHandler.ListRunning)
	composites.Get("/:id", compositeHandler.GetByID)
	composites.Post("/:id/end", compositeHandler.End)

	// Reportes (solo admin/boss)
	reports := protected.Group("/report", manage)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/all", reportHandler.All)
	reports.Get("/all/pdf", reportHandler.AllPDF)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/manufacturing"
	"github.com/tu-usuario/almacen-api/internal/application/orders"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
	"github.com/tu-usuario/almacen-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (operaciones fuera de transacción)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	costumerRepo := postgres.NewCostumerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	locRepo := postgres.NewProductLocationRepository(pool)
	histRepo := postgres.NewProductHistoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	compositeRepo := postgres.NewCompositeRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, unitRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, unitRepo, resourceRepo, equipmentRepo, recipeRepo, productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, locRepo)
	costumerUC := usecase.NewCostumerUseCase(costumerRepo)
	stockUC := stock.NewUseCase(txRunner, locRepo, histRepo, productRepo, warehouseRepo)
	ordersUC := orders.NewUseCase(txRunner, orderRepo, locRepo, productRepo, costumerRepo)
	manufUC := manufacturing.NewUseCase(txRunner, compositeRepo, userRepo, equipmentRepo, resourceRepo, productRepo)
	authUC := auth.NewUseCase(userRepo, warehouseRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(reportRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	apiMetrics := metrics.New()
	app.Use(apiMetrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Swagger UI en local: http://localhost:<port>/docs. El JSON se genera con
	// `swag init` a partir de las anotaciones de los handlers; si no está
	// presente la API arranca sin el UI.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Almacén API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CatalogUC:   catalogUC,
		WarehouseUC: warehouseUC,
		CostumerUC:  costumerUC,
		ReportUC:    reportUC,
		StockUC:     stockUC,
		OrdersUC:    ordersUC,
		ManufUC:     manufUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

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

	_ "github.com/jhoicas/gestion-carnes/docs"
	appanalytics "github.com/jhoicas/gestion-carnes/internal/application/analytics"
	"github.com/jhoicas/gestion-carnes/internal/application/distribution"
	"github.com/jhoicas/gestion-carnes/internal/application/inventory"
	"github.com/jhoicas/gestion-carnes/internal/application/reports"
	"github.com/jhoicas/gestion-carnes/internal/application/usecase"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/lock"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gestion-carnes/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/gestion-carnes/internal/interfaces/http"
	"github.com/jhoicas/gestion-carnes/pkg/config"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

// @title        Gestión de Carnes API
// @version      1.0
// @description  Inventario por lotes con costo FIFO, costo promedio ponderado y reparto de ganancias.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		repos     repository.Repositories
		analytics repository.AnalyticsRepository
		txRunner  inventory.TxRunner
	)
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		repos = repository.Repositories{
			Products:      store.Products(),
			Lots:          store.Lots(),
			Sales:         store.Sales(),
			Expenses:      store.Expenses(),
			Distributions: store.Distributions(),
		}
		analytics = store.Analytics()
		txRunner = store
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		repos = repository.Repositories{
			Products:      postgres.NewProductRepository(pool),
			Lots:          postgres.NewLotRepository(pool),
			Sales:         postgres.NewSaleRepository(pool),
			Expenses:      postgres.NewExpenseRepository(pool),
			Distributions: postgres.NewDistributionRepository(pool),
		}
		analytics = postgres.NewAnalyticsRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	// Lock por producto: Redis si está configurado (varias instancias), si no en proceso.
	var locker inventory.Locker = lock.NewKeyedMutex()
	if cfg.Redis.Enabled() {
		rdb, err := lock.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
		locker = lock.NewRedisLocker(rdb, lock.RedisOptions{
			TTL:     cfg.Lock.TTL,
			Retries: cfg.Lock.RetryCount,
		}, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("lock distribuido con Redis")
	}

	productUC := usecase.NewProductUseCase(repos.Products)
	purchaseUC := inventory.NewPurchaseUseCase(repos.Products, repos.Lots, log)
	saleUC := inventory.NewSaleUseCase(txRunner, locker, repos.Sales, log)
	stockUC := inventory.NewStockUseCase(repos.Products, repos.Lots)
	expenseUC := usecase.NewExpenseUseCase(repos.Expenses)
	dashboardUC := appanalytics.NewDashboardUseCase(analytics)
	marginsUC := appanalytics.NewMarginsUseCase(analytics)
	distributionUC := distribution.NewUseCase(
		repos.Distributions, repos.Products, repos.Lots, repos.Sales,
		cfg.Business.DefaultPartnerShare, log,
	)
	catalogUC := usecase.NewCatalogUseCase(repos.Products, repos.Lots, cfg.Business.Name)
	reportsUC := reports.NewUseCase(
		repos.Sales, repos.Distributions,
		infrapdf.NewMarotoSettlementGenerator(), xlsx.NewExporter(),
		reports.Names{
			Business: cfg.Business.Name,
			Partner:  cfg.Business.PartnerName,
			Supplier: cfg.Business.SupplierName,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión de Carnes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		PurchaseUC:     purchaseUC,
		SaleUC:         saleUC,
		StockUC:        stockUC,
		ExpenseUC:      expenseUC,
		DashboardUC:    dashboardUC,
		MarginsUC:      marginsUC,
		DistributionUC: distributionUC,
		CatalogUC:      catalogUC,
		ReportsUC:      reportsUC,
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

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

	"github.com/jhoicas/Licorstock-api/internal/application/audit"
	appcatalog "github.com/jhoicas/Licorstock-api/internal/application/catalog"
	"github.com/jhoicas/Licorstock-api/internal/application/movements"
	"github.com/jhoicas/Licorstock-api/internal/application/sales"
	"github.com/jhoicas/Licorstock-api/internal/application/stock"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
	"github.com/jhoicas/Licorstock-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Licorstock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Licorstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Licorstock-api/internal/interfaces/http"
	"github.com/jhoicas/Licorstock-api/pkg/config"
	"github.com/jhoicas/Licorstock-api/pkg/logger"
)

// repos agrupa los cinco puertos de persistencia ya resueltos por driver.
type repos struct {
	catalog  repository.CatalogRepository
	recipe   repository.RecipeRepository
	movement repository.MovementRepository
	audit    repository.AuditRepository
	snapshot repository.SnapshotRepository
}

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case "memory":
		store := memory.NewStore()
		r = repos{
			catalog:  store,
			recipe:   memory.RecipeView{Store: store},
			movement: store,
			audit:    store,
			snapshot: memory.SnapshotView{Store: store},
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			catalog:  postgres.NewCatalogRepository(pool),
			recipe:   postgres.NewRecipeRepository(pool),
			movement: postgres.NewMovementRepository(pool),
			audit:    postgres.NewAuditRepository(pool),
			snapshot: postgres.NewSnapshotRepository(pool),
		}
	}

	reportGen := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	catalogUC := appcatalog.NewUseCase(r.catalog, r.recipe)
	salesUC := sales.NewProcessSalesUseCase(r.catalog, r.recipe, r.movement, sales.NewSubcategoryPolicy())
	movementsUC := movements.NewUseCase(r.catalog, r.movement)
	stockUC := stock.NewProjectUseCase(r.catalog, r.movement, r.snapshot, reportGen, cfg.Stock.LowThresholdMl)
	auditUC := audit.NewUseCase(r.catalog, r.movement, r.audit, r.snapshot, reportGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Licorstock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		SalesUC:     salesUC,
		MovementsUC: movementsUC,
		StockUC:     stockUC,
		AuditUC:     auditUC,
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

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Licorstock-api/internal/application/audit"
	"github.com/jhoicas/Licorstock-api/internal/application/catalog"
	"github.com/jhoicas/Licorstock-api/internal/application/movements"
	"github.com/jhoicas/Licorstock-api/internal/application/sales"
	"github.com/jhoicas/Licorstock-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.UseCase
	SalesUC     *sales.ProcessSalesUseCase
	MovementsUC *movements.UseCase
	StockUC     *stock.ProjectUseCase
	AuditUC     *audit.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo y recetas (solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog", catalogHandler.GetCatalog)
	api.Get("/catalog/template", catalogHandler.GetTemplate)
	api.Get("/recipes", catalogHandler.GetRecipes)

	// Ventas
	salesHandler := NewSalesHandler(deps.SalesUC)
	api.Post("/sales/process", salesHandler.Process)

	// Libro de movimientos
	movGroup := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementsUC)
	movGroup.Post("/entries", movementHandler.RegisterEntries)
	movGroup.Post("/transfers", movementHandler.RegisterTransfers)
	movGroup.Get("/history", movementHandler.History)

	// Stock proyectado
	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/stock", stockHandler.Project)
	api.Get("/stock/pdf", stockHandler.PDF)

	// Auditorías
	auditGroup := api.Group("/audits")
	auditHandler := NewAuditHandler(deps.AuditUC)
	auditGroup.Post("/opening", auditHandler.RegisterOpening)
	auditGroup.Post("/closing", auditHandler.RegisterClosing)
	auditGroup.Post("/:date/confirm", auditHandler.Confirm)
	auditGroup.Get("/:date", auditHandler.Get)
	auditGroup.Get("/:date/opening/pdf", auditHandler.OpeningPDF)
	auditGroup.Get("/:date/closing/pdf", auditHandler.ClosingPDF)
}

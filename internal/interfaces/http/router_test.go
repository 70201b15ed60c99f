package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licorstock-api/internal/application/audit"
	appcatalog "github.com/jhoicas/Licorstock-api/internal/application/catalog"
	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/application/movements"
	"github.com/jhoicas/Licorstock-api/internal/application/sales"
	"github.com/jhoicas/Licorstock-api/internal/application/stock"
	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/infrastructure/memory"
	ifhttp "github.com/jhoicas/Licorstock-api/internal/interfaces/http"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newApp() *fiber.App {
	store := memory.NewStore()
	store.SeedCatalog([]catalog.RawRecord{
		{Name: "Vodka 750", Subcategory: "Vodkas", SaleType: "BOT", BaseUnit: "ml", UnitCapacity: dec(750)},
		{Name: "Mojito", Subcategory: "Cocteles", SaleType: "CTL"},
	})
	store.SeedRecipes([]entity.RecipeLine{
		{Product: "Mojito", Ingredient: "Vodka 750", QuantityPerUnit: decimal.NewFromInt(50), Unit: "ml"},
	})

	recipes := memory.RecipeView{Store: store}
	snapshots := memory.SnapshotView{Store: store}
	app := fiber.New()
	ifhttp.Router(app, ifhttp.RouterDeps{
		CatalogUC:   appcatalog.NewUseCase(store, recipes),
		SalesUC:     sales.NewProcessSalesUseCase(store, recipes, store, sales.NewSubcategoryPolicy()),
		MovementsUC: movements.NewUseCase(store, store),
		StockUC:     stock.NewProjectUseCase(store, store, snapshots, nil, 1000),
		AuditUC:     audit.NewUseCase(store, store, store, snapshots, nil),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestProcessSales_Endpoint(t *testing.T) {
	app := newApp()

	status, body := postJSON(t, app, "/api/sales/process", dto.ProcessSalesRequest{
		Date: "2026-03-10",
		Rows: []dto.SaleRow{{Item: "Mojito", Quantity: dec(2)}},
	})

	assert.Equal(t, fiber.StatusOK, status)
	var out dto.ProcessSalesResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 1, out.Inserted)
	require.Len(t, out.Consumption, 1)
	assert.Equal(t, "Vodka 750", out.Consumption[0].Ingredient)
}

func TestProcessSales_FechaInvalida(t *testing.T) {
	app := newApp()

	status, body := postJSON(t, app, "/api/sales/process", dto.ProcessSalesRequest{
		Date: "10/03/2026",
		Rows: []dto.SaleRow{{Item: "Mojito"}},
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestRegisterOpening_EsquemaIncompletoDevuelve422(t *testing.T) {
	app := newApp()

	status, body := postJSON(t, app, "/api/audits/opening", dto.AuditRequest{
		Date: "2026-03-10",
		Rows: []dto.AuditCountRow{{Item: "Vodka 750"}}, // sin count ni location
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "SCHEMA", out.Code)
	assert.ElementsMatch(t, []string{"count", "location"}, out.Missing)
}

func TestAuditCycle_Endpoints(t *testing.T) {
	app := newApp()
	req := dto.AuditRequest{
		Date:     "2026-03-10",
		Location: entity.LocationBar,
		Rows:     []dto.AuditCountRow{{Item: "Vodka 750", Count: dec(5)}},
	}

	status, _ := postJSON(t, app, "/api/audits/opening", req)
	assert.Equal(t, fiber.StatusCreated, status)

	req.Rows[0].Count = dec(4)
	status, _ = postJSON(t, app, "/api/audits/closing", req)
	assert.Equal(t, fiber.StatusCreated, status)

	status, _ = postJSON(t, app, "/api/audits/2026-03-10/confirm", nil)
	assert.Equal(t, fiber.StatusOK, status)

	// Confirmada es terminal: reconfirmar es conflicto.
	status, body := postJSON(t, app, "/api/audits/2026-03-10/confirm", nil)
	assert.Equal(t, fiber.StatusConflict, status)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "CONFLICT", out.Code)
}

func TestGetAudit_FechaSinAuditoria(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/audits/2026-01-01", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetCatalog_Endpoint(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/catalog", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.CatalogResponse
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Items, 2)
}

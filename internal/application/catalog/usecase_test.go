package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/Licorstock-api/internal/application/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/infrastructure/memory"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func seededStore() *memory.Store {
	store := memory.NewStore()
	store.SeedCatalog([]catalog.RawRecord{
		{Name: "Vodka 750", Subcategory: "Vodkas", SaleType: "BOT", BaseUnit: "ml", UnitCapacity: dec(750)},
		{Name: "Ron Blanco", Subcategory: "Rones", SaleType: "TRG", BaseUnit: "ml", DoseQuantity: dec(50)},
		{Name: "Mojito", Subcategory: "Cocteles", SaleType: "CTL"},
	})
	store.SeedRecipes([]entity.RecipeLine{
		{Product: "Mojito", Ingredient: "Ron Blanco", QuantityPerUnit: decimal.NewFromInt(50), Unit: "ml"},
	})
	return store
}

func newUseCase(store *memory.Store) *appcatalog.UseCase {
	return appcatalog.NewUseCase(store, memory.RecipeView{Store: store})
}

func TestGetCatalog_NormalizaYReportaAdvertencias(t *testing.T) {
	store := memory.NewStore()
	store.SeedCatalog([]catalog.RawRecord{
		{Name: "Vodka 750", SaleType: "BOT", BaseUnit: "ml", UnitCapacity: dec(750)},
		{Name: "Botella Coja", SaleType: "BOT"}, // sin volumen
	})
	uc := newUseCase(store)

	resp, err := uc.GetCatalog(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Items, 2, "la fila incompleta se conserva, solo advierte")
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, domain.WarnMissingFactor, resp.Warnings[0].Code)
}

func TestGetRecipes_ResuelveElLibro(t *testing.T) {
	uc := newUseCase(seededStore())

	resp, err := uc.GetRecipes(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Mojito", resp.Lines[0].Product)
	assert.Equal(t, "Ron Blanco", resp.Lines[0].Ingredient)
}

func TestTemplate_UnaFilaPorItemYUbicacion(t *testing.T) {
	uc := newUseCase(seededStore())
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	rows, err := uc.Template(context.Background(), date)

	require.NoError(t, err)
	// Dos ítems físicos × tres ubicaciones; el coctel no se cuenta.
	require.Len(t, rows, 6)
	for _, r := range rows {
		assert.Equal(t, "2026-03-10", r.Date)
		assert.NotEqual(t, "Mojito", r.Item)
		assert.Empty(t, r.OpeningCount, "la plantilla sale con los conteos en blanco")
	}
}

package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/application/sales"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/infrastructure/memory"
)

var saleDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func seededStore() *memory.Store {
	store := memory.NewStore()
	store.SeedCatalog([]catalog.RawRecord{
		{Name: "Vodka Premium 750", Subcategory: "Vodkas", SaleType: "BOT", BaseUnit: "ml", UnitCapacity: dec(750)},
		{Name: "Ron Blanco", Subcategory: "Rones", SaleType: "TRG", BaseUnit: "ml", UnitCapacity: dec(750), DoseQuantity: dec(50)},
		{Name: "Zumo de Lima", Subcategory: "Insumos", SaleType: "TRG", BaseUnit: "ml", DoseQuantity: dec(20)},
		{Name: "Mojito", Subcategory: "Cocteles", SaleType: "CTL"},
		{Name: "Daiquiri", Subcategory: "Cocteles", SaleType: "CTL"},
		{Name: "Malbec Reserva", Subcategory: "Vino Tinto", SaleType: "BOT", BaseUnit: "ml", UnitCapacity: dec(750)},
	})
	store.SeedRecipes([]entity.RecipeLine{
		{Product: "Mojito", Ingredient: "Ron Blanco", QuantityPerUnit: decimal.NewFromInt(50), Unit: "ml"},
		{Product: "Mojito", Ingredient: "Zumo de Lima", QuantityPerUnit: decimal.NewFromInt(20), Unit: "ml"},
	})
	return store
}

func newUseCase(store *memory.Store) *sales.ProcessSalesUseCase {
	return sales.NewProcessSalesUseCase(store, memory.RecipeView{Store: store}, store, sales.NewSubcategoryPolicy())
}

func TestProcess_MojitoExpandePorReceta(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.Process(context.Background(), saleDate, []dto.SaleRow{
		{Item: "Mojito", Quantity: dec(3)},
	})

	require.NoError(t, err)
	require.Len(t, resp.Consumption, 2, "un coctel de dos ingredientes debe producir dos filas")
	byIngredient := map[string]dto.ConsumptionRowDTO{}
	for _, c := range resp.Consumption {
		byIngredient[c.Ingredient] = c
	}
	ron := byIngredient["Ron Blanco"]
	assert.True(t, ron.Quantity.Equal(decimal.NewFromInt(150)),
		"3 mojitos × 50ml de ron deben ser 150ml, fue %s", ron.Quantity)
	assert.Equal(t, entity.LocationBar, ron.ExitLocation)
	lima := byIngredient["Zumo de Lima"]
	assert.True(t, lima.Quantity.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "Mojito", lima.ProductSold)
	assert.Equal(t, 2, resp.Inserted)
}

func TestProcess_BotellaConvierteABase(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.Process(context.Background(), saleDate, []dto.SaleRow{
		{Item: "Vodka Premium 750", Quantity: dec(2)},
	})

	require.NoError(t, err)
	require.Len(t, resp.Consumption, 1)
	assert.True(t, resp.Consumption[0].Quantity.Equal(decimal.NewFromInt(1500)),
		"2 botellas de 750ml deben descontar 1500ml, fue %s", resp.Consumption[0].Quantity)
	assert.Equal(t, "ml", resp.Consumption[0].Unit)
}

func TestProcess_SinCantidadAsumeUna(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.Process(context.Background(), saleDate, []dto.SaleRow{
		{Item: "Ron Blanco"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Consumption, 1)
	assert.True(t, resp.Consumption[0].Quantity.Equal(decimal.NewFromInt(50)),
		"un trago sin cantidad es una dosis, fue %s", resp.Consumption[0].Quantity)
}

func TestProcess_VinoSaleDeVinera(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.Process(context.Background(), saleDate, []dto.SaleRow{
		{Item: "Malbec Reserva", Quantity: dec(1)},
	})

	require.NoError(t, err)
	require.Len(t, resp.Consumption, 1)
	assert.Equal(t, entity.LocationCellar, resp.Consumption[0].ExitLocation,
		"las subcategorías de vino deben salir de la vinera")
}

func TestProcess_LaFilaMandaSobreLaPolitica(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.Process(context.Background(), saleDate, []dto.SaleRow{
		{Item: "Malbec Reserva", Quantity: dec(1), ExitLocation: "barra"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Consumption, 1)
	assert.Equal(t, entity.LocationBar, resp.Consumption[0].ExitLocation,
		"la ubicación explícita de la fila debe ganar, canonicalizada")
}

func TestProcess_ItemDesconocidoAdvierteYSigue(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.Process(context.Background(), saleDate, []dto.SaleRow{
		{Item: "Aguardiente Fantasma", Quantity: dec(2)},
		{Item: "Ron Blanco", Quantity: dec(1)},
	})

	require.NoError(t, err)
	require.Len(t, resp.Consumption, 1, "la fila buena debe procesarse aunque otra falle")
	codes := warningCodes(resp.Warnings)
	assert.Contains(t, codes, domain.WarnUnknownItem)
}

func TestProcess_CTLSinRecetaNoDescuenta(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.Process(context.Background(), saleDate, []dto.SaleRow{
		{Item: "Daiquiri", Quantity: dec(2)},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Consumption, "sin receta no se inventa consumo")
	assert.Equal(t, 0, resp.Inserted)
	codes := warningCodes(resp.Warnings)
	assert.Contains(t, codes, domain.WarnMissingRecipe)
}

func TestProcess_ReimportacionIdempotente(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)
	batch := []dto.SaleRow{
		{Item: "Mojito", Quantity: dec(3)},
		{Item: "Vodka Premium 750", Quantity: dec(2)},
	}

	first, err := uc.Process(context.Background(), saleDate, batch)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Inserted)

	second, err := uc.Process(context.Background(), saleDate, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted,
		"reimportar el mismo lote no debe duplicar consumo")

	stored, err := store.ListConsumption(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestProcess_CatalogoVacioEsFatal(t *testing.T) {
	uc := newUseCase(memory.NewStore())

	_, err := uc.Process(context.Background(), saleDate, []dto.SaleRow{{Item: "Mojito"}})
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}

func warningCodes(ws []domain.Warning) []string {
	codes := make([]string, 0, len(ws))
	for _, w := range ws {
		codes = append(codes, w.Code)
	}
	return codes
}

package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/infrastructure/memory"
)

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestAppendEntries_DeduplicaPorTuplaCompleta(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	row := entity.Entry{Date: day, Item: "Vodka 750", Destination: entity.LocationBar, Quantity: decimal.NewFromInt(750)}

	inserted, err := store.AppendEntries(ctx, []entity.Entry{row, row})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted, "la misma tupla en el mismo lote cuenta una vez")

	// El ID no forma parte de la tupla: otro ID sigue siendo la misma entrada.
	again := row
	again.ID = "otro-id"
	inserted, err = store.AppendEntries(ctx, []entity.Entry{again})
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	distinct := row
	distinct.Quantity = decimal.NewFromInt(1500)
	inserted, err = store.AppendEntries(ctx, []entity.Entry{distinct})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted, "cambiar la cantidad cambia la tupla")
}

func TestListEntries_AcotaPorParticionDiaria(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	_, err := store.AppendEntries(ctx, []entity.Entry{
		{Date: day, Item: "A", Destination: entity.LocationBar, Quantity: decimal.NewFromInt(1)},
		{Date: day.AddDate(0, 0, 1), Item: "B", Destination: entity.LocationBar, Quantity: decimal.NewFromInt(1)},
		{Date: day.AddDate(0, 0, 2), Item: "C", Destination: entity.LocationBar, Quantity: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	from := day.AddDate(0, 0, 1)
	got, err := store.ListEntries(ctx, &from, &from)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Item)

	all, err := store.ListEntries(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3, "nil no acota el rango")
}

func TestSaveSnapshot_ReemplazaLaLineaBase(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	view := memory.SnapshotView{Store: store}

	require.NoError(t, view.Save(ctx, day, []entity.StockSnapshot{
		{Date: day, Item: "Vodka 750", Location: entity.LocationBar, Quantity: decimal.NewFromInt(3000)},
	}))
	next := day.AddDate(0, 0, 1)
	require.NoError(t, view.Save(ctx, next, []entity.StockSnapshot{
		{Date: next, Item: "Vodka 750", Location: entity.LocationBar, Quantity: decimal.NewFromInt(2250)},
	}))

	gotDate, rows, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DateKey(next), entity.DateKey(gotDate))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.Equal(decimal.NewFromInt(2250)),
		"solo la línea base más reciente está vigente, fue %s", rows[0].Quantity)
}

func TestSaveSnapshot_UnaFechaAtrasadaNoRetrocedeLaVigente(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	view := memory.SnapshotView{Store: store}

	require.NoError(t, view.Save(ctx, day, []entity.StockSnapshot{
		{Date: day, Item: "Vodka 750", Location: entity.LocationBar, Quantity: decimal.NewFromInt(3000)},
	}))
	// Confirmar una auditoría del día anterior guarda su conjunto,
	// pero la vigente sigue siendo la de fecha más reciente.
	prev := day.AddDate(0, 0, -1)
	require.NoError(t, view.Save(ctx, prev, []entity.StockSnapshot{
		{Date: prev, Item: "Vodka 750", Location: entity.LocationBar, Quantity: decimal.NewFromInt(9000)},
	}))

	gotDate, rows, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DateKey(day), entity.DateKey(gotDate),
		"la línea base vigente es la más reciente por fecha")
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.Equal(decimal.NewFromInt(3000)))
}

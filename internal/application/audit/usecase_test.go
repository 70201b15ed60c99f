package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licorstock-api/internal/application/audit"
	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/infrastructure/memory"
)

const auditDay = "2026-03-10"

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func seededStore() *memory.Store {
	store := memory.NewStore()
	store.SeedCatalog([]catalog.RawRecord{
		{Name: "Vodka 750", Subcategory: "Vodkas", SaleType: "BOT", BaseUnit: "ml", UnitCapacity: dec(750)},
		{Name: "Ron Blanco", Subcategory: "Rones", SaleType: "TRG", BaseUnit: "ml", UnitCapacity: dec(750), DoseQuantity: dec(50)},
	})
	return store
}

// El generador de PDF no interviene en el registro ni la confirmación,
// solo en los endpoints de informe, así que aquí puede ir en nil.
func newUseCase(store *memory.Store) *audit.UseCase {
	return audit.NewUseCase(store, store, store, memory.SnapshotView{Store: store}, nil)
}

func barRequest(count, requisition *decimal.Decimal) dto.AuditRequest {
	return dto.AuditRequest{
		Date:     auditDay,
		Location: entity.LocationBar,
		Rows: []dto.AuditCountRow{
			{Item: "Vodka 750", Subcategory: "Vodkas", Count: count, Requisition: requisition},
		},
	}
}

func TestRegisterOpening_SinLineaBaseComparaContraCero(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.RegisterOpening(context.Background(), barRequest(dec(5), nil))

	require.NoError(t, err)
	assert.Equal(t, entity.AuditStatusOpeningRecorded, resp.Status)
	require.Len(t, resp.Results, 1)
	r := resp.Results[0]
	assert.True(t, r.Opening.Equal(decimal.NewFromInt(3750)),
		"5 botellas de 750ml deben abrir con 3750ml, fue %s", r.Opening)
	assert.True(t, r.PrevClosing.IsZero())
	assert.True(t, r.Difference.Equal(decimal.NewFromInt(3750)))
}

func TestRegisterOpening_TragoAbrePorBotella(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.RegisterOpening(context.Background(), dto.AuditRequest{
		Date:     auditDay,
		Location: entity.LocationBar,
		Rows: []dto.AuditCountRow{
			{Item: "Ron Blanco", Subcategory: "Rones", Count: dec(1)},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Opening.Equal(decimal.NewFromInt(750)),
		"una botella contada de Ron Blanco debe abrir con 750ml, no con la dosis: fue %s",
		resp.Results[0].Opening)
}

func TestAuditoria_CicloCompletoDeUnTrago(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)
	ctx := context.Background()
	ronAt := func(count *decimal.Decimal) dto.AuditRequest {
		return dto.AuditRequest{
			Date:     auditDay,
			Location: entity.LocationBar,
			Rows:     []dto.AuditCountRow{{Item: "Ron Blanco", Count: count}},
		}
	}

	_, err := uc.RegisterOpening(ctx, ronAt(dec(2)))
	require.NoError(t, err)

	// Diez tragos vendidos en el día: 10 × 50ml en unidad base.
	_, err = store.AppendConsumption(ctx, []entity.SaleConsumption{
		{Date: mustDate(t), ProductSold: "Ron Blanco", Ingredient: "Ron Blanco",
			ExitLocation: entity.LocationBar, Quantity: decimal.NewFromInt(500)},
	})
	require.NoError(t, err)

	resp, err := uc.RegisterClosing(ctx, ronAt(dec(1)))

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	r := resp.Results[0]
	assert.True(t, r.TheoreticalClosing.Equal(decimal.NewFromInt(1000)),
		"2 botellas menos 10 tragos: 1500 - 500 = 1000ml, fue %s", r.TheoreticalClosing)
	assert.True(t, r.Difference.Equal(decimal.NewFromInt(-250)),
		"cerrar con 1 botella (750ml) deja -250ml, fue %s", r.Difference)
}

func TestRegisterClosing_ReconciliaContraElTeorico(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)
	ctx := context.Background()

	_, err := uc.RegisterOpening(ctx, barRequest(dec(5), nil))
	require.NoError(t, err)

	// Sin movimientos en el día: teórico = apertura = 3750ml.
	resp, err := uc.RegisterClosing(ctx, barRequest(dec(4), nil))

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	r := resp.Results[0]
	assert.True(t, r.TheoreticalClosing.Equal(decimal.NewFromInt(3750)))
	assert.True(t, r.PhysicalClosing.Equal(decimal.NewFromInt(3000)))
	assert.True(t, r.Difference.Equal(decimal.NewFromInt(-750)),
		"falta una botella: diferencia -750ml, fue %s", r.Difference)
	assert.True(t, r.Percent.Equal(decimal.NewFromInt(-20)),
		"-750 sobre 3750 es -20%%, fue %s", r.Percent)
}

func TestRegisterClosing_SumaLosMovimientosDelDia(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)
	ctx := context.Background()
	date := mustDate(t)

	// Auditoría general: cada fila trae su ubicación.
	openReq := dto.AuditRequest{
		Date: auditDay,
		Rows: []dto.AuditCountRow{
			{Item: "Vodka 750", Location: entity.LocationBar, Count: dec(5)},
			{Item: "Vodka 750", Location: entity.LocationWarehouse, Count: dec(10)},
		},
	}
	_, err := uc.RegisterOpening(ctx, openReq)
	require.NoError(t, err)

	// Movimientos del mismo día: una entrada de 3 botellas a la barra y
	// consumo registrado en ambas ubicaciones.
	_, err = store.AppendEntries(ctx, []entity.Entry{
		{Date: date, Item: "Vodka 750", Destination: entity.LocationBar, Quantity: decimal.NewFromInt(2250)},
	})
	require.NoError(t, err)
	_, err = store.AppendConsumption(ctx, []entity.SaleConsumption{
		{Date: date, ProductSold: "Vodka 750", Ingredient: "Vodka 750",
			ExitLocation: entity.LocationBar, Quantity: decimal.NewFromInt(500)},
		{Date: date, ProductSold: "Vodka 750", Ingredient: "Vodka 750",
			ExitLocation: entity.LocationWarehouse, Quantity: decimal.NewFromInt(400)},
	})
	require.NoError(t, err)

	closeReq := dto.AuditRequest{
		Date: auditDay,
		Rows: []dto.AuditCountRow{
			{Item: "Vodka 750", Location: entity.LocationBar, Count: dec(7)},
			{Item: "Vodka 750", Location: entity.LocationWarehouse, Count: dec(10)},
		},
	}
	resp, err := uc.RegisterClosing(ctx, closeReq)

	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	byLoc := map[string]entity.ReconciliationResult{}
	for _, r := range resp.Results {
		byLoc[r.Location] = r
	}

	bar := byLoc[entity.LocationBar]
	assert.True(t, bar.Entries.Equal(decimal.NewFromInt(2250)))
	assert.True(t, bar.TheoreticalConsumption.Equal(decimal.NewFromInt(500)))
	assert.True(t, bar.TheoreticalClosing.Equal(decimal.NewFromInt(5500)),
		"3750 + 2250 - 500 = 5500ml, fue %s", bar.TheoreticalClosing)
	assert.True(t, bar.Difference.Equal(decimal.NewFromInt(-250)),
		"7 botellas físicas (5250ml) contra 5500ml teóricos, fue %s", bar.Difference)
	assert.True(t, bar.Percent.Equal(decimal.RequireFromString("-4.55")),
		"-250 sobre 5500 redondeado a 2 decimales, fue %s", bar.Percent)

	warehouse := byLoc[entity.LocationWarehouse]
	assert.True(t, warehouse.TheoreticalConsumption.IsZero(),
		"el consumo contra el almacén no debe descontar jamás")
	assert.True(t, warehouse.TheoreticalClosing.Equal(decimal.NewFromInt(7500)))
	assert.True(t, warehouse.Difference.IsZero())
}

func TestRegisterOpening_ConteoNegativoAdvierte(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	resp, err := uc.RegisterOpening(context.Background(), barRequest(dec(-1), nil))

	require.NoError(t, err, "un conteo negativo es anomalía reportable, no error duro")
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Opening.Equal(decimal.NewFromInt(-750)))
	codes := make([]string, 0, len(resp.Warnings))
	for _, w := range resp.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, domain.WarnNegativeCount)
}

func TestRegisterClosing_SinAperturaAdvierteUnaVez(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	req := dto.AuditRequest{
		Date:     auditDay,
		Location: entity.LocationBar,
		Rows: []dto.AuditCountRow{
			{Item: "Vodka 750", Count: dec(0)},
			{Item: "Ron Blanco", Count: dec(0)},
		},
	}
	resp, err := uc.RegisterClosing(context.Background(), req)

	require.NoError(t, err)
	missing := 0
	for _, w := range resp.Warnings {
		if w.Code == domain.WarnNoOpeningAudit {
			missing++
		}
	}
	assert.Equal(t, 1, missing, "la advertencia de apertura ausente es por auditoría, no por fila")
	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Percent.IsZero(),
		"con teórico 0 el porcentaje vale 0 por convención")
}

func TestParseRequest_FilaIncompletaAbortaTodo(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	req := dto.AuditRequest{
		Date: auditDay,
		Rows: []dto.AuditCountRow{
			{Item: "Vodka 750", Location: entity.LocationBar, Count: dec(5)},
			{Item: "Ron Blanco"}, // sin count ni location
		},
	}
	_, err := uc.RegisterOpening(context.Background(), req)

	require.Error(t, err)
	se, ok := domain.AsSchemaError(err)
	require.True(t, ok, "una fila incompleta debe producir error de esquema, fue %v", err)
	assert.Equal(t, []string{"count", "location"}, se.Missing)

	counts, err := store.OpeningCounts(context.Background(), mustDate(t))
	require.NoError(t, err)
	assert.Empty(t, counts, "la validación es todo-o-nada: ninguna fila se procesa")
}

func TestRegisterOpening_RequisicionGeneraTransferenciaIdempotente(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)
	ctx := context.Background()

	_, err := uc.RegisterOpening(ctx, barRequest(dec(5), dec(2)))
	require.NoError(t, err)
	// Reenviar la misma apertura reemplaza el registro sin duplicar la requisición.
	_, err = uc.RegisterOpening(ctx, barRequest(dec(5), dec(2)))
	require.NoError(t, err)

	transfers, err := store.ListTransfers(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	tr := transfers[0]
	assert.Equal(t, entity.LocationWarehouse, tr.From)
	assert.Equal(t, entity.LocationBar, tr.To)
	assert.True(t, tr.Quantity.Equal(decimal.NewFromInt(1500)),
		"2 botellas requisadas deben transferir 1500ml, fue %s", tr.Quantity)
}

func TestConfirm_MaterializaLaLineaBase(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)
	ctx := context.Background()
	date := mustDate(t)

	_, err := uc.RegisterOpening(ctx, barRequest(dec(5), nil))
	require.NoError(t, err)
	_, err = uc.RegisterClosing(ctx, barRequest(dec(4), nil))
	require.NoError(t, err)

	resp, err := uc.Confirm(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, entity.AuditStatusConfirmed, resp.Status)
	assert.Equal(t, 1, resp.SnapshotRows)

	snapDate, rows, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, auditDay, entity.DateKey(snapDate))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.Equal(decimal.NewFromInt(3000)),
		"la línea base debe quedar con el conteo físico del cierre, fue %s", rows[0].Quantity)
}

func TestConfirm_EsTerminal(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)
	ctx := context.Background()
	date := mustDate(t)

	_, err := uc.RegisterClosing(ctx, barRequest(dec(4), nil))
	require.NoError(t, err)
	_, err = uc.Confirm(ctx, date)
	require.NoError(t, err)

	_, err = uc.Confirm(ctx, date)
	assert.ErrorIs(t, err, domain.ErrConflict, "reconfirmar debe rechazarse")

	_, err = uc.RegisterClosing(ctx, barRequest(dec(3), nil))
	assert.ErrorIs(t, err, domain.ErrConflict, "una auditoría confirmada no admite más cargas")
}

func TestConfirm_SinCierreEsConflicto(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)
	ctx := context.Background()

	_, err := uc.RegisterOpening(ctx, barRequest(dec(5), nil))
	require.NoError(t, err)

	_, err = uc.Confirm(ctx, mustDate(t))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGet_FechaSinAuditoria(t *testing.T) {
	uc := newUseCase(seededStore())

	_, err := uc.Get(context.Background(), mustDate(t))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func mustDate(t *testing.T) time.Time {
	t.Helper()
	date, err := dto.ParseDate(auditDay)
	require.NoError(t, err)
	return date
}

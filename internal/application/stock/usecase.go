// Package stock proyecta el stock teórico actual por ítem y ubicación:
// línea base del último cierre confirmado más el delta neto del libro de
// movimientos posterior. La proyección es derivada, nunca fuente de verdad.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/ledger"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
)

// ReportGenerator puerto del informe PDF de stock.
type ReportGenerator interface {
	StockReport(asOf time.Time, rows []entity.ProjectedStock) ([]byte, error)
}

// ProjectUseCase proyección de stock teórico.
type ProjectUseCase struct {
	catalogRepo  repository.CatalogRepository
	movementRepo repository.MovementRepository
	snapshotRepo repository.SnapshotRepository
	pdf          ReportGenerator
	lowThreshold decimal.Decimal
}

// NewProjectUseCase construye el caso de uso. lowThresholdMl marca el umbral
// de stock bajo en unidad base.
func NewProjectUseCase(
	catalogRepo repository.CatalogRepository,
	movementRepo repository.MovementRepository,
	snapshotRepo repository.SnapshotRepository,
	pdf ReportGenerator,
	lowThresholdMl float64,
) *ProjectUseCase {
	return &ProjectUseCase{
		catalogRepo:  catalogRepo,
		movementRepo: movementRepo,
		snapshotRepo: snapshotRepo,
		pdf:          pdf,
		lowThreshold: decimal.NewFromFloat(lowThresholdMl),
	}
}

// Project calcula el stock teórico por ítem × ubicación. locationFilter vacío
// proyecta las tres ubicaciones. Los CTL no aparecen: no son stock físico.
// Un teórico negativo se reporta tal cual, nunca se recorta a cero.
func (uc *ProjectUseCase) Project(ctx context.Context, locationFilter string) (dto.StockResponse, error) {
	records, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		return dto.StockResponse{}, fmt.Errorf("obteniendo catálogo: %w", err)
	}
	items, warnings := catalog.Normalize(records)
	if len(items) == 0 {
		return dto.StockResponse{}, domain.ErrEmptyCatalog
	}
	conv := catalog.NewConverter(items)

	locations := entity.Locations
	if locationFilter != "" {
		canonical, ok := entity.ParseLocation(locationFilter)
		if !ok {
			return dto.StockResponse{}, domain.ErrInvalidInput
		}
		locations = []string{canonical}
	}

	baseDate, baseRows, err := uc.snapshotRepo.Current(ctx)
	if err != nil {
		return dto.StockResponse{}, fmt.Errorf("leyendo línea base: %w", err)
	}
	baseline := make(map[string]decimal.Decimal, len(baseRows))
	for _, s := range baseRows {
		baseline[stockKey(s.Item, s.Location)] = s.Quantity
	}

	// La línea base ya incorpora los movimientos de su propio día: el libro
	// se recorre desde el día siguiente al cierre confirmado.
	var from *time.Time
	if !baseDate.IsZero() {
		d := baseDate.AddDate(0, 0, 1)
		from = &d
	}
	entries, err := uc.movementRepo.ListEntries(ctx, from, nil)
	if err != nil {
		return dto.StockResponse{}, fmt.Errorf("leyendo entradas: %w", err)
	}
	transfers, err := uc.movementRepo.ListTransfers(ctx, from, nil)
	if err != nil {
		return dto.StockResponse{}, fmt.Errorf("leyendo transferencias: %w", err)
	}
	consumption, err := uc.movementRepo.ListConsumption(ctx, from, nil)
	if err != nil {
		return dto.StockResponse{}, fmt.Errorf("leyendo consumo: %w", err)
	}

	resp := dto.StockResponse{}
	if !baseDate.IsZero() {
		resp.BaselineDate = entity.DateKey(baseDate)
	}
	for _, it := range items {
		if it.IsComposite() {
			continue
		}
		for _, loc := range locations {
			b := ledger.Sum(it.Name, loc, entries, transfers, consumption)
			base, hasBaseline := baseline[stockKey(it.Name, loc)]
			theoretical := base.Add(b.NetDelta())
			if theoretical.IsZero() && !hasBaseline && untouched(b) {
				continue
			}

			var bottles *decimal.Decimal
			if sale, ok := conv.ToSaleUnits(it.Name, theoretical); ok {
				v := sale.Round(2)
				bottles = &v
			}
			if theoretical.IsNegative() {
				resp.Warnings = append(resp.Warnings, domain.Warnf(domain.WarnNegativeStock, it.Name,
					"stock teórico negativo de '%s' en %s: %s", it.Name, loc, theoretical.String()))
			}
			resp.Rows = append(resp.Rows, entity.ProjectedStock{
				Item:        it.Name,
				Subcategory: it.Subcategory,
				Location:    loc,
				Theoretical: theoretical,
				Bottles:     bottles,
				Level:       entity.ClassifyStock(theoretical, uc.lowThreshold),
			})
		}
	}
	resp.Warnings = append(warnings, resp.Warnings...)
	return resp, nil
}

// PDF genera el informe de stock proyectado.
func (uc *ProjectUseCase) PDF(ctx context.Context, locationFilter string) ([]byte, error) {
	resp, err := uc.Project(ctx, locationFilter)
	if err != nil {
		return nil, err
	}
	return uc.pdf.StockReport(time.Now(), resp.Rows)
}

// untouched: el ítem nunca tuvo movimiento en esa ubicación; la combinación
// se omite del informe para no llenar de ceros todo el cruce ítem × ubicación.
func untouched(b ledger.Breakdown) bool {
	return b.Entries.IsZero() && b.TransfersIn.IsZero() && b.TransfersOut.IsZero() && b.Consumption.IsZero()
}

func stockKey(item, location string) string {
	return item + "|" + location
}

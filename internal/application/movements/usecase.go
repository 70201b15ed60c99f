// Package movements registra entradas y transferencias en el libro diario y
// sirve el historial consolidado de movimientos.
package movements

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
)

// UseCase registro y consulta del libro de movimientos. Todo registro es un
// anexo deduplicado: reimportar el mismo archivo no duplica filas.
type UseCase struct {
	catalogRepo  repository.CatalogRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalogRepo repository.CatalogRepository, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{catalogRepo: catalogRepo, movementRepo: movementRepo}
}

// RegisterEntries registra entradas de mercancía de una fecha. Las cantidades
// llegan en unidades de venta y se convierten a unidad base; el destino por
// defecto es el almacén.
func (uc *UseCase) RegisterEntries(ctx context.Context, date time.Time, rows []dto.EntryRow) (dto.RegisterMovementsResponse, error) {
	conv, warnings, err := uc.loadConverter(ctx)
	if err != nil {
		return dto.RegisterMovementsResponse{}, err
	}

	entries := make([]entity.Entry, 0, len(rows))
	for _, r := range rows {
		item := strings.TrimSpace(r.Item)
		if item == "" || r.Quantity == nil || !r.Quantity.IsPositive() {
			continue
		}
		// Las entradas llegan en botellas físicas: convierte por volumen,
		// también para los ítems que se venden por trago.
		base, w := conv.CountToBase(item, *r.Quantity)
		if w != nil {
			warnings = append(warnings, *w)
		}
		entries = append(entries, entity.Entry{
			ID:          uuid.NewString(),
			Date:        date,
			Item:        item,
			Subcategory: strings.TrimSpace(r.Subcategory),
			Destination: canonicalLocation(r.Destination, entity.LocationWarehouse, &warnings),
			Quantity:    base,
		})
	}

	inserted, err := uc.movementRepo.AppendEntries(ctx, entries)
	if err != nil {
		return dto.RegisterMovementsResponse{}, fmt.Errorf("registrando entradas: %w", err)
	}
	return dto.RegisterMovementsResponse{
		Received:   len(rows),
		Inserted:   inserted,
		Duplicates: len(entries) - inserted,
		Warnings:   warnings,
	}, nil
}

// RegisterTransfers registra transferencias internas de una fecha. El origen
// por defecto es el almacén; una transferencia a sí misma se descarta.
func (uc *UseCase) RegisterTransfers(ctx context.Context, date time.Time, rows []dto.TransferRow) (dto.RegisterMovementsResponse, error) {
	conv, warnings, err := uc.loadConverter(ctx)
	if err != nil {
		return dto.RegisterMovementsResponse{}, err
	}

	transfers := make([]entity.Transfer, 0, len(rows))
	for _, r := range rows {
		item := strings.TrimSpace(r.Item)
		if item == "" || r.Quantity == nil || !r.Quantity.IsPositive() {
			continue
		}
		from := canonicalLocation(r.From, entity.LocationWarehouse, &warnings)
		to := canonicalLocation(r.To, "", &warnings)
		if to == "" || from == to {
			continue
		}
		base, w := conv.CountToBase(item, *r.Quantity)
		if w != nil {
			warnings = append(warnings, *w)
		}
		transfers = append(transfers, entity.Transfer{
			ID:       uuid.NewString(),
			Date:     date,
			Item:     item,
			From:     from,
			To:       to,
			Quantity: base,
		})
	}

	inserted, err := uc.movementRepo.AppendTransfers(ctx, transfers)
	if err != nil {
		return dto.RegisterMovementsResponse{}, fmt.Errorf("registrando transferencias: %w", err)
	}
	return dto.RegisterMovementsResponse{
		Received:   len(rows),
		Inserted:   inserted,
		Duplicates: len(transfers) - inserted,
		Warnings:   warnings,
	}, nil
}

// HistoryFilter acota el historial consolidado. Campos vacíos no filtran.
type HistoryFilter struct {
	From     *time.Time
	To       *time.Time
	Item     string
	Location string
	Type     string
}

// History devuelve el historial unificado de las tres fuentes. Una fuente
// ilegible no tumba la consulta: se omite y queda reportada con su motivo.
func (uc *UseCase) History(ctx context.Context, f HistoryFilter) (dto.HistoryResponse, error) {
	var resp dto.HistoryResponse

	entries, err := uc.movementRepo.ListEntries(ctx, f.From, f.To)
	if err != nil {
		resp.Skipped = append(resp.Skipped, dto.SkippedSource{Source: "entradas", Reason: err.Error()})
	} else {
		for _, e := range entries {
			resp.Movements = append(resp.Movements, dto.HistoryRow{
				Date:     entity.DateKey(e.Date),
				Type:     entity.MovementTypeEntry,
				Item:     e.Item,
				Location: e.Destination,
				Quantity: e.Quantity,
			})
		}
	}

	transfers, err := uc.movementRepo.ListTransfers(ctx, f.From, f.To)
	if err != nil {
		resp.Skipped = append(resp.Skipped, dto.SkippedSource{Source: "transferencias", Reason: err.Error()})
	} else {
		for _, t := range transfers {
			resp.Movements = append(resp.Movements, dto.HistoryRow{
				Date:     entity.DateKey(t.Date),
				Type:     entity.MovementTypeTransfer,
				Item:     t.Item,
				From:     t.From,
				To:       t.To,
				Quantity: t.Quantity,
			})
		}
	}

	consumption, err := uc.movementRepo.ListConsumption(ctx, f.From, f.To)
	if err != nil {
		resp.Skipped = append(resp.Skipped, dto.SkippedSource{Source: "consumo", Reason: err.Error()})
	} else {
		for _, c := range consumption {
			resp.Movements = append(resp.Movements, dto.HistoryRow{
				Date:     entity.DateKey(c.Date),
				Type:     entity.MovementTypeConsumption,
				Item:     c.Ingredient,
				Location: c.ExitLocation,
				Quantity: c.Quantity,
			})
		}
	}

	resp.Movements = filterRows(resp.Movements, f)
	sort.SliceStable(resp.Movements, func(i, j int) bool {
		if resp.Movements[i].Date != resp.Movements[j].Date {
			return resp.Movements[i].Date < resp.Movements[j].Date
		}
		return resp.Movements[i].Type < resp.Movements[j].Type
	})
	return resp, nil
}

func filterRows(rows []dto.HistoryRow, f HistoryFilter) []dto.HistoryRow {
	if f.Item == "" && f.Location == "" && f.Type == "" {
		return rows
	}
	out := rows[:0]
	for _, r := range rows {
		if f.Item != "" && r.Item != f.Item {
			continue
		}
		if f.Type != "" && r.Type != strings.ToUpper(strings.TrimSpace(f.Type)) {
			continue
		}
		if f.Location != "" && !touchesLocation(r, f.Location) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func touchesLocation(r dto.HistoryRow, loc string) bool {
	if canonical, ok := entity.ParseLocation(loc); ok {
		loc = canonical
	}
	return r.Location == loc || r.From == loc || r.To == loc
}

// loadConverter carga y normaliza el catálogo; sin catálogo no hay conversión
// posible y el registro se rechaza completo.
func (uc *UseCase) loadConverter(ctx context.Context) (*catalog.Converter, []domain.Warning, error) {
	records, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("obteniendo catálogo: %w", err)
	}
	items, warnings := catalog.Normalize(records)
	if len(items) == 0 {
		return nil, nil, domain.ErrEmptyCatalog
	}
	return catalog.NewConverter(items), warnings, nil
}

// canonicalLocation normaliza una ubicación a su nombre canónico; vacía toma
// el valor por defecto y una desconocida se conserva tal cual, con advertencia.
func canonicalLocation(raw, fallback string, warnings *[]domain.Warning) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}
	if canonical, ok := entity.ParseLocation(s); ok {
		return canonical
	}
	*warnings = append(*warnings, domain.Warnf(domain.WarnUnknownLocation, "",
		"ubicación '%s' no reconocida; se registra tal cual", s))
	return s
}

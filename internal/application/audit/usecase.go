// Package audit implementa el ciclo de auditoría física diaria: apertura
// contra el último cierre confirmado, cierre reconciliado contra el teórico
// del día y confirmación que materializa la nueva línea base de stock.
package audit

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

// UseCase orquesta las tres fases de la auditoría de una fecha.
type UseCase struct {
	catalogRepo  repository.CatalogRepository
	movementRepo repository.MovementRepository
	auditRepo    repository.AuditRepository
	snapshotRepo repository.SnapshotRepository
	pdf          ReportGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	catalogRepo repository.CatalogRepository,
	movementRepo repository.MovementRepository,
	auditRepo repository.AuditRepository,
	snapshotRepo repository.SnapshotRepository,
	pdf ReportGenerator,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		movementRepo: movementRepo,
		auditRepo:    auditRepo,
		snapshotRepo: snapshotRepo,
		pdf:          pdf,
	}
}

// parseRequest valida fecha, alcance y esquema de la plantilla. La validación
// de esquema es todo-o-nada: cualquier fila incompleta aborta la auditoría
// entera con la lista exacta de columnas ausentes, jamás se procesa a medias.
func parseRequest(req dto.AuditRequest) (time.Time, string, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, "", domain.ErrInvalidInput
	}
	scope := strings.TrimSpace(req.Location)
	if scope != "" {
		canonical, ok := entity.ParseLocation(scope)
		if !ok {
			return time.Time{}, "", domain.ErrInvalidInput
		}
		scope = canonical
	}
	if len(req.Rows) == 0 {
		return time.Time{}, "", domain.ErrInvalidInput
	}

	missing := make(map[string]bool)
	for _, r := range req.Rows {
		if strings.TrimSpace(r.Item) == "" {
			missing["item"] = true
		}
		if r.Count == nil {
			missing["count"] = true
		}
		if scope == "" && strings.TrimSpace(r.Location) == "" {
			missing["location"] = true
		}
	}
	if len(missing) > 0 {
		cols := make([]string, 0, len(missing))
		for col := range missing {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		return time.Time{}, "", domain.NewSchemaError(cols...)
	}
	return date, scope, nil
}

// toCounts convierte las filas de la plantilla a conteos en unidad base.
func (uc *UseCase) toCounts(date time.Time, phase, scope string, rows []dto.AuditCountRow, conv *catalog.Converter) ([]entity.AuditCount, []domain.Warning) {
	var warnings []domain.Warning
	counts := make([]entity.AuditCount, 0, len(rows))
	for _, r := range rows {
		item := strings.TrimSpace(r.Item)
		loc := scope
		if loc == "" {
			loc = strings.TrimSpace(r.Location)
		}
		if canonical, ok := entity.ParseLocation(loc); ok {
			loc = canonical
		} else {
			warnings = append(warnings, domain.Warnf(domain.WarnUnknownLocation, item,
				"ubicación '%s' no reconocida; se registra tal cual", loc))
		}

		// Los conteos son botellas físicas: convierte por volumen, nunca
		// por dosis, también para los ítems que se venden por trago.
		count, w := conv.CountToBase(item, *r.Count)
		if w != nil {
			warnings = append(warnings, *w)
		}
		if count.IsNegative() {
			warnings = append(warnings, domain.Warnf(domain.WarnNegativeCount, item,
				"conteo negativo de '%s' en %s: %s", item, loc, count.String()))
		}
		c := entity.AuditCount{
			Date:        date,
			Item:        item,
			Subcategory: strings.TrimSpace(r.Subcategory),
			Location:    loc,
			Phase:       phase,
			Count:       count,
		}
		if r.Requisition != nil && r.Requisition.IsPositive() {
			req, w := conv.CountToBase(item, *r.Requisition)
			if w != nil {
				warnings = append(warnings, *w)
			}
			c.Requisition = req
		}
		counts = append(counts, c)
	}
	return counts, warnings
}

// registerRequisitions deriva las transferencias implícitas Almacén → ubicación
// de las requisiciones declaradas en la plantilla. La deduplicación por tupla
// completa hace el registro idempotente aunque la plantilla se suba dos veces.
func (uc *UseCase) registerRequisitions(ctx context.Context, counts []entity.AuditCount) error {
	var transfers []entity.Transfer
	for _, c := range counts {
		if !c.Requisition.IsPositive() || c.Location == entity.LocationWarehouse {
			continue
		}
		transfers = append(transfers, entity.Transfer{
			ID:       uuid.NewString(),
			Date:     c.Date,
			Item:     c.Item,
			From:     entity.LocationWarehouse,
			To:       c.Location,
			Quantity: c.Requisition,
		})
	}
	if len(transfers) == 0 {
		return nil
	}
	if _, err := uc.movementRepo.AppendTransfers(ctx, transfers); err != nil {
		return fmt.Errorf("registrando requisiciones: %w", err)
	}
	return nil
}

// checkTransition verifica que la auditoría de la fecha admita pasar al estado
// destino. Reenviar la misma fase reemplaza el registro anterior; retroceder o
// tocar una auditoría confirmada es un conflicto.
func (uc *UseCase) checkTransition(ctx context.Context, date time.Time, to string) error {
	a, err := uc.auditRepo.Get(ctx, date)
	if err != nil {
		return fmt.Errorf("consultando auditoría: %w", err)
	}
	if a == nil {
		return nil
	}
	if a.Status == entity.AuditStatusConfirmed {
		return domain.ErrConflict
	}
	if a.Status != to && !entity.CanTransition(a.Status, to) {
		return domain.ErrConflict
	}
	return nil
}

func (uc *UseCase) saveStatus(ctx context.Context, date time.Time, status string) error {
	audit := entity.Audit{Date: date, Status: status, UpdatedAt: time.Now()}
	if err := uc.auditRepo.Save(ctx, &audit); err != nil {
		return fmt.Errorf("guardando estado de auditoría: %w", err)
	}
	return nil
}

// loadConverter carga y normaliza el catálogo. Auditar sin catálogo no tiene
// sentido: los conteos no podrían convertirse a unidad base.
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

func stockKey(item, location string) string {
	return item + "|" + location
}

package audit

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/ledger"
)

// RegisterClosing registra el conteo de cierre y reconcilia cada fila contra
// el cierre teórico del día:
//
//	teórico = apertura + entradas + transferencias netas - consumo teórico
//
// El consumo solo descuenta en Barra y Vinera; el almacén nunca descuenta
// ventas. Cerrar sin apertura registrada vale: se asume apertura 0 y queda
// una única advertencia por auditoría.
func (uc *UseCase) RegisterClosing(ctx context.Context, req dto.AuditRequest) (dto.ClosingResponse, error) {
	date, scope, err := parseRequest(req)
	if err != nil {
		return dto.ClosingResponse{}, err
	}
	if err := uc.checkTransition(ctx, date, entity.AuditStatusClosingRecorded); err != nil {
		return dto.ClosingResponse{}, err
	}

	conv, warnings, err := uc.loadConverter(ctx)
	if err != nil {
		return dto.ClosingResponse{}, err
	}
	counts, ws := uc.toCounts(date, entity.AuditPhaseClosing, scope, req.Rows, conv)
	warnings = append(warnings, ws...)

	// Las requisiciones del cierre se registran antes de leer el libro del
	// día para que cuenten en el mismo teórico que están cerrando.
	if err := uc.registerRequisitions(ctx, counts); err != nil {
		return dto.ClosingResponse{}, err
	}

	openingCounts, err := uc.auditRepo.OpeningCounts(ctx, date)
	if err != nil {
		return dto.ClosingResponse{}, fmt.Errorf("leyendo apertura: %w", err)
	}
	opening := make(map[string]decimal.Decimal, len(openingCounts))
	for _, c := range openingCounts {
		opening[stockKey(c.Item, c.Location)] = c.Count
	}
	if len(openingCounts) == 0 {
		warnings = append(warnings, domain.Warnf(domain.WarnNoOpeningAudit, "",
			"no hay auditoría de apertura para %s; se asume apertura 0", entity.DateKey(date)))
	}

	entries, err := uc.movementRepo.ListEntries(ctx, &date, &date)
	if err != nil {
		return dto.ClosingResponse{}, fmt.Errorf("leyendo entradas: %w", err)
	}
	transfers, err := uc.movementRepo.ListTransfers(ctx, &date, &date)
	if err != nil {
		return dto.ClosingResponse{}, fmt.Errorf("leyendo transferencias: %w", err)
	}
	consumption, err := uc.movementRepo.ListConsumption(ctx, &date, &date)
	if err != nil {
		return dto.ClosingResponse{}, fmt.Errorf("leyendo consumo: %w", err)
	}

	results := make([]entity.ReconciliationResult, 0, len(counts))
	for _, c := range counts {
		b := ledger.Sum(c.Item, c.Location, entries, transfers, consumption)
		open := opening[stockKey(c.Item, c.Location)]
		theoretical := open.Add(b.Entries).Add(b.NetTransfers()).Sub(b.Consumption)
		diff := c.Count.Sub(theoretical)
		results = append(results, entity.ReconciliationResult{
			Item:                   c.Item,
			Location:               c.Location,
			Opening:                open,
			Entries:                b.Entries,
			NetTransfers:           b.NetTransfers(),
			TheoreticalConsumption: b.Consumption,
			TheoreticalClosing:     theoretical,
			PhysicalClosing:        c.Count,
			Difference:             diff,
			Percent:                percentOf(diff, theoretical),
		})
	}

	if err := uc.auditRepo.SaveClosing(ctx, date, counts, results); err != nil {
		return dto.ClosingResponse{}, fmt.Errorf("guardando cierre: %w", err)
	}
	if err := uc.saveStatus(ctx, date, entity.AuditStatusClosingRecorded); err != nil {
		return dto.ClosingResponse{}, err
	}

	return dto.ClosingResponse{
		Date:     entity.DateKey(date),
		Status:   entity.AuditStatusClosingRecorded,
		Results:  results,
		Warnings: warnings,
	}, nil
}

// percentOf variación porcentual contra el teórico, redondeada a 2 decimales.
// Vale 0 por convención cuando el teórico es 0: no implica variación nula,
// solo que el porcentaje no está definido.
func percentOf(diff, theoretical decimal.Decimal) decimal.Decimal {
	if theoretical.IsZero() {
		return decimal.Zero
	}
	return diff.Div(theoretical).Mul(decimal.NewFromInt(100)).Round(2)
}

package audit

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// RegisterOpening registra el conteo de apertura de una fecha y lo compara
// contra el último cierre confirmado. Un ítem sin línea base compara contra 0.
// Las requisiciones declaradas en la plantilla generan transferencias
// implícitas desde el almacén.
func (uc *UseCase) RegisterOpening(ctx context.Context, req dto.AuditRequest) (dto.OpeningResponse, error) {
	date, scope, err := parseRequest(req)
	if err != nil {
		return dto.OpeningResponse{}, err
	}
	if err := uc.checkTransition(ctx, date, entity.AuditStatusOpeningRecorded); err != nil {
		return dto.OpeningResponse{}, err
	}

	conv, warnings, err := uc.loadConverter(ctx)
	if err != nil {
		return dto.OpeningResponse{}, err
	}
	counts, ws := uc.toCounts(date, entity.AuditPhaseOpening, scope, req.Rows, conv)
	warnings = append(warnings, ws...)

	if err := uc.registerRequisitions(ctx, counts); err != nil {
		return dto.OpeningResponse{}, err
	}

	_, baseRows, err := uc.snapshotRepo.Current(ctx)
	if err != nil {
		return dto.OpeningResponse{}, fmt.Errorf("leyendo línea base: %w", err)
	}
	prevClosing := make(map[string]decimal.Decimal, len(baseRows))
	for _, s := range baseRows {
		prevClosing[stockKey(s.Item, s.Location)] = s.Quantity
	}

	results := make([]entity.OpeningResult, 0, len(counts))
	for _, c := range counts {
		prev := prevClosing[stockKey(c.Item, c.Location)]
		results = append(results, entity.OpeningResult{
			Item:        c.Item,
			Location:    c.Location,
			PrevClosing: prev,
			Opening:     c.Count,
			Difference:  c.Count.Sub(prev),
		})
	}

	if err := uc.auditRepo.SaveOpening(ctx, date, counts, results); err != nil {
		return dto.OpeningResponse{}, fmt.Errorf("guardando apertura: %w", err)
	}
	if err := uc.saveStatus(ctx, date, entity.AuditStatusOpeningRecorded); err != nil {
		return dto.OpeningResponse{}, err
	}

	return dto.OpeningResponse{
		Date:     entity.DateKey(date),
		Status:   entity.AuditStatusOpeningRecorded,
		Results:  results,
		Warnings: warnings,
	}, nil
}

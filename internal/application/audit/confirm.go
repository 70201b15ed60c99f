package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// Confirm sella la auditoría de la fecha: el conteo físico del cierre se
// materializa como nueva línea base de stock y el estado pasa a CONFIRMADA,
// que es terminal. Confirmar dos veces es un conflicto, igual que confirmar
// sin cierre registrado.
func (uc *UseCase) Confirm(ctx context.Context, date time.Time) (dto.ConfirmResponse, error) {
	a, err := uc.auditRepo.Get(ctx, date)
	if err != nil {
		return dto.ConfirmResponse{}, fmt.Errorf("consultando auditoría: %w", err)
	}
	if a == nil {
		return dto.ConfirmResponse{}, domain.ErrNotFound
	}
	if a.Status != entity.AuditStatusClosingRecorded {
		return dto.ConfirmResponse{}, domain.ErrConflict
	}

	counts, err := uc.auditRepo.ClosingCounts(ctx, date)
	if err != nil {
		return dto.ConfirmResponse{}, fmt.Errorf("leyendo cierre: %w", err)
	}
	if len(counts) == 0 {
		return dto.ConfirmResponse{}, domain.ErrConflict
	}

	rows := make([]entity.StockSnapshot, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, entity.StockSnapshot{
			Date:     date,
			Item:     c.Item,
			Location: c.Location,
			Quantity: c.Count,
		})
	}
	if err := uc.snapshotRepo.Save(ctx, date, rows); err != nil {
		return dto.ConfirmResponse{}, fmt.Errorf("materializando línea base: %w", err)
	}
	if err := uc.saveStatus(ctx, date, entity.AuditStatusConfirmed); err != nil {
		return dto.ConfirmResponse{}, err
	}

	return dto.ConfirmResponse{
		Date:         entity.DateKey(date),
		Status:       entity.AuditStatusConfirmed,
		SnapshotRows: len(rows),
	}, nil
}

package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// Get devuelve el estado de la auditoría de una fecha con los resultados
// registrados hasta el momento.
func (uc *UseCase) Get(ctx context.Context, date time.Time) (dto.AuditStatusResponse, error) {
	a, err := uc.auditRepo.Get(ctx, date)
	if err != nil {
		return dto.AuditStatusResponse{}, fmt.Errorf("consultando auditoría: %w", err)
	}
	if a == nil {
		return dto.AuditStatusResponse{}, domain.ErrNotFound
	}

	opening, err := uc.auditRepo.OpeningResults(ctx, date)
	if err != nil {
		return dto.AuditStatusResponse{}, fmt.Errorf("leyendo apertura: %w", err)
	}
	closing, err := uc.auditRepo.ClosingResults(ctx, date)
	if err != nil {
		return dto.AuditStatusResponse{}, fmt.Errorf("leyendo cierre: %w", err)
	}

	return dto.AuditStatusResponse{
		Date:    entity.DateKey(date),
		Status:  a.Status,
		Opening: opening,
		Closing: closing,
	}, nil
}

// OpeningPDF genera el informe PDF de la apertura de la fecha.
func (uc *UseCase) OpeningPDF(ctx context.Context, date time.Time) ([]byte, error) {
	results, err := uc.auditRepo.OpeningResults(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("leyendo apertura: %w", err)
	}
	if len(results) == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.OpeningReport(date, results)
}

// ClosingPDF genera el informe PDF del cierre de la fecha.
func (uc *UseCase) ClosingPDF(ctx context.Context, date time.Time) ([]byte, error) {
	results, err := uc.auditRepo.ClosingResults(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("leyendo cierre: %w", err)
	}
	if len(results) == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.ClosingReport(date, results)
}

package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// AuditRepository puerto del ciclo de auditorías por fecha: estado del ciclo,
// conteos físicos capturados y resultados derivados de cada fase.
type AuditRepository interface {
	// Get devuelve el estado de la auditoría de la fecha, o nil si no existe.
	Get(ctx context.Context, date time.Time) (*entity.Audit, error)
	Save(ctx context.Context, audit *entity.Audit) error

	SaveOpening(ctx context.Context, date time.Time, counts []entity.AuditCount, results []entity.OpeningResult) error
	OpeningCounts(ctx context.Context, date time.Time) ([]entity.AuditCount, error)
	OpeningResults(ctx context.Context, date time.Time) ([]entity.OpeningResult, error)

	SaveClosing(ctx context.Context, date time.Time, counts []entity.AuditCount, results []entity.ReconciliationResult) error
	ClosingCounts(ctx context.Context, date time.Time) ([]entity.AuditCount, error)
	ClosingResults(ctx context.Context, date time.Time) ([]entity.ReconciliationResult, error)
}

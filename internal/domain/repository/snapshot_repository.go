package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// SnapshotRepository puerto de la línea base de stock.
// Hay exactamente un conjunto "vigente": el del cierre confirmado más reciente.
type SnapshotRepository interface {
	// Current devuelve la fecha y filas de la línea base vigente.
	// Fecha cero y filas vacías cuando aún no hay cierre confirmado.
	Current(ctx context.Context) (time.Time, []entity.StockSnapshot, error)

	// Save materializa un cierre confirmado como nueva línea base.
	Save(ctx context.Context, date time.Time, rows []entity.StockSnapshot) error
}

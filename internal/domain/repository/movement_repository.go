package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// MovementRepository puerto del libro de movimientos, particionado por fecha.
// Las particiones son de solo-agregar; cada Append debe leer-mezclar-deduplicar
// por la tupla completa del registro antes de persistir: reimportar el mismo
// archivo no cambia ningún agregado.
//
// Los List son agnósticos al rango: from/to en nil significa todo el historial.
type MovementRepository interface {
	AppendEntries(ctx context.Context, rows []entity.Entry) (inserted int, err error)
	AppendTransfers(ctx context.Context, rows []entity.Transfer) (inserted int, err error)
	AppendConsumption(ctx context.Context, rows []entity.SaleConsumption) (inserted int, err error)

	ListEntries(ctx context.Context, from, to *time.Time) ([]entity.Entry, error)
	ListTransfers(ctx context.Context, from, to *time.Time) ([]entity.Transfer, error)
	ListConsumption(ctx context.Context, from, to *time.Time) ([]entity.SaleConsumption, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo línea base de stock sobre PostgreSQL. Se conserva el histórico
// de cierres confirmados; la vigente es la de fecha más reciente.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador de línea base.
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// Current devuelve la línea base vigente; fecha cero y sin filas cuando aún
// no hay cierre confirmado.
func (r *SnapshotRepo) Current(ctx context.Context) (time.Time, []entity.StockSnapshot, error) {
	// MAX sobre tabla vacía devuelve NULL, de ahí el puntero.
	var latest *time.Time
	err := r.q.QueryRow(ctx, `SELECT MAX(snapshot_date) FROM stock_snapshots`).Scan(&latest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil, nil
		}
		return time.Time{}, nil, fmt.Errorf("fecha de línea base: %w", err)
	}
	if latest == nil {
		return time.Time{}, nil, nil
	}
	date := *latest

	query := `
		SELECT snapshot_date, item, location, quantity
		FROM stock_snapshots
		WHERE snapshot_date = $1
		ORDER BY location, item`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("query línea base: %w", err)
	}
	defer rows.Close()

	var out []entity.StockSnapshot
	for rows.Next() {
		var s entity.StockSnapshot
		if err := rows.Scan(&s.Date, &s.Item, &s.Location, &s.Quantity); err != nil {
			return time.Time{}, nil, fmt.Errorf("scan línea base: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return time.Time{}, nil, fmt.Errorf("iterar línea base: %w", err)
	}
	return date, out, nil
}

// Save materializa la línea base de la fecha, reemplazando la de esa misma
// fecha si existía (reconfirmación del mismo día).
func (r *SnapshotRepo) Save(ctx context.Context, date time.Time, rows []entity.StockSnapshot) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_snapshots WHERE snapshot_date = $1`, date); err != nil {
		return fmt.Errorf("borrar línea base: %w", err)
	}
	query := `
		INSERT INTO stock_snapshots (snapshot_date, item, location, quantity)
		VALUES ($1, $2, $3, $4)`
	for _, s := range rows {
		if _, err := r.q.Exec(ctx, query, date, s.Item, s.Location, s.Quantity); err != nil {
			return fmt.Errorf("insert línea base: %w", err)
		}
	}
	return nil
}

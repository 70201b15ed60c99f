package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL. Cada tabla lleva un
// índice único por la tupla completa del registro; el anexo usa ON CONFLICT
// DO NOTHING, así que reimportar el mismo archivo no duplica filas ni
// cambia agregados.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// AppendEntries anexa entradas; devuelve cuántas filas eran nuevas.
func (r *MovementRepo) AppendEntries(ctx context.Context, rows []entity.Entry) (int, error) {
	query := `
		INSERT INTO movement_entries (id, entry_date, item, subcategory, destination, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (entry_date, item, destination, quantity) DO NOTHING`
	inserted := 0
	for _, row := range rows {
		tag, err := r.q.Exec(ctx, query,
			row.ID, row.Date, row.Item, row.Subcategory, row.Destination, row.Quantity)
		if err != nil {
			return inserted, fmt.Errorf("insert entrada: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// AppendTransfers anexa transferencias; devuelve cuántas filas eran nuevas.
func (r *MovementRepo) AppendTransfers(ctx context.Context, rows []entity.Transfer) (int, error) {
	query := `
		INSERT INTO movement_transfers (id, transfer_date, item, from_location, to_location, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (transfer_date, item, from_location, to_location, quantity) DO NOTHING`
	inserted := 0
	for _, row := range rows {
		tag, err := r.q.Exec(ctx, query,
			row.ID, row.Date, row.Item, row.From, row.To, row.Quantity)
		if err != nil {
			return inserted, fmt.Errorf("insert transferencia: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// AppendConsumption anexa consumo derivado; devuelve cuántas filas eran nuevas.
func (r *MovementRepo) AppendConsumption(ctx context.Context, rows []entity.SaleConsumption) (int, error) {
	query := `
		INSERT INTO movement_consumption (id, consumption_date, product_sold, ingredient, unit, quantity, exit_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (consumption_date, product_sold, ingredient, exit_location, quantity) DO NOTHING`
	inserted := 0
	for _, row := range rows {
		tag, err := r.q.Exec(ctx, query,
			row.ID, row.Date, row.ProductSold, row.Ingredient, row.Unit, row.Quantity, row.ExitLocation)
		if err != nil {
			return inserted, fmt.Errorf("insert consumo: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// ListEntries devuelve las entradas del rango; from/to en nil no acotan.
func (r *MovementRepo) ListEntries(ctx context.Context, from, to *time.Time) ([]entity.Entry, error) {
	query := `
		SELECT id, entry_date, item, subcategory, destination, quantity
		FROM movement_entries
		WHERE ($1::date IS NULL OR entry_date >= $1)
		  AND ($2::date IS NULL OR entry_date <= $2)
		ORDER BY entry_date, item`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entradas: %w", err)
	}
	defer rows.Close()

	var out []entity.Entry
	for rows.Next() {
		var e entity.Entry
		if err := rows.Scan(&e.ID, &e.Date, &e.Item, &e.Subcategory, &e.Destination, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar entradas: %w", err)
	}
	return out, nil
}

// ListTransfers devuelve las transferencias del rango.
func (r *MovementRepo) ListTransfers(ctx context.Context, from, to *time.Time) ([]entity.Transfer, error) {
	query := `
		SELECT id, transfer_date, item, from_location, to_location, quantity
		FROM movement_transfers
		WHERE ($1::date IS NULL OR transfer_date >= $1)
		  AND ($2::date IS NULL OR transfer_date <= $2)
		ORDER BY transfer_date, item`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query transferencias: %w", err)
	}
	defer rows.Close()

	var out []entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.Date, &t.Item, &t.From, &t.To, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan transferencia: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar transferencias: %w", err)
	}
	return out, nil
}

// ListConsumption devuelve el consumo del rango.
func (r *MovementRepo) ListConsumption(ctx context.Context, from, to *time.Time) ([]entity.SaleConsumption, error) {
	query := `
		SELECT id, consumption_date, product_sold, ingredient, unit, quantity, exit_location
		FROM movement_consumption
		WHERE ($1::date IS NULL OR consumption_date >= $1)
		  AND ($2::date IS NULL OR consumption_date <= $2)
		ORDER BY consumption_date, ingredient`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query consumo: %w", err)
	}
	defer rows.Close()

	var out []entity.SaleConsumption
	for rows.Next() {
		var c entity.SaleConsumption
		if err := rows.Scan(&c.ID, &c.Date, &c.ProductSold, &c.Ingredient, &c.Unit, &c.Quantity, &c.ExitLocation); err != nil {
			return nil, fmt.Errorf("scan consumo: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar consumo: %w", err)
	}
	return out, nil
}

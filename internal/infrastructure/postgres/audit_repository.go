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

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo ciclo de auditorías sobre PostgreSQL. Los conteos y resultados de
// cada fase se reemplazan completos al reenviar la plantilla: borrar e
// insertar dentro de la misma fase, nunca mezclar envíos.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de auditorías.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Get devuelve la auditoría de la fecha, o nil si no existe.
func (r *AuditRepo) Get(ctx context.Context, date time.Time) (*entity.Audit, error) {
	query := `SELECT audit_date, status, updated_at FROM audits WHERE audit_date = $1`
	var a entity.Audit
	err := r.q.QueryRow(ctx, query, date).Scan(&a.Date, &a.Status, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auditoría: %w", err)
	}
	return &a, nil
}

// Save inserta o actualiza el estado de la auditoría de su fecha.
func (r *AuditRepo) Save(ctx context.Context, audit *entity.Audit) error {
	query := `
		INSERT INTO audits (audit_date, status, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (audit_date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, audit.Date, audit.Status, audit.UpdatedAt); err != nil {
		return fmt.Errorf("save auditoría: %w", err)
	}
	return nil
}

// SaveOpening reemplaza los conteos y resultados de apertura de la fecha.
func (r *AuditRepo) SaveOpening(ctx context.Context, date time.Time, counts []entity.AuditCount, results []entity.OpeningResult) error {
	if err := r.replaceCounts(ctx, date, entity.AuditPhaseOpening, counts); err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM audit_opening_results WHERE audit_date = $1`, date); err != nil {
		return fmt.Errorf("borrar resultados de apertura: %w", err)
	}
	query := `
		INSERT INTO audit_opening_results (audit_date, item, location, prev_closing, opening, difference)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, res := range results {
		if _, err := r.q.Exec(ctx, query, date, res.Item, res.Location, res.PrevClosing, res.Opening, res.Difference); err != nil {
			return fmt.Errorf("insert resultado de apertura: %w", err)
		}
	}
	return nil
}

// OpeningCounts devuelve los conteos de apertura de la fecha.
func (r *AuditRepo) OpeningCounts(ctx context.Context, date time.Time) ([]entity.AuditCount, error) {
	return r.counts(ctx, date, entity.AuditPhaseOpening)
}

// OpeningResults devuelve los resultados de apertura de la fecha.
func (r *AuditRepo) OpeningResults(ctx context.Context, date time.Time) ([]entity.OpeningResult, error) {
	query := `
		SELECT item, location, prev_closing, opening, difference
		FROM audit_opening_results
		WHERE audit_date = $1
		ORDER BY location, item`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("query resultados de apertura: %w", err)
	}
	defer rows.Close()

	var out []entity.OpeningResult
	for rows.Next() {
		var res entity.OpeningResult
		if err := rows.Scan(&res.Item, &res.Location, &res.PrevClosing, &res.Opening, &res.Difference); err != nil {
			return nil, fmt.Errorf("scan resultado de apertura: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar resultados de apertura: %w", err)
	}
	return out, nil
}

// SaveClosing reemplaza los conteos y resultados de cierre de la fecha.
func (r *AuditRepo) SaveClosing(ctx context.Context, date time.Time, counts []entity.AuditCount, results []entity.ReconciliationResult) error {
	if err := r.replaceCounts(ctx, date, entity.AuditPhaseClosing, counts); err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM audit_closing_results WHERE audit_date = $1`, date); err != nil {
		return fmt.Errorf("borrar resultados de cierre: %w", err)
	}
	query := `
		INSERT INTO audit_closing_results (
			audit_date, item, location, opening, entries, net_transfers,
			theoretical_consumption, theoretical_closing, physical_closing, difference, percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, res := range results {
		if _, err := r.q.Exec(ctx, query,
			date, res.Item, res.Location, res.Opening, res.Entries, res.NetTransfers,
			res.TheoreticalConsumption, res.TheoreticalClosing, res.PhysicalClosing,
			res.Difference, res.Percent,
		); err != nil {
			return fmt.Errorf("insert resultado de cierre: %w", err)
		}
	}
	return nil
}

// ClosingCounts devuelve los conteos de cierre de la fecha.
func (r *AuditRepo) ClosingCounts(ctx context.Context, date time.Time) ([]entity.AuditCount, error) {
	return r.counts(ctx, date, entity.AuditPhaseClosing)
}

// ClosingResults devuelve los resultados de cierre de la fecha.
func (r *AuditRepo) ClosingResults(ctx context.Context, date time.Time) ([]entity.ReconciliationResult, error) {
	query := `
		SELECT item, location, opening, entries, net_transfers,
		       theoretical_consumption, theoretical_closing, physical_closing, difference, percent
		FROM audit_closing_results
		WHERE audit_date = $1
		ORDER BY location, item`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("query resultados de cierre: %w", err)
	}
	defer rows.Close()

	var out []entity.ReconciliationResult
	for rows.Next() {
		var res entity.ReconciliationResult
		if err := rows.Scan(
			&res.Item, &res.Location, &res.Opening, &res.Entries, &res.NetTransfers,
			&res.TheoreticalConsumption, &res.TheoreticalClosing, &res.PhysicalClosing,
			&res.Difference, &res.Percent,
		); err != nil {
			return nil, fmt.Errorf("scan resultado de cierre: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar resultados de cierre: %w", err)
	}
	return out, nil
}

func (r *AuditRepo) replaceCounts(ctx context.Context, date time.Time, phase string, counts []entity.AuditCount) error {
	if _, err := r.q.Exec(ctx,
		`DELETE FROM audit_counts WHERE audit_date = $1 AND phase = $2`, date, phase); err != nil {
		return fmt.Errorf("borrar conteos: %w", err)
	}
	query := `
		INSERT INTO audit_counts (audit_date, item, subcategory, location, phase, physical_count, requisition)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, c := range counts {
		if _, err := r.q.Exec(ctx, query,
			date, c.Item, c.Subcategory, c.Location, phase, c.Count, c.Requisition); err != nil {
			return fmt.Errorf("insert conteo: %w", err)
		}
	}
	return nil
}

func (r *AuditRepo) counts(ctx context.Context, date time.Time, phase string) ([]entity.AuditCount, error) {
	query := `
		SELECT audit_date, item, subcategory, location, phase, physical_count, requisition
		FROM audit_counts
		WHERE audit_date = $1 AND phase = $2
		ORDER BY location, item`
	rows, err := r.q.Query(ctx, query, date, phase)
	if err != nil {
		return nil, fmt.Errorf("query conteos: %w", err)
	}
	defer rows.Close()

	var out []entity.AuditCount
	for rows.Next() {
		var c entity.AuditCount
		if err := rows.Scan(&c.Date, &c.Item, &c.Subcategory, &c.Location, &c.Phase, &c.Count, &c.Requisition); err != nil {
			return nil, fmt.Errorf("scan conteo: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar conteos: %w", err)
	}
	return out, nil
}

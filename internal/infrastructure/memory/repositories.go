package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
)

// El Store cubre los cinco puertos de persistencia. Recetas y línea base se
// sirven a través de vistas porque sus puertos repiten nombre de método
// (GetAll, Save) con otra firma.
var (
	_ repository.CatalogRepository  = (*Store)(nil)
	_ repository.RecipeRepository   = RecipeView{}
	_ repository.MovementRepository = (*Store)(nil)
	_ repository.AuditRepository    = (*Store)(nil)
	_ repository.SnapshotRepository = SnapshotView{}
)

// RecipeView adapta el Store al puerto de recetas.
type RecipeView struct{ *Store }

// GetAll devuelve la hoja de recetas.
func (v RecipeView) GetAll(ctx context.Context) ([]entity.RecipeLine, error) {
	return v.Store.GetAllRecipes(ctx)
}

// SnapshotView adapta el Store al puerto de línea base.
type SnapshotView struct{ *Store }

// Save materializa una nueva línea base.
func (v SnapshotView) Save(ctx context.Context, date time.Time, rows []entity.StockSnapshot) error {
	return v.Store.SaveSnapshot(ctx, date, rows)
}

// GetAll devuelve las filas crudas del catálogo.
func (s *Store) GetAll(ctx context.Context) ([]catalog.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.RawRecord(nil), s.catalogRecords...), nil
}

// GetAllRecipes devuelve la hoja de recetas.
func (s *Store) GetAllRecipes(ctx context.Context) ([]entity.RecipeLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.RecipeLine(nil), s.recipeLines...), nil
}

// AppendEntries anexa entradas deduplicando por tupla completa.
func (s *Store) AppendEntries(ctx context.Context, rows []entity.Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inserted := 0
	for _, r := range rows {
		key := "entrada|" + r.DedupKey()
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.entries = append(s.entries, r)
		inserted++
	}
	return inserted, nil
}

// AppendTransfers anexa transferencias deduplicando por tupla completa.
func (s *Store) AppendTransfers(ctx context.Context, rows []entity.Transfer) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inserted := 0
	for _, r := range rows {
		key := "transferencia|" + r.DedupKey()
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.transfers = append(s.transfers, r)
		inserted++
	}
	return inserted, nil
}

// AppendConsumption anexa consumo derivado deduplicando por tupla completa.
func (s *Store) AppendConsumption(ctx context.Context, rows []entity.SaleConsumption) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inserted := 0
	for _, r := range rows {
		key := "consumo|" + r.DedupKey()
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.consumption = append(s.consumption, r)
		inserted++
	}
	return inserted, nil
}

// ListEntries devuelve las entradas del rango; nil no acota.
func (s *Store) ListEntries(ctx context.Context, from, to *time.Time) ([]entity.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Entry
	for _, e := range s.entries {
		if inRange(e.Date, from, to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListTransfers devuelve las transferencias del rango.
func (s *Store) ListTransfers(ctx context.Context, from, to *time.Time) ([]entity.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Transfer
	for _, t := range s.transfers {
		if inRange(t.Date, from, to) {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListConsumption devuelve el consumo del rango.
func (s *Store) ListConsumption(ctx context.Context, from, to *time.Time) ([]entity.SaleConsumption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.SaleConsumption
	for _, c := range s.consumption {
		if inRange(c.Date, from, to) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get devuelve la auditoría de la fecha, o nil si no existe.
func (s *Store) Get(ctx context.Context, date time.Time) (*entity.Audit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.audits[entity.DateKey(date)]; ok {
		return &a, nil
	}
	return nil, nil
}

// Save guarda el estado de la auditoría de su fecha.
func (s *Store) Save(ctx context.Context, audit *entity.Audit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audits[entity.DateKey(audit.Date)] = *audit
	return nil
}

// SaveOpening reemplaza los conteos y resultados de apertura de la fecha.
func (s *Store) SaveOpening(ctx context.Context, date time.Time, counts []entity.AuditCount, results []entity.OpeningResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entity.DateKey(date)
	s.openingCounts[key] = append([]entity.AuditCount(nil), counts...)
	s.openingResults[key] = append([]entity.OpeningResult(nil), results...)
	return nil
}

// OpeningCounts devuelve los conteos de apertura de la fecha.
func (s *Store) OpeningCounts(ctx context.Context, date time.Time) ([]entity.AuditCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.AuditCount(nil), s.openingCounts[entity.DateKey(date)]...), nil
}

// OpeningResults devuelve los resultados de apertura de la fecha.
func (s *Store) OpeningResults(ctx context.Context, date time.Time) ([]entity.OpeningResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.OpeningResult(nil), s.openingResults[entity.DateKey(date)]...), nil
}

// SaveClosing reemplaza los conteos y resultados de cierre de la fecha.
func (s *Store) SaveClosing(ctx context.Context, date time.Time, counts []entity.AuditCount, results []entity.ReconciliationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entity.DateKey(date)
	s.closingCounts[key] = append([]entity.AuditCount(nil), counts...)
	s.closingResults[key] = append([]entity.ReconciliationResult(nil), results...)
	return nil
}

// ClosingCounts devuelve los conteos de cierre de la fecha.
func (s *Store) ClosingCounts(ctx context.Context, date time.Time) ([]entity.AuditCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.AuditCount(nil), s.closingCounts[entity.DateKey(date)]...), nil
}

// ClosingResults devuelve los resultados de cierre de la fecha.
func (s *Store) ClosingResults(ctx context.Context, date time.Time) ([]entity.ReconciliationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.ReconciliationResult(nil), s.closingResults[entity.DateKey(date)]...), nil
}

// Current devuelve la línea base vigente, la de fecha más reciente; fecha
// cero si no hay cierre confirmado. Confirmar una auditoría atrasada guarda
// su conjunto pero no retrocede la vigente.
func (s *Store) Current(ctx context.Context) (time.Time, []entity.StockSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest snapshotSet
	for key, set := range s.snapshots {
		if key > entity.DateKey(latest.date) || latest.date.IsZero() {
			latest = set
		}
	}
	return latest.date, append([]entity.StockSnapshot(nil), latest.rows...), nil
}

// SaveSnapshot materializa la línea base de una fecha, reemplazando solo el
// conjunto de esa misma fecha.
func (s *Store) SaveSnapshot(ctx context.Context, date time.Time, rows []entity.StockSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[entity.DateKey(date)] = snapshotSet{
		date: date,
		rows: append([]entity.StockSnapshot(nil), rows...),
	}
	return nil
}

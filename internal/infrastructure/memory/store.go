// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria protegidas por mutex. Sirve para desarrollo local (STORAGE_DRIVER=
// memory) y como doble de pruebas de los casos de uso.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// Store almacén en memoria de todos los agregados del motor.
type Store struct {
	mu sync.RWMutex

	catalogRecords []catalog.RawRecord
	recipeLines    []entity.RecipeLine

	entries     []entity.Entry
	transfers   []entity.Transfer
	consumption []entity.SaleConsumption
	seen        map[string]bool // tuplas completas ya registradas

	audits         map[string]entity.Audit // por fecha YYYY-MM-DD
	openingCounts  map[string][]entity.AuditCount
	openingResults map[string][]entity.OpeningResult
	closingCounts  map[string][]entity.AuditCount
	closingResults map[string][]entity.ReconciliationResult

	snapshots map[string]snapshotSet // por fecha YYYY-MM-DD; vigente = la más reciente
}

// snapshotSet línea base materializada por un cierre confirmado.
type snapshotSet struct {
	date time.Time
	rows []entity.StockSnapshot
}

// NewStore construye el almacén vacío.
func NewStore() *Store {
	return &Store{
		seen:           make(map[string]bool),
		audits:         make(map[string]entity.Audit),
		openingCounts:  make(map[string][]entity.AuditCount),
		openingResults: make(map[string][]entity.OpeningResult),
		closingCounts:  make(map[string][]entity.AuditCount),
		closingResults: make(map[string][]entity.ReconciliationResult),
		snapshots:      make(map[string]snapshotSet),
	}
}

// SeedCatalog carga las filas crudas del catálogo.
func (s *Store) SeedCatalog(records []catalog.RawRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogRecords = append([]catalog.RawRecord(nil), records...)
}

// SeedRecipes carga la hoja de recetas.
func (s *Store) SeedRecipes(lines []entity.RecipeLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipeLines = append([]entity.RecipeLine(nil), lines...)
}

// inRange: pertenencia a la partición diaria [from, to]; nil no acota.
func inRange(date time.Time, from, to *time.Time) bool {
	day := entity.DateKey(date)
	if from != nil && day < entity.DateKey(*from) {
		return false
	}
	if to != nil && day > entity.DateKey(*to) {
		return false
	}
	return true
}

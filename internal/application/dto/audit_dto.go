package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// AuditCountRow una fila de conteo físico. Los punteros distinguen columna
// ausente de valor cero: un conteo de 0 es válido, un conteo ausente aborta
// toda la auditoría.
type AuditCountRow struct {
	Item        string           `json:"item"`
	Subcategory string           `json:"subcategory"`
	Location    string           `json:"location,omitempty"`
	Count       *decimal.Decimal `json:"count"`
	Requisition *decimal.Decimal `json:"requisition,omitempty"`
}

// AuditRequest body para POST /api/audits/opening y /api/audits/closing.
// Location a nivel de request fija el alcance (auditoría de una sola
// ubicación); vacío significa auditoría general y cada fila debe traer
// su propia ubicación.
type AuditRequest struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Location string          `json:"location,omitempty"`
	Rows     []AuditCountRow `json:"rows"`
}

// OpeningResponse resultado de registrar una apertura.
type OpeningResponse struct {
	Date     string                 `json:"date"`
	Status   string                 `json:"status"`
	Results  []entity.OpeningResult `json:"results"`
	Warnings []domain.Warning       `json:"warnings,omitempty"`
}

// ClosingResponse resultado de registrar un cierre.
type ClosingResponse struct {
	Date     string                        `json:"date"`
	Status   string                        `json:"status"`
	Results  []entity.ReconciliationResult `json:"results"`
	Warnings []domain.Warning              `json:"warnings,omitempty"`
}

// AuditStatusResponse estado de la auditoría de un día con sus resultados
// registrados hasta el momento.
type AuditStatusResponse struct {
	Date    string                        `json:"date"`
	Status  string                        `json:"status"`
	Opening []entity.OpeningResult        `json:"opening,omitempty"`
	Closing []entity.ReconciliationResult `json:"closing,omitempty"`
}

// ConfirmResponse resultado de confirmar el cierre de un día.
type ConfirmResponse struct {
	Date         string `json:"date"`
	Status       string `json:"status"`
	SnapshotRows int    `json:"snapshot_rows"`
}

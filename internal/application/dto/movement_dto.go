package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/domain"
)

// EntryRow entrada de mercancía a registrar (cantidad en unidades de venta).
type EntryRow struct {
	Item        string           `json:"item"`
	Subcategory string           `json:"subcategory"`
	Destination string           `json:"destination"`
	Quantity    *decimal.Decimal `json:"quantity"`
}

// RegisterEntriesRequest body para POST /api/movements/entries.
type RegisterEntriesRequest struct {
	Date string     `json:"date"` // YYYY-MM-DD
	Rows []EntryRow `json:"rows"`
}

// TransferRow transferencia interna a registrar (cantidad en unidades de venta).
type TransferRow struct {
	Item     string           `json:"item"`
	From     string           `json:"from"`
	To       string           `json:"to"`
	Quantity *decimal.Decimal `json:"quantity"`
}

// RegisterTransfersRequest body para POST /api/movements/transfers.
type RegisterTransfersRequest struct {
	Date string        `json:"date"`
	Rows []TransferRow `json:"rows"`
}

// RegisterMovementsResponse resultado de un registro con deduplicación:
// las filas repetidas (misma tupla completa) no se insertan dos veces.
type RegisterMovementsResponse struct {
	Received   int              `json:"received"`
	Inserted   int              `json:"inserted"`
	Duplicates int              `json:"duplicates"`
	Warnings   []domain.Warning `json:"warnings,omitempty"`
}

// HistoryRow fila unificada del historial de movimientos.
type HistoryRow struct {
	Date     string          `json:"date"`
	Type     string          `json:"type"` // ENTRADA, TRANSFERENCIA, CONSUMO
	Item     string          `json:"item"`
	From     string          `json:"from,omitempty"`
	To       string          `json:"to,omitempty"`
	Location string          `json:"location,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
}

// SkippedSource una fuente del historial que no pudo leerse, con su motivo.
// Reemplaza la lectura silenciosa: el fallo parcial siempre es visible.
type SkippedSource struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// HistoryResponse historial consolidado más fuentes omitidas.
type HistoryResponse struct {
	Movements []HistoryRow    `json:"movements"`
	Skipped   []SkippedSource `json:"skipped_sources,omitempty"`
}

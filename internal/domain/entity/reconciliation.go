package entity

import "github.com/shopspring/decimal"

// OpeningResult fila del informe de apertura: conteo físico contra el último
// cierre confirmado.
type OpeningResult struct {
	Item        string          `json:"item"`
	Location    string          `json:"location"`
	PrevClosing decimal.Decimal `json:"prev_closing"`
	Opening     decimal.Decimal `json:"opening"`
	Difference  decimal.Decimal `json:"difference"` // opening - prev_closing
}

// ReconciliationResult fila del informe de cierre: stock teórico proyectado
// desde la apertura más los movimientos del día, contra el conteo físico.
// Derivado, nunca es fuente de verdad.
type ReconciliationResult struct {
	Item                   string          `json:"item"`
	Location               string          `json:"location"`
	Opening                decimal.Decimal `json:"opening"`
	Entries                decimal.Decimal `json:"entries"`
	NetTransfers           decimal.Decimal `json:"net_transfers"`
	TheoreticalConsumption decimal.Decimal `json:"theoretical_consumption"`
	TheoreticalClosing     decimal.Decimal `json:"theoretical_closing"`
	PhysicalClosing        decimal.Decimal `json:"physical_closing"`
	Difference             decimal.Decimal `json:"difference"` // físico - teórico
	// Percent = Difference / TheoreticalClosing * 100; por convención de
	// presentación vale 0 cuando el teórico es 0 (no implica variación nula).
	Percent decimal.Decimal `json:"percent"`
}

// Clasificación informativa del stock teórico proyectado.
const (
	StockLevelOK       = "OK"
	StockLevelLow      = "BAJO"
	StockLevelDepleted = "AGOTADO"
	StockLevelNegative = "ANOMALO" // dato corrupto aguas arriba, nunca se recorta a 0
)

// ClassifyStock clasifica un stock teórico en unidad base. Un valor negativo
// señala un error de datos (entrada sin registrar o consumo de más) y debe
// distinguirse de cero.
func ClassifyStock(qty, lowThreshold decimal.Decimal) string {
	switch {
	case qty.IsNegative():
		return StockLevelNegative
	case qty.IsZero():
		return StockLevelDepleted
	case qty.LessThan(lowThreshold):
		return StockLevelLow
	default:
		return StockLevelOK
	}
}

// ProjectedStock stock teórico actual de un ítem en una ubicación.
type ProjectedStock struct {
	Item        string           `json:"item"`
	Subcategory string           `json:"subcategory"`
	Location    string           `json:"location"`
	Theoretical decimal.Decimal  `json:"theoretical"`       // unidad base
	Bottles     *decimal.Decimal `json:"bottles,omitempty"` // equivalente en unidades de venta; nil = no convertible
	Level       string           `json:"level"`
}

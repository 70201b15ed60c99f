package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockSnapshot última línea base confirmada por ítem y ubicación: el conteo
// físico del cierre confirmado más reciente. Es la única "verdad" promovible;
// toda proyección teórica posterior parte de aquí.
type StockSnapshot struct {
	Date     time.Time
	Item     string
	Location string
	Quantity decimal.Decimal // unidad base
}

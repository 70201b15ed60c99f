// Package ledger agrega el libro de movimientos por ítem y ubicación.
// Es agnóstico al rango: recibe el conjunto de registros que el llamador haya
// acotado (todo el historial o un solo día) y aplica siempre la misma fórmula.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// Breakdown sumas parciales del libro para un ítem en una ubicación.
type Breakdown struct {
	Entries      decimal.Decimal
	TransfersIn  decimal.Decimal
	TransfersOut decimal.Decimal
	Consumption  decimal.Decimal
}

// NetTransfers transferencias netas (entrantes - salientes).
func (b Breakdown) NetTransfers() decimal.Decimal {
	return b.TransfersIn.Sub(b.TransfersOut)
}

// NetDelta delta neto del libro:
// entradas + transferencias entrantes - salientes - consumo.
func (b Breakdown) NetDelta() decimal.Decimal {
	return b.Entries.Add(b.TransfersIn).Sub(b.TransfersOut).Sub(b.Consumption)
}

// Sum acumula los movimientos que afectan a un ítem en una ubicación.
// El consumo solo aplica en ubicaciones que consumen (Barra, Vinera): el
// almacén jamás descuenta ventas.
func Sum(item, location string, entries []entity.Entry, transfers []entity.Transfer, consumption []entity.SaleConsumption) Breakdown {
	var b Breakdown
	for _, e := range entries {
		if e.Item == item && e.Destination == location {
			b.Entries = b.Entries.Add(e.Quantity)
		}
	}
	for _, t := range transfers {
		if t.Item != item {
			continue
		}
		if t.To == location {
			b.TransfersIn = b.TransfersIn.Add(t.Quantity)
		}
		if t.From == location {
			b.TransfersOut = b.TransfersOut.Add(t.Quantity)
		}
	}
	if entity.IsConsumingLocation(location) {
		for _, c := range consumption {
			if c.Ingredient == item && c.ExitLocation == location {
				b.Consumption = b.Consumption.Add(c.Quantity)
			}
		}
	}
	return b
}

// NetDelta atajo cuando solo interesa el neto.
func NetDelta(item, location string, entries []entity.Entry, transfers []entity.Transfer, consumption []entity.SaleConsumption) decimal.Decimal {
	return Sum(item, location, entries, transfers, consumption).NetDelta()
}

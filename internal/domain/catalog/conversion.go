package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// Converter resuelve conversiones entre unidades de venta (botellas, tragos,
// conteos) y la unidad base del ítem (ml o unidad discreta), según el catálogo.
//
// Política fail-open: un ítem desconocido o sin factor válido deja pasar la
// cantidad sin convertir y devuelve la advertencia correspondiente; el motor
// nunca detiene un lote por un catálogo incompleto.
type Converter struct {
	items map[string]entity.CatalogItem
}

// NewConverter indexa el catálogo canónico por nombre de ítem.
func NewConverter(items []entity.CatalogItem) *Converter {
	idx := make(map[string]entity.CatalogItem, len(items))
	for _, it := range items {
		if _, ok := idx[it.Name]; !ok {
			idx[it.Name] = it
		}
	}
	return &Converter{items: idx}
}

// Lookup devuelve el ítem del catálogo por nombre exacto.
func (c *Converter) Lookup(name string) (entity.CatalogItem, bool) {
	it, ok := c.items[name]
	return it, ok
}

// ToBase convierte una cantidad en unidades de venta a unidad base.
//   - BOT: cantidad × volumen por botella
//   - TRG: cantidad × dosis
//   - desconocido o sin factor positivo: la cantidad pasa sin convertir (warning)
func (c *Converter) ToBase(item string, qty decimal.Decimal) (decimal.Decimal, *domain.Warning) {
	it, ok := c.items[item]
	if !ok {
		w := domain.Warnf(domain.WarnUnknownItem, item,
			"ítem '%s' no está en el catálogo; cantidad sin convertir", item)
		return qty, &w
	}
	factor := c.baseFactor(it)
	if !factor.IsPositive() {
		if it.IsComposite() {
			// Los CTL no se cuentan físicamente; no hay nada que convertir.
			return qty, nil
		}
		w := domain.Warnf(domain.WarnUnconvertible, item,
			"ítem '%s' sin factor de conversión válido; cantidad sin convertir", item)
		return qty, &w
	}
	return qty.Mul(factor), nil
}

// CountToBase convierte un conteo físico (botellas completas o unidades) a
// unidad base. A diferencia de ToBase, el tipo de venta no participa: una
// botella contada de un ítem TRG sigue siendo una botella completa, así que
// el factor es siempre el volumen por botella, nunca la dosis.
func (c *Converter) CountToBase(item string, qty decimal.Decimal) (decimal.Decimal, *domain.Warning) {
	it, ok := c.items[item]
	if !ok {
		w := domain.Warnf(domain.WarnUnknownItem, item,
			"ítem '%s' no está en el catálogo; cantidad sin convertir", item)
		return qty, &w
	}
	if it.BaseUnit == entity.BaseUnitEach {
		// Conteo discreto: la unidad de venta ya es la unidad base.
		return qty, nil
	}
	if !it.UnitCapacity.IsPositive() {
		if it.IsComposite() {
			return qty, nil
		}
		w := domain.Warnf(domain.WarnUnconvertible, item,
			"ítem '%s' sin volumen por botella; cantidad sin convertir", item)
		return qty, &w
	}
	return qty.Mul(it.UnitCapacity), nil
}

// ToSaleUnits convierte una cantidad en unidad base a unidades de venta
// (botellas). ok=false cuando el ítem es desconocido o el factor es cero o
// inválido: "no convertible" no es un error, el stock se reporta solo en base.
func (c *Converter) ToSaleUnits(item string, base decimal.Decimal) (decimal.Decimal, bool) {
	it, ok := c.items[item]
	if !ok {
		return decimal.Zero, false
	}
	factor := it.UnitCapacity
	if !factor.IsPositive() {
		return decimal.Zero, false
	}
	return base.Div(factor), true
}

// baseFactor: factor de unidad de venta a unidad base según tipo.
// Para TRG la unidad de venta es el trago, así que aplica la dosis, no la botella.
func (c *Converter) baseFactor(it entity.CatalogItem) decimal.Decimal {
	if it.SaleType == entity.SaleTypeDose {
		return it.DoseQuantity
	}
	return it.UnitCapacity
}

// Package catalog implementa los servicios de dominio sobre el catálogo:
// normalización de esquemas, conversión de unidades y resolución de recetas.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/pkg/normalize"
)

// RawRecord una fila de catálogo tal como llega de la fuente externa.
// Coexisten dos esquemas: el vigente (Unidad + Volumen_ml_por_unidad + Dosis_ml
// por tipo de venta) y el antiguo (par genérico Tipo de unidad / Cantidad por
// unidad). Normalize acepta ambos; el resto del motor solo ve CatalogItem.
type RawRecord struct {
	Name        string
	Subcategory string
	SaleType    string

	// Esquema vigente
	BaseUnit     string
	UnitCapacity *decimal.Decimal // volumen (ml) por botella
	DoseQuantity *decimal.Decimal // dosis (ml) por trago

	// Esquema antiguo
	LegacyUnitType        string           // "ml", "botella", "unidad"...
	LegacyQuantityPerUnit *decimal.Decimal // cantidad base por unidad de venta
}

// Normalize convierte filas crudas (en cualquiera de los dos esquemas) al
// modelo canónico. Prefiere las columnas vigentes cuando ambas están pobladas;
// la lógica por tipo de venta nunca depende de qué esquema se detectó.
// Nombres duplicados son un error de datos: gana la primera aparición y se
// reporta advertencia.
func Normalize(records []RawRecord) ([]entity.CatalogItem, []domain.Warning) {
	items := make([]entity.CatalogItem, 0, len(records))
	var warnings []domain.Warning
	seen := make(map[string]bool, len(records))

	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		if seen[name] {
			warnings = append(warnings, domain.Warnf(domain.WarnDuplicateItem, name,
				"ítem '%s' repetido en el catálogo; se conserva la primera fila", name))
			continue
		}
		seen[name] = true

		item := entity.CatalogItem{
			Name:        name,
			Subcategory: strings.TrimSpace(r.Subcategory),
			SaleType:    strings.ToUpper(strings.TrimSpace(r.SaleType)),
			BaseUnit:    baseUnit(r),
		}
		if cap, ok := positive(r.UnitCapacity); ok {
			item.UnitCapacity = cap
		} else if cap, ok := legacyCapacity(r); ok {
			item.UnitCapacity = cap
		}
		if dose, ok := positive(r.DoseQuantity); ok {
			item.DoseQuantity = dose
		}

		warnings = append(warnings, validate(item)...)
		items = append(items, item)
	}
	return items, warnings
}

// baseUnit resuelve la unidad base: columna vigente, luego tipo antiguo, luego ml.
func baseUnit(r RawRecord) string {
	if u := strings.TrimSpace(r.BaseUnit); u != "" {
		return strings.ToLower(u)
	}
	if normalize.Fold(r.LegacyUnitType) == entity.BaseUnitEach {
		return entity.BaseUnitEach
	}
	return entity.BaseUnitMl
}

// legacyCapacity: en el esquema antiguo "Cantidad por unidad" es la capacidad
// de la unidad de venta, salvo que el tipo sea "ml" (la cantidad ya viene en base).
func legacyCapacity(r RawRecord) (decimal.Decimal, bool) {
	if normalize.Fold(r.LegacyUnitType) == entity.BaseUnitMl {
		return decimal.Zero, false
	}
	return positive(r.LegacyQuantityPerUnit)
}

func positive(d *decimal.Decimal) (decimal.Decimal, bool) {
	if d != nil && d.IsPositive() {
		return *d, true
	}
	return decimal.Zero, false
}

// validate advierte inconsistencias por tipo de venta. No fatal: catálogos
// parciales son normales durante el alta de productos.
func validate(item entity.CatalogItem) []domain.Warning {
	var ws []domain.Warning
	switch item.SaleType {
	case entity.SaleTypeBottle:
		if !item.UnitCapacity.IsPositive() {
			ws = append(ws, domain.Warnf(domain.WarnMissingFactor, item.Name,
				"producto BOT '%s' sin volumen por unidad; sus cantidades no se convertirán", item.Name))
		}
	case entity.SaleTypeDose:
		if !item.DoseQuantity.IsPositive() {
			ws = append(ws, domain.Warnf(domain.WarnMissingFactor, item.Name,
				"producto TRG '%s' sin dosis; sus ventas no se convertirán", item.Name))
		}
	case entity.SaleTypeComposite:
		// Un CTL no tiene capacidad directa: se descuenta por receta.
	default:
		ws = append(ws, domain.Warnf(domain.WarnUnknownSaleType, item.Name,
			"tipo de venta '%s' desconocido para '%s'", item.SaleType, item.Name))
	}
	return ws
}

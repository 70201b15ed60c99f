package entity

import "github.com/shopspring/decimal"

// Tipos de venta del catálogo.
const (
	SaleTypeBottle    = "BOT" // botella completa: la unidad de venta es la botella
	SaleTypeDose      = "TRG" // trago: se vende por dosis (ml)
	SaleTypeComposite = "CTL" // coctel: se descuenta vía receta de ingredientes
)

// Unidades base conocidas.
const (
	BaseUnitMl   = "ml"
	BaseUnitEach = "unidad" // conteo discreto (latas, unidades)
)

// CatalogItem metadato canónico de un ítem del catálogo.
// El catálogo es referencia externa de solo lectura para el motor; las cargas
// en esquema antiguo se normalizan a esta forma antes de cualquier cálculo.
type CatalogItem struct {
	Name         string
	Subcategory  string
	SaleType     string          // BOT, TRG o CTL
	BaseUnit     string          // ml o unidad
	UnitCapacity decimal.Decimal // unidad base por botella (BOT); cero = desconocida
	DoseQuantity decimal.Decimal // unidad base por trago (TRG); cero = desconocida
}

// IsComposite indica si el ítem se vende por receta (no se almacena físicamente).
func (i CatalogItem) IsComposite() bool { return i.SaleType == SaleTypeComposite }

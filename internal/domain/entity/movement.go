package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro diario.
const (
	MovementTypeEntry       = "ENTRADA"
	MovementTypeTransfer    = "TRANSFERENCIA"
	MovementTypeConsumption = "CONSUMO"
)

// DateKey normaliza una fecha a su partición diaria (YYYY-MM-DD).
func DateKey(t time.Time) string { return t.Format("2006-01-02") }

// Entry entrada de mercancía (compra/proveedor) a una ubicación destino.
type Entry struct {
	ID          string
	Date        time.Time
	Item        string
	Subcategory string
	Destination string
	Quantity    decimal.Decimal // unidad base
}

// DedupKey tupla completa del registro; dos registros con la misma tupla
// cuentan una sola vez (reimportación idempotente).
func (e Entry) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s|%s", DateKey(e.Date), e.Item, e.Destination, e.Quantity.String())
}

// Transfer movimiento interno entre ubicaciones: suma en destino, resta en origen.
type Transfer struct {
	ID       string
	Date     time.Time
	Item     string
	From     string
	To       string
	Quantity decimal.Decimal // unidad base
}

// DedupKey tupla completa {fecha, ítem, desde, hacia, cantidad}.
func (t Transfer) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", DateKey(t.Date), t.Item, t.From, t.To, t.Quantity.String())
}

// SaleConsumption consumo teórico a nivel de ingrediente, derivado por el motor
// de expansión de ventas. Nunca lo captura un usuario directamente.
type SaleConsumption struct {
	ID           string
	Date         time.Time
	ProductSold  string
	Ingredient   string
	Unit         string
	Quantity     decimal.Decimal // unidad base
	ExitLocation string
}

// DedupKey tupla completa del consumo derivado.
func (c SaleConsumption) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", DateKey(c.Date), c.ProductSold, c.Ingredient, c.ExitLocation, c.Quantity.String())
}

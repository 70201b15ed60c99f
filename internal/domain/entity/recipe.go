package entity

import "github.com/shopspring/decimal"

// RecipeLine una línea de la receta de un producto compuesto (CTL):
// cuánta unidad base del ingrediente consume una unidad vendida del producto.
// Un ingrediente nunca puede ser a su vez CTL (no hay recetas anidadas).
type RecipeLine struct {
	Product         string          // producto vendido (CTL)
	Ingredient      string          // ítem del catálogo (BOT o TRG)
	QuantityPerUnit decimal.Decimal // unidad base consumida por unidad vendida
	Unit            string
}

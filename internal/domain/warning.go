package domain

import "fmt"

// Códigos de advertencia no fatales acumuladas durante un procesamiento por lotes.
// El motor nunca aborta un lote por una fila mala: la fila se omite o pasa sin
// convertir y la condición queda registrada aquí (ver también SchemaError, que
// sí es fatal).
const (
	WarnUnknownItem        = "ITEM_DESCONOCIDO"        // ítem no está en el catálogo
	WarnMissingRecipe      = "RECETA_FALTANTE"         // producto CTL sin receta: venta no descontada
	WarnUnknownSaleType    = "TIPO_VENTA_DESCONOCIDO"  // tipo de venta fuera de BOT/TRG/CTL
	WarnUnconvertible      = "NO_CONVERTIBLE"          // sin factor de capacidad/dosis válido
	WarnMissingFactor      = "FACTOR_FALTANTE"         // BOT sin volumen o TRG sin dosis en catálogo
	WarnDuplicateItem      = "ITEM_DUPLICADO"          // nombre repetido en el catálogo
	WarnUnknownIngredient  = "INGREDIENTE_DESCONOCIDO" // ingrediente de receta fuera del catálogo
	WarnRecipeNotComposite = "RECETA_NO_CTL"           // receta declarada para un producto no CTL
	WarnNestedComposite    = "RECETA_ANIDADA"          // ingrediente CTL dentro de una receta
	WarnUnknownLocation    = "UBICACION_DESCONOCIDA"   // ubicación fuera de Almacén/Barra/Vinera
	WarnNegativeCount      = "CONTEO_NEGATIVO"         // conteo físico negativo: anomalía reportable
	WarnNoOpeningAudit     = "SIN_AUDITORIA_APERTURA"  // cierre sin apertura: se asume 0
	WarnNegativeStock      = "STOCK_NEGATIVO"          // anomalía de datos, nunca se recorta a 0
)

// Warning condición no fatal detectada durante un cálculo por lotes.
// Se devuelve junto al resultado exitoso; el llamador decide cómo mostrarla.
type Warning struct {
	Code    string `json:"code"`
	Item    string `json:"item,omitempty"`
	Message string `json:"message"`
}

// Warnf construye una advertencia con mensaje formateado.
func Warnf(code, item, format string, args ...any) Warning {
	return Warning{Code: code, Item: item, Message: fmt.Sprintf(format, args...)}
}

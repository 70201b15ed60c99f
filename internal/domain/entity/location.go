package entity

import "github.com/jhoicas/Licorstock-api/pkg/normalize"

// Ubicaciones físicas del inventario.
const (
	LocationWarehouse = "Almacén" // almacén central, nunca consume por ventas
	LocationBar       = "Barra"
	LocationCellar    = "Vinera"
)

// Locations lista canónica de ubicaciones conocidas.
var Locations = []string{LocationWarehouse, LocationBar, LocationCellar}

// IsConsumingLocation indica si la ubicación descuenta consumo teórico por ventas.
// El almacén solo recibe entradas y transferencias; las ventas salen de Barra o Vinera.
func IsConsumingLocation(loc string) bool {
	return normalize.Equal(loc, LocationBar) || normalize.Equal(loc, LocationCellar)
}

// ParseLocation devuelve la ubicación canónica para un valor cargado
// (tolerante a tildes y mayúsculas: "almacen" -> "Almacén"). ok=false si no es conocida.
func ParseLocation(s string) (string, bool) {
	for _, loc := range Locations {
		if normalize.Equal(s, loc) {
			return loc, true
		}
	}
	return "", false
}

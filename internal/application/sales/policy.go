package sales

import (
	"strings"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/pkg/normalize"
)

// LocationPolicy decide la ubicación de salida de una venta cuando la fila
// no la trae. Es una política con nombre, no una regla enterrada: se inyecta
// en el caso de uso y se puede sustituir sin tocar el motor de expansión.
type LocationPolicy interface {
	ExitLocation(item entity.CatalogItem) string
}

// SubcategoryPolicy envía las subcategorías de vino a la vinera y todo lo
// demás a la barra. La comparación ignora mayúsculas y tildes.
type SubcategoryPolicy struct {
	wine []string
}

var _ LocationPolicy = (*SubcategoryPolicy)(nil)

// NewSubcategoryPolicy construye la política. Sin argumentos usa las
// subcategorías de vino del negocio.
func NewSubcategoryPolicy(wineSubcategories ...string) *SubcategoryPolicy {
	if len(wineSubcategories) == 0 {
		wineSubcategories = []string{"Vinos", "Vino Tinto", "Vino Blanco", "Vino Rosado", "Espumosos"}
	}
	folded := make([]string, 0, len(wineSubcategories))
	for _, s := range wineSubcategories {
		folded = append(folded, normalize.Fold(s))
	}
	return &SubcategoryPolicy{wine: folded}
}

// ExitLocation aplica la política de subcategoría.
func (p *SubcategoryPolicy) ExitLocation(item entity.CatalogItem) string {
	sub := normalize.Fold(item.Subcategory)
	for _, w := range p.wine {
		if sub == w {
			return entity.LocationCellar
		}
	}
	if strings.Contains(sub, "vino") || strings.Contains(sub, "espumoso") {
		return entity.LocationCellar
	}
	return entity.LocationBar
}

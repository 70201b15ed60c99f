package catalog

import (
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// RecipeBook resuelve los ingredientes de los productos compuestos (CTL).
// Las líneas conservan el orden de la fuente.
type RecipeBook struct {
	byProduct map[string][]entity.RecipeLine
	products  []string
}

// NewRecipeBook construye el libro de recetas. Una línea sin cantidad toma la
// dosis del ingrediente en el catálogo (comportamiento heredado de la hoja de
// recetas, donde la cantidad usada sale de Dosis_ml).
func NewRecipeBook(lines []entity.RecipeLine, items []entity.CatalogItem) *RecipeBook {
	doses := make(map[string]entity.CatalogItem, len(items))
	for _, it := range items {
		doses[it.Name] = it
	}

	book := &RecipeBook{byProduct: make(map[string][]entity.RecipeLine)}
	for _, line := range lines {
		if line.Product == "" || line.Ingredient == "" {
			continue
		}
		if !line.QuantityPerUnit.IsPositive() {
			if it, ok := doses[line.Ingredient]; ok {
				line.QuantityPerUnit = it.DoseQuantity
			}
		}
		if _, ok := book.byProduct[line.Product]; !ok {
			book.products = append(book.products, line.Product)
		}
		book.byProduct[line.Product] = append(book.byProduct[line.Product], line)
	}
	return book
}

// IngredientsFor devuelve las líneas de receta del producto, en orden.
// Vacío si el producto no tiene receta declarada: el llamador debe tratarlo
// como "no se puede vender" y reportar la omisión, nunca inventar consumo.
func (b *RecipeBook) IngredientsFor(product string) []entity.RecipeLine {
	return b.byProduct[product]
}

// Products devuelve los productos con receta, en orden de aparición.
func (b *RecipeBook) Products() []string { return b.products }

// Validate revisa el libro contra el catálogo. Todo es advertencia, nada fatal:
//   - receta declarada para un producto que no es CTL
//   - ingrediente inexistente en el catálogo
//   - ingrediente CTL (recetas anidadas prohibidas)
//   - producto CTL del catálogo sin receta
func (b *RecipeBook) Validate(items []entity.CatalogItem) []domain.Warning {
	byName := make(map[string]entity.CatalogItem, len(items))
	for _, it := range items {
		byName[it.Name] = it
	}

	var ws []domain.Warning
	for _, product := range b.products {
		if it, ok := byName[product]; ok && !it.IsComposite() {
			ws = append(ws, domain.Warnf(domain.WarnRecipeNotComposite, product,
				"'%s' tiene receta pero no está definido como CTL en el catálogo", product))
		}
		for _, line := range b.byProduct[product] {
			ing, ok := byName[line.Ingredient]
			if !ok {
				ws = append(ws, domain.Warnf(domain.WarnUnknownIngredient, line.Ingredient,
					"ingrediente '%s' de '%s' no existe en el catálogo", line.Ingredient, product))
				continue
			}
			if ing.IsComposite() {
				ws = append(ws, domain.Warnf(domain.WarnNestedComposite, line.Ingredient,
					"ingrediente '%s' de '%s' es CTL; no se permiten recetas anidadas", line.Ingredient, product))
			}
		}
	}
	for _, it := range items {
		if it.IsComposite() && len(b.byProduct[it.Name]) == 0 {
			ws = append(ws, domain.Warnf(domain.WarnMissingRecipe, it.Name,
				"producto CTL '%s' sin receta: sus ventas no descontarán inventario", it.Name))
		}
	}
	return ws
}

package repository

import (
	"context"

	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// CatalogRepository puerto de lectura del catálogo de productos.
// El catálogo es referencia externa: el motor nunca lo escribe.
// Devuelve filas crudas (en cualquiera de los dos esquemas); la normalización
// al modelo canónico es responsabilidad de catalog.Normalize.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]catalog.RawRecord, error)
}

// RecipeRepository puerto de lectura de la hoja de recetas (referencia externa).
type RecipeRepository interface {
	GetAll(ctx context.Context) ([]entity.RecipeLine, error)
}

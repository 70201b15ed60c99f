package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lectura del catálogo sobre PostgreSQL. La tabla conserva las
// columnas de ambos esquemas (vigente y antiguo); el adaptador de esquema
// decide cuál aplica fila a fila.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogo.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// GetAll devuelve todas las filas crudas del catálogo.
func (r *CatalogRepo) GetAll(ctx context.Context) ([]catalog.RawRecord, error) {
	query := `
		SELECT name, subcategory, sale_type,
		       base_unit, unit_capacity_ml, dose_ml,
		       legacy_unit_type, legacy_qty_per_unit
		FROM catalog_items
		ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catálogo: %w", err)
	}
	defer rows.Close()

	var out []catalog.RawRecord
	for rows.Next() {
		var rec catalog.RawRecord
		if err := rows.Scan(
			&rec.Name, &rec.Subcategory, &rec.SaleType,
			&rec.BaseUnit, &rec.UnitCapacity, &rec.DoseQuantity,
			&rec.LegacyUnitType, &rec.LegacyQuantityPerUnit,
		); err != nil {
			return nil, fmt.Errorf("scan catálogo: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar catálogo: %w", err)
	}
	return out, nil
}

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo lectura de la hoja de recetas sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas.
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// GetAll devuelve todas las líneas de receta en orden de captura.
func (r *RecipeRepo) GetAll(ctx context.Context) ([]entity.RecipeLine, error) {
	query := `
		SELECT product, ingredient, qty_per_unit, unit
		FROM recipe_lines
		ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query recetas: %w", err)
	}
	defer rows.Close()

	var out []entity.RecipeLine
	for rows.Next() {
		var line entity.RecipeLine
		if err := rows.Scan(&line.Product, &line.Ingredient, &line.QuantityPerUnit, &line.Unit); err != nil {
			return nil, fmt.Errorf("scan receta: %w", err)
		}
		out = append(out, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar recetas: %w", err)
	}
	return out, nil
}

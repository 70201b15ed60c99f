// Package catalog expone las consultas de catálogo: listado normalizado,
// libro de recetas validado y plantilla oficial de conteo físico.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
)

// UseCase consultas de solo lectura sobre catálogo y recetas.
type UseCase struct {
	catalogRepo repository.CatalogRepository
	recipeRepo  repository.RecipeRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalogRepo repository.CatalogRepository, recipeRepo repository.RecipeRepository) *UseCase {
	return &UseCase{catalogRepo: catalogRepo, recipeRepo: recipeRepo}
}

// GetCatalog devuelve el catálogo normalizado al esquema canónico, con las
// advertencias de validación (factores faltantes, duplicados, tipos raros).
func (uc *UseCase) GetCatalog(ctx context.Context) (dto.CatalogResponse, error) {
	records, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		return dto.CatalogResponse{}, fmt.Errorf("obteniendo catálogo: %w", err)
	}
	items, warnings := catalog.Normalize(records)

	resp := dto.CatalogResponse{
		Items:    make([]dto.CatalogItemDTO, 0, len(items)),
		Warnings: warnings,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.FromCatalogItem(it))
	}
	return resp, nil
}

// GetRecipes devuelve el libro de recetas resuelto contra el catálogo
// (las líneas sin cantidad toman la dosis del ingrediente) y las
// advertencias de consistencia del libro.
func (uc *UseCase) GetRecipes(ctx context.Context) (dto.RecipesResponse, error) {
	records, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		return dto.RecipesResponse{}, fmt.Errorf("obteniendo catálogo: %w", err)
	}
	items, warnings := catalog.Normalize(records)

	lines, err := uc.recipeRepo.GetAll(ctx)
	if err != nil {
		return dto.RecipesResponse{}, fmt.Errorf("obteniendo recetas: %w", err)
	}
	book := catalog.NewRecipeBook(lines, items)
	warnings = append(warnings, book.Validate(items)...)

	resp := dto.RecipesResponse{Warnings: warnings}
	for _, product := range book.Products() {
		for _, line := range book.IngredientsFor(product) {
			resp.Lines = append(resp.Lines, dto.RecipeLineDTO{
				Product:         line.Product,
				Ingredient:      line.Ingredient,
				QuantityPerUnit: line.QuantityPerUnit,
				Unit:            line.Unit,
			})
		}
	}
	return resp, nil
}

// Template genera la plantilla de conteo físico de una fecha: una fila por
// ítem × ubicación con los campos de conteo en blanco. Los CTL no aparecen,
// no se cuentan físicamente.
func (uc *UseCase) Template(ctx context.Context, date time.Time) ([]dto.TemplateRow, error) {
	records, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("obteniendo catálogo: %w", err)
	}
	items, _ := catalog.Normalize(records)

	rows := make([]dto.TemplateRow, 0, len(items)*len(entity.Locations))
	for _, it := range items {
		if it.IsComposite() {
			continue
		}
		for _, loc := range entity.Locations {
			rows = append(rows, dto.TemplateRow{
				Date:        entity.DateKey(date),
				Item:        it.Name,
				Subcategory: it.Subcategory,
				Location:    loc,
			})
		}
	}
	return rows, nil
}

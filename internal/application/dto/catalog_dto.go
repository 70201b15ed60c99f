package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// CatalogItemDTO ítem del catálogo normalizado al esquema canónico.
type CatalogItemDTO struct {
	Item         string          `json:"item"`
	Subcategory  string          `json:"subcategory"`
	SaleType     string          `json:"sale_type"`
	BaseUnit     string          `json:"base_unit"`
	UnitCapacity decimal.Decimal `json:"unit_capacity"`
	DoseQuantity decimal.Decimal `json:"dose_quantity"`
}

// CatalogResponse catálogo normalizado más advertencias de validación.
type CatalogResponse struct {
	Items    []CatalogItemDTO `json:"items"`
	Warnings []domain.Warning `json:"warnings,omitempty"`
}

// RecipeLineDTO una línea de receta resuelta.
type RecipeLineDTO struct {
	Product         string          `json:"product"`
	Ingredient      string          `json:"ingredient"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	Unit            string          `json:"unit"`
}

// RecipesResponse libro de recetas más advertencias de validación.
type RecipesResponse struct {
	Lines    []RecipeLineDTO  `json:"lines"`
	Warnings []domain.Warning `json:"warnings,omitempty"`
}

// TemplateRow fila de la plantilla oficial de conteo físico
// (una por ítem × ubicación, con los campos de conteo vacíos).
type TemplateRow struct {
	Date         string `json:"date"`
	Item         string `json:"item"`
	Subcategory  string `json:"subcategory"`
	Location     string `json:"location"`
	OpeningCount string `json:"opening_count"`
	Requisition  string `json:"requisition"`
	ClosingCount string `json:"closing_count"`
	Notes        string `json:"notes"`
}

// FromCatalogItem mapea la entidad al DTO.
func FromCatalogItem(it entity.CatalogItem) CatalogItemDTO {
	return CatalogItemDTO{
		Item:         it.Name,
		Subcategory:  it.Subcategory,
		SaleType:     it.SaleType,
		BaseUnit:     it.BaseUnit,
		UnitCapacity: it.UnitCapacity,
		DoseQuantity: it.DoseQuantity,
	}
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/domain"
)

// SaleRow una línea de ventas del POS. ExitLocation es opcional: si falta,
// la política de subcategoría decide la ubicación de salida.
type SaleRow struct {
	Item         string           `json:"item"`
	Subcategory  string           `json:"subcategory"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"` // nil = 1 unidad
	ExitLocation string           `json:"exit_location,omitempty"`
}

// ProcessSalesRequest body para POST /api/sales/process.
type ProcessSalesRequest struct {
	Date string    `json:"date"` // YYYY-MM-DD
	Rows []SaleRow `json:"rows"`
}

// ConsumptionRowDTO consumo teórico derivado a nivel de ingrediente.
type ConsumptionRowDTO struct {
	Date         string          `json:"date"`
	ProductSold  string          `json:"product_sold"`
	Ingredient   string          `json:"ingredient"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	ExitLocation string          `json:"exit_location"`
}

// ProcessSalesResponse consumo derivado más advertencias del lote.
type ProcessSalesResponse struct {
	Consumption []ConsumptionRowDTO `json:"consumption"`
	Inserted    int                 `json:"inserted"`
	Warnings    []domain.Warning    `json:"warnings,omitempty"`
}

package dto

import (
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// StockResponse proyección de stock teórico por ítem y ubicación.
// BaselineDate es la fecha del último cierre confirmado; vacía cuando la
// proyección parte de cero.
type StockResponse struct {
	BaselineDate string                  `json:"baseline_date,omitempty"`
	Rows         []entity.ProjectedStock `json:"rows"`
	Warnings     []domain.Warning        `json:"warnings,omitempty"`
}

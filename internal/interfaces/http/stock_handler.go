package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Licorstock-api/internal/application/stock"
)

// StockHandler maneja la proyección de stock teórico.
type StockHandler struct {
	uc *stock.ProjectUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.ProjectUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Project godoc
// @Summary      Stock teórico proyectado
// @Description  Línea base del último cierre confirmado más el delta neto del libro; los negativos se reportan tal cual
// @Tags         stock
// @Produce      json
// @Param        location  query  string  false  "Almacén, Barra o Vinera; vacío = todas"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Project(c *fiber.Ctx) error {
	resp, err := h.uc.Project(c.Context(), c.Query("location"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PDF godoc
// @Summary      Informe PDF del stock proyectado
// @Tags         stock
// @Produce      application/pdf
// @Param        location  query  string  false  "Almacén, Barra o Vinera; vacío = todas"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/pdf [get]
func (h *StockHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.uc.PDF(c.Context(), c.Query("location"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.pdf"`)
	return c.Send(doc)
}

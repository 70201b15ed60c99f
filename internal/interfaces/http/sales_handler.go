package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/application/sales"
)

// SalesHandler maneja el procesamiento de ventas del POS.
type SalesHandler struct {
	uc *sales.ProcessSalesUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.ProcessSalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Process godoc
// @Summary      Procesar lote de ventas
// @Description  Expande cada venta en consumo teórico por ingrediente (BOT/TRG/CTL) y lo anexa al libro deduplicado
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessSalesRequest  true  "Fecha y líneas de venta"
// @Success      200   {object}  dto.ProcessSalesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/process [post]
func (h *SalesHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessSalesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use YYYY-MM-DD"})
	}
	resp, err := h.uc.Process(c.Context(), date, in.Rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

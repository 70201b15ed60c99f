package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Licorstock-api/internal/application/audit"
	"github.com/jhoicas/Licorstock-api/internal/application/dto"
)

// AuditHandler maneja el ciclo de auditoría física diaria.
type AuditHandler struct {
	uc *audit.UseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.UseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// RegisterOpening godoc
// @Summary      Registrar auditoría de apertura
// @Description  Valida la plantilla completa (todo-o-nada), convierte a unidad base y compara contra el último cierre confirmado
// @Tags         audits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuditRequest  true  "Fecha, alcance y filas de conteo"
// @Success      201   {object}  dto.OpeningResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/audits/opening [post]
func (h *AuditHandler) RegisterOpening(c *fiber.Ctx) error {
	var in dto.AuditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.RegisterOpening(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RegisterClosing godoc
// @Summary      Registrar auditoría de cierre
// @Description  Reconcilia el conteo físico contra el cierre teórico del día (apertura + entradas + transferencias netas - consumo)
// @Tags         audits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuditRequest  true  "Fecha, alcance y filas de conteo"
// @Success      201   {object}  dto.ClosingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/audits/closing [post]
func (h *AuditHandler) RegisterClosing(c *fiber.Ctx) error {
	var in dto.AuditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.RegisterClosing(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Confirm godoc
// @Summary      Confirmar auditoría
// @Description  Materializa el cierre físico como nueva línea base de stock; estado terminal, no se puede reconfirmar
// @Tags         audits
// @Produce      json
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.ConfirmResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/audits/{date}/confirm [post]
func (h *AuditHandler) Confirm(c *fiber.Ctx) error {
	date, err := pathDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use YYYY-MM-DD"})
	}
	resp, err := h.uc.Confirm(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary      Estado de la auditoría de una fecha
// @Tags         audits
// @Produce      json
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.AuditStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/audits/{date} [get]
func (h *AuditHandler) Get(c *fiber.Ctx) error {
	date, err := pathDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use YYYY-MM-DD"})
	}
	resp, err := h.uc.Get(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// OpeningPDF godoc
// @Summary      Informe PDF de la apertura
// @Tags         audits
// @Produce      application/pdf
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/audits/{date}/opening/pdf [get]
func (h *AuditHandler) OpeningPDF(c *fiber.Ctx) error {
	date, err := pathDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use YYYY-MM-DD"})
	}
	doc, err := h.uc.OpeningPDF(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, doc, "apertura", date)
}

// ClosingPDF godoc
// @Summary      Informe PDF del cierre
// @Tags         audits
// @Produce      application/pdf
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/audits/{date}/closing/pdf [get]
func (h *AuditHandler) ClosingPDF(c *fiber.Ctx) error {
	date, err := pathDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use YYYY-MM-DD"})
	}
	doc, err := h.uc.ClosingPDF(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, doc, "cierre", date)
}

func pathDate(c *fiber.Ctx) (time.Time, error) {
	return dto.ParseDate(c.Params("date"))
}

func sendPDF(c *fiber.Ctx, doc []byte, phase string, date time.Time) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="auditoria_%s_%s.pdf"`, phase, date.Format("2006-01-02")))
	return c.Send(doc)
}

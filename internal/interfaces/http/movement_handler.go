package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/application/movements"
)

// MovementHandler maneja el registro y consulta del libro de movimientos.
type MovementHandler struct {
	uc *movements.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movements.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RegisterEntries godoc
// @Summary      Registrar entradas de mercancía
// @Description  Anexa entradas al libro; las filas repetidas no se insertan dos veces
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntriesRequest  true  "Fecha y entradas"
// @Success      201   {object}  dto.RegisterMovementsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements/entries [post]
func (h *MovementHandler) RegisterEntries(c *fiber.Ctx) error {
	var in dto.RegisterEntriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use YYYY-MM-DD"})
	}
	resp, err := h.uc.RegisterEntries(c.Context(), date, in.Rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RegisterTransfers godoc
// @Summary      Registrar transferencias internas
// @Description  Anexa transferencias entre ubicaciones al libro deduplicado
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransfersRequest  true  "Fecha y transferencias"
// @Success      201   {object}  dto.RegisterMovementsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements/transfers [post]
func (h *MovementHandler) RegisterTransfers(c *fiber.Ctx) error {
	var in dto.RegisterTransfersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use YYYY-MM-DD"})
	}
	resp, err := h.uc.RegisterTransfers(c.Context(), date, in.Rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// History godoc
// @Summary      Historial consolidado de movimientos
// @Description  Une entradas, transferencias y consumo; una fuente ilegible se reporta como omitida en vez de tumbar la consulta
// @Tags         movements
// @Produce      json
// @Param        from      query  string  false  "Desde YYYY-MM-DD"
// @Param        to        query  string  false  "Hasta YYYY-MM-DD"
// @Param        item      query  string  false  "Filtrar por ítem"
// @Param        location  query  string  false  "Filtrar por ubicación"
// @Param        type      query  string  false  "ENTRADA, TRANSFERENCIA o CONSUMO"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/history [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	filter := movements.HistoryFilter{
		Item:     c.Query("item"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
	}
	var err error
	if filter.From, err = optionalDate(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'from' inválida, use YYYY-MM-DD"})
	}
	if filter.To, err = optionalDate(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'to' inválida, use YYYY-MM-DD"})
	}

	resp, err := h.uc.History(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := dto.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

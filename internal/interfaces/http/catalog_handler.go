package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Licorstock-api/internal/application/catalog"
	"github.com/jhoicas/Licorstock-api/internal/application/dto"
)

// CatalogHandler maneja las consultas de catálogo, recetas y plantilla.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GetCatalog godoc
// @Summary      Catálogo normalizado
// @Description  Devuelve el catálogo en el esquema canónico con advertencias
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	resp, err := h.uc.GetCatalog(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetRecipes godoc
// @Summary      Libro de recetas
// @Description  Devuelve las recetas resueltas contra el catálogo, con advertencias de consistencia
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.RecipesResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/recipes [get]
func (h *CatalogHandler) GetRecipes(c *fiber.Ctx) error {
	resp, err := h.uc.GetRecipes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetTemplate godoc
// @Summary      Plantilla de conteo físico
// @Description  Una fila por ítem y ubicación con los campos de conteo vacíos
// @Tags         catalog
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD (por defecto hoy)"
// @Success      200  {array}   dto.TemplateRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog/template [get]
func (h *CatalogHandler) GetTemplate(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use YYYY-MM-DD"})
		}
		date = parsed
	}
	rows, err := h.uc.Template(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Package sales implementa el procesamiento de ventas del POS: cada línea se
// expande en consumo teórico por ingrediente según el tipo de venta y se
// anexa al libro de movimientos.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Licorstock-api/internal/application/dto"
	"github.com/jhoicas/Licorstock-api/internal/domain"
	"github.com/jhoicas/Licorstock-api/internal/domain/catalog"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
	"github.com/jhoicas/Licorstock-api/internal/domain/repository"
)

// ProcessSalesUseCase expande ventas en consumo teórico y lo persiste
// deduplicado. La expansión es determinista: mismo catálogo, mismas recetas
// y mismas ventas producen exactamente las mismas filas.
type ProcessSalesUseCase struct {
	catalogRepo  repository.CatalogRepository
	recipeRepo   repository.RecipeRepository
	movementRepo repository.MovementRepository
	policy       LocationPolicy
}

// NewProcessSalesUseCase construye el caso de uso.
func NewProcessSalesUseCase(
	catalogRepo repository.CatalogRepository,
	recipeRepo repository.RecipeRepository,
	movementRepo repository.MovementRepository,
	policy LocationPolicy,
) *ProcessSalesUseCase {
	return &ProcessSalesUseCase{
		catalogRepo:  catalogRepo,
		recipeRepo:   recipeRepo,
		movementRepo: movementRepo,
		policy:       policy,
	}
}

// Process expande el lote de ventas de una fecha y anexa el consumo derivado
// al libro. Las filas malas (ítem desconocido, tipo raro, CTL sin receta) se
// omiten con advertencia; el lote nunca se aborta por una fila.
func (uc *ProcessSalesUseCase) Process(ctx context.Context, date time.Time, rows []dto.SaleRow) (dto.ProcessSalesResponse, error) {
	records, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		return dto.ProcessSalesResponse{}, fmt.Errorf("obteniendo catálogo: %w", err)
	}
	items, warnings := catalog.Normalize(records)
	if len(items) == 0 {
		return dto.ProcessSalesResponse{}, domain.ErrEmptyCatalog
	}

	lines, err := uc.recipeRepo.GetAll(ctx)
	if err != nil {
		return dto.ProcessSalesResponse{}, fmt.Errorf("obteniendo recetas: %w", err)
	}
	conv := catalog.NewConverter(items)
	book := catalog.NewRecipeBook(lines, items)

	var consumption []entity.SaleConsumption
	for _, row := range rows {
		expanded, ws := uc.expand(date, row, conv, book)
		consumption = append(consumption, expanded...)
		warnings = append(warnings, ws...)
	}

	inserted, err := uc.movementRepo.AppendConsumption(ctx, consumption)
	if err != nil {
		return dto.ProcessSalesResponse{}, fmt.Errorf("registrando consumo: %w", err)
	}

	resp := dto.ProcessSalesResponse{
		Consumption: make([]dto.ConsumptionRowDTO, 0, len(consumption)),
		Inserted:    inserted,
		Warnings:    warnings,
	}
	for _, c := range consumption {
		resp.Consumption = append(resp.Consumption, dto.ConsumptionRowDTO{
			Date:         entity.DateKey(c.Date),
			ProductSold:  c.ProductSold,
			Ingredient:   c.Ingredient,
			Unit:         c.Unit,
			Quantity:     c.Quantity,
			ExitLocation: c.ExitLocation,
		})
	}
	return resp, nil
}

// expand deriva las filas de consumo de una línea de venta según el tipo:
//   - BOT: el ingrediente es el propio ítem, cantidad convertida a unidad base
//   - TRG: el ingrediente es el propio ítem, cantidad × dosis
//   - CTL: una fila por ingrediente de la receta; sin receta no se inventa
//     consumo, la venta queda advertida y sin descontar
func (uc *ProcessSalesUseCase) expand(date time.Time, row dto.SaleRow, conv *catalog.Converter, book *catalog.RecipeBook) ([]entity.SaleConsumption, []domain.Warning) {
	name := strings.TrimSpace(row.Item)
	if name == "" {
		return nil, nil
	}
	qty := decimal.NewFromInt(1)
	if row.Quantity != nil {
		qty = *row.Quantity
	}
	if !qty.IsPositive() {
		return nil, nil
	}

	it, ok := conv.Lookup(name)
	if !ok {
		return nil, []domain.Warning{domain.Warnf(domain.WarnUnknownItem, name,
			"venta de '%s' omitida: no está en el catálogo", name)}
	}
	exitLoc := uc.exitLocation(row, it)

	switch it.SaleType {
	case entity.SaleTypeBottle, entity.SaleTypeDose:
		base, w := conv.ToBase(name, qty)
		var ws []domain.Warning
		if w != nil {
			ws = append(ws, *w)
		}
		return []entity.SaleConsumption{{
			ID:           uuid.NewString(),
			Date:         date,
			ProductSold:  name,
			Ingredient:   name,
			Unit:         it.BaseUnit,
			Quantity:     base,
			ExitLocation: exitLoc,
		}}, ws

	case entity.SaleTypeComposite:
		recipe := book.IngredientsFor(name)
		if len(recipe) == 0 {
			return nil, []domain.Warning{domain.Warnf(domain.WarnMissingRecipe, name,
				"venta de '%s' sin receta: no se descuenta inventario", name)}
		}
		out := make([]entity.SaleConsumption, 0, len(recipe))
		for _, line := range recipe {
			out = append(out, entity.SaleConsumption{
				ID:           uuid.NewString(),
				Date:         date,
				ProductSold:  name,
				Ingredient:   line.Ingredient,
				Unit:         uc.lineUnit(line, conv),
				Quantity:     line.QuantityPerUnit.Mul(qty),
				ExitLocation: exitLoc,
			})
		}
		return out, nil

	default:
		return nil, []domain.Warning{domain.Warnf(domain.WarnUnknownSaleType, name,
			"venta de '%s' omitida: tipo de venta '%s' desconocido", name, it.SaleType)}
	}
}

// exitLocation: la fila manda si trae ubicación; si no, decide la política.
func (uc *ProcessSalesUseCase) exitLocation(row dto.SaleRow, it entity.CatalogItem) string {
	raw := strings.TrimSpace(row.ExitLocation)
	if raw == "" {
		return uc.policy.ExitLocation(it)
	}
	if canonical, ok := entity.ParseLocation(raw); ok {
		return canonical
	}
	return raw
}

// lineUnit: unidad declarada en la receta o, en su defecto, la base del ingrediente.
func (uc *ProcessSalesUseCase) lineUnit(line entity.RecipeLine, conv *catalog.Converter) string {
	if line.Unit != "" {
		return line.Unit
	}
	if ing, ok := conv.Lookup(line.Ingredient); ok {
		return ing.BaseUnit
	}
	return entity.BaseUnitMl
}

// Package pdf genera los informes imprimibles del motor con Maroto v2:
// apertura, cierre reconciliado y stock proyectado. Una tabla por informe,
// con encabezado corporativo y fila de resaltado cuando hay diferencias.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Licorstock-api/internal/application/audit"
	"github.com/jhoicas/Licorstock-api/internal/application/stock"
	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 92, Green: 26, Blue: 26}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa los puertos de informes con Maroto v2.
type MarotoReportGenerator struct {
	businessName string
}

var (
	_ audit.ReportGenerator = (*MarotoReportGenerator)(nil)
	_ stock.ReportGenerator = (*MarotoReportGenerator)(nil)
)

// NewMarotoReportGenerator construye el generador con el nombre del negocio
// que encabeza cada informe.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{businessName: businessName}
}

// OpeningReport genera el informe de apertura de la fecha.
func (g *MarotoReportGenerator) OpeningReport(date time.Time, rows []entity.OpeningResult) ([]byte, error) {
	m := g.newDocument("Auditoría de Apertura", date)

	m.AddRows(tableHeader(
		headCol{4, "Ítem"}, headCol{2, "Ubicación"}, headCol{2, "Cierre anterior"},
		headCol{2, "Conteo apertura"}, headCol{2, "Diferencia"},
	))
	for _, r := range rows {
		diffColor := colorGray
		if !r.Difference.IsZero() {
			diffColor = colorAlert
		}
		m.AddRows(row.New(6).Add(
			textCol(4, r.Item, colorGray, align.Left),
			textCol(2, r.Location, colorGray, align.Left),
			textCol(2, r.PrevClosing.String(), colorGray, align.Right),
			textCol(2, r.Opening.String(), colorGray, align.Right),
			textCol(2, r.Difference.String(), diffColor, align.Right),
		))
	}

	return generate(m)
}

// ClosingReport genera el informe de cierre reconciliado de la fecha.
func (g *MarotoReportGenerator) ClosingReport(date time.Time, rows []entity.ReconciliationResult) ([]byte, error) {
	m := g.newDocument("Auditoría de Cierre", date)

	m.AddRows(tableHeader(
		headCol{3, "Ítem"}, headCol{1, "Ubic."}, headCol{2, "Apertura"}, headCol{2, "Teórico"},
		headCol{2, "Físico"}, headCol{1, "Dif."}, headCol{1, "%"},
	))
	for _, r := range rows {
		diffColor := colorGray
		if !r.Difference.IsZero() {
			diffColor = colorAlert
		}
		m.AddRows(row.New(6).Add(
			textCol(3, r.Item, colorGray, align.Left),
			textCol(1, r.Location, colorGray, align.Left),
			textCol(2, r.Opening.String(), colorGray, align.Right),
			textCol(2, r.TheoreticalClosing.String(), colorGray, align.Right),
			textCol(2, r.PhysicalClosing.String(), colorGray, align.Right),
			textCol(1, r.Difference.String(), diffColor, align.Right),
			textCol(1, r.Percent.String(), diffColor, align.Right),
		))
	}

	return generate(m)
}

// StockReport genera el informe de stock teórico proyectado.
func (g *MarotoReportGenerator) StockReport(asOf time.Time, rows []entity.ProjectedStock) ([]byte, error) {
	m := g.newDocument("Stock Proyectado", asOf)

	m.AddRows(tableHeader(
		headCol{3, "Ítem"}, headCol{2, "Subcategoría"}, headCol{2, "Ubicación"},
		headCol{2, "Teórico"}, headCol{2, "Botellas"}, headCol{1, "Nivel"},
	))
	for _, r := range rows {
		bottles := "-"
		if r.Bottles != nil {
			bottles = r.Bottles.String()
		}
		levelColor := colorGray
		if r.Level == entity.StockLevelNegative || r.Level == entity.StockLevelDepleted {
			levelColor = colorAlert
		}
		m.AddRows(row.New(6).Add(
			textCol(3, r.Item, colorGray, align.Left),
			textCol(2, r.Subcategory, colorGray, align.Left),
			textCol(2, r.Location, colorGray, align.Left),
			textCol(2, r.Theoretical.String(), colorGray, align.Right),
			textCol(2, bottles, colorGray, align.Right),
			textCol(1, r.Level, levelColor, align.Right),
		))
	}

	return generate(m)
}

// newDocument crea la página A4 con el encabezado común de los informes.
func (g *MarotoReportGenerator) newDocument(title string, date time.Time) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(title, props.Text{Size: 10, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Fecha: "+date.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

// headCol título de columna con su ancho en la grilla de 12 de Maroto.
// Los anchos del encabezado deben coincidir con los de las filas del cuerpo.
type headCol struct {
	size  int
	title string
}

func tableHeader(cols ...headCol) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(
			text.New(c.title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		))
	}
	return row.New(7).Add(out...)
}

func textCol(size int, value string, color *props.Color, al align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Color: color, Align: al}))
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

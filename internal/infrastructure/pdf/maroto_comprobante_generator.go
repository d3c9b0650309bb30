// Package pdf genera el comprobante imprimible de una orden de trabajo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller      │  N° Orden + Fecha ingreso │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VEHÍCULO: patente / marca / modelo                         │
//	│  MECÁNICO: nombre asignado                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN del trabajo                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTADO + fecha de salida  │  COSTO TOTAL                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/taller-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoComprobanteGenerator genera el comprobante de orden usando Maroto v2.
type MarotoComprobanteGenerator struct {
	TallerNombre string
}

// NewMarotoComprobanteGenerator construye el generador.
func NewMarotoComprobanteGenerator(tallerNombre string) *MarotoComprobanteGenerator {
	if tallerNombre == "" {
		tallerNombre = "Taller Mecánico"
	}
	return &MarotoComprobanteGenerator{TallerNombre: tallerNombre}
}

// GenerateComprobantePDF genera el PDF de la orden y devuelve sus bytes.
func (g *MarotoComprobanteGenerator) GenerateComprobantePDF(
	_ context.Context,
	orden *entity.ReparacionDetalle,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Trabajo", true).
		WithAuthor(g.TallerNombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vehiculoRow(orden))
	m.AddRows(mecanicoRow(orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(descripcionRow(orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(orden))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del taller (izq) y N° de orden + fecha de ingreso (der).
func (g *MarotoComprobanteGenerator) headerRow(orden *entity.ReparacionDetalle) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.TallerNombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Orden de trabajo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("ORDEN N° %d", orden.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Ingreso: "+orden.FechaIngreso.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// vehiculoRow: patente, marca y modelo del vehículo.
func vehiculoRow(orden *entity.ReparacionDetalle) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VEHÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Patente: %s   |   Marca: %s   |   Modelo: %s",
				nonEmpty(orden.Patente, "—"),
				nonEmpty(orden.Marca, "—"),
				nonEmpty(orden.Modelo, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// mecanicoRow: mecánico asignado a la orden.
func mecanicoRow(orden *entity.ReparacionDetalle) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("MECÁNICO ASIGNADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(orden.MecanicoNombre, "—"), props.Text{
				Size: 9, Top: 6,
			}),
		),
	)
}

// descripcionRow: descripción libre del trabajo.
func descripcionRow(orden *entity.ReparacionDetalle) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("DESCRIPCIÓN DEL TRABAJO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(orden.Descripcion, "Sin descripción"), props.Text{
				Size: 9, Top: 7,
			}),
		),
	)
}

// totalesRow: estado, fecha de salida si existe, y costo total.
func totalesRow(orden *entity.ReparacionDetalle) core.Row {
	estado := orden.Estado
	if orden.FechaSalida != nil {
		estado += "   |   Salida: " + orden.FechaSalida.Format("02/01/2006")
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("ESTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(estado, props.Text{Size: 9, Top: 7}),
		),
		col.New(5).Add(
			text.New("COSTO TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("$ "+orden.Costo.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

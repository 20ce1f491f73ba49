// Package pdf genera la hoja de liquidación de distribuciones entre socio y proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + período   │  Fecha de emisión             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTES: Socio / Proveedor                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Kg | Venta | Socio | Proveedor    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Venta / Ganancia socio / Retorno proveedor         │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-carnes/internal/application/reports"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/pkg/format"
)

var _ reports.SettlementPDFGenerator = (*MarotoSettlementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 20, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSettlementGenerator implementa reports.SettlementPDFGenerator usando Maroto v2.
type MarotoSettlementGenerator struct{}

// NewMarotoSettlementGenerator construye el generador.
func NewMarotoSettlementGenerator() *MarotoSettlementGenerator { return &MarotoSettlementGenerator{} }

// GenerateSettlementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSettlementGenerator) GenerateSettlementPDF(
	_ context.Context,
	header reports.SettlementHeader,
	entries []*entity.Distribution,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Liquidación de distribuciones", true).
		WithAuthor(nonEmpty(header.BusinessName, "Gestión de carnes"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(header))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(header))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(entries)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(entries))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio + período (izq) y fecha de emisión (der).
func headerRow(h reports.SettlementHeader) core.Row {
	period := "Todo el historial"
	switch {
	case !h.From.IsZero() && !h.To.IsZero():
		period = fmt.Sprintf("Del %s al %s", format.Date(h.From), format.Date(h.To))
	case !h.From.IsZero():
		period = "Desde el " + format.Date(h.From)
	case !h.To.IsZero():
		period = "Hasta el " + format.Date(h.To)
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(h.BusinessName, "Gestión de carnes"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LIQUIDACIÓN DE DISTRIBUCIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitida: "+format.Date(h.GeneratedAt), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// partiesRow: socio y proveedor.
func partiesRow(h reports.SettlementHeader) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("SOCIO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(h.PartnerName, "—"), props.Text{Size: 10, Top: 6}),
		),
		col.New(6).Add(
			text.New("PROVEEDOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(h.SupplierName, "—"), props.Text{Size: 10, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Kg", 1, align.Right),
		h("Venta", 2, align.Right),
		h("Socio", 2, align.Right),
		h("Proveedor", 2, align.Right),
	)
}

// tableDetailRows: una fila por distribución con los totales del lote.
func tableDetailRows(entries []*entity.Distribution) []core.Row {
	result := make([]core.Row, 0, len(entries))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, d := range entries {
		result = append(result, row.New(7).Add(
			cell(format.Date(d.Date), 2, align.Left),
			cell(d.ProductName, 3, align.Left),
			cell(d.Quantity.String(), 1, align.Right),
			cell(format.Money(d.TotalSale), 2, align.Right),
			cell(format.Money(d.TotalPartnerProfit), 2, align.Right),
			cell(format.Money(d.TotalSupplierReturn), 2, align.Right),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(entries []*entity.Distribution) core.Row {
	sale, partner, supplierProfit, supplierReturn := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, d := range entries {
		sale = sale.Add(d.TotalSale)
		partner = partner.Add(d.TotalPartnerProfit)
		supplierProfit = supplierProfit.Add(d.TotalSupplierProfit)
		supplierReturn = supplierReturn.Add(d.TotalSupplierReturn)
	}

	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Total venta:", 1),
			label("Ganancia socio:", 7),
			label("Ganancia proveedor:", 13),
			label("Retorno proveedor:", 19),
		),
		col.New(4).Add(
			value(format.Money(sale), 1),
			value(format.Money(partner), 7),
			value(format.Money(supplierProfit), 13),
			value(format.Money(supplierReturn), 19),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

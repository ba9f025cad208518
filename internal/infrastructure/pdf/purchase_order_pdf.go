// Package pdf genera la representación imprimible de una orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprador + GST     │  N° OC + Fecha + Estado      │
//	│  PROVEEDOR: Razón social / contacto / GST                    │
//	│  TABLA: Cant | UOM | Producto | P.Unit | Total | Entrega     │
//	│  TOTAL                                                       │
//	│  CONDICIONES: pago + términos                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/Procurement-api/internal/application/purchasing"
)

var _ purchasing.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 24, Green: 64, Blue: 112}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa purchasing.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePurchaseOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePurchaseOrderPDF(_ context.Context, doc *purchasing.OrderDocument) ([]byte, error) {
	if doc == nil || doc.Order == nil || doc.Vendor == nil {
		return nil, fmt.Errorf("pdf: faltan orden o proveedor")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Purchase Order "+doc.Order.PONumber, true).
		WithAuthor(buyerName(doc), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vendorRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc))
	m.AddRows(termsRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc *purchasing.OrderDocument) core.Row {
	po := doc.Order
	gst := ""
	if doc.Organization != nil && doc.Organization.GSTNumber != "" {
		gst = "GST: " + doc.Organization.GSTNumber
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(buyerName(doc), props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(gst, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PURCHASE ORDER", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(po.PONumber, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New(fmt.Sprintf("Date: %s   Status: %s", po.CreatedAt.Format("2006-01-02"), strings.ToUpper(po.Status)),
				props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func vendorRow(doc *purchasing.OrderDocument) core.Row {
	v := doc.Vendor
	return row.New(16).Add(
		col.New(12).Add(
			text.New("VENDOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(v.CompanyName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Contact: %s   |   Email: %s   |   Phone: %s   |   GST: %s",
				v.ContactPerson, v.Email, nonEmpty(v.Phone, "-"), nonEmpty(v.GSTNumber, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("UOM", 1, align.Center),
		h("Item", 4, align.Left),
		h("Unit price", 2, align.Right),
		h("Total", 2, align.Right),
		h("Delivery", 2, align.Center),
	)
}

func tableLineRows(lines []purchasing.OrderLineForDocument) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.ProductName
		if l.InternalCode != "" {
			name = l.InternalCode + " - " + name
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(nonEmpty(l.UOM, "units"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(l.UnitPrice.StringFixed(2)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(l.TotalPrice.StringFixed(2)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(nonEmpty(l.DeliveryDate, "-"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return rows
}

func totalRow(doc *purchasing.OrderDocument) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2})),
		col.New(3).Add(text.New(formatMoney(doc.Order.TotalAmount.StringFixed(2)), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1})),
	)
}

func termsRows(doc *purchasing.OrderDocument) []core.Row {
	var rows []core.Row
	if doc.Order.PaymentTerms != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Payment terms: "+doc.Order.PaymentTerms, props.Text{Size: 8, Top: 3, Color: colorGray}),
		)))
	}
	if doc.Order.TermsAndConditions != "" {
		rows = append(rows, row.New(14).Add(col.New(12).Add(
			text.New(doc.Order.TermsAndConditions, props.Text{Size: 7, Top: 2, Color: colorGray}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func buyerName(doc *purchasing.OrderDocument) string {
	if doc.Organization != nil && doc.Organization.Name != "" {
		return doc.Organization.Name
	}
	return "SCLEN Procurement"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney agrega separador de miles a un número con dos decimales.
// Ej: "2500.00" → "2,500.00"
func formatMoney(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-" + string(buf) + frac
	}
	return string(buf) + frac
}

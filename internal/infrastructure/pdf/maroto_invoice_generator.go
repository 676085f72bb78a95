// Package pdf implementa la representación gráfica de la factura del
// acueducto con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre acueducto + NIT  │  Periodo + Fechas        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                            │
//	│  SUSCRIPTOR: Propietario + Matrícula                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONCEPTO: Servicio de acueducto del periodo                │
//	│  OBSERVACIONES: desglose de mora y multas (si aplica)       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR + fecha límite de pago                       │
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appbilling "github.com/jhoicas/acueducto-api/internal/application/billing"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Los montos se muestran con separador de miles colombiano ("1.000.000").
var moneyPrinter = message.NewPrinter(language.MustParse("es-CO"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInvoiceGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator construye el generador.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF genera el PDF de la factura y devuelve sus bytes.
// owner puede venir nil (predio sin propietario resuelto): el bloque del
// suscriptor sale con la matrícula sola.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	account *entity.Account,
	owner *entity.Owner,
	cfg *entity.BillingConfig,
) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de acueducto "+invoice.PeriodoFacturacion, true).
		WithAuthor(cfg.NombreAcueducto, true).
		Build()

	m := maroto.New(builder)

	m.AddRows(headerRow(invoice, cfg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(cfg))
	m.AddRows(suscriptorRow(account, owner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(conceptoRow(invoice))
	if invoice.Observaciones != "" {
		for _, r := range observacionesRows(invoice.Observaciones) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del acueducto + NIT (izq), periodo y fecha de emisión (der).
func headerRow(invoice *entity.Invoice, cfg *entity.BillingConfig) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(cfg.NombreAcueducto, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(cfg.NIT, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE SERVICIO DE ACUEDUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Periodo "+invoice.PeriodoFacturacion, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+invoice.FechaCreacion.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emisorRow: datos del acueducto emisor.
func emisorRow(cfg *entity.BillingConfig) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(cfg.Direccion, "—"),
				nonEmpty(cfg.Telefono, "—"),
				nonEmpty(cfg.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// suscriptorRow: propietario del predio y matrícula facturada.
func suscriptorRow(account *entity.Account, owner *entity.Owner) core.Row {
	nombre := "—"
	contacto := ""
	if owner != nil {
		nombre = owner.Nombre + " " + owner.Apellido
		contacto = fmt.Sprintf("CC: %s   |   Tel: %s   |   Dirección: %s",
			owner.CC, nonEmpty(owner.Telefono, "—"), nonEmpty(owner.Direccion, "—"))
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("SUSCRIPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Matrícula: "+account.CodMatricula, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
			text.New(contacto, props.Text{
				Size: 8, Top: 12, Left: 50, Color: colorGray,
			}),
		),
	)
}

// conceptoRow: el concepto facturado con su valor.
func conceptoRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Servicio de acueducto — periodo "+invoice.PeriodoFacturacion, props.Text{
				Size: 9, Top: 2, Left: 1,
			}),
		),
		col.New(4).Add(
			text.New("$"+formatMoney(invoice.Valor), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
			}),
		),
	)
}

// observacionesRows: desglose de mora y multas guardado en la factura.
func observacionesRows(obs string) []core.Row {
	rows := []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, chunk := range splitEvery(obs, 110) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 7, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// totalRow: total a pagar y fecha límite.
func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Pagar antes del "+invoice.FechaVencimiento.Format("02/01/2006"), props.Text{
				Size: 9, Top: 4, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New("TOTAL A PAGAR:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+formatMoney(invoice.Valor), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 1,
			}),
		),
	)
}

// footerRow: leyenda con la consecuencia del no pago.
func footerRow(invoice *entity.Invoice) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Después de la fecha límite la factura pasa a mora y su valor se acumula "+
				"en la facturación del siguiente periodo. Conserve este documento como soporte de pago.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea un monto con separador de miles es-CO.
// Ej: 1000000 → "1.000.000". Solo para presentación; los cálculos nunca
// pasan por float.
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(0)))
}

// splitEvery divide s en trozos de max n caracteres.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}

// Package pdf genera el demostrativo de cobrança de una cuota.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + CNPJ/CPF   │  Cobrança N° + Emissão       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SACADO: Dirección / Email / Contacto                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Descrição | Vencimento | Situação | Valor          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGO: Forma + Data (solo pagas)                            │
//	│  FOOTER: QR del boleto (si existe) + leyenda                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	appbilling "github.com/jhoicas/billing-portal/internal/application/billing"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/pkg/brdoc"
	"github.com/jhoicas/billing-portal/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorOverdue = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorPaid    = &props.Color{Red: 20, Green: 120, Blue: 60}
)

const displayDate = "02/01/2006"

var _ appbilling.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa billing.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateChargeStatement genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateChargeStatement(_ context.Context, st appbilling.ChargeStatement) ([]byte, error) {
	if st.Charge == nil || st.Company == nil {
		return nil, fmt.Errorf("pdf: cobranza y empresa son obligatorias")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Demonstrativo de cobrança %d", st.Charge.ID), true).
		WithAuthor(st.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(payerRow(st.Company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if st.Status == entity.ChargeStatusPaid {
		m.AddRows(paymentRow(st.Charge))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(st.Charge)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + documento (izq) y número + fecha de emisión (der).
func headerRow(st appbilling.ChargeStatement) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(st.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(documentLabel(st.Company.Document), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DEMONSTRATIVO DE COBRANÇA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", st.Charge.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emissão: "+st.IssuedOn.Format(displayDate), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// payerRow: datos de contacto de la empresa cobrada.
func payerRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SACADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Endereço: %s   |   Email: %s   |   Contato: %s",
				nonEmpty(company.Address, "-"),
				nonEmpty(company.Email, "-"),
				nonEmpty(company.ContactNumber, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descrição", 6, align.Left),
		h("Vencimento", 2, align.Center),
		h("Situação", 2, align.Center),
		h("Valor", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func detailRow(st appbilling.ChargeStatement) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(st.Charge.Title, props.Text{Size: 9, Top: 2, Left: 1})),
		col.New(2).Add(text.New(st.Charge.DueDate.Format(displayDate), props.Text{Size: 9, Align: align.Center, Top: 2})),
		col.New(2).Add(text.New(statusLabel(st.Status), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2, Color: statusColor(st.Status),
		})),
		col.New(2).Add(text.New(currency.FormatBRL(st.Charge.Amount), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}

// paymentRow: forma y fecha de pago de una cobranza paga.
func paymentRow(ch *entity.Charge) core.Row {
	paidOn := "-"
	if ch.PaymentDate != nil {
		paidOn = ch.PaymentDate.Format(displayDate)
	}
	return row.New(10).Add(
		col.New(6),
		col.New(6).Add(text.New(
			fmt.Sprintf("Pago em %s via %s", paidOn, nonEmpty(ch.PaymentMethod, "-")),
			props.Text{Size: 9, Align: align.Right, Top: 3, Right: 1, Color: colorPaid},
		)),
	)
}

// footerRows: QR con la referencia del boleto (si existe) + leyenda.
func footerRows(ch *entity.Charge) []core.Row {
	legend := text.New(
		"Documento sem valor fiscal. A nota fiscal correspondente é disponibilizada no portal.",
		props.Text{Size: 6.5, Color: colorGray, Top: 2},
	)
	if ch.BoletoFile == "" {
		return []core.Row{row.New(8).Add(col.New(12).Add(legend))}
	}
	return []core.Row{
		row.New(40).Add(
			col.New(3).Add(code.NewQr(ch.BoletoFile, props.Rect{Percent: 95, Center: true})),
			col.New(9).Add(
				text.New("Boleto disponível no portal:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 4, Left: 3}),
				text.New(ch.BoletoFile, props.Text{Size: 8, Top: 10, Left: 3, Color: colorGray}),
			),
		),
		row.New(8).Add(col.New(12).Add(legend)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func documentLabel(doc string) string {
	digits := brdoc.Digits(doc)
	if len(digits) == 14 {
		return "CNPJ: " + brdoc.FormatCNPJ(digits)
	}
	return "CPF/CNPJ: " + doc
}

func statusLabel(status string) string {
	switch status {
	case entity.ChargeStatusPaid:
		return "PAGO"
	case entity.ChargeStatusOverdue:
		return "VENCIDO"
	default:
		return "PENDENTE"
	}
}

func statusColor(status string) *props.Color {
	switch status {
	case entity.ChargeStatusPaid:
		return colorPaid
	case entity.ChargeStatusOverdue:
		return colorOverdue
	default:
		return colorGray
	}
}

// Package pdf dibuja el DANFE (documento auxiliar de la NF-e) con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  NOTA FISCAL ELETRÔNICA (NF-e) + subtítulo DANFE             │
//	│  EMITENTE: razão social, CNPJ, IE, endereço, contato         │
//	│  DADOS DA NF-e: número, série, emissão, protocolo, chave     │
//	│  DESTINATÁRIO: nome + documento e endereço mascarados        │
//	│  RESUMO DA VENDA: cliente, data, vendedor                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: # | SKU | Descrição | Qtd | Valor Unit. | Subtotal  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Subtotal / Desconto / Frete / VALOR TOTAL           │
//	│  INFORMAÇÕES ADICIONAIS                                      │
//	│  RODAPÉ (en cada página)                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/infostock-dashboard/internal/application/billing"
	"github.com/jhoicas/infostock-dashboard/pkg/nfe"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 41, Green: 128, Blue: 185}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDark    = &props.Color{Red: 33, Green: 33, Blue: 33}
)

// fecha fija en los metadatos: el mismo documento produce los mismos bytes
var fixedCreationDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoDANFERenderer implementa billing.InvoiceRenderer usando Maroto v2.
type MarotoDANFERenderer struct{}

// NewMarotoDANFERenderer construye el renderer.
func NewMarotoDANFERenderer() *MarotoDANFERenderer { return &MarotoDANFERenderer{} }

// Render genera el PDF y devuelve sus bytes. Maroto agrega páginas cuando la tabla
// no entra y repite el rodapé en cada una.
func (r *MarotoDANFERenderer) Render(_ context.Context, doc *billing.InvoiceDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.Issuer.Name, true).
		WithCreationDate(fixedCreationDate).
		Build()

	m := maroto.New(cfg)
	if err := m.RegisterFooter(footerRows(doc.Footer)...); err != nil {
		return nil, fmt.Errorf("pdf: registrar rodapé: %w", err)
	}

	m.AddRows(headerRows(doc)...)
	m.AddRows(separator(colorPrimary, 0.5))
	m.AddRows(issuerRows(doc.Issuer)...)
	m.AddRows(invoiceRows(doc.Invoice)...)
	m.AddRows(recipientRows(doc.Recipient)...)
	m.AddRows(summaryRows(doc.Summary)...)
	m.AddRows(separator(colorPrimary, 0.3))

	m.AddRows(sectionTitle("PRODUTOS / SERVIÇOS"))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(doc.Items)...)
	m.AddRows(separator(colorPrimary, 0.3))

	m.AddRows(totalsRows(doc.Totals)...)
	m.AddRows(additionalRows(doc.Additional)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(doc *billing.InvoiceDocument) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(doc.Subtitle, props.Text{Size: 9, Align: align.Center, Color: colorGray}),
		)),
	}
}

func issuerRows(is billing.Issuer) []core.Row {
	return []core.Row{
		sectionTitle("EMITENTE"),
		plain(is.Name, true),
		plain("CNPJ: "+is.CNPJ, false),
		plain("Inscrição Estadual: "+is.StateRegistration, false),
		plain("Endereço: "+is.Address, false),
		plain(is.Contact, false),
	}
}

// invoiceRows: dos columnas de pares rótulo/valor y la chave de acesso al final.
func invoiceRows(inv billing.InvoiceMeta) []core.Row {
	return []core.Row{
		sectionTitle("DADOS DA NF-e"),
		pair("NÚMERO", inv.Number, "SÉRIE", inv.Series),
		pair("DATA DE EMISSÃO", inv.IssuedAt, "PROTOCOLO", inv.Protocol),
		pair("TIPO", inv.Kind, "STATUS", inv.Status),
		labelValue("CHAVE DE ACESSO", nfe.FormatAccessKey(inv.AccessKey)),
	}
}

func recipientRows(rc billing.Recipient) []core.Row {
	return []core.Row{
		sectionTitle("DESTINATÁRIO"),
		plain(rc.Name, true),
		plain("Documento: "+rc.Document, false),
		plain("Endereço: "+rc.Address, false),
	}
}

func summaryRows(s billing.Summary) []core.Row {
	return []core.Row{
		sectionTitle("RESUMO DA VENDA"),
		labelValue("Cliente", s.Client),
		labelValue("Data", s.Date),
		labelValue("Vendedor", s.Seller),
	}
}

// tableHeaderRow: # y Qtd centrados, importes a la derecha, descripción flexible.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("SKU", 2, align.Left),
		h("Descrição", 4, align.Left),
		h("Qtd", 1, align.Center),
		h("Valor Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: una fila por item.
func tableItemRows(items []billing.DocumentItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: colorDark,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(strconv.Itoa(it.Index), 1, align.Center),
			cell(it.SKU, 2, align.Left),
			cell(it.Description, 4, align.Left),
			cell(strconv.Itoa(it.Quantity), 1, align.Center),
			cell(it.UnitPrice, 2, align.Right),
			cell(it.Subtotal, 2, align.Right),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha.
func totalsRows(t billing.Totals) []core.Row {
	total := func(label, value string, grand bool) core.Row {
		p := props.Text{Size: 9, Align: align.Right, Right: 1}
		if grand {
			p = props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 1, Color: colorPrimary}
		}
		lp := p
		lp.Style = fontstyle.Bold
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, lp)),
			col.New(3).Add(text.New(value, p)),
		)
	}
	return []core.Row{
		total("Subtotal:", t.Subtotal, false),
		total("Desconto:", t.Discount, false),
		total("Frete:", t.Freight, false),
		total("VALOR TOTAL:", t.Total, true),
	}
}

func additionalRows(a billing.Additional) []core.Row {
	return []core.Row{
		row.New(4),
		sectionTitle("INFORMAÇÕES ADICIONAIS"),
		plain("Vendedor: "+a.Seller, false),
		plain("Forma de Pagamento: "+a.Payment, false),
		plain("Garantia: "+a.Warranty, false),
	}
}

func footerRows(lines []string) []core.Row {
	rows := []core.Row{separator(colorGray, 0.2)}
	for _, l := range lines {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 7, Align: align.Center, Color: colorGray}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

func plain(s string, bold bool) core.Row {
	p := props.Text{Size: 9, Color: colorDark}
	if bold {
		p.Style = fontstyle.Bold
	}
	return row.New(5).Add(col.New(12).Add(text.New(s, p)))
}

func labelValue(label, value string) core.Row {
	return row.New(5).Add(
		col.New(3).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorDark})),
		col.New(9).Add(text.New(value, props.Text{Size: 9, Color: colorDark})),
	)
}

func pair(l1, v1, l2, v2 string) core.Row {
	return row.New(5).Add(
		col.New(3).Add(text.New(l1+":", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorDark})),
		col.New(3).Add(text.New(v1, props.Text{Size: 9, Color: colorDark})),
		col.New(3).Add(text.New(l2+":", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorDark})),
		col.New(3).Add(text.New(v2, props.Text{Size: 9, Color: colorDark})),
	)
}

func separator(c *props.Color, thickness float64) core.Row {
	return line.NewRow(2, props.Line{Color: c, Thickness: thickness})
}

package billing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// DateFormat formato de fechas en el documento.
const DateFormat = "02/01/2006 15:04"

// formatos de fecha que envía el backend
var saleDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Assembler normaliza una venda en un InvoiceDocument. Es puro: la misma venda produce
// siempre el mismo documento.
type Assembler struct {
	loc *time.Location
}

// NewAssembler crea el armador con la zona horaria de las fechas. nil usa UTC.
func NewAssembler(loc *time.Location) *Assembler {
	if loc == nil {
		loc = time.UTC
	}
	return &Assembler{loc: loc}
}

// Assemble arma el documento. Una venda sin itens es error; cualquier otro campo
// ausente se reemplaza por su valor por defecto.
func (a *Assembler) Assemble(sale *dto.SaleResponse) (*InvoiceDocument, error) {
	if sale == nil {
		return nil, domain.ErrSaleMissing
	}
	if len(sale.Items) == 0 {
		return nil, domain.ErrInvoiceNoItems
	}

	clientName := sale.Client.DisplayName(FallbackClient)
	seller := sale.User.DisplayName(entity.NotAvailable)
	date := a.formatDate(sale.When())

	items := make([]DocumentItem, 0, len(sale.Items))
	sum := decimal.Zero
	for i, it := range sale.Items {
		subtotal := it.Subtotal
		if subtotal.IsZero() {
			subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		}
		sum = sum.Add(subtotal)

		sku := strings.TrimSpace(it.ProductSKU)
		if sku == "" {
			sku = it.Product.SKUOr(entity.NotAvailable)
		}
		items = append(items, DocumentItem{
			Index:       i + 1,
			SKU:         sku,
			Description: it.Product.DisplayName(FallbackProduct),
			Quantity:    it.Quantity,
			UnitPrice:   FormatMoney(it.UnitPrice),
			Subtotal:    FormatMoney(subtotal),
		})
	}

	total := sale.Total
	if total.IsZero() {
		total = sum
	}

	status := strings.TrimSpace(sale.Status)
	if status == "" {
		status = FallbackStatus
	}

	doc := &InvoiceDocument{
		Title:    DocumentTitle,
		Subtitle: DocumentSubtitle,
		Issuer:   DefaultIssuer,
		Invoice: InvoiceMeta{
			Number:    invoiceNumber(sale.Invoice),
			Series:    invoiceSeries(sale.Invoice),
			IssuedAt:  date,
			Protocol:  ProtocolAuthorized,
			Kind:      KindOutgoing,
			Status:    status,
			AccessKey: accessKey(sale.Invoice),
		},
		Recipient: Recipient{
			Name:     clientName,
			Document: MaskedDocument,
			Address:  MaskedAddress,
		},
		Summary: Summary{
			Client: clientName,
			Date:   date,
			Seller: seller,
		},
		Items: items,
		Totals: Totals{
			Subtotal: FormatMoney(total),
			Discount: FormatMoney(decimal.Zero),
			Freight:  FormatMoney(decimal.Zero),
			Total:    FormatMoney(total),
		},
		Additional: Additional{
			Seller:   seller,
			Payment:  PaymentTerms,
			Warranty: WarrantyTerm,
		},
		Footer:   append([]string(nil), FooterLines...),
		Filename: Filename(sale),
	}
	return doc, nil
}

// FormatMoney "R$ " + dos decimales con punto.
func FormatMoney(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

func (a *Assembler) formatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entity.NotAvailable
	}
	for _, layout := range saleDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, a.loc); err == nil {
			return t.In(a.loc).Format(DateFormat)
		}
	}
	return entity.NotAvailable
}

func invoiceNumber(inv *entity.Invoice) string {
	if inv == nil || strings.TrimSpace(inv.Number) == "" {
		return entity.NotAvailable
	}
	return strings.TrimSpace(inv.Number)
}

func invoiceSeries(inv *entity.Invoice) string {
	if inv == nil || strings.TrimSpace(inv.Series) == "" {
		return entity.DefaultInvoiceSeries
	}
	return strings.TrimSpace(inv.Series)
}

func accessKey(inv *entity.Invoice) string {
	if inv == nil || strings.TrimSpace(inv.AccessKey) == "" {
		return entity.NotAvailable
	}
	return strings.TrimSpace(inv.AccessKey)
}

func itoa(n int) string { return strconv.Itoa(n) }

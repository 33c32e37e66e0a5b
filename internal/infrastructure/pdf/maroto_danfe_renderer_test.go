package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/infostock-dashboard/internal/application/billing"
	"github.com/jhoicas/infostock-dashboard/internal/infrastructure/pdf"
)

func sampleDocument(items int) *billing.InvoiceDocument {
	doc := &billing.InvoiceDocument{
		Title:     billing.DocumentTitle,
		Subtitle:  billing.DocumentSubtitle,
		Issuer:    billing.DefaultIssuer,
		Invoice:   billing.InvoiceMeta{Number: "000123", Series: "001", IssuedAt: "10/03/2024 12:30", Protocol: billing.ProtocolAuthorized, Kind: billing.KindOutgoing, Status: "CONFIRMADA", AccessKey: "N/A"},
		Recipient: billing.Recipient{Name: "Maria Oliveira", Document: billing.MaskedDocument, Address: billing.MaskedAddress},
		Summary:   billing.Summary{Client: "Maria Oliveira", Date: "10/03/2024 12:30", Seller: "Carlos"},
		Totals:    billing.Totals{Subtotal: "R$ 600.00", Discount: "R$ 0.00", Freight: "R$ 0.00", Total: "R$ 600.00"},
		Additional: billing.Additional{
			Seller: "Carlos", Payment: billing.PaymentTerms, Warranty: billing.WarrantyTerm,
		},
		Footer:   billing.FooterLines,
		Filename: "NF-e_000123_Maria_Oliveira.pdf",
	}
	for i := 1; i <= items; i++ {
		doc.Items = append(doc.Items, billing.DocumentItem{
			Index: i, SKU: fmt.Sprintf("SKU-%03d", i), Description: "Produto de teste", Quantity: 1,
			UnitPrice: "R$ 10.00", Subtotal: "R$ 10.00",
		})
	}
	return doc
}

func TestRender_GeneraPDF(t *testing.T) {
	out, err := pdf.NewMarotoDANFERenderer().Render(context.Background(), sampleDocument(2))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_PaginaTablasLargas(t *testing.T) {
	short, err := pdf.NewMarotoDANFERenderer().Render(context.Background(), sampleDocument(1))
	require.NoError(t, err)
	long, err := pdf.NewMarotoDANFERenderer().Render(context.Background(), sampleDocument(120))
	require.NoError(t, err)

	assert.Greater(t, len(long), len(short))
}

func TestRender_DocumentoNil(t *testing.T) {
	_, err := pdf.NewMarotoDANFERenderer().Render(context.Background(), nil)
	assert.Error(t, err)
}

package billing_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/infostock-dashboard/internal/application/billing"
	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

var brt = time.FixedZone("BRT", -3*60*60)

func decodeSale(t *testing.T, raw string) *dto.SaleResponse {
	t.Helper()
	var s dto.SaleResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return &s
}

const fullSale = `{
	"id": 15,
	"data_venda": "2024-03-10T15:30:00Z",
	"cliente": {"id": 3, "nome": "João da Silva"},
	"usuario": {"id": 1, "nome": "Carlos Vendedor"},
	"status": "CONFIRMADA",
	"valor_total": 650,
	"itens": [
		{"id": 1, "produto": {"id": 7, "nome": "SSD 1TB", "sku": "SSD-001"}, "quantidade": 1, "preco_unitario": 450, "subtotal": 450},
		{"id": 2, "produto": "Mouse sem fio", "quantidade": 2, "preco_unitario": "100.00"}
	],
	"nota_fiscal": {"id": 9, "numero": "000123", "serie": "002", "chave_acesso": "35240312345678000199550020000001231000001234"}
}`

func TestAssemble_VentaCompleta(t *testing.T) {
	doc, err := billing.NewAssembler(brt).Assemble(decodeSale(t, fullSale))
	require.NoError(t, err)

	assert.Equal(t, billing.DocumentTitle, doc.Title)
	assert.Equal(t, billing.DefaultIssuer, doc.Issuer)
	assert.Equal(t, billing.InvoiceMeta{
		Number:    "000123",
		Series:    "002",
		IssuedAt:  "10/03/2024 12:30",
		Protocol:  "Autorizado",
		Kind:      "1 - Saída",
		Status:    "CONFIRMADA",
		AccessKey: "35240312345678000199550020000001231000001234",
	}, doc.Invoice)
	assert.Equal(t, "João da Silva", doc.Recipient.Name)
	assert.Equal(t, billing.Summary{Client: "João da Silva", Date: "10/03/2024 12:30", Seller: "Carlos Vendedor"}, doc.Summary)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, billing.DocumentItem{Index: 1, SKU: "SSD-001", Description: "SSD 1TB", Quantity: 1, UnitPrice: "R$ 450.00", Subtotal: "R$ 450.00"}, doc.Items[0])
	assert.Equal(t, billing.DocumentItem{Index: 2, SKU: "N/A", Description: "Mouse sem fio", Quantity: 2, UnitPrice: "R$ 100.00", Subtotal: "R$ 200.00"}, doc.Items[1],
		"sin subtotal se calcula precio × cantidad")

	assert.Equal(t, billing.Totals{Subtotal: "R$ 650.00", Discount: "R$ 0.00", Freight: "R$ 0.00", Total: "R$ 650.00"}, doc.Totals)
	assert.Equal(t, "NF-e_000123_Joao_da_Silva.pdf", doc.Filename)
	assert.Equal(t, billing.FooterLines, doc.Footer)
}

func TestAssemble_ClienteComoString(t *testing.T) {
	sale := decodeSale(t, `{"id": 1, "cliente": "Maria Oliveira", "itens": [{"produto": "Cabo HDMI", "quantidade": 1, "preco_unitario": 30}]}`)

	doc, err := billing.NewAssembler(brt).Assemble(sale)

	require.NoError(t, err)
	assert.Equal(t, "Maria Oliveira", doc.Recipient.Name)
	assert.Equal(t, "Maria Oliveira", doc.Summary.Client)
}

func TestAssemble_NumeroYSerieNumericos(t *testing.T) {
	sale := decodeSale(t, `{"id": 20, "cliente": "Ana", "itens": [{"produto": "Cabo", "quantidade": 1, "preco_unitario": 10}],
		"nota_fiscal": {"id": 4, "numero": 123, "serie": 1}}`)

	doc, err := billing.NewAssembler(brt).Assemble(sale)

	require.NoError(t, err)
	assert.Equal(t, "123", doc.Invoice.Number)
	assert.Equal(t, "1", doc.Invoice.Series)
	assert.Equal(t, "NF-e_123_Ana.pdf", billing.Filename(sale))
}

func TestAssemble_SinItensEsError(t *testing.T) {
	sale := decodeSale(t, `{"id": 1, "cliente": "Maria", "itens": []}`)

	doc, err := billing.NewAssembler(brt).Assemble(sale)

	assert.Nil(t, doc)
	require.ErrorIs(t, err, domain.ErrInvoiceNoItems)
	assert.Contains(t, err.Error(), "itens")
}

func TestAssemble_VentaNil(t *testing.T) {
	_, err := billing.NewAssembler(nil).Assemble(nil)
	assert.ErrorIs(t, err, domain.ErrSaleMissing)
}

func TestAssemble_Fallbacks(t *testing.T) {
	sale := decodeSale(t, `{"id": 77, "cliente": null, "usuario": 4, "data": "ontem", "itens": [{"quantidade": 3, "preco_unitario": 10}]}`)

	doc, err := billing.NewAssembler(brt).Assemble(sale)
	require.NoError(t, err)

	assert.Equal(t, "Cliente não informado", doc.Recipient.Name)
	assert.Equal(t, entity.NotAvailable, doc.Summary.Seller, "usuario numérico no trae nombre")
	assert.Equal(t, entity.NotAvailable, doc.Summary.Date)
	assert.Equal(t, entity.NotAvailable, doc.Invoice.Number)
	assert.Equal(t, "001", doc.Invoice.Series)
	assert.Equal(t, entity.NotAvailable, doc.Invoice.AccessKey)
	assert.Equal(t, "DESCONHECIDO", doc.Invoice.Status)
	assert.Equal(t, "Produto não especificado", doc.Items[0].Description)
	assert.Equal(t, "R$ 30.00", doc.Totals.Total, "sin valor_total se suman los subtotales")
	assert.Equal(t, "NF-e_77_Cliente.pdf", doc.Filename)
}

func TestAssemble_DatosPersonalesEnmascarados(t *testing.T) {
	doc, err := billing.NewAssembler(brt).Assemble(decodeSale(t, fullSale))
	require.NoError(t, err)

	assert.Equal(t, "***.***.***-** (Dados protegidos)", doc.Recipient.Document)
	assert.Equal(t, "Protegido pela LGPD", doc.Recipient.Address)
}

func TestAssemble_Determinista(t *testing.T) {
	a := billing.NewAssembler(brt)
	first, err := a.Assemble(decodeSale(t, fullSale))
	require.NoError(t, err)
	second, err := a.Assemble(decodeSale(t, fullSale))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Lines(), second.Lines())
}

func TestLines_OrdenDeSecciones(t *testing.T) {
	doc, err := billing.NewAssembler(brt).Assemble(decodeSale(t, fullSale))
	require.NoError(t, err)

	lines := doc.Lines()
	order := []string{
		billing.DocumentTitle,
		"EMITENTE",
		"DADOS DA NF-e",
		"DESTINATÁRIO",
		"RESUMO DA VENDA",
		"PRODUTOS / SERVIÇOS",
		"VALOR TOTAL: R$ 650.00",
		"INFORMAÇÕES ADICIONAIS",
		billing.FooterLines[0],
	}
	last := -1
	for _, want := range order {
		idx := indexOf(lines, want)
		require.GreaterOrEqual(t, idx, 0, want)
		assert.Greater(t, idx, last, want)
		last = idx
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "R$ 600.00", billing.FormatMoney(decimal.NewFromInt(600)))
	assert.Equal(t, "R$ 0.50", billing.FormatMoney(decimal.RequireFromString("0.5")))
	assert.Equal(t, "R$ 1234.57", billing.FormatMoney(decimal.RequireFromString("1234.567")))
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name string
		sale dto.SaleResponse
		want string
	}{
		{"acentos y espacios", dto.SaleResponse{ID: 1, Client: entity.Ref{Name: "José  Araújo"}, Invoice: &entity.Invoice{Number: "42"}}, "NF-e_42_Jose_Araujo.pdf"},
		{"símbolos en los bordes", dto.SaleResponse{ID: 1, Client: entity.Ref{Name: " -Loja & Cia.- "}, Invoice: &entity.Invoice{Number: "7"}}, "NF-e_7_Loja_Cia.pdf"},
		{"sin nota usa id", dto.SaleResponse{ID: 88, Client: entity.Ref{Name: "Ana"}}, "NF-e_88_Ana.pdf"},
		{"nombre vacío", dto.SaleResponse{ID: 3, Client: entity.Ref{Name: "***"}}, "NF-e_3_Cliente.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, billing.Filename(&tc.sale))
		})
	}
}

func indexOf(lines []string, want string) int {
	for i, l := range lines {
		if l == want {
			return i
		}
	}
	return -1
}

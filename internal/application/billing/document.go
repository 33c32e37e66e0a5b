// Package billing arma el documento auxiliar (DANFE) de una venda con nota fiscal y
// entrega el XML firmado. El documento es una proyección normalizada y efímera: nada
// de lo que se arma aquí vuelve al backend.
package billing

// Textos fijos del documento.
const (
	DocumentTitle    = "NOTA FISCAL ELETRÔNICA (NF-e)"
	DocumentSubtitle = "DANFE - Documento Auxiliar da Nota Fiscal Eletrônica"

	ProtocolAuthorized = "Autorizado"
	KindOutgoing       = "1 - Saída"

	MaskedDocument = "***.***.***-** (Dados protegidos)"
	MaskedAddress  = "Protegido pela LGPD"

	PaymentTerms = "À vista"
	WarrantyTerm = "Conforme especificação do produto"

	FallbackClient  = "Cliente não informado"
	FallbackProduct = "Produto não especificado"
	FallbackStatus  = "DESCONHECIDO"
	FallbackFileTag = "Cliente"
)

// FooterLines leyenda al pie de cada página.
var FooterLines = []string{
	"Este documento foi gerado automaticamente pelo sistema InfoStock",
	"Documento auxiliar - Sem valor fiscal para fins reais (Projeto Acadêmico)",
}

// Issuer datos del emitente.
type Issuer struct {
	Name              string
	CNPJ              string
	StateRegistration string
	Address           string
	Contact           string
}

// DefaultIssuer emitente fijo de InfoStock.
var DefaultIssuer = Issuer{
	Name:              "INFOSTOCK COMÉRCIO DE ELETRÔNICOS LTDA",
	CNPJ:              "12.345.678/0001-99",
	StateRegistration: "123.456.789.000",
	Address:           "Av. Paulista, 1000 - Bela Vista - São Paulo/SP - CEP: 01310-100",
	Contact:           "Telefone: (11) 3456-7890 | E-mail: contato@infostock.com.br",
}

// InvoiceMeta bloque DADOS DA NF-e.
type InvoiceMeta struct {
	Number    string
	Series    string
	IssuedAt  string
	Protocol  string
	Kind      string
	Status    string
	AccessKey string
}

// Recipient bloque DESTINATÁRIO. Documento y dirección siempre enmascarados.
type Recipient struct {
	Name     string
	Document string
	Address  string
}

// Summary bloque RESUMO DA VENDA.
type Summary struct {
	Client string
	Date   string
	Seller string
}

// DocumentItem una fila de la tabla PRODUTOS / SERVIÇOS, ya formateada.
type DocumentItem struct {
	Index       int
	SKU         string
	Description string
	Quantity    int
	UnitPrice   string
	Subtotal    string
}

// Totals bloque de totales, ya formateado. Desconto y frete siempre en cero.
type Totals struct {
	Subtotal string
	Discount string
	Freight  string
	Total    string
}

// Additional bloque INFORMAÇÕES ADICIONAIS.
type Additional struct {
	Seller   string
	Payment  string
	Warranty string
}

// InvoiceDocument documento listo para renderizar. Las secciones se dibujan en el orden
// de los campos: cabecera, emitente, NF-e, destinatário, resumo, itens, totais,
// informações adicionais, rodapé.
type InvoiceDocument struct {
	Title      string
	Subtitle   string
	Issuer     Issuer
	Invoice    InvoiceMeta
	Recipient  Recipient
	Summary    Summary
	Items      []DocumentItem
	Totals     Totals
	Additional Additional
	Footer     []string

	Filename string
}

// Lines versión en texto plano del documento, una línea por renglón y en el orden de
// las secciones.
func (d *InvoiceDocument) Lines() []string {
	out := []string{
		d.Title,
		d.Subtitle,
		"",
		"EMITENTE",
		d.Issuer.Name,
		"CNPJ: " + d.Issuer.CNPJ,
		"Inscrição Estadual: " + d.Issuer.StateRegistration,
		"Endereço: " + d.Issuer.Address,
		d.Issuer.Contact,
		"",
		"DADOS DA NF-e",
		"NÚMERO: " + d.Invoice.Number,
		"SÉRIE: " + d.Invoice.Series,
		"DATA DE EMISSÃO: " + d.Invoice.IssuedAt,
		"PROTOCOLO: " + d.Invoice.Protocol,
		"TIPO: " + d.Invoice.Kind,
		"STATUS: " + d.Invoice.Status,
		"CHAVE DE ACESSO: " + d.Invoice.AccessKey,
		"",
		"DESTINATÁRIO",
		d.Recipient.Name,
		"Documento: " + d.Recipient.Document,
		"Endereço: " + d.Recipient.Address,
		"",
		"RESUMO DA VENDA",
		"Cliente: " + d.Summary.Client,
		"Data: " + d.Summary.Date,
		"Vendedor: " + d.Summary.Seller,
		"",
		"PRODUTOS / SERVIÇOS",
		"# | SKU | Descrição | Qtd | Valor Unit. | Subtotal",
	}
	for _, it := range d.Items {
		out = append(out, itemLine(it))
	}
	out = append(out,
		"",
		"Subtotal: "+d.Totals.Subtotal,
		"Desconto: "+d.Totals.Discount,
		"Frete: "+d.Totals.Freight,
		"VALOR TOTAL: "+d.Totals.Total,
		"",
		"INFORMAÇÕES ADICIONAIS",
		"Vendedor: "+d.Additional.Seller,
		"Forma de Pagamento: "+d.Additional.Payment,
		"Garantia: "+d.Additional.Warranty,
		"",
	)
	return append(out, d.Footer...)
}

func itemLine(it DocumentItem) string {
	return itoa(it.Index) + " | " + it.SKU + " | " + it.Description + " | " +
		itoa(it.Quantity) + " | " + it.UnitPrice + " | " + it.Subtotal
}

package entity

import "encoding/json"

// Valores por defecto al renderizar una nota fiscal incompleta.
const (
	DefaultInvoiceSeries = "001"
	NotAvailable         = "N/A"
)

// Invoice referencia de la NF-e emitida por el backend. Opaca y autoritativa.
type Invoice struct {
	ID        uint   `json:"id"`
	Number    string `json:"numero"`
	Series    string `json:"serie"`
	AccessKey string `json:"chave_acesso"`
}

type invoiceFields struct {
	ID        json.RawMessage `json:"id"`
	Number    Text            `json:"numero"`
	Series    Text            `json:"serie"`
	AccessKey Text            `json:"chave_acesso"`
}

// UnmarshalJSON acepta numero y serie como string o número. Un objeto ilegible deja
// la nota vacía en vez de fallar la venda que la contiene.
func (i *Invoice) UnmarshalJSON(data []byte) error {
	*i = Invoice{}
	var f invoiceFields
	if json.Unmarshal(data, &f) != nil {
		return nil
	}
	i.ID = scalarID(f.ID)
	i.Number = f.Number.String()
	i.Series = f.Series.String()
	i.AccessKey = f.AccessKey.String()
	return nil
}

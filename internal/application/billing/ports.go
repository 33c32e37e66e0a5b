package billing

import (
	"context"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// InvoiceRenderer dibuja un InvoiceDocument en un formato imprimible (PDF).
// Pagina sola y repite el rodapé en cada página.
type InvoiceRenderer interface {
	Render(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}

// XMLInspector valida el XML firmado de una nota fiscal contra sus datos conocidos.
type XMLInspector interface {
	// AccessKey extrae la chave de acesso (44 dígitos) de infNFe/@Id.
	AccessKey(xml []byte) (string, error)
}

// Observer recibe el resultado de cada documento generado (métricas).
type Observer interface {
	InvoiceDocumentGenerated(ok bool)
}

// hasInvoice la venda tiene nota fiscal vinculada.
func hasInvoice(inv *entity.Invoice) bool {
	return inv != nil && (inv.ID != 0 || inv.Number != "" || inv.AccessKey != "")
}

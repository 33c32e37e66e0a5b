package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/infostock-dashboard/internal/application/ports"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
	"github.com/jhoicas/infostock-dashboard/pkg/nfe"
)

// XMLUseCase entrega el XML firmado de la nota fiscal de una venda.
type XMLUseCase struct {
	inspector XMLInspector
	log       *logger.Logger
}

// NewXMLUseCase construye el caso de uso.
func NewXMLUseCase(inspector XMLInspector, log *logger.Logger) *XMLUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &XMLUseCase{inspector: inspector, log: log.Component("billing")}
}

// DownloadGateway lecturas necesarias para bajar el XML.
type DownloadGateway interface {
	ports.SalesGateway
	ports.InvoiceFiles
}

// Download devuelve el XML sin modificar y su nombre nfe-<numero>.xml. Si la chave de
// acesso del XML no coincide con la de la nota fiscal devuelve ErrAccessKeyMismatch.
func (uc *XMLUseCase) Download(ctx context.Context, gw DownloadGateway, saleID uint) ([]byte, string, error) {
	if saleID == 0 {
		return nil, "", fmt.Errorf("%w: id da venda", domain.ErrInvalidInput)
	}
	sale, err := gw.GetSale(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	if !hasInvoice(sale.Invoice) || sale.Invoice.ID == 0 {
		return nil, "", domain.ErrInvoiceMissing
	}

	raw, err := gw.InvoiceXML(ctx, sale.Invoice.ID)
	if err != nil {
		return nil, "", err
	}

	// la chave puede venir agrupada como en el DANFE; se comparan solo los dígitos
	if expected := nfe.NormalizeAccessKey(sale.Invoice.AccessKey); expected != "" && uc.inspector != nil {
		xmlKey, err := uc.inspector.AccessKey(raw)
		if err != nil {
			return nil, "", fmt.Errorf("nfe: leer XML: %w", err)
		}
		got := nfe.NormalizeAccessKey(xmlKey)
		if got != "" && got != expected {
			uc.log.Warn().
				Uint("venda_id", saleID).
				Str("esperada", expected).
				Str("xml", got).
				Msg("chave de acesso divergente")
			return nil, "", domain.ErrAccessKeyMismatch
		}
		if got != "" {
			if err := nfe.ValidateAccessKey(got); err != nil {
				// el backend es autoritativo; solo se registra
				uc.log.Warn().Err(err).Uint("venda_id", saleID).Msg("chave de acesso con dígito inválido")
			}
		}
	}

	number := strings.TrimSpace(sale.Invoice.Number)
	if number == "" {
		number = fmt.Sprint(sale.Invoice.ID)
	}
	return raw, "nfe-" + number + ".xml", nil
}

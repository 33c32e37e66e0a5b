package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/ports"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
)

// PDFUseCase genera el DANFE (PDF) de una venta con nota fiscal.
type PDFUseCase struct {
	assembler *Assembler
	renderer  InvoiceRenderer
	observer  Observer
	log       *logger.Logger
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias. observer puede ser nil.
func NewPDFUseCase(assembler *Assembler, renderer InvoiceRenderer, observer Observer, log *logger.Logger) *PDFUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PDFUseCase{
		assembler: assembler,
		renderer:  renderer,
		observer:  observer,
		log:       log.Component("billing"),
	}
}

// Download obtiene la venda, verifica que tiene nota fiscal y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrInvoiceMissing   si la venda no tiene nota fiscal.
//   - domain.ErrInvoiceNoItems   si la venda no tiene itens.
//   - el error del backend       si no se pudo obtener la venda.
func (uc *PDFUseCase) Download(ctx context.Context, gw ports.SalesGateway, saleID uint) ([]byte, string, error) {
	if saleID == 0 {
		return nil, "", fmt.Errorf("%w: id da venda", domain.ErrInvalidInput)
	}
	sale, err := gw.GetSale(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	if !hasInvoice(sale.Invoice) {
		return nil, "", domain.ErrInvoiceMissing
	}
	return uc.Generate(ctx, sale)
}

// Generate arma y dibuja el documento de una venda ya obtenida. Todo o nada: ante
// cualquier error no se devuelve archivo.
func (uc *PDFUseCase) Generate(ctx context.Context, sale *dto.SaleResponse) ([]byte, string, error) {
	doc, err := uc.assembler.Assemble(sale)
	if err != nil {
		uc.fail(sale, err)
		return nil, "", err
	}
	pdfBytes, err := uc.renderer.Render(ctx, doc)
	if err != nil {
		err = fmt.Errorf("pdf: generación fallida: %w", err)
		uc.fail(sale, err)
		return nil, "", err
	}

	uc.generated(true)
	uc.log.Info().
		Uint("venda_id", sale.ID).
		Str("numero", doc.Invoice.Number).
		Str("filename", doc.Filename).
		Int("bytes", len(pdfBytes)).
		Msg("NF-e gerada")
	return pdfBytes, doc.Filename, nil
}

func (uc *PDFUseCase) fail(sale *dto.SaleResponse, err error) {
	uc.generated(false)
	ev := uc.log.Error().Err(err)
	if sale != nil {
		ev = ev.Uint("venda_id", sale.ID)
	}
	ev.Msg("erro ao gerar NF-e")
}

func (uc *PDFUseCase) generated(ok bool) {
	if uc.observer != nil {
		uc.observer.InvoiceDocumentGenerated(ok)
	}
}

// UserMessage texto para el operador ante un fallo de Download/Generate.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvoiceNoItems):
		return "Erro ao gerar nota fiscal: " + err.Error()
	case errors.Is(err, domain.ErrInvoiceMissing), errors.Is(err, domain.ErrSaleMissing):
		return err.Error()
	default:
		return "Erro ao gerar nota fiscal. Tente novamente."
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/infostock-dashboard/internal/application/billing"
)

// InvoiceHandler descarga de la NF-e de una venda (PDF armado aquí, XML del backend).
type InvoiceHandler struct {
	pdf *billing.PDFUseCase
	xml *billing.XMLUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(pdf *billing.PDFUseCase, xml *billing.XMLUseCase) *InvoiceHandler {
	return &InvoiceHandler{pdf: pdf, xml: xml}
}

// PDF godoc
// @Summary      Baixar DANFE (PDF)
// @Description  Arma el documento de la nota fiscal de la venda. Nombre: NF-e_<numero>_<cliente>.pdf.
// @Tags         invoices
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id  path  int  true  "id da venda"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/nfe.pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	data, filename, err := h.pdf.Download(c.Context(), sess.Backend, id)
	if err != nil {
		if isBackendError(err) {
			return writeError(c, err)
		}
		status, body := classify(err)
		body.Message = billing.UserMessage(err)
		return c.Status(status).JSON(body)
	}
	return attachment(c, "application/pdf", filename, data)
}

// XML godoc
// @Summary      Baixar XML da NF-e
// @Description  Devuelve el XML autorizado tal como lo guarda el backend. Nombre: nfe-<numero>.xml.
// @Tags         invoices
// @Security     BearerAuth
// @Produce      application/xml
// @Param        id  path  int  true  "id da venda"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/nfe.xml [get]
func (h *InvoiceHandler) XML(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	data, filename, err := h.xml.Download(c.Context(), sess.Backend, id)
	if err != nil {
		return writeError(c, err)
	}
	return attachment(c, "application/xml", filename, data)
}

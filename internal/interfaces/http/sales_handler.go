package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/sales"
)

// SalesHandler consulta y transiciones de vendas.
type SalesHandler struct {
	sales *sales.Service
}

// NewSalesHandler construye el handler.
func NewSalesHandler(s *sales.Service) *SalesHandler {
	return &SalesHandler{sales: s}
}

// List godoc
// @Summary      Listar vendas
// @Description  Sin filtros lista todas. cliente_id filtra por cliente; data_inicio y data_fim (AAAA-MM-DD) por período.
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        cliente_id   query  int     false  "id do cliente"
// @Param        data_inicio  query  string  false  "AAAA-MM-DD"
// @Param        data_fim     query  string  false  "AAAA-MM-DD"
// @Success      200  {array}   dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	var (
		list []dto.SaleResponse
		err  error
	)
	var period dto.PeriodQuery
	_ = c.QueryParser(&period)
	switch {
	case c.Query("cliente_id") != "":
		id, perr := strconv.ParseUint(c.Query("cliente_id"), 10, 64)
		if perr != nil || id == 0 {
			return invalidID(c)
		}
		list, err = h.sales.ByClient(c.Context(), sess.Backend, uint(id))
	case period.Start != "" || period.End != "":
		list, err = h.sales.ByPeriod(c.Context(), sess.Backend, period.Start, period.End)
	default:
		list, err = h.sales.List(c.Context(), sess.Backend)
	}
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []dto.SaleResponse{}
	}
	return c.JSON(list)
}

// Get godoc
// @Summary      Detalle de venda
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "id da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) Get(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	sale, err := h.sales.Get(c.Context(), sess.Backend, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// Confirm godoc
// @Summary      Confirmar venda
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "id da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/confirm [put]
func (h *SalesHandler) Confirm(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	sale, err := h.sales.Confirm(c.Context(), sess.Backend, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// Cancel godoc
// @Summary      Cancelar venda
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "id da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/cancel [put]
func (h *SalesHandler) Cancel(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	sale, err := h.sales.Cancel(c.Context(), sess.Backend, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// Report godoc
// @Summary      Relatório de vendas (XLSX)
// @Tags         reports
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        data_inicio  query  string  true  "AAAA-MM-DD"
// @Param        data_fim     query  string  true  "AAAA-MM-DD"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.xlsx [get]
func (h *SalesHandler) Report(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	var period dto.PeriodQuery
	_ = c.QueryParser(&period)
	data, filename, err := h.sales.Report(c.Context(), sess.Backend, period.Start, period.End)
	if err != nil {
		return writeError(c, err)
	}
	return attachment(c, xlsxContentType, filename, data)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

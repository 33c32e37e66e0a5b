// Package sales convierte el carrinho de una sesión en una venta persistida y expone el
// historial de vendas del backend (consultas, confirmación, cancelación, relatório).
package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/infostock-dashboard/internal/application/cart"
	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/ports"
	"github.com/jhoicas/infostock-dashboard/internal/application/session"
	"github.com/jhoicas/infostock-dashboard/internal/application/stock"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
)

// DateLayout formato de data_inicio / data_fim.
const DateLayout = "2006-01-02"

// Result resultado uniforme de una finalización de venda.
type Result struct {
	Success      bool
	Data         *dto.SaleResponse // nil si el backend aceptó pero la respuesta era ilegible
	Error        string
	Warning      string
	RefreshError string
	Err          error
}

// Warnings une Warning y RefreshError en un solo aviso para el operador.
func (r Result) Warnings() string {
	switch {
	case r.Warning == "":
		return r.RefreshError
	case r.RefreshError == "":
		return r.Warning
	default:
		return r.Warning + "; " + r.RefreshError
	}
}

// Observer recibe el resultado de cada finalización (métricas).
type Observer interface {
	CheckoutFinished(ok bool)
}

// ReportWriter genera el archivo del relatório de vendas.
type ReportWriter interface {
	SalesReport(sales []dto.SaleResponse, start, end string) ([]byte, error)
}

// Service casos de uso de vendas.
type Service struct {
	observer Observer
	report   ReportWriter
	log      *logger.Logger
}

// NewService construye el servicio. observer y report pueden ser nil.
func NewService(observer Observer, report ReportWriter, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{observer: observer, report: report, log: log.Component("sales")}
}

// Checkout finaliza la venda del carrinho de la sesión para clientID.
// Carrinho vacío o cliente sin elegir se rechazan sin llamar al backend.
// Con éxito el carrinho queda vacío; con fallo queda intacto.
func (s *Service) Checkout(ctx context.Context, sess *session.Session, clientID uint) Result {
	var res Result
	sess.WithCart(func(c *cart.Cart) {
		res = s.checkout(ctx, sess, c, clientID)
	})
	if res.Success && sess.View != nil {
		// la venda descuenta estoque en el backend
		if err := sess.View.Refresh(ctx); err != nil {
			s.log.Warn().Err(err).Msg("recarga tras venda falló")
			res.RefreshError = err.Error()
		}
	}
	return res
}

func (s *Service) checkout(ctx context.Context, sess *session.Session, c *cart.Cart, clientID uint) Result {
	if c.IsEmpty() {
		return failure(domain.ErrEmptyCart)
	}
	if clientID == 0 {
		return failure(domain.ErrClientRequired)
	}

	req := dto.CreateSaleRequest{
		UserID:   sess.User.ID,
		ClientID: clientID,
		Items:    c.Items(),
	}
	sale, err := sess.Backend.CreateSale(ctx, req)
	if errors.Is(err, domain.ErrUnreadableResponse) {
		// 2xx: la venda existe en el backend; conservar el carrinho invitaría a duplicarla
		c.Clear()
		s.finished(true)
		s.log.Warn().Err(err).
			Str("session_id", sess.ID).
			Uint("cliente_id", clientID).
			Msg("venda aceptada con respuesta ilegible")
		return Result{Success: true, Warning: stock.UnreadableWarning}
	}
	if err != nil {
		s.finished(false)
		s.log.Warn().Err(err).
			Str("session_id", sess.ID).
			Uint("cliente_id", clientID).
			Int("itens", len(req.Items)).
			Msg("venda rechazada")
		return failure(err)
	}

	c.Clear()
	s.finished(true)
	s.log.Info().
		Str("session_id", sess.ID).
		Uint("venda_id", sale.ID).
		Uint("cliente_id", clientID).
		Str("valor_total", sale.Total.StringFixed(2)).
		Msg("venda registrada")
	return Result{Success: true, Data: sale}
}

func failure(err error) Result {
	return Result{Error: err.Error(), Err: err}
}

func (s *Service) finished(ok bool) {
	if s.observer != nil {
		s.observer.CheckoutFinished(ok)
	}
}

// List todas las vendas.
func (s *Service) List(ctx context.Context, gw ports.SalesGateway) ([]dto.SaleResponse, error) {
	return gw.ListSales(ctx)
}

// Get una venda por id.
func (s *Service) Get(ctx context.Context, gw ports.SalesGateway, id uint) (*dto.SaleResponse, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: id da venda", domain.ErrInvalidInput)
	}
	return gw.GetSale(ctx, id)
}

// ByClient vendas de un cliente.
func (s *Service) ByClient(ctx context.Context, gw ports.SalesGateway, clientID uint) ([]dto.SaleResponse, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("%w: id do cliente", domain.ErrInvalidInput)
	}
	return gw.SalesByClient(ctx, clientID)
}

// ByPeriod vendas entre start y end (YYYY-MM-DD, inclusive).
func (s *Service) ByPeriod(ctx context.Context, gw ports.SalesGateway, start, end string) ([]dto.SaleResponse, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}
	return gw.SalesByPeriod(ctx, start, end)
}

// Confirm pasa la venda a CONFIRMADA. El perfil se verifica en la capa HTTP.
func (s *Service) Confirm(ctx context.Context, gw ports.SalesGateway, id uint) (*dto.SaleResponse, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: id da venda", domain.ErrInvalidInput)
	}
	sale, err := gw.ConfirmSale(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("venda_id", id).Msg("venda confirmada")
	return sale, nil
}

// Cancel pasa la venda a CANCELADA.
func (s *Service) Cancel(ctx context.Context, gw ports.SalesGateway, id uint) (*dto.SaleResponse, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: id da venda", domain.ErrInvalidInput)
	}
	sale, err := gw.CancelSale(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("venda_id", id).Msg("venda cancelada")
	return sale, nil
}

// Report relatório de vendas del período. Devuelve el archivo y su nombre.
func (s *Service) Report(ctx context.Context, gw ports.SalesGateway, start, end string) ([]byte, string, error) {
	if s.report == nil {
		return nil, "", fmt.Errorf("sales: relatório no configurado")
	}
	list, err := s.ByPeriod(ctx, gw, start, end)
	if err != nil {
		return nil, "", err
	}
	data, err := s.report.SalesReport(list, start, end)
	if err != nil {
		return nil, "", fmt.Errorf("sales: generar relatório: %w", err)
	}
	return data, ReportFilename(start, end), nil
}

// ReportFilename nombre del archivo del relatório.
func ReportFilename(start, end string) string {
	return fmt.Sprintf("relatorio_vendas_%s_%s.xlsx", start, end)
}

func validatePeriod(start, end string) error {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return fmt.Errorf("%w: data_inicio deve ter o formato AAAA-MM-DD", domain.ErrInvalidInput)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return fmt.Errorf("%w: data_fim deve ter o formato AAAA-MM-DD", domain.ErrInvalidInput)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: data_fim anterior a data_inicio", domain.ErrInvalidInput)
	}
	return nil
}

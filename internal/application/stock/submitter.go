// Package stock traduce un ajuste de estoque elegido por el operador en una única llamada
// al backend seguida de la recarga de las vistas: enviar → recargar. Sin actualización
// optimista ni reintentos; la cantidad en estoque siempre viene del backend.
package stock

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
)

// Result resultado uniforme de un ajuste. Error es el mensaje para el operador
// (verbatim del backend cuando viene de él).
type Result struct {
	Success      bool
	Data         *entity.StockMovement // nil si el backend aceptó pero la respuesta era ilegible
	Error        string
	Warning      string // el backend aceptó el ajuste pero su respuesta no se pudo leer
	RefreshError string // el ajuste se aplicó pero la recarga falló
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

// UnreadableWarning aviso cuando el backend aceptó la operación pero su respuesta no se pudo leer.
const UnreadableWarning = "operação registrada no backend, mas a resposta não pôde ser lida; confira antes de repetir"

// Submitter envía entradas y salidas de un producto. Solo guarda el flag de carga y el
// último error. Dos envíos seguidos generan dos llamadas: no hay deduplicación.
type Submitter struct {
	gateway   Gateway
	refresher Refresher
	observer  Observer
	log       *logger.Logger

	mu        sync.Mutex
	inFlight  int
	lastError string
}

// NewSubmitter construye el submitter. observer puede ser nil.
func NewSubmitter(gateway Gateway, refresher Refresher, observer Observer, log *logger.Logger) *Submitter {
	if observer == nil {
		observer = nopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Submitter{
		gateway:   gateway,
		refresher: refresher,
		observer:  observer,
		log:       log.Component("stock"),
	}
}

// AddStock entrada de estoque. origin vacío usa COMPRA_FORNECEDOR.
func (s *Submitter) AddStock(ctx context.Context, productID uint, quantity int, origin string) Result {
	return s.submit(ctx, entity.MovementTypeIn, productID, quantity, origin)
}

// RemoveStock salida de estoque. origin vacío usa AJUSTE_INVENTARIO.
func (s *Submitter) RemoveStock(ctx context.Context, productID uint, quantity int, origin string) Result {
	return s.submit(ctx, entity.MovementTypeOut, productID, quantity, origin)
}

// Loading indica si hay un envío en curso.
func (s *Submitter) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// LastError mensaje del último envío fallido ("" si el último tuvo éxito).
func (s *Submitter) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *Submitter) submit(ctx context.Context, movementType string, productID uint, quantity int, origin string) Result {
	if origin == "" {
		origin = entity.DefaultOrigin(movementType)
	}
	if err := validate(movementType, productID, quantity, origin); err != nil {
		s.setLastError(err.Error())
		return Result{Error: err.Error(), Err: err}
	}

	s.begin()
	defer s.end()

	req := dto.StockAdjustmentRequest{ProductID: productID, Quantity: quantity, Origin: origin}
	var (
		mov *entity.StockMovement
		err error
	)
	if movementType == entity.MovementTypeIn {
		mov, err = s.gateway.StockIn(ctx, req)
	} else {
		mov, err = s.gateway.StockOut(ctx, req)
	}
	var warning string
	if errors.Is(err, domain.ErrUnreadableResponse) {
		// 2xx: el movimiento existe en el backend; reintentar lo duplicaría
		s.log.Warn().Err(err).
			Str("type", movementType).
			Uint("produto_id", productID).
			Msg("ajuste aceptado con respuesta ilegible")
		warning = UnreadableWarning
		mov, err = nil, nil
	}
	if err != nil {
		s.observer.StockSubmitted(movementType, false)
		s.setLastError(err.Error())
		s.log.Warn().Err(err).
			Str("type", movementType).
			Uint("produto_id", productID).
			Int("quantidade", quantity).
			Str("origem", origin).
			Msg("ajuste de estoque rechazado")
		return Result{Error: err.Error(), Err: err}
	}

	s.observer.StockSubmitted(movementType, true)
	s.setLastError("")
	s.log.Info().
		Str("type", movementType).
		Uint("produto_id", productID).
		Int("quantidade", quantity).
		Str("origem", origin).
		Msg("ajuste de estoque registrado")

	res := Result{Success: true, Data: mov, Warning: warning}
	if s.refresher != nil {
		if rerr := s.refresher.Refresh(ctx); rerr != nil {
			s.log.Warn().Err(rerr).Msg("recarga tras ajuste de estoque falló")
			res.RefreshError = rerr.Error()
		}
	}
	return res
}

func validate(movementType string, productID uint, quantity int, origin string) error {
	if productID == 0 {
		return domain.ErrInvalidProduct
	}
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if !entity.IsValidOrigin(movementType, origin) {
		return fmt.Errorf("%w: %s (%s)", domain.ErrInvalidOrigin, origin, movementType)
	}
	return nil
}

// IsPrecondition indica si err es un rechazo local (no llegó a la red).
func IsPrecondition(err error) bool {
	return errors.Is(err, domain.ErrInvalidProduct) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidOrigin)
}

func (s *Submitter) begin() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *Submitter) end() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

func (s *Submitter) setLastError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

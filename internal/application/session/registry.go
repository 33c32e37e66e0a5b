// Package session guarda en memoria el estado por operador: token del backend, usuario,
// carrinho y vistas de estoque. Un reinicio del proceso descarta todas las sesiones.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/infostock-dashboard/internal/application/cart"
	"github.com/jhoicas/infostock-dashboard/internal/application/ports"
	"github.com/jhoicas/infostock-dashboard/internal/application/stock"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
)

// Session estado de un operador logueado. El carrinho no se comparte entre sesiones.
type Session struct {
	ID      string
	User    entity.User
	Backend ports.Backend
	View    *stock.View
	Stock   *stock.Submitter

	mu   sync.Mutex // serializa el acceso al carrinho
	cart *cart.Cart

	lastSeen time.Time // protegido por Registry.mu
}

// WithCart ejecuta fn con acceso exclusivo al carrinho de la sesión.
func (s *Session) WithCart(fn func(c *cart.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart)
}

// Registry sesiones activas indexadas por id.
type Registry struct {
	factory  ports.BackendFactory
	ttl      time.Duration
	observer stock.Observer
	log      *logger.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry crea el registro. ttl <= 0 desactiva la expiración.
func NewRegistry(factory ports.BackendFactory, ttl time.Duration, observer stock.Observer, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		factory:  factory,
		ttl:      ttl,
		observer: observer,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Open crea una sesión nueva con carrinho vacío para el token y usuario del backend.
func (r *Registry) Open(token string, user entity.User) *Session {
	api := r.factory(token)
	view := stock.NewView(api)
	s := &Session{
		ID:      uuid.New().String(),
		User:    user,
		Backend: api,
		View:    view,
		Stock:   stock.NewSubmitter(api, view, r.observer, r.log),
		cart:    cart.New(),
	}

	r.mu.Lock()
	s.lastSeen = r.now()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.log.Info().Str("session_id", s.ID).Uint("usuario_id", user.ID).Str("perfil", user.Profile).Msg("sesión abierta")
	return s
}

// Get devuelve la sesión y renueva su actividad. Sesión inexistente o vencida: ErrSessionExpired.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	now := r.now()
	if r.expired(s, now) {
		delete(r.sessions, id)
		return nil, domain.ErrSessionExpired
	}
	s.lastSeen = now
	return s, nil
}

// Close descarta la sesión (logout). Id desconocido es no-op.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		r.log.Info().Str("session_id", id).Msg("sesión cerrada")
	}
}

// Sweep elimina las sesiones vencidas y devuelve cuántas borró.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := 0
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Len cantidad de sesiones registradas.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.lastSeen) > r.ttl
}

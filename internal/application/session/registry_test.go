package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/infostock-dashboard/internal/application/cart"
	"github.com/jhoicas/infostock-dashboard/internal/application/ports"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// fakeBackend satisface ports.Backend; los tests de sesión no llaman al backend.
type fakeBackend struct {
	ports.Backend
	token string
}

func newTestRegistry(ttl time.Duration) (*Registry, *time.Time) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(func(token string) ports.Backend { return &fakeBackend{token: token} }, ttl, nil, nil)
	r.now = func() time.Time { return now }
	return r, &now
}

func TestOpen_AtaElBackendAlToken(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)

	s := r.Open("tok-1", entity.User{ID: 3, Name: "Ana", Profile: entity.ProfileSeller})

	require.NotEmpty(t, s.ID)
	assert.Equal(t, "tok-1", s.Backend.(*fakeBackend).token)
	assert.NotNil(t, s.View)
	assert.NotNil(t, s.Stock)
	assert.Equal(t, 1, r.Len())
}

func TestGet_SesionDesconocida(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)

	_, err := r.Get("no-existe")

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestGet_ExpiraPorInactividad(t *testing.T) {
	r, now := newTestRegistry(30 * time.Minute)
	s := r.Open("tok", entity.User{ID: 1})

	*now = now.Add(20 * time.Minute)
	_, err := r.Get(s.ID)
	require.NoError(t, err, "la actividad renueva la sesión")

	*now = now.Add(20 * time.Minute)
	_, err = r.Get(s.ID)
	require.NoError(t, err)

	*now = now.Add(31 * time.Minute)
	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Zero(t, r.Len())
}

func TestSweep(t *testing.T) {
	r, now := newTestRegistry(time.Minute)
	r.Open("a", entity.User{ID: 1})
	r.Open("b", entity.User{ID: 2})

	*now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, r.Sweep())
	assert.Zero(t, r.Len())
}

func TestCarrinhoNoSeComparteEntreSesiones(t *testing.T) {
	r, _ := newTestRegistry(0)
	a := r.Open("a", entity.User{ID: 1})
	b := r.Open("b", entity.User{ID: 2})

	a.WithCart(func(c *cart.Cart) {
		c.Add(entity.Product{ID: 7, Price: decimal.NewFromInt(10)})
	})

	b.WithCart(func(c *cart.Cart) {
		assert.True(t, c.IsEmpty())
	})
}

func TestClose(t *testing.T) {
	r, _ := newTestRegistry(0)
	s := r.Open("a", entity.User{ID: 1})

	r.Close(s.ID)
	r.Close(s.ID)

	_, err := r.Get(s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

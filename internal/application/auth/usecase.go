package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/application/session"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/pkg/jwt"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Authenticator login contra el backend (POST /login).
type Authenticator interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.BackendLoginResponse, error)
}

// AuthUseCase casos de uso de autenticación: login y logout.
// La verificación de credenciales es del backend; aquí solo se abre la sesión.
type AuthUseCase struct {
	backend  Authenticator
	sessions *session.Registry
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(backend Authenticator, sessions *session.Registry, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{backend: backend, sessions: sessions, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login valida con el backend, abre una sesión con carrinho vacío y retorna el token del dashboard.
// Un rechazo del backend se devuelve tal cual.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email e senha são obrigatórios", domain.ErrInvalidInput)
	}

	out, err := uc.backend.Login(ctx, in)
	if err != nil {
		uc.log.Warn().Err(err).Str("email", in.Email).Msg("login rechazado")
		return nil, err
	}
	if out.Token == "" {
		return nil, domain.ErrUnauthorized
	}

	sess := uc.sessions.Open(out.Token, out.User)
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, out.User.ID, out.User.Profile, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		uc.sessions.Close(sess.ID)
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: out.User, ExpiresAt: exp}, nil
}

// Logout descarta la sesión y su carrinho.
func (uc *AuthUseCase) Logout(sessionID string) {
	uc.sessions.Close(sessionID)
}

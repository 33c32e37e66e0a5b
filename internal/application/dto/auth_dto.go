package dto

import (
	"time"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// LoginRequest body para POST /api/auth/login (se reenvía tal cual a POST /login del backend).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// BackendLoginResponse respuesta del backend a POST /login.
type BackendLoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"usuario"`
}

// LoginResponse token de sesión del dashboard.
type LoginResponse struct {
	Token     string      `json:"token"`
	User      entity.User `json:"usuario"`
	ExpiresAt time.Time   `json:"expira_em"`
}

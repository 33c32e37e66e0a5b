package entity

// Perfiles válidos para User (definidos por el backend).
const (
	ProfileAdmin   = "ADMIN"
	ProfileManager = "GERENTE"
	ProfileSeller  = "VENDEDOR"
)

// User representa al operador autenticado.
type User struct {
	ID      uint   `json:"id"`
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Profile string `json:"perfil"`
}

// CanManageStock replica isGerente: ADMIN o GERENTE.
func (u User) CanManageStock() bool {
	return u.Profile == ProfileAdmin || u.Profile == ProfileManager
}

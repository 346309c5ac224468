package dto

import (
	"fmt"

	"github.com/jhoicas/tienda-client/internal/domain"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// LoginRequest cuerpo de POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest cuerpo de POST /register. Registrar no inicia sesión:
// una cuenta nueva debe hacer login por separado.
type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
	ShopID   int         `json:"shop_id"`
}

// Validate rechaza la petición antes del dispatch si faltan campos o el rol no es válido.
func (r RegisterRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return fmt.Errorf("%w: name, email y password son requeridos", domain.ErrInvalidInput)
	}
	if !r.Role.Valid() {
		return fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, r.Role)
	}
	if r.ShopID <= 0 {
		return fmt.Errorf("%w: shop_id es requerido", domain.ErrInvalidInput)
	}
	return nil
}

// AuthResponse respuesta de POST /login: identidad más credencial opaca.
type AuthResponse struct {
	User  entity.Identity `json:"user"`
	Token string          `json:"token"`
}

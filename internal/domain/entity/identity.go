package entity

import "time"

// Role nivel de privilegio de una identidad. SuperAdmin incluye todo lo visible para Admin.
type Role string

// Roles válidos para Identity.
const (
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

// Valid indica si el rol pertenece a la enumeración cerrada de la plataforma.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Identity perfil del usuario autenticado tal como lo devuelve el API remoto.
// Pertenece a exactamente una tienda (ShopID); el cliente nunca mantiene más de una a la vez.
type Identity struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ShopID    int       `json:"shop_id"`
	CreatedAt time.Time `json:"created_at"`
}

package entity

import "time"

// Roles válidos dentro de una organización.
const (
	RolAdmin    = "ADMIN"
	RolVendedor = "VENDEDOR"
)

// Miembro vincula un usuario a una organización con un rol.
// Quien crea la organización queda como ADMIN en la misma operación (saga de
// creación con borrado compensatorio si la asignación falla).
type Miembro struct {
	ID             string
	UserID         string
	OrganizacionID string
	Rol            string // ADMIN, VENDEDOR
	CreatedAt      time.Time
}

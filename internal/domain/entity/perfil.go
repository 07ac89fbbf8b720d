package entity

import "time"

// Perfil representa la identidad de un usuario autenticable.
// EsSuperAdmin marca administradores de plataforma: nunca tienen organización
// propia y su estado siempre se verifica del lado del servidor.
type Perfil struct {
	ID                string
	Email             string
	PasswordHash      string // bcrypt, nunca en claro después de persistir
	NombreCompleto    string
	EmailVerificado   bool
	TokenVerificacion string // vacío una vez verificado
	EsSuperAdmin      bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

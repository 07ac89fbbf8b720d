package dto

import "time"

// RegisterRequest entrada para registro: crea un perfil con email sin verificar.
type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	NombreCompleto string `json:"nombre_completo" validate:"omitempty,max=200"`
}

// PerfilResponse salida de un perfil (sin password ni token de verificación).
type PerfilResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	NombreCompleto  string    `json:"nombre_completo"`
	EmailVerificado bool      `json:"email_verificado"`
	CreatedAt       time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token  string         `json:"token"`
	Perfil PerfilResponse `json:"perfil"`
}

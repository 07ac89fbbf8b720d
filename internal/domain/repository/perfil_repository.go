package repository

import "github.com/techstock/techstock-api/internal/domain/entity"

// PerfilRepository define el puerto de persistencia para Perfil (DIP).
type PerfilRepository interface {
	Create(perfil *entity.Perfil) error
	GetByID(id string) (*entity.Perfil, error)
	GetByEmail(email string) (*entity.Perfil, error)
	GetByTokenVerificacion(token string) (*entity.Perfil, error)
	Update(perfil *entity.Perfil) error
	// EsSuperAdmin consulta el flag directamente en la base; el cliente nunca
	// es fuente de verdad para este dato.
	EsSuperAdmin(userID string) (bool, error)
}

package repository

import "github.com/techstock/techstock-api/internal/domain/entity"

// MiembroRepository define el puerto de persistencia para Miembro (DIP).
type MiembroRepository interface {
	Create(miembro *entity.Miembro) error
	// ListByUser devuelve las membresías del usuario ordenadas por fecha de
	// creación ascendente; la capa de aplicación solo considera la primera.
	ListByUser(userID string) ([]*entity.Miembro, error)
	GetRol(userID, organizacionID string) (string, error)
}

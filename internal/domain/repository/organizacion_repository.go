package repository

import "github.com/techstock/techstock-api/internal/domain/entity"

// OrganizacionRepository define el puerto de persistencia para Organizacion (DIP).
// La implementación vive en infrastructure.
type OrganizacionRepository interface {
	Create(org *entity.Organizacion) error
	GetByID(id string) (*entity.Organizacion, error)
	GetBySlug(slug string) (*entity.Organizacion, error)
	// Aprobar y Rechazar son transiciones guardadas: solo aplican si el estado
	// actual es PENDIENTE. Devuelven false (sin error) si la guarda no aplicó.
	Aprobar(id, notas string) (bool, error)
	Rechazar(id, motivo string) (bool, error)
	ListPendientes() ([]*entity.Organizacion, error)
	Delete(id string) error
}

package repository

import "github.com/techstock/techstock-api/internal/domain/entity"

// ConfiguracionRepository define el puerto de persistencia para la
// configuración 1:1 de cada organización (DIP).
type ConfiguracionRepository interface {
	Create(cfg *entity.ConfiguracionOrganizacion) error
	GetByOrganizacion(organizacionID string) (*entity.ConfiguracionOrganizacion, error)
	Update(cfg *entity.ConfiguracionOrganizacion) error
}

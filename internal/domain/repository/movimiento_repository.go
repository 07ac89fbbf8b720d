package repository

import "github.com/techstock/techstock-api/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para Movimiento (DIP).
type MovimientoRepository interface {
	Create(movimiento *entity.Movimiento) error
	// ListByOrganizacion lista movimientos recientes; tipo vacío = todos.
	ListByOrganizacion(organizacionID, tipo string, limit, offset int) ([]*entity.Movimiento, error)
}

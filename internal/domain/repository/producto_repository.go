package repository

import "github.com/techstock/techstock-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByOrganizacionYSKU(organizacionID, sku string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	ListByOrganizacion(organizacionID string, limit, offset int) ([]*entity.Producto, error)
	// GetStock relee el stock materializado por el trigger tras un movimiento.
	GetStock(id string) (int, error)
	Delete(id string) error
}

package postgres

import (
	"context"
	"fmt"

	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL (usable con pool o tx).
// El insert dispara el trigger que recalcula el stock del producto; esta capa
// nunca actualiza productos.stock directamente.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovimientoRepo) Create(movimiento *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, organizacion_id, producto_id, tipo, cantidad, motivo, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movimiento.ID, movimiento.OrganizacionID, movimiento.ProductoID,
		movimiento.Tipo, movimiento.Cantidad, movimiento.Motivo, movimiento.UserID, movimiento.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByOrganizacion lista movimientos de la organización, los más recientes
// primero. Tipo vacío lista todos los tipos.
func (r *MovimientoRepo) ListByOrganizacion(organizacionID, tipo string, limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, organizacion_id, producto_id, tipo, cantidad, motivo, user_id, created_at
		FROM movimientos
		WHERE organizacion_id = $1 AND ($2 = '' OR tipo = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, organizacionID, tipo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.OrganizacionID, &m.ProductoID, &m.Tipo, &m.Cantidad,
			&m.Motivo, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
)

var _ repository.MiembroRepository = (*MiembroRepo)(nil)

// MiembroRepo implementación del puerto MiembroRepository sobre PostgreSQL (usable con pool o tx).
type MiembroRepo struct {
	q Querier
}

// NewMiembroRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMiembroRepository(q Querier) *MiembroRepo {
	return &MiembroRepo{q: q}
}

// Create persiste una membresía. Un usuario no puede tener dos membresías en
// la misma organización (constraint único user_id + organizacion_id).
func (r *MiembroRepo) Create(miembro *entity.Miembro) error {
	query := `
		INSERT INTO miembros (id, user_id, organizacion_id, rol, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		miembro.ID, miembro.UserID, miembro.OrganizacionID, miembro.Rol, miembro.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert miembro: %w", err)
	}
	return nil
}

// ListByUser lista las membresías del usuario en orden de creación ascendente,
// de modo que la primera fila sea siempre la membresía más antigua.
func (r *MiembroRepo) ListByUser(userID string) ([]*entity.Miembro, error) {
	query := `
		SELECT id, user_id, organizacion_id, rol, created_at
		FROM miembros WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list miembros by user: %w", err)
	}
	defer rows.Close()
	return scanMiembros(rows)
}

// GetRol devuelve el rol del usuario en la organización; cadena vacía si no es miembro.
func (r *MiembroRepo) GetRol(userID, organizacionID string) (string, error) {
	var rol string
	err := r.q.QueryRow(context.Background(),
		`SELECT rol FROM miembros WHERE user_id = $1 AND organizacion_id = $2`,
		userID, organizacionID,
	).Scan(&rol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get rol: %w", err)
	}
	return rol, nil
}

func scanMiembros(rows pgx.Rows) ([]*entity.Miembro, error) {
	var list []*entity.Miembro
	for rows.Next() {
		var m entity.Miembro
		if err := rows.Scan(&m.ID, &m.UserID, &m.OrganizacionID, &m.Rol, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan miembro: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

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

var _ repository.OrganizacionRepository = (*OrganizacionRepo)(nil)

// notas_aprobacion y motivo_rechazo son NULL hasta que la transición que los
// escribe ocurre; se leen con COALESCE para poder escanearlos como string.
const selectOrganizacion = `
	SELECT id, nombre, slug, descripcion, telefono, email_contacto, estado,
	       COALESCE(notas_aprobacion, ''), COALESCE(motivo_rechazo, ''),
	       fecha_aprobacion, created_at, updated_at
	FROM organizaciones`

// OrganizacionRepo implementación del puerto OrganizacionRepository sobre PostgreSQL (usable con pool o tx).
type OrganizacionRepo struct {
	q Querier
}

// NewOrganizacionRepository construye el adaptador de persistencia para organizaciones. Pasar pool o tx (Querier).
func NewOrganizacionRepository(q Querier) *OrganizacionRepo {
	return &OrganizacionRepo{q: q}
}

// Create persiste una nueva organización. La violación del constraint único de
// slug se mapea a ErrSlugEnUso.
func (r *OrganizacionRepo) Create(org *entity.Organizacion) error {
	query := `
		INSERT INTO organizaciones (id, nombre, slug, descripcion, telefono, email_contacto, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Nombre, org.Slug, org.Descripcion, org.Telefono, org.EmailContacto,
		org.Estado, org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugEnUso
		}
		return fmt.Errorf("insert organizacion: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizacionRepo) GetByID(id string) (*entity.Organizacion, error) {
	query := selectOrganizacion + ` WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get organizacion")
}

// GetBySlug obtiene una organización por slug.
func (r *OrganizacionRepo) GetBySlug(slug string) (*entity.Organizacion, error) {
	query := selectOrganizacion + ` WHERE slug = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, slug), "get organizacion by slug")
}

// Aprobar transiciona PENDIENTE -> APROBADA con guarda en el WHERE: si la fila
// ya no está PENDIENTE no se afecta y devuelve false.
func (r *OrganizacionRepo) Aprobar(id, notas string) (bool, error) {
	query := `
		UPDATE organizaciones
		SET estado = 'APROBADA', notas_aprobacion = $2, fecha_aprobacion = now(), updated_at = now()
		WHERE id = $1 AND estado = 'PENDIENTE'`
	cmd, err := r.q.Exec(context.Background(), query, id, notas)
	if err != nil {
		return false, fmt.Errorf("aprobar organizacion: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Rechazar transiciona PENDIENTE -> RECHAZADA con la misma guarda que Aprobar.
func (r *OrganizacionRepo) Rechazar(id, motivo string) (bool, error) {
	query := `
		UPDATE organizaciones
		SET estado = 'RECHAZADA', motivo_rechazo = $2, updated_at = now()
		WHERE id = $1 AND estado = 'PENDIENTE'`
	cmd, err := r.q.Exec(context.Background(), query, id, motivo)
	if err != nil {
		return false, fmt.Errorf("rechazar organizacion: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListPendientes lista las organizaciones en estado PENDIENTE, las más antiguas primero.
func (r *OrganizacionRepo) ListPendientes() ([]*entity.Organizacion, error) {
	query := selectOrganizacion + ` WHERE estado = 'PENDIENTE' ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list organizaciones pendientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organizacion
	for rows.Next() {
		var o entity.Organizacion
		if err := rows.Scan(&o.ID, &o.Nombre, &o.Slug, &o.Descripcion, &o.Telefono, &o.EmailContacto,
			&o.Estado, &o.NotasAprobacion, &o.MotivoRechazo, &o.FechaAprobacion, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organizacion: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una organización por ID (usado por la compensación de la saga de creación).
func (r *OrganizacionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM organizaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete organizacion: %w", err)
	}
	return nil
}

func (r *OrganizacionRepo) scanOne(row pgx.Row, op string) (*entity.Organizacion, error) {
	var o entity.Organizacion
	err := row.Scan(&o.ID, &o.Nombre, &o.Slug, &o.Descripcion, &o.Telefono, &o.EmailContacto,
		&o.Estado, &o.NotasAprobacion, &o.MotivoRechazo, &o.FechaAprobacion, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}

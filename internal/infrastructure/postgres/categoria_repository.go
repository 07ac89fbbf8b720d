package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría. Nombre único por organización.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, organizacion_id, nombre, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.OrganizacionID, categoria.Nombre, categoria.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// CreateBatch inserta varias categorías en un solo batch (siembra del onboarding).
// Las colisiones de nombre se ignoran para que la siembra sea re-ejecutable.
func (r *CategoriaRepo) CreateBatch(categorias []*entity.Categoria) error {
	if len(categorias) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, c := range categorias {
		batch.Queue(
			`INSERT INTO categorias (id, organizacion_id, nombre, created_at)
			 VALUES ($1, $2, $3, $4) ON CONFLICT (organizacion_id, nombre) DO NOTHING`,
			c.ID, c.OrganizacionID, c.Nombre, c.CreatedAt,
		)
	}
	br := r.q.SendBatch(context.Background(), batch)
	defer br.Close()
	for range categorias {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch insert categorias: %w", err)
		}
	}
	return nil
}

// ListByOrganizacion lista las categorías de la organización por nombre.
func (r *CategoriaRepo) ListByOrganizacion(organizacionID string) ([]*entity.Categoria, error) {
	query := `
		SELECT id, organizacion_id, nombre, created_at
		FROM categorias WHERE organizacion_id = $1 ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query, organizacionID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.OrganizacionID, &c.Nombre, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}

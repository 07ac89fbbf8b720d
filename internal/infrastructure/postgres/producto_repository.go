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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto. Stock inicia en 0; solo el trigger de
// movimientos lo modifica después.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, organizacion_id, sku, nombre, descripcion, categoria_id, precio, stock, stock_minimo, unidad_medida, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.OrganizacionID, producto.SKU, producto.Nombre, producto.Descripcion,
		producto.CategoriaID, producto.Precio, producto.Stock, producto.StockMinimo,
		producto.UnidadMedida, producto.Estado, producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := selectProducto + ` WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto")
}

// GetByOrganizacionYSKU obtiene un producto por organización y SKU.
func (r *ProductoRepo) GetByOrganizacionYSKU(organizacionID, sku string) (*entity.Producto, error) {
	query := selectProducto + ` WHERE organizacion_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizacionID, sku), "get producto by sku")
}

// Update actualiza un producto existente. Stock no se toca por esta vía.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, categoria_id = NULLIF($4, ''), precio = $5, stock_minimo = $6, unidad_medida = $7, estado = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.CategoriaID,
		producto.Precio, producto.StockMinimo, producto.UnidadMedida, producto.Estado, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// ListByOrganizacion lista productos por organización con paginación.
func (r *ProductoRepo) ListByOrganizacion(organizacionID string, limit, offset int) ([]*entity.Producto, error) {
	query := selectProducto + ` WHERE organizacion_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizacionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetStock relee el stock materializado por el trigger.
func (r *ProductoRepo) GetStock(id string) (int, error) {
	var stock int
	err := r.q.QueryRow(context.Background(), `SELECT stock FROM productos WHERE id = $1`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return stock, nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

const selectProducto = `
	SELECT id, organizacion_id, sku, nombre, descripcion, COALESCE(categoria_id::text, ''), precio, stock, stock_minimo, unidad_medida, estado, created_at, updated_at
	FROM productos`

func (r *ProductoRepo) scanOne(row pgx.Row, op string) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.OrganizacionID, &p.SKU, &p.Nombre, &p.Descripcion, &p.CategoriaID,
		&p.Precio, &p.Stock, &p.StockMinimo, &p.UnidadMedida, &p.Estado, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanProducto(rows pgx.Rows) (*entity.Producto, error) {
	var p entity.Producto
	if err := rows.Scan(&p.ID, &p.OrganizacionID, &p.SKU, &p.Nombre, &p.Descripcion, &p.CategoriaID,
		&p.Precio, &p.Stock, &p.StockMinimo, &p.UnidadMedida, &p.Estado, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}

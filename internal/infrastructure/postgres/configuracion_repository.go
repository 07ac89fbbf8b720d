package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
)

var _ repository.ConfiguracionRepository = (*ConfiguracionRepo)(nil)

// ConfiguracionRepo implementación del puerto ConfiguracionRepository sobre PostgreSQL (usable con pool o tx).
// UnidadesMedida se persiste como text[] nativo de PostgreSQL.
type ConfiguracionRepo struct {
	q Querier
}

// NewConfiguracionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConfiguracionRepository(q Querier) *ConfiguracionRepo {
	return &ConfiguracionRepo{q: q}
}

// Create persiste la configuración inicial de una organización.
func (r *ConfiguracionRepo) Create(cfg *entity.ConfiguracionOrganizacion) error {
	query := `
		INSERT INTO configuraciones_organizacion (id, organizacion_id, tipo_negocio, usa_vencimientos, usa_produccion, usa_lotes, usa_mermas, usa_terceros, usa_almacenes, unidades_medida, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		cfg.ID, cfg.OrganizacionID, cfg.TipoNegocio,
		cfg.UsaVencimientos, cfg.UsaProduccion, cfg.UsaLotes, cfg.UsaMermas, cfg.UsaTerceros, cfg.UsaAlmacenes,
		cfg.UnidadesMedida, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert configuracion: %w", err)
	}
	return nil
}

// GetByOrganizacion obtiene la configuración 1:1 de una organización.
func (r *ConfiguracionRepo) GetByOrganizacion(organizacionID string) (*entity.ConfiguracionOrganizacion, error) {
	query := `
		SELECT id, organizacion_id, tipo_negocio, usa_vencimientos, usa_produccion, usa_lotes, usa_mermas, usa_terceros, usa_almacenes, unidades_medida, created_at, updated_at
		FROM configuraciones_organizacion WHERE organizacion_id = $1`
	var c entity.ConfiguracionOrganizacion
	err := r.q.QueryRow(context.Background(), query, organizacionID).Scan(
		&c.ID, &c.OrganizacionID, &c.TipoNegocio,
		&c.UsaVencimientos, &c.UsaProduccion, &c.UsaLotes, &c.UsaMermas, &c.UsaTerceros, &c.UsaAlmacenes,
		&c.UnidadesMedida, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuracion: %w", err)
	}
	return &c, nil
}

// Update sobreescribe la configuración (usado por el onboarding).
func (r *ConfiguracionRepo) Update(cfg *entity.ConfiguracionOrganizacion) error {
	query := `
		UPDATE configuraciones_organizacion
		SET tipo_negocio = $2, usa_vencimientos = $3, usa_produccion = $4, usa_lotes = $5, usa_mermas = $6, usa_terceros = $7, usa_almacenes = $8, unidades_medida = $9, updated_at = $10
		WHERE organizacion_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cfg.OrganizacionID, cfg.TipoNegocio,
		cfg.UsaVencimientos, cfg.UsaProduccion, cfg.UsaLotes, cfg.UsaMermas, cfg.UsaTerceros, cfg.UsaAlmacenes,
		cfg.UnidadesMedida, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update configuracion: %w", err)
	}
	return nil
}

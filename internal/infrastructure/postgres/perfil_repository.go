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

var _ repository.PerfilRepository = (*PerfilRepo)(nil)

// PerfilRepo implementación del puerto PerfilRepository sobre PostgreSQL (usable con pool o tx).
type PerfilRepo struct {
	q Querier
}

// NewPerfilRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPerfilRepository(q Querier) *PerfilRepo {
	return &PerfilRepo{q: q}
}

// Create persiste un nuevo perfil. El email único se mapea a ErrEmailAlreadyExists.
func (r *PerfilRepo) Create(perfil *entity.Perfil) error {
	query := `
		INSERT INTO perfiles (id, email, password_hash, nombre_completo, email_verificado, token_verificacion, es_super_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		perfil.ID, perfil.Email, perfil.PasswordHash, perfil.NombreCompleto,
		perfil.EmailVerificado, perfil.TokenVerificacion, perfil.EsSuperAdmin,
		perfil.CreatedAt, perfil.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert perfil: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *PerfilRepo) GetByID(id string) (*entity.Perfil, error) {
	return r.getBy("id = $1", id)
}

// GetByEmail obtiene un perfil por email.
func (r *PerfilRepo) GetByEmail(email string) (*entity.Perfil, error) {
	return r.getBy("email = $1", email)
}

// GetByTokenVerificacion obtiene un perfil por su token de verificación pendiente.
func (r *PerfilRepo) GetByTokenVerificacion(token string) (*entity.Perfil, error) {
	return r.getBy("token_verificacion = $1 AND email_verificado = false", token)
}

// Update actualiza los campos mutables del perfil.
func (r *PerfilRepo) Update(perfil *entity.Perfil) error {
	query := `
		UPDATE perfiles
		SET nombre_completo = $2, email_verificado = $3, token_verificacion = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		perfil.ID, perfil.NombreCompleto, perfil.EmailVerificado, perfil.TokenVerificacion, perfil.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update perfil: %w", err)
	}
	return nil
}

// EsSuperAdmin consulta el flag de super admin directamente en la base.
func (r *PerfilRepo) EsSuperAdmin(userID string) (bool, error) {
	var es bool
	err := r.q.QueryRow(context.Background(),
		`SELECT es_super_admin FROM perfiles WHERE id = $1`, userID,
	).Scan(&es)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("es super admin: %w", err)
	}
	return es, nil
}

func (r *PerfilRepo) getBy(where string, arg any) (*entity.Perfil, error) {
	query := `
		SELECT id, email, password_hash, nombre_completo, email_verificado, token_verificacion, es_super_admin, created_at, updated_at
		FROM perfiles WHERE ` + where
	var p entity.Perfil
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.NombreCompleto, &p.EmailVerificado,
		&p.TokenVerificacion, &p.EsSuperAdmin, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get perfil: %w", err)
	}
	return &p, nil
}

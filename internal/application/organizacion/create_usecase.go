package organizacion

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/logger"
	"github.com/techstock/techstock-api/pkg/slug"
)

// CreateUseCase crea organizaciones como una saga: insertar la organización
// (estado forzado a PENDIENTE), crear su configuración con el tipo de negocio
// centinela y asignar al creador como ADMIN. Si un paso posterior falla, se
// compensa borrando la organización (la configuración cae en cascada). No hay
// transacción multi-tabla en esta capa; la ventana de fallo de la compensación
// se reporta con ErrMiembroHuerfano y queda en los logs.
type CreateUseCase struct {
	orgRepo     repository.OrganizacionRepository
	miembroRepo repository.MiembroRepository
	perfilRepo  repository.PerfilRepository
	configRepo  repository.ConfiguracionRepository
	log         *logger.Logger
}

// NewCreateUseCase construye el caso de uso.
func NewCreateUseCase(
	orgRepo repository.OrganizacionRepository,
	miembroRepo repository.MiembroRepository,
	perfilRepo repository.PerfilRepository,
	configRepo repository.ConfiguracionRepository,
	log *logger.Logger,
) *CreateUseCase {
	return &CreateUseCase{
		orgRepo:     orgRepo,
		miembroRepo: miembroRepo,
		perfilRepo:  perfilRepo,
		configRepo:  configRepo,
		log:         log,
	}
}

// Crear valida, inserta la organización en PENDIENTE y asigna al creador como
// ADMIN. El slug se deriva del nombre si viene vacío; si viene, se normaliza.
// La verificación de unicidad del slug es best-effort: el árbitro final es el
// constraint único de la base, que se mapea a ErrSlugEnUso.
func (uc *CreateUseCase) Crear(userID string, in dto.CreateOrganizacionRequest) (*dto.OrganizacionResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}

	perfil, err := uc.perfilRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUnauthorized
	}
	if !perfil.EmailVerificado {
		return nil, domain.ErrEmailNoVerificado
	}

	s := in.Slug
	if s == "" {
		s = nombre
	}
	s = slug.Normalize(s)
	if !slug.IsValid(s) {
		return nil, domain.ErrInvalidInput
	}

	// Pre-chequeo de unicidad; puede haber carrera con otro insert, por eso el
	// Create también mapea la violación de constraint a ErrSlugEnUso.
	existente, err := uc.orgRepo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrSlugEnUso
	}

	now := time.Now()
	org := &entity.Organizacion{
		ID:            uuid.New().String(),
		Nombre:        nombre,
		Slug:          s,
		Descripcion:   strings.TrimSpace(in.Descripcion),
		Telefono:      strings.TrimSpace(in.Telefono),
		EmailContacto: strings.TrimSpace(in.EmailContacto),
		// Estado siempre PENDIENTE al crear, sin importar lo que traiga el
		// request (defensa contra manipulación del cliente).
		Estado:    entity.EstadoPendiente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orgRepo.Create(org); err != nil {
		return nil, err
	}

	config := &entity.ConfiguracionOrganizacion{
		ID:             uuid.New().String(),
		OrganizacionID: org.ID,
		TipoNegocio:    entity.TipoNegocioSinConfigurar,
		UnidadesMedida: []string{"unidad"},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.configRepo.Create(config); err != nil {
		return nil, uc.compensar(org.ID, userID, err)
	}

	miembro := &entity.Miembro{
		ID:             uuid.New().String(),
		UserID:         userID,
		OrganizacionID: org.ID,
		Rol:            entity.RolAdmin,
		CreatedAt:      now,
	}
	if err := uc.miembroRepo.Create(miembro); err != nil {
		// Sin admin la organización es inservible.
		return nil, uc.compensar(org.ID, userID, err)
	}

	return toOrganizacionResponse(org), nil
}

// compensar borra la organización tras el fallo de un paso posterior de la
// saga y devuelve el error a propagar. Si el borrado compensatorio también
// falla, queda una organización huérfana: se loguea fuerte y se devuelve
// ErrMiembroHuerfano.
func (uc *CreateUseCase) compensar(organizacionID, userID string, cause error) error {
	if delErr := uc.orgRepo.Delete(organizacionID); delErr != nil {
		uc.log.Error().Err(delErr).
			Str("organizacion_id", organizacionID).
			Str("user_id", userID).
			Msg("compensación fallida: organización huérfana sin administrador")
		return domain.ErrMiembroHuerfano
	}
	uc.log.Warn().Err(cause).
		Str("organizacion_id", organizacionID).
		Msg("saga de creación falló, organización eliminada por compensación")
	return cause
}

func toOrganizacionResponse(o *entity.Organizacion) *dto.OrganizacionResponse {
	if o == nil {
		return nil
	}
	return &dto.OrganizacionResponse{
		ID:              o.ID,
		Nombre:          o.Nombre,
		Slug:            o.Slug,
		Descripcion:     o.Descripcion,
		Estado:          o.Estado,
		NotasAprobacion: o.NotasAprobacion,
		MotivoRechazo:   o.MotivoRechazo,
		FechaAprobacion: o.FechaAprobacion,
		CreatedAt:       o.CreatedAt,
	}
}

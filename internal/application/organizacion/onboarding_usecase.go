package organizacion

import (
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/plantilla"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/logger"
)

// OnboardingUseCase aplica la plantilla de negocio elegida a la configuración
// de la organización y siembra las categorías sugeridas.
type OnboardingUseCase struct {
	orgRepo       repository.OrganizacionRepository
	miembroRepo   repository.MiembroRepository
	configRepo    repository.ConfiguracionRepository
	categoriaRepo repository.CategoriaRepository
	log           *logger.Logger
}

// NewOnboardingUseCase construye el caso de uso.
func NewOnboardingUseCase(
	orgRepo repository.OrganizacionRepository,
	miembroRepo repository.MiembroRepository,
	configRepo repository.ConfiguracionRepository,
	categoriaRepo repository.CategoriaRepository,
	log *logger.Logger,
) *OnboardingUseCase {
	return &OnboardingUseCase{
		orgRepo:       orgRepo,
		miembroRepo:   miembroRepo,
		configRepo:    configRepo,
		categoriaRepo: categoriaRepo,
		log:           log,
	}
}

// Completar sobreescribe la configuración con el paquete de la plantilla y
// siembra sus categorías sugeridas. La siembra es best-effort: un fallo ahí se
// loguea pero no revierte el onboarding (las categorías son semilla de
// conveniencia, no requisito de corrección). Tras completar, el gate ya no
// debe resolver REQUIERE_ONBOARDING.
func (uc *OnboardingUseCase) Completar(userID, organizacionID string, in dto.CompletarOnboardingRequest) (*dto.ConfiguracionResponse, error) {
	rol, err := uc.miembroRepo.GetRol(userID, organizacionID)
	if err != nil {
		return nil, err
	}
	if rol != entity.RolAdmin {
		return nil, domain.ErrForbidden
	}

	org, err := uc.orgRepo.GetByID(organizacionID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if !org.EsAprobada() {
		return nil, domain.ErrConflict
	}

	p, ok := plantilla.GetByID(in.PlantillaID)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	config, err := uc.configRepo.GetByOrganizacion(organizacionID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrNotFound
	}

	p.Aplicar(config)
	config.UpdatedAt = time.Now()
	if err := uc.configRepo.Update(config); err != nil {
		return nil, err
	}

	uc.sembrarCategorias(organizacionID, p)

	return &dto.ConfiguracionResponse{
		OrganizacionID:  config.OrganizacionID,
		TipoNegocio:     config.TipoNegocio,
		UsaVencimientos: config.UsaVencimientos,
		UsaProduccion:   config.UsaProduccion,
		UsaLotes:        config.UsaLotes,
		UsaMermas:       config.UsaMermas,
		UsaTerceros:     config.UsaTerceros,
		UsaAlmacenes:    config.UsaAlmacenes,
		UnidadesMedida:  config.UnidadesMedida,
	}, nil
}

func (uc *OnboardingUseCase) sembrarCategorias(organizacionID string, p plantilla.Plantilla) {
	if len(p.CategoriasSugeridas) == 0 {
		return
	}
	now := time.Now()
	categorias := make([]*entity.Categoria, 0, len(p.CategoriasSugeridas))
	for _, nombre := range p.CategoriasSugeridas {
		categorias = append(categorias, &entity.Categoria{
			ID:             uuid.New().String(),
			OrganizacionID: organizacionID,
			Nombre:         nombre,
			CreatedAt:      now,
		})
	}
	if err := uc.categoriaRepo.CreateBatch(categorias); err != nil {
		uc.log.Warn().Err(err).
			Str("organizacion_id", organizacionID).
			Str("plantilla", p.ID).
			Msg("siembra de categorías sugeridas falló, onboarding continúa")
	}
}

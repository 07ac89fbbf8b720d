package admission

import (
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/logger"
)

// Service arma el snapshot del gate a partir de los repositorios y lo evalúa.
// El snapshot se reconstruye en cada evaluación; el cliente vuelve a llamar
// cuando cambia la sesión o llega un evento realtime de su organización.
//
// Política de fallos: un error al leer membresía, organización o configuración
// degrada a LISTO (fail-open) con un log de advertencia, para no dejar al
// usuario bloqueado en una pantalla de espera por un fallo transitorio. Es una
// decisión deliberada y está cubierta por tests; ver DESIGN.md.
type Service struct {
	perfilRepo  repository.PerfilRepository
	miembroRepo repository.MiembroRepository
	orgRepo     repository.OrganizacionRepository
	configRepo  repository.ConfiguracionRepository
	log         *logger.Logger
}

// NewService construye el servicio de admisión.
func NewService(
	perfilRepo repository.PerfilRepository,
	miembroRepo repository.MiembroRepository,
	orgRepo repository.OrganizacionRepository,
	configRepo repository.ConfiguracionRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		perfilRepo:  perfilRepo,
		miembroRepo: miembroRepo,
		orgRepo:     orgRepo,
		configRepo:  configRepo,
		log:         log,
	}
}

// Evaluar computa el estado de admisión para el usuario autenticado.
// userID vacío equivale a no tener sesión.
func (s *Service) Evaluar(userID string) (*dto.EstadoSesionResponse, error) {
	snap := Snapshot{SesionCargada: true, AdminCargado: true}
	var orgID string

	if userID == "" {
		return &dto.EstadoSesionResponse{Estado: string(Decide(snap))}, nil
	}

	perfil, err := s.perfilRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		// Token válido pero perfil eliminado: tratar como sin sesión.
		return &dto.EstadoSesionResponse{Estado: string(Decide(snap))}, nil
	}
	snap.SesionActiva = true
	snap.EmailVerificado = perfil.EmailVerificado

	esAdmin, err := s.perfilRepo.EsSuperAdmin(userID)
	if err != nil {
		// El check de admin falla cerrado: sin confirmación no hay panel.
		s.log.Warn().Err(err).Str("user_id", userID).Msg("check de super admin falló")
		esAdmin = false
	}
	snap.EsSuperAdmin = esAdmin

	snap, orgID = s.cargarOrganizacion(userID, snap)
	return &dto.EstadoSesionResponse{
		Estado:         string(Decide(snap)),
		OrganizacionID: orgID,
	}, nil
}

// cargarOrganizacion completa el snapshot con la primera membresía del usuario
// (asunción documentada de un tenant por usuario) y su configuración.
func (s *Service) cargarOrganizacion(userID string, snap Snapshot) (Snapshot, string) {
	miembros, err := s.miembroRepo.ListByUser(userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("lectura de membresías falló, gate degrada a LISTO")
		return failOpen(snap), ""
	}
	if len(miembros) == 0 {
		return snap, ""
	}

	orgID := miembros[0].OrganizacionID
	org, err := s.orgRepo.GetByID(orgID)
	if err != nil || org == nil {
		s.log.Warn().Err(err).Str("organizacion_id", orgID).Msg("lectura de organización falló, gate degrada a LISTO")
		return failOpen(snap), orgID
	}

	snap.TieneOrganizacion = true
	snap.EstadoOrganizacion = org.Estado
	if org.Estado != entity.EstadoAprobada {
		return snap, orgID
	}

	config, err := s.configRepo.GetByOrganizacion(orgID)
	if err != nil {
		s.log.Warn().Err(err).Str("organizacion_id", orgID).Msg("lectura de configuración falló, gate degrada a LISTO")
		return failOpen(snap), orgID
	}
	snap.OnboardingPendiente = config != nil && config.RequiereOnboarding()
	return snap, orgID
}

// failOpen fuerza un snapshot que decide LISTO: organización aprobada y sin
// onboarding pendiente.
func failOpen(snap Snapshot) Snapshot {
	snap.TieneOrganizacion = true
	snap.EstadoOrganizacion = entity.EstadoAprobada
	snap.OnboardingPendiente = false
	return snap
}

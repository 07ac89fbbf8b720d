package organizacion

import (
	"strings"

	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/logger"
)

// AdminUseCase operaciones del panel de revisión: verificar super admin,
// listar solicitudes pendientes y aprobar/rechazar organizaciones.
// Toda operación re-verifica el flag de super admin contra la base; el flag
// que el cliente haya visto en su gate es solo conveniencia de UX.
type AdminUseCase struct {
	perfilRepo  repository.PerfilRepository
	orgRepo     repository.OrganizacionRepository
	notificador Notificador
	log         *logger.Logger
}

// NewAdminUseCase construye el caso de uso. notificador puede ser nil (sin
// canal realtime, p. ej. en tests).
func NewAdminUseCase(
	perfilRepo repository.PerfilRepository,
	orgRepo repository.OrganizacionRepository,
	notificador Notificador,
	log *logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{perfilRepo: perfilRepo, orgRepo: orgRepo, notificador: notificador, log: log}
}

// EsSuperAdmin informa si el usuario es administrador de plataforma.
func (uc *AdminUseCase) EsSuperAdmin(userID string) (bool, error) {
	return uc.perfilRepo.EsSuperAdmin(userID)
}

// ListSolicitudes devuelve las organizaciones pendientes de revisión.
func (uc *AdminUseCase) ListSolicitudes(userID string) ([]*dto.SolicitudPendienteResponse, error) {
	if err := uc.requiereAdmin(userID); err != nil {
		return nil, err
	}
	orgs, err := uc.orgRepo.ListPendientes()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SolicitudPendienteResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, &dto.SolicitudPendienteResponse{
			OrganizacionID: o.ID,
			Nombre:         o.Nombre,
			Slug:           o.Slug,
			Estado:         o.Estado,
			Descripcion:    o.Descripcion,
			Telefono:       o.Telefono,
			EmailContacto:  o.EmailContacto,
			CreatedAt:      o.CreatedAt,
		})
	}
	return out, nil
}

// Aprobar transiciona PENDIENTE -> APROBADA y estampa la fecha de aprobación.
// Si la organización no está PENDIENTE falla con ErrTransicionInvalida sin
// alterar el estado almacenado.
func (uc *AdminUseCase) Aprobar(userID, organizacionID, notas string) error {
	if err := uc.requiereAdmin(userID); err != nil {
		return err
	}
	ok, err := uc.orgRepo.Aprobar(organizacionID, strings.TrimSpace(notas))
	if err != nil {
		return err
	}
	if !ok {
		return uc.errorDeGuarda(organizacionID)
	}
	uc.log.Info().Str("organizacion_id", organizacionID).Str("admin_id", userID).Msg("organización aprobada")
	uc.notificar(organizacionID)
	return nil
}

// Rechazar transiciona PENDIENTE -> RECHAZADA. El motivo es obligatorio y se
// valida antes de tocar cualquier repositorio.
func (uc *AdminUseCase) Rechazar(userID, organizacionID, motivo string) error {
	if strings.TrimSpace(motivo) == "" {
		return domain.ErrMotivoRequerido
	}
	if err := uc.requiereAdmin(userID); err != nil {
		return err
	}
	ok, err := uc.orgRepo.Rechazar(organizacionID, strings.TrimSpace(motivo))
	if err != nil {
		return err
	}
	if !ok {
		return uc.errorDeGuarda(organizacionID)
	}
	uc.log.Info().Str("organizacion_id", organizacionID).Str("admin_id", userID).Msg("organización rechazada")
	uc.notificar(organizacionID)
	return nil
}

func (uc *AdminUseCase) requiereAdmin(userID string) error {
	esAdmin, err := uc.perfilRepo.EsSuperAdmin(userID)
	if err != nil {
		return err
	}
	if !esAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// errorDeGuarda distingue "no existe" de "ya no está PENDIENTE" cuando la
// transición guardada no afectó filas.
func (uc *AdminUseCase) errorDeGuarda(organizacionID string) error {
	org, err := uc.orgRepo.GetByID(organizacionID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNotFound
	}
	return domain.ErrTransicionInvalida
}

func (uc *AdminUseCase) notificar(organizacionID string) {
	if uc.notificador == nil {
		return
	}
	org, err := uc.orgRepo.GetByID(organizacionID)
	if err != nil || org == nil {
		uc.log.Warn().Err(err).Str("organizacion_id", organizacionID).Msg("no se pudo releer la organización para notificar")
		return
	}
	uc.notificador.NotificarTransicion(org)
}

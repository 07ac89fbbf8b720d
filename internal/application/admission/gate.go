// Package admission implementa el gate de admisión: la función que decide qué
// pantalla le corresponde a un visitante según su sesión y el estado de su
// organización.
package admission

import "github.com/techstock/techstock-api/internal/domain/entity"

// Estado es el resultado del gate: exactamente una pantalla de nivel superior.
type Estado string

// Estados posibles, en orden de prioridad de evaluación.
const (
	EstadoCargando            Estado = "CARGANDO"
	EstadoSinSesion           Estado = "SIN_SESION"
	EstadoSuperAdmin          Estado = "SUPER_ADMIN"
	EstadoEmailSinVerificar   Estado = "EMAIL_SIN_VERIFICAR"
	EstadoSinOrganizacion     Estado = "SIN_ORGANIZACION"
	EstadoPendienteAprobacion Estado = "PENDIENTE_APROBACION"
	EstadoRequiereOnboarding  Estado = "REQUIERE_ONBOARDING"
	EstadoListo               Estado = "LISTO"
)

// Snapshot es la foto de entrada del gate. Se construye una vez por evaluación;
// Decide no consulta nada fuera de ella.
type Snapshot struct {
	SesionCargada bool // false mientras la sesión sigue en vuelo
	AdminCargado  bool // false mientras el check de super admin sigue en vuelo

	SesionActiva    bool
	EmailVerificado bool
	EsSuperAdmin    bool

	TieneOrganizacion   bool
	EstadoOrganizacion  string // PENDIENTE, APROBADA, RECHAZADA (si TieneOrganizacion)
	OnboardingPendiente bool   // tipo de negocio aún en el centinela
}

// Decide selecciona exactamente un Estado para el snapshot dado, evaluando las
// reglas en orden estricto de prioridad:
//
//  1. CARGANDO si sesión o check de admin siguen en vuelo.
//  2. SIN_SESION si no hay sesión activa.
//  3. SUPER_ADMIN si la identidad es admin de plataforma (los super admins no
//     tienen organización propia, así que esta regla va antes que las de
//     membresía).
//  4. EMAIL_SIN_VERIFICAR si hay sesión, el email no está verificado y el
//     usuario aún no pertenece a ninguna organización.
//  5. SIN_ORGANIZACION si el email está verificado y no hay membresía.
//  6. PENDIENTE_APROBACION si la primera organización no está APROBADA
//     (PENDIENTE y RECHAZADA caen aquí por igual: la pantalla de espera no las
//     distingue).
//  7. REQUIERE_ONBOARDING si está APROBADA pero el tipo de negocio sigue en el
//     centinela.
//  8. LISTO en cualquier otro caso.
//
// La función es pura: mismo snapshot, mismo resultado.
func Decide(s Snapshot) Estado {
	if !s.SesionCargada || !s.AdminCargado {
		return EstadoCargando
	}
	if !s.SesionActiva {
		return EstadoSinSesion
	}
	if s.EsSuperAdmin {
		return EstadoSuperAdmin
	}
	if !s.TieneOrganizacion {
		if !s.EmailVerificado {
			return EstadoEmailSinVerificar
		}
		return EstadoSinOrganizacion
	}
	if s.EstadoOrganizacion != entity.EstadoAprobada {
		return EstadoPendienteAprobacion
	}
	if s.OnboardingPendiente {
		return EstadoRequiereOnboarding
	}
	return EstadoListo
}

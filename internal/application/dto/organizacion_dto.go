package dto

import "time"

// CreateOrganizacionRequest entrada para crear una organización.
// Si Slug viene vacío se deriva del nombre.
type CreateOrganizacionRequest struct {
	Nombre        string `json:"nombre" validate:"required,min=1,max=200"`
	Slug          string `json:"slug" validate:"omitempty,min=3,max=50"`
	Descripcion   string `json:"descripcion" validate:"omitempty,max=500"`
	Telefono      string `json:"telefono" validate:"omitempty,max=30"`
	EmailContacto string `json:"email_contacto" validate:"omitempty,email"`
}

// OrganizacionResponse salida de una organización.
type OrganizacionResponse struct {
	ID              string     `json:"id"`
	Nombre          string     `json:"nombre"`
	Slug            string     `json:"slug"`
	Descripcion     string     `json:"descripcion,omitempty"`
	Estado          string     `json:"estado"`
	NotasAprobacion string     `json:"notas_aprobacion,omitempty"`
	MotivoRechazo   string     `json:"motivo_rechazo,omitempty"`
	FechaAprobacion *time.Time `json:"fecha_aprobacion,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AprobarRequest entrada para aprobar una organización (notas opcionales).
type AprobarRequest struct {
	Notas string `json:"notas" validate:"omitempty,max=500"`
}

// RechazarRequest entrada para rechazar una organización (motivo obligatorio).
type RechazarRequest struct {
	Motivo string `json:"motivo" validate:"required,min=1,max=500"`
}

// SolicitudPendienteResponse fila del panel de revisión del super admin.
type SolicitudPendienteResponse struct {
	OrganizacionID string    `json:"organizacion_id"`
	Nombre         string    `json:"nombre"`
	Slug           string    `json:"slug"`
	Estado         string    `json:"estado"`
	Descripcion    string    `json:"descripcion,omitempty"`
	Telefono       string    `json:"telefono,omitempty"`
	EmailContacto  string    `json:"email_contacto,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// PlantillaResponse plantilla de negocio seleccionable en el asistente de
// onboarding, con las unidades y categorías que aplicaría.
type PlantillaResponse struct {
	ID                  string   `json:"id"`
	Nombre              string   `json:"nombre"`
	Descripcion         string   `json:"descripcion"`
	UnidadesMedida      []string `json:"unidades_medida"`
	CategoriasSugeridas []string `json:"categorias_sugeridas,omitempty"`
}

// CompletarOnboardingRequest entrada del asistente de onboarding.
type CompletarOnboardingRequest struct {
	PlantillaID string `json:"plantilla_id" validate:"required"`
}

// ConfiguracionResponse salida de la configuración de una organización.
type ConfiguracionResponse struct {
	OrganizacionID  string   `json:"organizacion_id"`
	TipoNegocio     string   `json:"tipo_negocio"`
	UsaVencimientos bool     `json:"usa_vencimientos"`
	UsaProduccion   bool     `json:"usa_produccion"`
	UsaLotes        bool     `json:"usa_lotes"`
	UsaMermas       bool     `json:"usa_mermas"`
	UsaTerceros     bool     `json:"usa_terceros"`
	UsaAlmacenes    bool     `json:"usa_almacenes"`
	UnidadesMedida  []string `json:"unidades_medida"`
}

// EstadoSesionResponse salida de la evaluación del gate de admisión.
type EstadoSesionResponse struct {
	Estado         string `json:"estado"`
	OrganizacionID string `json:"organizacion_id,omitempty"`
}

package entity

import "time"

// Estados del ciclo de vida de una organización. Toda organización nace en
// PENDIENTE; APROBADA y RECHAZADA son terminales (no hay transición de regreso).
const (
	EstadoPendiente = "PENDIENTE"
	EstadoAprobada  = "APROBADA"
	EstadoRechazada = "RECHAZADA"
)

// Organizacion representa un tenant del sistema: una cuenta aislada que posee
// sus propios productos, categorías y movimientos.
type Organizacion struct {
	ID              string
	Nombre          string
	Slug            string // único global, URL-safe
	Descripcion     string
	Telefono        string
	EmailContacto   string
	Estado          string     // PENDIENTE, APROBADA, RECHAZADA
	NotasAprobacion string     // notas opcionales del admin al aprobar
	MotivoRechazo   string     // obligatorio al rechazar
	FechaAprobacion *time.Time // nil mientras no esté aprobada
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EsAprobada informa si la organización puede acceder al sistema.
func (o *Organizacion) EsAprobada() bool {
	return o.Estado == EstadoAprobada
}

package realtime

import (
	"time"

	"github.com/techstock/techstock-api/internal/application/organizacion"
	"github.com/techstock/techstock-api/internal/domain/entity"
)

var _ organizacion.Notificador = (*Notificador)(nil)

// EventoOrganizacion es el payload de una transición de estado.
type EventoOrganizacion struct {
	OrganizacionID  string     `json:"organizacion_id"`
	Estado          string     `json:"estado"`
	MotivoRechazo   string     `json:"motivo_rechazo,omitempty"`
	FechaAprobacion *time.Time `json:"fecha_aprobacion,omitempty"`
}

// Notificador publica transiciones de estado al canal realtime: a la sala de
// la organización afectada (su gate se reevalúa) y a la sala admin (el panel
// de revisión refresca la cola).
type Notificador struct {
	hub *Hub
}

// NewNotificador construye el notificador sobre el hub.
func NewNotificador(hub *Hub) *Notificador {
	return &Notificador{hub: hub}
}

// NotificarTransicion difunde el cambio de estado de la organización.
func (n *Notificador) NotificarTransicion(org *entity.Organizacion) {
	evento := EventoOrganizacion{
		OrganizacionID:  org.ID,
		Estado:          org.Estado,
		MotivoRechazo:   org.MotivoRechazo,
		FechaAprobacion: org.FechaAprobacion,
	}
	n.hub.BroadcastYPublicar(SalaOrganizacion(org.ID), "organizacion_actualizada", evento)
	n.hub.BroadcastYPublicar(SalaAdmin, "solicitud_actualizada", evento)
}

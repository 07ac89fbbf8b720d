package organizacion

import "github.com/techstock/techstock-api/internal/domain/entity"

// Notificador publica transiciones de estado de una organización al canal
// realtime, para que el cliente afectado reaccione sin hacer polling.
// La implementación vive en infrastructure/realtime.
type Notificador interface {
	NotificarTransicion(org *entity.Organizacion)
}

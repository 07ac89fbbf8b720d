package entity

import "time"

// Categoria agrupa productos dentro de una organización.
// El onboarding siembra categorías sugeridas según la plantilla elegida.
type Categoria struct {
	ID             string
	OrganizacionID string
	Nombre         string
	CreatedAt      time.Time
}

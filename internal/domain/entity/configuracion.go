package entity

import "time"

// TipoNegocioSinConfigurar es el valor centinela con el que se crea la
// configuración de toda organización nueva. Mientras el tipo de negocio siga en
// este valor, el onboarding está pendiente.
const TipoNegocioSinConfigurar = "RETAIL_GENERAL"

// ConfiguracionOrganizacion es la configuración 1:1 de una organización:
// clasificador de negocio, feature flags y unidades de medida reconocidas.
// Se crea junto con la organización y el onboarding la sobreescribe una vez.
type ConfiguracionOrganizacion struct {
	ID              string
	OrganizacionID  string
	TipoNegocio     string // RETAIL_GENERAL hasta completar onboarding
	UsaVencimientos bool
	UsaProduccion   bool
	UsaLotes        bool
	UsaMermas       bool
	UsaTerceros     bool
	UsaAlmacenes    bool
	UnidadesMedida  []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RequiereOnboarding informa si el tipo de negocio sigue en el centinela.
func (c *ConfiguracionOrganizacion) RequiereOnboarding() bool {
	return c.TipoNegocio == TipoNegocioSinConfigurar
}

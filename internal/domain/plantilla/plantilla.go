// Package plantilla define las plantillas de negocio del onboarding: cada una
// mapea a un paquete de flags de configuración y a categorías sugeridas.
package plantilla

import "github.com/techstock/techstock-api/internal/domain/entity"

// IDs de plantilla disponibles en el asistente de onboarding.
const (
	Panaderia     = "PANADERIA"
	Ferreteria    = "FERRETERIA"
	TiendaVinilos = "TIENDA_VINILOS"
	Abarrotes     = "ABARROTES"
	Restaurante   = "RESTAURANTE"
	Otro          = "OTRO"
)

// Configuracion es el paquete de flags que la plantilla aplica a la
// configuración de la organización al completar el onboarding.
type Configuracion struct {
	TipoNegocio     string
	UsaVencimientos bool
	UsaProduccion   bool
	UsaLotes        bool
	UsaMermas       bool
	UsaTerceros     bool
	UsaAlmacenes    bool
	UnidadesMedida  []string
}

// Plantilla describe una plantilla de negocio seleccionable.
type Plantilla struct {
	ID                  string
	Nombre              string
	Descripcion         string
	Configuracion       Configuracion
	CategoriasSugeridas []string
}

var plantillas = map[string]Plantilla{
	Panaderia: {
		ID:          Panaderia,
		Nombre:      "Panadería",
		Descripcion: "Para negocios de panadería y pastelería con producción propia",
		Configuracion: Configuracion{
			TipoNegocio:     Panaderia,
			UsaVencimientos: true,
			UsaProduccion:   true,
			UsaLotes:        true,
			UsaMermas:       true,
			UsaTerceros:     false,
			UsaAlmacenes:    false,
			UnidadesMedida:  []string{"UNIDADES", "KG", "DOCENAS"},
		},
		CategoriasSugeridas: []string{"Pan", "Pasteles", "Galletas", "Bollería", "Insumos", "Materias Primas"},
	},
	Ferreteria: {
		ID:          Ferreteria,
		Nombre:      "Ferretería",
		Descripcion: "Para ferreterías y tiendas de construcción",
		Configuracion: Configuracion{
			TipoNegocio:     Ferreteria,
			UsaVencimientos: false,
			UsaProduccion:   false,
			UsaLotes:        false,
			UsaMermas:       true,
			UsaTerceros:     true,
			UsaAlmacenes:    true,
			UnidadesMedida:  []string{"UNIDADES", "CAJAS", "METROS", "LITROS"},
		},
		CategoriasSugeridas: []string{"Herramientas", "Tornillería", "Pintura", "Electricidad", "Plomería", "Construcción"},
	},
	TiendaVinilos: {
		ID:          TiendaVinilos,
		Nombre:      "Tienda de Vinilos",
		Descripcion: "Para tiendas de discos y vinilos",
		Configuracion: Configuracion{
			TipoNegocio:     TiendaVinilos,
			UsaVencimientos: false,
			UsaProduccion:   false,
			UsaLotes:        false,
			UsaMermas:       true,
			UsaTerceros:     true,
			UsaAlmacenes:    false,
			UnidadesMedida:  []string{"UNIDADES"},
		},
		CategoriasSugeridas: []string{"Rock", "Pop", "Jazz", "Clásica", "Electrónica", "Hip Hop", "Accesorios"},
	},
	Abarrotes: {
		ID:          Abarrotes,
		Nombre:      "Tienda de Abarrotes",
		Descripcion: "Para tiendas de abarrotes y minimarkets",
		Configuracion: Configuracion{
			TipoNegocio:     Abarrotes,
			UsaVencimientos: true,
			UsaProduccion:   false,
			UsaLotes:        false,
			UsaMermas:       true,
			UsaTerceros:     false,
			UsaAlmacenes:    false,
			UnidadesMedida:  []string{"UNIDADES", "KG", "LITROS"},
		},
		CategoriasSugeridas: []string{"Bebidas", "Snacks", "Lácteos", "Enlatados", "Limpieza", "Higiene Personal"},
	},
	Restaurante: {
		ID:          Restaurante,
		Nombre:      "Restaurante",
		Descripcion: "Para restaurantes y servicios de comida",
		Configuracion: Configuracion{
			TipoNegocio:     Restaurante,
			UsaVencimientos: true,
			UsaProduccion:   true,
			UsaLotes:        false,
			UsaMermas:       true,
			UsaTerceros:     true,
			UsaAlmacenes:    false,
			UnidadesMedida:  []string{"UNIDADES", "KG", "LITROS"},
		},
		CategoriasSugeridas: []string{"Carnes", "Verduras", "Lácteos", "Bebidas", "Condimentos", "Desechables"},
	},
	Otro: {
		ID:          Otro,
		Nombre:      "Otro",
		Descripcion: "Configuración personalizada",
		Configuracion: Configuracion{
			TipoNegocio:     Otro,
			UsaVencimientos: false,
			UsaProduccion:   false,
			UsaLotes:        false,
			UsaMermas:       true,
			UsaTerceros:     false,
			UsaAlmacenes:    false,
			UnidadesMedida:  []string{"UNIDADES"},
		},
		CategoriasSugeridas: nil,
	},
}

// GetByID devuelve la plantilla con ese ID, o ok=false si no existe.
func GetByID(id string) (Plantilla, bool) {
	p, ok := plantillas[id]
	return p, ok
}

// All devuelve todas las plantillas disponibles.
func All() []Plantilla {
	out := make([]Plantilla, 0, len(plantillas))
	for _, id := range []string{Panaderia, Ferreteria, TiendaVinilos, Abarrotes, Restaurante, Otro} {
		out = append(out, plantillas[id])
	}
	return out
}

// Aplicar vuelca el paquete de configuración de la plantilla sobre una
// configuración de organización existente (sobrescribe, no mezcla).
func (p Plantilla) Aplicar(cfg *entity.ConfiguracionOrganizacion) {
	cfg.TipoNegocio = p.Configuracion.TipoNegocio
	cfg.UsaVencimientos = p.Configuracion.UsaVencimientos
	cfg.UsaProduccion = p.Configuracion.UsaProduccion
	cfg.UsaLotes = p.Configuracion.UsaLotes
	cfg.UsaMermas = p.Configuracion.UsaMermas
	cfg.UsaTerceros = p.Configuracion.UsaTerceros
	cfg.UsaAlmacenes = p.Configuracion.UsaAlmacenes
	cfg.UnidadesMedida = append([]string(nil), p.Configuracion.UnidadesMedida...)
}

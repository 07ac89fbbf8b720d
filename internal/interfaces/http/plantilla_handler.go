package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain/plantilla"
)

// PlantillaHandler expone el catálogo de plantillas de negocio que el asistente
// de onboarding ofrece. El catálogo es estático, no requiere caso de uso.
type PlantillaHandler struct{}

// NewPlantillaHandler construye el handler.
func NewPlantillaHandler() *PlantillaHandler {
	return &PlantillaHandler{}
}

// List godoc
// @Summary      Listar plantillas de negocio
// @Tags         organizaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlantillaResponse
// @Router       /api/plantillas [get]
func (h *PlantillaHandler) List(c *fiber.Ctx) error {
	plantillas := plantilla.All()
	out := make([]*dto.PlantillaResponse, 0, len(plantillas))
	for _, p := range plantillas {
		out = append(out, &dto.PlantillaResponse{
			ID:                  p.ID,
			Nombre:              p.Nombre,
			Descripcion:         p.Descripcion,
			UnidadesMedida:      p.Configuracion.UnidadesMedida,
			CategoriasSugeridas: p.CategoriasSugeridas,
		})
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
)

// Locals key para la organización resuelta del usuario.
const LocalOrganizacionID = "organizacion_id"

// OrganizacionMiddleware resuelve la organización del usuario (su primera
// membresía) y exige que esté APROBADA antes de dejar pasar a las rutas del
// dominio de inventario. Es la versión del lado del servidor de la puerta de
// admisión: aunque un cliente manipulado salte su pantalla de espera, estas
// rutas no responden para organizaciones no aprobadas.
func OrganizacionMiddleware(miembroRepo repository.MiembroRepository, orgRepo repository.OrganizacionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		miembros, err := miembroRepo.ListByUser(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if len(miembros) == 0 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SIN_ORGANIZACION", Message: "el usuario no pertenece a ninguna organización"})
		}
		orgID := miembros[0].OrganizacionID
		org, err := orgRepo.GetByID(orgID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if org == nil || org.Estado != entity.EstadoAprobada {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ORGANIZACION_NO_APROBADA", Message: "la organización no está aprobada"})
		}
		c.Locals(LocalOrganizacionID, orgID)
		return c.Next()
	}
}

// GetOrganizacionID devuelve la organización del contexto (después de OrganizacionMiddleware).
func GetOrganizacionID(c *fiber.Ctx) string {
	v := c.Locals(LocalOrganizacionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

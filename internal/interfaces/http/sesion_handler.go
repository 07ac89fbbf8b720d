package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstock/techstock-api/internal/application/admission"
	"github.com/techstock/techstock-api/internal/application/dto"
)

// SesionHandler expone la evaluación del gate de admisión.
type SesionHandler struct {
	svc *admission.Service
}

// NewSesionHandler construye el handler de sesión.
func NewSesionHandler(svc *admission.Service) *SesionHandler {
	return &SesionHandler{svc: svc}
}

// Estado godoc
// @Summary      Estado de admisión de la sesión
// @Description  Evalúa la puerta de admisión: qué pantalla corresponde al usuario autenticado.
// @Tags         sesion
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadoSesionResponse
// @Router       /api/sesion/estado [get]
func (h *SesionHandler) Estado(c *fiber.Ctx) error {
	out, err := h.svc.Evaluar(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

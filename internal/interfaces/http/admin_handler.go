package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/application/organizacion"
	"github.com/techstock/techstock-api/internal/domain"
)

// AdminHandler expone el panel de revisión del super admin.
// La autorización la decide el caso de uso contra la base de datos; el
// handler solo traduce errores a códigos HTTP.
type AdminHandler struct {
	uc *organizacion.AdminUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *organizacion.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListSolicitudes godoc
// @Summary      Listar organizaciones pendientes de revisión
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SolicitudPendienteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/solicitudes [get]
func (h *AdminHandler) ListSolicitudes(c *fiber.Ctx) error {
	out, err := h.uc.ListSolicitudes(GetUserID(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar una organización pendiente
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la organización"
// @Param        body  body  dto.AprobarRequest  false  "Notas opcionales"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/organizaciones/{id}/aprobar [post]
func (h *AdminHandler) Aprobar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AprobarRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.uc.Aprobar(GetUserID(c), id, in.Notas); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Rechazar godoc
// @Summary      Rechazar una organización pendiente (motivo obligatorio)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la organización"
// @Param        body  body  dto.RechazarRequest  true  "Motivo del rechazo"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/organizaciones/{id}/rechazar [post]
func (h *AdminHandler) Rechazar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RechazarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Rechazar(GetUserID(c), id, in.Motivo); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandler) mapError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere super admin"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "organización no encontrada"})
	case domain.ErrTransicionInvalida:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TRANSICION_INVALIDA", Message: "la organización no está pendiente de revisión"})
	case domain.ErrMotivoRequerido:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MOTIVO_REQUERIDO", Message: "debes proporcionar un motivo para el rechazo"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

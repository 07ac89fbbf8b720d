package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/application/organizacion"
	"github.com/techstock/techstock-api/internal/domain"
)

// OrganizacionHandler maneja la creación de organizaciones y el onboarding.
type OrganizacionHandler struct {
	createUC     *organizacion.CreateUseCase
	onboardingUC *organizacion.OnboardingUseCase
}

// NewOrganizacionHandler construye el handler de organizaciones.
func NewOrganizacionHandler(createUC *organizacion.CreateUseCase, onboardingUC *organizacion.OnboardingUseCase) *OrganizacionHandler {
	return &OrganizacionHandler{createUC: createUC, onboardingUC: onboardingUC}
}

// Create godoc
// @Summary      Crear organización (queda PENDIENTE de aprobación)
// @Tags         organizaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizacionRequest  true  "Datos de la organización"
// @Success      201   {object}  dto.OrganizacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/organizaciones [post]
func (h *OrganizacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.Crear(GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre o slug inválido"})
		case domain.ErrEmailNoVerificado:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "EMAIL_SIN_VERIFICAR", Message: "verifica tu email antes de crear una organización"})
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida"})
		case domain.ErrSlugEnUso:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SLUG_EN_USO", Message: "el slug ya está en uso"})
		case domain.ErrMiembroHuerfano:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SAGA_INCOMPLETA", Message: "la organización no pudo crearse de forma consistente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CompletarOnboarding godoc
// @Summary      Completar onboarding con una plantilla de negocio
// @Tags         organizaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la organización"
// @Param        body  body  dto.CompletarOnboardingRequest  true  "plantilla_id"
// @Success      200   {object}  dto.ConfiguracionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/organizaciones/{id}/onboarding [post]
func (h *OrganizacionHandler) CompletarOnboarding(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CompletarOnboardingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.onboardingUC.Completar(GetUserID(c), id, in)
	if err != nil {
		switch err {
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un ADMIN de la organización puede completar el onboarding"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "organización no encontrada"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_APROBADA", Message: "la organización aún no está aprobada"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PLANTILLA_INVALIDA", Message: "plantilla de negocio desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/internal/infrastructure/realtime"
	"github.com/techstock/techstock-api/pkg/logger"
)

// RealtimeHandler atiende las conexiones websocket del canal realtime.
// Salas: la de una organización (miembros solamente) o la sala admin
// (super admins solamente). Cada conexión vive en exactamente una sala.
type RealtimeHandler struct {
	hub         *realtime.Hub
	miembroRepo repository.MiembroRepository
	perfilRepo  repository.PerfilRepository
	log         *logger.Logger
}

// NewRealtimeHandler construye el handler realtime.
func NewRealtimeHandler(
	hub *realtime.Hub,
	miembroRepo repository.MiembroRepository,
	perfilRepo repository.PerfilRepository,
	log *logger.Logger,
) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, miembroRepo: miembroRepo, perfilRepo: perfilRepo, log: log}
}

// Upgrade exige que la petición sea un upgrade websocket y autoriza la sala
// pedida antes de actualizar la conexión.
func (h *RealtimeHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	userID := GetUserID(c)

	sala := c.Query("sala")
	if sala == realtime.SalaAdmin {
		esAdmin, err := h.perfilRepo.EsSuperAdmin(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if !esAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere super admin"})
		}
		c.Locals("sala", realtime.SalaAdmin)
		return c.Next()
	}

	orgID := c.Query("organizacion_id")
	if orgID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "organizacion_id o sala=admin requerido"})
	}
	rol, err := h.miembroRepo.GetRol(userID, orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if rol == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no eres miembro de esta organización"})
	}
	c.Locals("sala", realtime.SalaOrganizacion(orgID))
	return c.Next()
}

// Serve corre el ciclo de vida de la conexión ya actualizada: registro en el
// hub, bombas de lectura/escritura y desregistro al cerrar.
func (h *RealtimeHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		sala, _ := conn.Locals("sala").(string)
		userID, _ := conn.Locals(LocalUserID).(string)
		if sala == "" || userID == "" {
			_ = conn.Close()
			return
		}
		client := realtime.NewClient(h.hub, conn, sala, userID, h.log)
		client.Run()
	})
}

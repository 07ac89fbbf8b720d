package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstock/techstock-api/internal/application/admission"
	"github.com/techstock/techstock-api/internal/application/auth"
	"github.com/techstock/techstock-api/internal/application/inventario"
	"github.com/techstock/techstock-api/internal/application/organizacion"
	"github.com/techstock/techstock-api/internal/application/usecase"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/internal/infrastructure/realtime"
	"github.com/techstock/techstock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Admission    *admission.Service
	CreateOrgUC  *organizacion.CreateUseCase
	OnboardingUC *organizacion.OnboardingUseCase
	AdminUC      *organizacion.AdminUseCase
	ProductoUC   *usecase.ProductoUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	InventarioUC *inventario.UseCase
	Hub          *realtime.Hub
	MiembroRepo  repository.MiembroRepository
	OrgRepo      repository.OrganizacionRepository
	PerfilRepo   repository.PerfilRepository
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/verificar", authHandler.VerificarEmail)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión: evaluación del gate de admisión
	sesionHandler := NewSesionHandler(deps.Admission)
	protected.Get("/sesion/estado", sesionHandler.Estado)

	// Catálogo de plantillas para el asistente de onboarding
	plantillaHandler := NewPlantillaHandler()
	protected.Get("/plantillas", plantillaHandler.List)

	// Organizaciones: creación y onboarding. Sin OrganizacionMiddleware: se
	// usan justamente cuando el usuario aún no tiene organización aprobada.
	orgHandler := NewOrganizacionHandler(deps.CreateOrgUC, deps.OnboardingUC)
	organizaciones := protected.Group("/organizaciones")
	organizaciones.Post("/", orgHandler.Create)
	organizaciones.Post("/:id/onboarding", orgHandler.CompletarOnboarding)

	// Panel de revisión (autorización contra la base en el caso de uso)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin := protected.Group("/admin")
	admin.Get("/solicitudes", adminHandler.ListSolicitudes)
	admin.Post("/organizaciones/:id/aprobar", adminHandler.Aprobar)
	admin.Post("/organizaciones/:id/rechazar", adminHandler.Rechazar)

	// Dominio de inventario: requiere organización APROBADA resuelta
	inventarioGroup := protected.Group("/", OrganizacionMiddleware(deps.MiembroRepo, deps.OrgRepo))

	productos := inventarioGroup.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	categorias := inventarioGroup.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)

	movimientos := inventarioGroup.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.InventarioUC)
	movimientos.Post("/", movimientoHandler.Registrar)
	movimientos.Get("/", movimientoHandler.List)

	// Canal realtime (token vía query param para websockets de navegador)
	realtimeHandler := NewRealtimeHandler(deps.Hub, deps.MiembroRepo, deps.PerfilRepo, deps.Log)
	app.Get("/realtime", AuthMiddleware(deps.JWTSecret), realtimeHandler.Upgrade, realtimeHandler.Serve())
}

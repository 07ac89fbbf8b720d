package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/techstock/techstock-api/internal/application/admission"
	"github.com/techstock/techstock-api/internal/application/auth"
	"github.com/techstock/techstock-api/internal/application/inventario"
	"github.com/techstock/techstock-api/internal/application/organizacion"
	"github.com/techstock/techstock-api/internal/application/usecase"
	"github.com/techstock/techstock-api/internal/infrastructure/postgres"
	"github.com/techstock/techstock-api/internal/infrastructure/realtime"
	httpRouter "github.com/techstock/techstock-api/internal/interfaces/http"
	"github.com/techstock/techstock-api/pkg/config"
	"github.com/techstock/techstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	perfilRepo := postgres.NewPerfilRepository(pool)
	orgRepo := postgres.NewOrganizacionRepository(pool)
	miembroRepo := postgres.NewMiembroRepository(pool)
	configRepo := postgres.NewConfiguracionRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)

	// Canal realtime. Sin Redis configurado el broadcast es solo local (una instancia).
	var pub realtime.Publisher
	var sub realtime.Subscriber
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pubsub := realtime.NewRedisPubSub(redisClient, log)
		pub, sub = pubsub, pubsub
		log.Info().Str("addr", cfg.Redis.Addr).Msg("fan-out realtime vía redis habilitado")
	}
	hub := realtime.NewHub(log, pub, sub)
	notificador := realtime.NewNotificador(hub)

	authUC := auth.NewAuthUseCase(perfilRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	admissionSvc := admission.NewService(perfilRepo, miembroRepo, orgRepo, configRepo, log)
	createOrgUC := organizacion.NewCreateUseCase(orgRepo, miembroRepo, perfilRepo, configRepo, log)
	onboardingUC := organizacion.NewOnboardingUseCase(orgRepo, miembroRepo, configRepo, categoriaRepo, log)
	adminUC := organizacion.NewAdminUseCase(perfilRepo, orgRepo, notificador, log)
	productoUC := usecase.NewProductoUseCase(productoRepo, log)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo, log)
	inventarioUC := inventario.NewUseCase(movimientoRepo, productoRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// swagger.New hace panic si el archivo no existe, así que el montaje se
	// condiciona a su presencia en vez de tumbar el arranque.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "TechStock API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de documentación deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Admission:    admissionSvc,
		CreateOrgUC:  createOrgUC,
		OnboardingUC: onboardingUC,
		AdminUC:      adminUC,
		ProductoUC:   productoUC,
		CategoriaUC:  categoriaUC,
		InventarioUC: inventarioUC,
		Hub:          hub,
		MiembroRepo:  miembroRepo,
		OrgRepo:      orgRepo,
		PerfilRepo:   perfilRepo,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/taller-api/internal/application/auth"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/taller-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/taller-api/internal/interfaces/http"
	"github.com/tu-usuario/taller-api/pkg/config"
	"github.com/tu-usuario/taller-api/pkg/logger"
	"github.com/tu-usuario/taller-api/pkg/token"

	_ "github.com/tu-usuario/taller-api/docs"
)

// @title           Taller API
// @version         1.0
// @description     API de gestión del taller: clientes, vehículos, reparaciones y personal.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
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

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	vehiculoRepo := postgres.NewVehiculoRepository(pool)
	reparacionRepo := postgres.NewReparacionRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	issuer := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpHours)

	authUC := auth.NewAuthUseCase(usuarioRepo, issuer)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	vehiculoUC := usecase.NewVehiculoUseCase(vehiculoRepo)
	reparacionUC := usecase.NewReparacionUseCase(reparacionRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	// PDF: comprobante imprimible de la orden de trabajo
	comprobantes := infrapdf.NewMarotoComprobanteGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClienteUC:    clienteUC,
		VehiculoUC:   vehiculoUC,
		ReparacionUC: reparacionUC,
		UsuarioUC:    usuarioUC,
		DashboardUC:  dashboardUC,
		Comprobantes: comprobantes,
		Issuer:       issuer,
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

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/auth"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClienteUC    *usecase.ClienteUseCase
	VehiculoUC   *usecase.VehiculoUseCase
	ReparacionUC *usecase.ReparacionUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	DashboardUC  *usecase.DashboardUseCase
	Comprobantes ComprobanteGenerator
	Issuer       *token.Issuer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público). El front original monta login y cambiar-password bajo
	// /usuarios, antes del middleware de auth.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/usuarios/login", authHandler.Login)
	api.Post("/usuarios/cambiar-password", authHandler.CambiarPassword)
	// verify-token responde 401 tanto sin token como con token inválido, por
	// eso no pasa por AuthMiddleware (que responde 403 sin token).
	api.Get("/verify-token", authHandler.VerifyToken)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Issuer))

	// Clientes (cualquier usuario autenticado)
	clientes := protected.Group("/clientes", RequireRol())
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Vehículos (cualquier usuario autenticado)
	vehiculos := protected.Group("/vehiculos", RequireRol())
	vehiculoHandler := NewVehiculoHandler(deps.VehiculoUC)
	vehiculos.Get("/", vehiculoHandler.List)
	vehiculos.Post("/", vehiculoHandler.Create)
	vehiculos.Put("/:id", vehiculoHandler.Update)
	vehiculos.Delete("/:id", vehiculoHandler.Delete)

	// Reparaciones (cualquier usuario autenticado)
	reparaciones := protected.Group("/reparaciones", RequireRol())
	reparacionHandler := NewReparacionHandler(deps.ReparacionUC, deps.Comprobantes)
	reparaciones.Get("/", reparacionHandler.List)
	reparaciones.Post("/", reparacionHandler.Create)
	reparaciones.Put("/:id", reparacionHandler.Update)
	reparaciones.Delete("/:id", reparacionHandler.Delete)
	reparaciones.Post("/:id/confirmar", reparacionHandler.Confirmar)
	reparaciones.Get("/:id/pdf", reparacionHandler.ComprobantePDF)

	// Usuarios: lectura para todo el personal, escritura solo admin.
	// El PUT queda para cualquier autenticado; el handler aplica la regla
	// "admin o la propia cuenta".
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	protected.Get("/usuarios", RequireRol(entity.RolAdmin, entity.RolSecretaria, entity.RolMecanico), usuarioHandler.List)
	protected.Post("/usuarios", RequireRol(entity.RolAdmin), usuarioHandler.Create)
	protected.Put("/usuarios/:id", RequireRol(), usuarioHandler.Update)
	protected.Delete("/usuarios/:id", RequireRol(entity.RolAdmin), usuarioHandler.Delete)

	// Dashboard (cualquier usuario autenticado)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireRol(), dashboardHandler.Resumen)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/auth"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// AuthHandler maneja login, cambio de contraseña y verificación de token.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/usuarios/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// La respuesta es la misma para email inexistente y contraseña errada.
		if errors.Is(err, domain.ErrCredencialesInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(out)
}

// CambiarPassword godoc
// @Summary      Cambiar contraseña (reautentica con la contraseña actual)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CambiarPasswordRequest  true  "email, oldPassword, newPassword"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/usuarios/cambiar-password [post]
func (h *AuthHandler) CambiarPassword(c *fiber.Ctx) error {
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.CambiarPassword(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsuarioNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Usuario no encontrado"})
		case errors.Is(err, domain.ErrPasswordIncorrecta):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Contraseña actual incorrecta"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
		}
	}
	return c.JSON(out)
}

// VerifyToken godoc
// @Summary      Verificar token (decodifica el claim, sin consultar la DB)
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.VerifyTokenResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /api/verify-token [get]
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "No se proporcionó token"})
	}
	out, err := h.uc.VerifyToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Token inválido"})
	}
	return c.JSON(out)
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/pkg/token"
)

// LocalClaims key bajo la que el middleware deja los claims en c.Locals.
const LocalClaims = "claims"

// AuthMiddleware exige un Bearer Token válido y deja los claims en el contexto.
//
// Códigos de respuesta (contrato del sistema original):
//   - 403 {"message":"No token provided"} cuando el header no trae token.
//   - 401 {"message":"Unauthorized"} cuando el token es inválido o expiró.
func AuthMiddleware(issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{Message: "No token provided"})
		}
		claims, err := issuer.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Unauthorized"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRol autoriza según una lista de roles permitidos. Lista vacía
// significa "cualquier usuario autenticado". Debe usarse DESPUÉS de
// AuthMiddleware (necesita los claims en el contexto).
func RequireRol(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{Message: "No token provided"})
		}
		if len(roles) == 0 {
			return c.Next()
		}
		for _, r := range roles {
			if claims.Rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{Message: "Forbidden"})
	}
}

// bearerToken extrae el token del header Authorization ("Bearer <token>").
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetClaims devuelve los claims del contexto (después del middleware de auth).
func GetClaims(c *fiber.Ctx) *token.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}

// GetUserID devuelve el ID del usuario autenticado, o 0 si no hay claims.
func GetUserID(c *fiber.Ctx) int64 {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}

// GetRol devuelve el rol del usuario autenticado, o "" si no hay claims.
func GetRol(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.Rol
	}
	return ""
}

package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/taller-api/internal/interfaces/http"
	"github.com/tu-usuario/taller-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "taller-api-test"
)

func testTokenIssuer() *token.Issuer {
	return token.NewIssuer(testJWTSecret, testIssuer, 1)
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT y cargar los claims
//   - RequireRol para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(roles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testTokenIssuer()),
		apphttp.RequireRol(roles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRol(c),
			})
		},
	)
	return app
}

// tokenParaRol genera un JWT con el rol indicado.
func tokenParaRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := testTokenIssuer().Issue(1, "Test", "test@taller.cl", rol)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protegida y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — contrato de códigos de estado
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → HTTP 403 "No token provided".
func TestAuthMiddleware_SinToken_Retorna403(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin token la respuesta debe ser 403, no 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No token provided")
}

// Header con esquema distinto de Bearer cuenta como token ausente → 403.
func TestAuthMiddleware_EsquemaNoBearer_Retorna403(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Token malformado → HTTP 401 Unauthorized.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Unauthorized")
}

// Token firmado con otro secreto → HTTP 401.
func TestAuthMiddleware_FirmaIncorrecta_Retorna401(t *testing.T) {
	app := buildTestApp()
	otro := token.NewIssuer("otro-secret-completamente-distinto", testIssuer, 1)
	tok, err := otro.Issue(1, "Test", "test@taller.cl", "admin")
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRol
// ──────────────────────────────────────────────────────────────────────────────

// El usuario tiene el rol requerido → HTTP 200.
func TestRequireRol_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenParaRol(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["rol"])
}

// El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRol_SecretariaAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp("admin", "secretaria")
	resp := doRequest(t, app, tokenParaRol(t, "secretaria"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"secretaria debe poder acceder a ruta que permite admin o secretaria")
}

// El usuario tiene un rol distinto al requerido → HTTP 403 Forbidden.
func TestRequireRol_MecanicoBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenParaRol(t, "mecanico"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"mecanico no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Forbidden")
}

// Lista de roles vacía = cualquier usuario autenticado → HTTP 200.
func TestRequireRol_SinRolesPermiteCualquierAutenticado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenParaRol(t, "mecanico"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testTokenIssuer()), func(c *fiber.Ctx) error {
		claims := apphttp.GetClaims(c)
		return c.JSON(fiber.Map{
			"id":     apphttp.GetUserID(c),
			"rol":    apphttp.GetRol(c),
			"email":  claims.Email,
			"nombre": claims.Nombre,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenParaRol(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "admin", body["rol"])
	assert.Equal(t, "test@taller.cl", body["email"])
	assert.Equal(t, "Test", body["nombre"])
}

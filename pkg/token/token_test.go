package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/taller-api/pkg/token"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "taller-api-test"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	issuer := token.NewIssuer(testSecret, testIssuer, 24)

	tok, err := issuer.Issue(42, "Juana", "juana@taller.cl", "secretaria")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Juana", claims.Nombre)
	assert.Equal(t, "juana@taller.cl", claims.Email)
	assert.Equal(t, "secretaria", claims.Rol)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestVerify_TokenExpirado_RetornaErrExpired(t *testing.T) {
	// Token firmado con el mismo secreto pero ya vencido.
	now := time.Now()
	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
		UserID: 1,
		Rol:    "admin",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	issuer := token.NewIssuer(testSecret, testIssuer, 24)
	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, token.ErrExpired)
}

func TestVerify_SecretIncorrecto_RetornaErrInvalidSignature(t *testing.T) {
	issuer := token.NewIssuer(testSecret, testIssuer, 24)
	tok, err := issuer.Issue(1, "Admin", "admin@taller.cl", "admin")
	require.NoError(t, err)

	otro := token.NewIssuer("otro-secret-completamente-distinto", testIssuer, 24)
	_, err = otro.Verify(tok)
	assert.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestVerify_TokenMalformado_RetornaErrInvalid(t *testing.T) {
	issuer := token.NewIssuer(testSecret, testIssuer, 24)
	_, err := issuer.Verify("token.invalido.aqui")
	assert.ErrorIs(t, err, token.ErrInvalid)
}

func TestIssue_SecretVacio_RetornaError(t *testing.T) {
	issuer := token.NewIssuer("", testIssuer, 24)
	_, err := issuer.Issue(1, "Admin", "admin@taller.cl", "admin")
	assert.Error(t, err)
}

package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/taller-api/pkg/password"
)

func TestHashAndVerify_Roundtrip(t *testing.T) {
	hash, err := password.Hash("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secreto123", hash, "el hash nunca debe ser el texto plano")

	assert.True(t, password.Verify("secreto123", hash))
	assert.False(t, password.Verify("otro-secreto", hash))
}

func TestVerify_HashInvalido_RetornaFalse(t *testing.T) {
	assert.False(t, password.Verify("lo-que-sea", "no-es-un-hash-bcrypt"))
}

func TestHash_MismaEntradaHashesDistintos(t *testing.T) {
	// bcrypt usa sal aleatoria: dos hashes de la misma contraseña difieren.
	h1, err := password.Hash("secreto123")
	require.NoError(t, err)
	h2, err := password.Hash("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

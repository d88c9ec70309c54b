package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(testSecret, "1", "Super Administrateur", "ADMIN", "orsre-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "Super Administrateur", claims.Name)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "orsre-test", claims.Issuer)
}

func TestParse_Expired(t *testing.T) {
	tok, err := Generate(testSecret, "1", "x", "ADMIN", "orsre-test", -1)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := Generate(testSecret, "1", "x", "ADMIN", "orsre-test", 60)
	require.NoError(t, err)

	_, err = Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", "1", "x", "ADMIN", "orsre-test", 60)
	assert.Error(t, err)

	_, err = Parse("", "a.b.c")
	assert.Error(t, err)
}

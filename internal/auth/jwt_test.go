package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT(42, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := VerifyJWT(token)
	require.NoError(t, err)

	userID, err := UserIDFromToken(parsed)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	_, err := VerifyJWT("not.a.token")
	assert.Error(t, err)
}

func TestInitJWTSecretMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())
}

package auth

import (
	"testing"

	"antigaspi/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testAuthConfig())

	hash, err := hasher.Hash("motdepasse123")
	require.NoError(t, err)
	assert.NotEqual(t, "motdepasse123", hash)

	assert.True(t, hasher.Check("motdepasse123", hash))
	assert.False(t, hasher.Check("mauvais-mdp", hash))
	assert.False(t, hasher.Check("motdepasse123", "pas-un-hash"))
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	cfg := testAuthConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	profileID := uuid.New()
	access, refresh, err := svc.GenerateTokens(profileID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	token, err := svc.ValidateToken(access, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, profileID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	cfg := testAuthConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access, "autre-secret")
	assert.Error(t, err)
}

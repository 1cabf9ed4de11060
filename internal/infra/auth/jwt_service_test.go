package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/config"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := service.ValidateToken(signed, "test-secret")
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims["sub"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	signed := signTestToken(t, "other-secret", jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = service.ValidateToken(signed, "test-secret")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = service.ValidateToken(signed, "test-secret")
	assert.Error(t, err)
}

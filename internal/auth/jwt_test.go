package auth

import (
	"testing"

	"stokpanel-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret!"

func TestGenerateToken_RoundTrip(t *testing.T) {
	user := &models.User{
		ID:    7,
		Email: "admin@stokpanel.local",
		Role:  models.RoleAdmin,
	}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*JWTCustomClaims)
	require.True(t, ok)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@stokpanel.local", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestGenerateToken_WrongSecretRejected(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.c", Role: models.RoleAdmin}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("yanlış-secret-yanlış-secret-yanlış!"), nil
	})
	assert.Error(t, err)
}

package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func parseToken(t *testing.T, signed string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestSignTokenStudentClaims(t *testing.T) {
	user := &models.User{
		ID:    uuid.New(),
		Email: "student@example.com",
		Role:  models.RoleStudent,
	}

	signed, err := signToken(testSecret, 168*time.Hour, user, true)
	require.NoError(t, err)

	claims := parseToken(t, signed)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "student@example.com", claims["email"])
	assert.Equal(t, string(models.RoleStudent), claims["role"])
	assert.Equal(t, true, claims["has_active_subscription"])
	assert.NotContains(t, claims, "has_active_campaigns")

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(168*3600), exp-iat, "7 day lifetime")
}

func TestSignTokenCompanyClaims(t *testing.T) {
	user := &models.User{
		ID:    uuid.New(),
		Email: "hiring@acme.example",
		Role:  models.RoleCompany,
	}

	signed, err := signToken(testSecret, 168*time.Hour, user, false)
	require.NoError(t, err)

	claims := parseToken(t, signed)
	assert.Equal(t, string(models.RoleCompany), claims["role"])
	assert.Equal(t, false, claims["has_active_campaigns"])
	assert.NotContains(t, claims, "has_active_subscription")
}

func TestSignTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "a@b.c", Role: models.RoleStudent}
	signed, err := signToken("other-secret", time.Hour, user, false)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	assert.Error(t, err)
}

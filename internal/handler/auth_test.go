package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/repository"
	"github.com/iliyamo/sport-complex/internal/utils"
)

type memUserReader map[string]*model.User

func (s memUserReader) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := s[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func newAuthFixture(t *testing.T) (*handlerFixture, *AuthHandler) {
	t.Helper()
	hash, err := utils.HashPassword("correct-horse", 4)
	require.NoError(t, err)
	users := memUserReader{
		"admin@example.com": {ID: 1, Username: "admin", Email: "admin@example.com", PasswordHash: hash, Role: model.RoleAdmin},
	}
	return newHandlerFixture(), NewAuthHandler(users, "test-secret", 15)
}

func TestLoginIssuesToken(t *testing.T) {
	fx, auth := newAuthFixture(t)
	rec, c := fx.request(http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"correct-horse"}`)

	require.NoError(t, auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	raw, _ := data["accessToken"].(string)
	require.NotEmpty(t, raw)

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(1), claims["sub"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	fx, auth := newAuthFixture(t)
	rec, c := fx.request(http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`)

	require.NoError(t, auth.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	fx, auth := newAuthFixture(t)
	rec, c := fx.request(http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)

	require.NoError(t, auth.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	fx, auth := newAuthFixture(t)
	rec, c := fx.request(http.MethodPost, "/api/auth/login", `{"email":"not-an-email"}`)

	require.NoError(t, auth.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

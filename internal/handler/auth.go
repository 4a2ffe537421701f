package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/repository"
	"github.com/iliyamo/sport-complex/internal/utils"
)

// UserReader looks up accounts for login.  *repository.UserRepo
// satisfies it.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthHandler issues access tokens.
type AuthHandler struct {
	Users        UserReader
	JWTSecret    string
	AccessTTLMin int
}

// NewAuthHandler wires an AuthHandler.
func NewAuthHandler(users UserReader, secret string, ttlMin int) *AuthHandler {
	return &AuthHandler{Users: users, JWTSecret: secret, AccessTTLMin: ttlMin}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login.  Wrong email and wrong password
// answer the same 401 so the endpoint does not reveal which accounts
// exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	u, err := h.Users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
		}
		return respondError(c, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}

	tok, err := utils.NewAccessToken(h.JWTSecret, u.ID, u.Role, h.AccessTTLMin)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{
		"accessToken": tok.Token,
		"expiresAt":   tok.Exp,
		"user": echo.Map{
			"id":       u.ID,
			"username": u.Username,
			"email":    u.Email,
			"role":     u.Role,
		},
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/repository"
	"github.com/iliyamo/sport-complex/internal/utils"
)

// UserHandler exposes user account CRUD.  Passwords arrive plain and
// are stored as bcrypt hashes; the hash never leaves the API.
type UserHandler struct {
	repo       *repository.UserRepo
	bcryptCost int
}

// NewUserHandler wires a UserHandler.
func NewUserHandler(repo *repository.UserRepo, bcryptCost int) *UserHandler {
	return &UserHandler{repo: repo, bcryptCost: bcryptCost}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin member"`
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if req.Role == "" {
		req.Role = model.RoleMember
	}

	hash, err := utils.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		return respondError(c, err)
	}
	u := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := h.repo.Create(c.Request().Context(), u); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, u)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	u, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, u)
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin member"`
}

// Update handles PATCH /api/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	u, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password, h.bcryptCost)
		if err != nil {
			return respondError(c, err)
		}
		u.PasswordHash = hash
	}

	if err := h.repo.Update(c.Request().Context(), u); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, u)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

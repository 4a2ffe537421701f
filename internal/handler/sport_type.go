package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/repository"
)

// SportTypeHandler exposes sport type CRUD straight onto the
// repository.
type SportTypeHandler struct {
	repo *repository.SportTypeRepo
}

// NewSportTypeHandler wires a SportTypeHandler.
func NewSportTypeHandler(repo *repository.SportTypeRepo) *SportTypeHandler {
	return &SportTypeHandler{repo: repo}
}

type sportTypeRequest struct {
	Name model.LocalizedName `json:"name" validate:"required"`
}

// Create handles POST /api/type-sports.
func (h *SportTypeHandler) Create(c echo.Context) error {
	var req sportTypeRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if req.Name.En == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name.en is required"})
	}

	t := &model.SportType{Name: req.Name}
	if err := h.repo.Create(c.Request().Context(), t); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, t)
}

// Get handles GET /api/type-sports/:id.
func (h *SportTypeHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	t, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, t)
}

// List handles GET /api/type-sports.
func (h *SportTypeHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

// Update handles PATCH /api/type-sports/:id.
func (h *SportTypeHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	var req sportTypeRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	t, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if req.Name.En != "" {
		t.Name.En = req.Name.En
	}
	if req.Name.Th != "" {
		t.Name.Th = req.Name.Th
	}

	if err := h.repo.Update(c.Request().Context(), t); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, t)
}

// Delete handles DELETE /api/type-sports/:id.
func (h *SportTypeHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

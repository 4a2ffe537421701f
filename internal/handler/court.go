package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/repository"
)

// CourtHandler exposes court CRUD straight onto the repository.
type CourtHandler struct {
	repo *repository.CourtRepo
}

// NewCourtHandler wires a CourtHandler.
func NewCourtHandler(repo *repository.CourtRepo) *CourtHandler {
	return &CourtHandler{repo: repo}
}

type courtRequest struct {
	Name        string `json:"name" validate:"required"`
	SportTypeID uint64 `json:"type" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}

// Create handles POST /api/courts.
func (h *CourtHandler) Create(c echo.Context) error {
	var req courtRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if req.Status == "" {
		req.Status = model.FieldStatusActive
	}

	ct := &model.Court{Name: req.Name, SportTypeID: req.SportTypeID, Status: req.Status}
	if err := h.repo.Create(c.Request().Context(), ct); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, ct)
}

// Get handles GET /api/courts/:id.
func (h *CourtHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	ct, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, ct)
}

// List handles GET /api/courts.
func (h *CourtHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

type updateCourtRequest struct {
	Name        *string `json:"name"`
	SportTypeID *uint64 `json:"type"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}

// Update handles PATCH /api/courts/:id.
func (h *CourtHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	var req updateCourtRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	ct, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if req.Name != nil {
		ct.Name = *req.Name
	}
	if req.SportTypeID != nil {
		ct.SportTypeID = *req.SportTypeID
	}
	if req.Status != nil {
		ct.Status = *req.Status
	}

	if err := h.repo.Update(c.Request().Context(), ct); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, ct)
}

// Delete handles DELETE /api/courts/:id.
func (h *CourtHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

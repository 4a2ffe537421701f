package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/repository"
)

// FieldHandler exposes field CRUD straight onto the repository.
type FieldHandler struct {
	repo *repository.FieldRepo
}

// NewFieldHandler wires a FieldHandler.
func NewFieldHandler(repo *repository.FieldRepo) *FieldHandler {
	return &FieldHandler{repo: repo}
}

type fieldRequest struct {
	Name        model.LocalizedName `json:"name" validate:"required"`
	Price       float64             `json:"price" validate:"gte=0"`
	Capacity    uint32              `json:"capacity" validate:"required,gt=0"`
	SportTypeID uint64              `json:"type" validate:"required"`
	Status      string              `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}

// Create handles POST /api/fields.
func (h *FieldHandler) Create(c echo.Context) error {
	var req fieldRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if req.Status == "" {
		req.Status = model.FieldStatusActive
	}

	f := &model.Field{
		Name:        req.Name,
		Price:       req.Price,
		Capacity:    req.Capacity,
		SportTypeID: req.SportTypeID,
		Status:      req.Status,
	}
	if err := h.repo.Create(c.Request().Context(), f); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, f)
}

// Get handles GET /api/fields/:id.
func (h *FieldHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	f, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, f)
}

// List handles GET /api/fields.
func (h *FieldHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

type updateFieldRequest struct {
	Name        *model.LocalizedName `json:"name"`
	Price       *float64             `json:"price" validate:"omitempty,gte=0"`
	Capacity    *uint32              `json:"capacity" validate:"omitempty,gt=0"`
	SportTypeID *uint64              `json:"type"`
	Status      *string              `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}

// Update handles PATCH /api/fields/:id.
func (h *FieldHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	var req updateFieldRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	f, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Price != nil {
		f.Price = *req.Price
	}
	if req.Capacity != nil {
		f.Capacity = *req.Capacity
	}
	if req.SportTypeID != nil {
		f.SportTypeID = *req.SportTypeID
	}
	if req.Status != nil {
		f.Status = *req.Status
	}

	if err := h.repo.Update(c.Request().Context(), f); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, f)
}

// Delete handles DELETE /api/fields/:id.
func (h *FieldHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

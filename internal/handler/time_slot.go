package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/repository"
)

// TimeSlotHandler exposes time slot CRUD straight onto the repository.
type TimeSlotHandler struct {
	repo *repository.TimeSlotRepo
}

// NewTimeSlotHandler wires a TimeSlotHandler.
func NewTimeSlotHandler(repo *repository.TimeSlotRepo) *TimeSlotHandler {
	return &TimeSlotHandler{repo: repo}
}

type timeSlotRequest struct {
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

// Create handles POST /api/time-slots.
func (h *TimeSlotHandler) Create(c echo.Context) error {
	var req timeSlotRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if req.Start >= req.End {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "start must be before end"})
	}

	s := &model.TimeSlot{Start: req.Start, End: req.End}
	if err := h.repo.Create(c.Request().Context(), s); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, s)
}

// Get handles GET /api/time-slots/:id.
func (h *TimeSlotHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	s, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, s)
}

// List handles GET /api/time-slots.
func (h *TimeSlotHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

type updateTimeSlotRequest struct {
	Start *string `json:"start" validate:"omitempty,datetime=15:04"`
	End   *string `json:"end" validate:"omitempty,datetime=15:04"`
}

// Update handles PATCH /api/time-slots/:id.
func (h *TimeSlotHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	var req updateTimeSlotRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	s, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if req.Start != nil {
		s.Start = *req.Start
	}
	if req.End != nil {
		s.End = *req.End
	}
	if s.Start >= s.End {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "start must be before end"})
	}

	if err := h.repo.Update(c.Request().Context(), s); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, s)
}

// Delete handles DELETE /api/time-slots/:id.
func (h *TimeSlotHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

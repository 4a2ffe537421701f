package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/repository"
	"github.com/iliyamo/sport-complex/internal/service"
)

// ReservationHandler exposes the reservation lifecycle over HTTP.
type ReservationHandler struct {
	svc *service.ReservationService
}

// NewReservationHandler wires a ReservationHandler.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

type createReservationRequest struct {
	FieldID    uint64 `json:"field" validate:"required"`
	TimeSlotID uint64 `json:"timeSlot" validate:"required"`
	UserID     uint64 `json:"user" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Create handles POST /api/reservations.  New bookings always start
// pending; a status in the body is ignored.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	v := &model.Reservation{
		FieldID:    req.FieldID,
		TimeSlotID: req.TimeSlotID,
		UserID:     req.UserID,
		Date:       req.Date,
	}
	if err := h.svc.Create(c.Request().Context(), v); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, v)
}

// Get handles GET /api/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	v, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, v)
}

// List handles GET /api/reservations.  Optional query parameters:
// field, user (numeric ids), from, to (inclusive dates).
func (h *ReservationHandler) List(c echo.Context) error {
	var f repository.ReservationFilter

	if s := c.QueryParam("field"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return respondBadRequest(c, fmt.Errorf("invalid field filter %q", s))
		}
		f.FieldID = &id
	}
	if s := c.QueryParam("user"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return respondBadRequest(c, fmt.Errorf("invalid user filter %q", s))
		}
		f.UserID = &id
	}
	if s := c.QueryParam("from"); s != "" {
		f.DateFrom = &s
	}
	if s := c.QueryParam("to"); s != "" {
		f.DateTo = &s
	}

	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

type updateReservationRequest struct {
	FieldID    *uint64 `json:"field"`
	TimeSlotID *uint64 `json:"timeSlot"`
	UserID     *uint64 `json:"user"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// Update handles PATCH /api/reservations/:id.  Omitted fields keep
// their stored values; the merged record is then re-validated as a
// whole, excluding the reservation itself from the conflict check.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	var req updateReservationRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	v, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if req.FieldID != nil {
		v.FieldID = *req.FieldID
	}
	if req.TimeSlotID != nil {
		v.TimeSlotID = *req.TimeSlotID
	}
	if req.UserID != nil {
		v.UserID = *req.UserID
	}
	if req.Date != nil {
		v.Date = *req.Date
	}
	if req.Status != nil {
		v.Status = *req.Status
	}

	if err := h.svc.Update(c.Request().Context(), v); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, v)
}

// Delete handles DELETE /api/reservations/:id.  Payment records for
// the reservation are kept.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sport-complex/internal/model"
	"github.com/iliyamo/sport-complex/internal/service"
)

// PaymentSpecialHandler exposes payment records over HTTP.
type PaymentSpecialHandler struct {
	svc *service.PaymentService
}

// NewPaymentSpecialHandler wires a PaymentSpecialHandler.
func NewPaymentSpecialHandler(svc *service.PaymentService) *PaymentSpecialHandler {
	return &PaymentSpecialHandler{svc: svc}
}

type createPaymentRequest struct {
	ReservationID uint64     `json:"reservation" validate:"required"`
	Price         float64    `json:"price" validate:"gte=0"`
	Status        string     `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	PaymentImage  *string    `json:"paymentImage"`
	DateTime      *time.Time `json:"dateTime"`
}

// Create handles POST /api/payments-special.  The referenced
// reservation must exist; dateTime defaults to now.
func (h *PaymentSpecialHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	p := &model.PaymentSpecial{
		ReservationID: req.ReservationID,
		Price:         req.Price,
		Status:        req.Status,
		PaymentImage:  req.PaymentImage,
		DateTime:      time.Now().UTC(),
	}
	if req.DateTime != nil {
		p.DateTime = req.DateTime.UTC()
	}
	if err := h.svc.Create(c.Request().Context(), p); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, p)
}

// Get handles GET /api/payments-special/:id.
func (h *PaymentSpecialHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, p)
}

// List handles GET /api/payments-special, optionally filtered by the
// reservation query parameter.
func (h *PaymentSpecialHandler) List(c echo.Context) error {
	var reservationID uint64
	if s := c.QueryParam("reservation"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return respondBadRequest(c, fmt.Errorf("invalid reservation filter %q", s))
		}
		reservationID = id
	}
	items, err := h.svc.List(c.Request().Context(), reservationID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

type updatePaymentRequest struct {
	Price        *float64   `json:"price" validate:"omitempty,gte=0"`
	Status       *string    `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	PaymentImage *string    `json:"paymentImage"`
	DateTime     *time.Time `json:"dateTime"`
}

// Update handles PATCH /api/payments-special/:id.  The reservation
// reference is immutable; omitted fields keep their stored values.
func (h *PaymentSpecialHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err)
	}

	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.PaymentImage != nil {
		p.PaymentImage = req.PaymentImage
	}
	if req.DateTime != nil {
		p.DateTime = req.DateTime.UTC()
	}

	if err := h.svc.Update(c.Request().Context(), p); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, p)
}

// Delete handles DELETE /api/payments-special/:id.
func (h *PaymentSpecialHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondBadID(c)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

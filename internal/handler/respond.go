// Package handler contains the HTTP handlers.  Success responses wrap
// the payload in {"data": ...}; failures carry a "message" field and,
// for booking conflicts, the colliding reservation.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/sport-complex/internal/repository"
	"github.com/iliyamo/sport-complex/internal/service"
)

func respondData(c echo.Context, status int, v any) error {
	return c.JSON(status, echo.Map{"data": v})
}

// respondError maps domain errors onto HTTP statuses: validation 400,
// missing resource 404, occupied slot or taken email 409, anything
// else 500.  Internal errors are logged with request context and
// never leak their text to the client.
func respondError(c echo.Context, err error) error {
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, echo.Map{
			"message": conflict.Error(),
			"conflict": echo.Map{
				"reservation": conflict.ReservationID,
				"field":       conflict.FieldID,
				"date":        conflict.Date,
				"timeSlot":    conflict.TimeSlotID,
				"start":       conflict.Start,
				"end":         conflict.End,
			},
		})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case repository.IsNotFound(err):
		return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
	case errors.Is(err, repository.ErrEmailTaken), errors.Is(err, repository.ErrSlotTaken):
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
	default:
		log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("request failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// respondBadRequest answers a malformed body or failed input
// validation.
func respondBadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
}

// parseID reads the numeric :id path parameter.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func respondBadID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
}

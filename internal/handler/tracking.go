package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargonova/logistics-api/internal/tracking"
)

// TrackingHandler exposes the tracking lookup.  Validation errors map
// to 400 with the same messages the tracking page shows; storage
// failures map to 503 since the record store is what broke, not the
// request.
type TrackingHandler struct {
	Service *tracking.Service
}

// NewTrackingHandler constructs a TrackingHandler.
func NewTrackingHandler(svc *tracking.Service) *TrackingHandler {
	if svc == nil {
		panic("nil service passed to NewTrackingHandler")
	}
	return &TrackingHandler{Service: svc}
}

// Track handles GET /v1/tracking/:number.  The number is passed
// through the lookup service untouched; trimming, validation and
// normalization all live there.
func (h *TrackingHandler) Track(c echo.Context) error {
	rec, err := h.Service.Lookup(c.Request().Context(), c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrEmpty):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Please enter a tracking number"})
		case errors.Is(err, tracking.ErrInvalidFormat):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tracking number format. Please enter 8-20 alphanumeric characters."})
		case errors.Is(err, tracking.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Tracking number not found. Please check and try again."})
		case errors.Is(err, tracking.ErrStorage):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "tracking temporarily unavailable"})
		default:
			// includes context cancellation while waiting out the lookup delay
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
		}
	}
	return c.JSON(http.StatusOK, rec)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargonova/logistics-api/internal/booking"
	"github.com/cargonova/logistics-api/internal/model"
	"github.com/cargonova/logistics-api/internal/queue"
	"github.com/cargonova/logistics-api/internal/repository"
	queue_publisher "github.com/cargonova/logistics-api/internal/service"
	"github.com/cargonova/logistics-api/internal/store"
)

// BookingHandler exposes the booking wizard over HTTP.  Each client
// drives its own server-side session through the five steps; the
// handler only translates requests into session operations and maps
// errors to responses.  On confirmation the record is persisted to the
// key-value store by the session itself, archived in MySQL, and a
// booking.confirmed event is published for downstream consumers.  The
// archive insert and the event are best-effort: the customer already
// holds a confirmed booking, so failures are logged, not surfaced.
type BookingHandler struct {
	Sessions *booking.Registry       // live wizard sessions
	Store    store.Store             // key-value persistence for confirmed records
	Bookings *repository.BookingRepo // relational archive (may be nil when MySQL is disabled)

	// Publish emits the booking.confirmed event.  Tests replace it to
	// avoid dialing a broker.
	Publish func(ctx context.Context, event queue.BookingConfirmedEvent) error
}

// NewBookingHandler constructs a BookingHandler.  Sessions and Store
// must be non-nil; Bookings may be nil to run without the archive.
func NewBookingHandler(sessions *booking.Registry, st store.Store, bookings *repository.BookingRepo) *BookingHandler {
	if sessions == nil || st == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{
		Sessions: sessions,
		Store:    st,
		Bookings: bookings,
		Publish:  queue_publisher.PublishBookingConfirmed,
	}
}

// sessionState is the wire representation of a wizard session returned
// by most endpoints.
func sessionState(s *booking.Session) echo.Map {
	state := echo.Map{
		"session_id": s.ID,
		"step":       s.Step(),
		"confirmed":  s.Confirmed(),
		"form":       s.Form(),
	}
	if q, ok := s.Quote(); ok {
		state["quote"] = q
	}
	return state
}

// CreateSession handles POST /v1/bookings/sessions.  It opens a new
// wizard session at step 1 and returns its ID and initial state.
func (h *BookingHandler) CreateSession(c echo.Context) error {
	s := h.Sessions.Create()
	return c.JSON(http.StatusCreated, sessionState(s))
}

// GetSession handles GET /v1/bookings/sessions/:id.
func (h *BookingHandler) GetSession(c echo.Context) error {
	s, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, sessionState(s))
}

// SetFields handles PATCH /v1/bookings/sessions/:id/fields.  The body
// is a flat map of field name to string value; fields are applied in
// place and never move the wizard.  An unknown field name or a
// confirmed session yields a 400.
func (h *BookingHandler) SetFields(c echo.Context) error {
	s, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	// Decoded by hand: Bind on a map destination also injects path
	// parameters, which would smuggle an "id" entry into the form.
	var fields map[string]string
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields provided"})
	}
	for name, value := range fields {
		if err := s.SetField(name, value); err != nil {
			if errors.Is(err, booking.ErrSessionConfirmed) {
				return c.JSON(http.StatusConflict, echo.Map{"error": "session already confirmed"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, sessionState(s))
}

// Advance handles POST /v1/bookings/sessions/:id/advance.  From steps
// 1-4 it moves the wizard forward (computing the quote when leaving
// the package-details step); from step 5 it confirms the booking and
// returns the booking number, quote and status.
func (h *BookingHandler) Advance(c echo.Context) error {
	s, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	rec, err := s.Advance(c.Request().Context(), h.Store)
	if err != nil {
		if errors.Is(err, booking.ErrSessionConfirmed) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "session already confirmed"})
		}
		log.Printf("booking: confirm failed for session %s: %v", s.ID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to confirm booking"})
	}
	if rec == nil {
		return c.JSON(http.StatusOK, sessionState(s))
	}
	h.archiveAndPublish(rec)
	return c.JSON(http.StatusCreated, echo.Map{
		"booking_number": rec.BookingNumber,
		"quote":          rec.Quote,
		"status":         rec.Status,
		"booking_date":   rec.BookingDate,
	})
}

// Back handles POST /v1/bookings/sessions/:id/back.  Retreating from
// step 1 is a no-op; a confirmed session cannot be reopened.
func (h *BookingHandler) Back(c echo.Context) error {
	s, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	if err := s.Retreat(); err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "session already confirmed"})
	}
	return c.JSON(http.StatusOK, sessionState(s))
}

// GetBooking handles GET /v1/bookings/:number.  The key-value record is
// the source of truth; the MySQL archive is tried first as the cheaper
// indexed read, but an archive miss falls through to the store so a
// booking whose best-effort archive insert failed still resolves.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	ctx := c.Request().Context()
	number := c.Param("number")
	if h.Bookings != nil {
		rec, err := h.Bookings.GetByNumber(ctx, number)
		if err == nil {
			return c.JSON(http.StatusOK, rec)
		}
		if !errors.Is(err, repository.ErrBookingNotFound) {
			log.Printf("booking: archive read failed for %s: %v", number, err)
		}
	}
	raw, found, err := h.Store.Get(ctx, store.BookingKey(number))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	var rec model.BookingRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt booking record"})
	}
	return c.JSON(http.StatusOK, rec)
}

// archiveAndPublish writes the archive row and publishes the
// booking.confirmed event.  Runs on the request goroutine with its own
// timeout so a slow broker cannot hold the response hostage via the
// request context.
func (h *BookingHandler) archiveAndPublish(rec *model.BookingRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if h.Bookings != nil {
		if err := h.Bookings.Insert(ctx, rec); err != nil {
			log.Printf("booking: archive insert failed for %s: %v", rec.BookingNumber, err)
		}
	}
	event := queue.BookingConfirmedEvent{
		BookingNumber: rec.BookingNumber,
		ServiceType:   rec.Form.ServiceType,
		ShipmentType:  rec.Form.ShipmentType,
		OriginCity:    rec.Form.OriginCity,
		DestCity:      rec.Form.DestCity,
		Quote:         rec.Quote,
		PickupDate:    rec.Form.PickupDate,
		Status:        rec.Status,
		ConfirmedAt:   rec.BookingDate,
	}
	if err := h.Publish(ctx, event); err != nil {
		log.Printf("booking: publish confirmed event failed for %s: %v", rec.BookingNumber, err)
	}
}

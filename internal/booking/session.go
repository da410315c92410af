// Package booking implements the five-step shipment booking wizard: a
// session object accumulating form fields, the deterministic price
// quote, and confirmation which mints a booking number and persists an
// immutable booking record.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cargonova/logistics-api/internal/model"
	"github.com/cargonova/logistics-api/internal/store"
)

// Wizard steps in order.  Advancing past StepReview confirms the
// booking instead of moving to a sixth step.
const (
	StepServiceType    = 1
	StepRoute          = 2
	StepPackageDetails = 3
	StepContactInfo    = 4
	StepReview         = 5
)

// Clock supplies the current time.  Sessions take it as a dependency
// so tests can pin booking numbers and confirmation timestamps.
type Clock func() time.Time

// Session is one customer's pass through the booking wizard.  It owns
// the form accumulator, tracks the current step, and holds the quote
// computed when the customer leaves the package-details step.  All
// methods are safe for use from concurrent handler goroutines, though
// a session is normally driven by a single client.
//
// The step only ever moves one position at a time: Advance from steps
// 1-4 increments it, Retreat from steps 2-5 decrements it, and
// advancing from step 5 confirms the booking, which is terminal.
type Session struct {
	ID string

	mu        sync.Mutex
	step      int
	confirmed bool
	form      model.BookingForm
	quote     *float64
	clock     Clock
	record    *model.BookingRecord
}

// NewSession opens a fresh wizard session at step 1.  The form starts
// with the same defaults the booking page preselects: metric units and
// no insurance.  A nil clock defaults to time.Now.
func NewSession(clock Clock) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		ID:   uuid.NewString(),
		step: StepServiceType,
		form: model.BookingForm{
			WeightUnit:    "kg",
			DimensionUnit: "cm",
		},
		clock: clock,
	}
}

// Step returns the current wizard step (1-5).  After confirmation it
// keeps reporting 5; use Confirmed to detect the terminal state.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Confirmed reports whether the session reached its terminal state.
func (s *Session) Confirmed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmed
}

// Form returns a copy of the current form accumulator.
func (s *Session) Form() model.BookingForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Quote returns the quote computed at the last package-details
// transition, and whether one has been computed yet.
func (s *Session) Quote() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quote == nil {
		return 0, false
	}
	return *s.quote, true
}

// Record returns the booking record minted at confirmation, or nil if
// the session has not been confirmed.
func (s *Session) Record() *model.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// SetField writes one named form field.  Fields may be set on any step
// and never move the wizard; changing a field after the quote was
// computed does not touch the quote until step 3 is advanced again.
// Setting fields on a confirmed session returns ErrSessionConfirmed,
// and a name outside the form returns ErrUnknownField.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.confirmed {
		return ErrSessionConfirmed
	}
	switch name {
	case "service_type":
		s.form.ServiceType = value
	case "shipment_type":
		s.form.ShipmentType = value
	case "origin_country":
		s.form.OriginCountry = value
	case "origin_city":
		s.form.OriginCity = value
	case "origin_zip":
		s.form.OriginZip = value
	case "dest_country":
		s.form.DestCountry = value
	case "dest_city":
		s.form.DestCity = value
	case "dest_zip":
		s.form.DestZip = value
	case "weight":
		s.form.Weight = value
	case "weight_unit":
		s.form.WeightUnit = value
	case "length":
		s.form.Length = value
	case "width":
		s.form.Width = value
	case "height":
		s.form.Height = value
	case "dimension_unit":
		s.form.DimensionUnit = value
	case "package_description":
		s.form.PackageDescription = value
	case "package_value":
		s.form.PackageValue = value
	case "requires_insurance":
		s.form.RequiresInsurance = value == "true" || value == "1"
	case "sender_name":
		s.form.Sender.FullName = value
	case "sender_email":
		s.form.Sender.Email = value
	case "sender_phone":
		s.form.Sender.Phone = value
	case "sender_address":
		s.form.Sender.Address = value
	case "receiver_name":
		s.form.Receiver.FullName = value
	case "receiver_email":
		s.form.Receiver.Email = value
	case "receiver_phone":
		s.form.Receiver.Phone = value
	case "receiver_address":
		s.form.Receiver.Address = value
	case "pickup_date":
		s.form.PickupDate = value
	case "special_instructions":
		s.form.SpecialInstructions = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// Advance moves the wizard one step forward.  Leaving the
// package-details step recomputes the quote from the current form.
// Advancing from the review step confirms the booking: the returned
// record is non-nil exactly in that case.  No field validation gates
// the transition; an incomplete form simply yields an incomplete
// record.
func (s *Session) Advance(ctx context.Context, st store.Store) (*model.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.confirmed {
		return nil, ErrSessionConfirmed
	}
	if s.step == StepPackageDetails {
		q := ComputeQuote(&s.form)
		s.quote = &q
	}
	if s.step < StepReview {
		s.step++
		return nil, nil
	}
	return s.confirm(ctx, st)
}

// Retreat moves the wizard one step back.  It is a no-op on step 1 and
// carries no side effects: form data and the computed quote survive.
// A confirmed session cannot be reopened.
func (s *Session) Retreat() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.confirmed {
		return ErrSessionConfirmed
	}
	if s.step > StepServiceType {
		s.step--
	}
	return nil
}

// confirm mints the booking number, snapshots the form and quote into
// an immutable record, persists it under booking_<number>, and flips
// the session to its terminal state.  The caller holds s.mu.  If the
// write fails the session stays on the review step so the customer can
// retry.  Numbers derive from the confirmation time in milliseconds;
// two confirmations inside the same millisecond would collide, which
// is accepted as-is rather than papered over with a retry loop.
func (s *Session) confirm(ctx context.Context, st store.Store) (*model.BookingRecord, error) {
	now := s.clock()
	quote := 0.0
	if s.quote != nil {
		quote = *s.quote
	}
	rec := &model.BookingRecord{
		BookingNumber: FormatBookingNumber(now),
		Form:          s.form,
		Quote:         quote,
		BookingDate:   now.UTC().Format(time.RFC3339),
		Status:        model.BookingStatusPending,
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode booking record: %w", err)
	}
	if err := st.Set(ctx, store.BookingKey(rec.BookingNumber), payload); err != nil {
		return nil, fmt.Errorf("persist booking %s: %w", rec.BookingNumber, err)
	}
	s.confirmed = true
	s.record = rec
	return rec, nil
}

// FormatBookingNumber derives a booking number from a confirmation
// time: "BK" followed by the millisecond timestamp in uppercase
// base 36.
func FormatBookingNumber(t time.Time) string {
	return "BK" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// Package tracking implements the package tracking lookup: a tracking
// number is validated, then resolved from the record store, a demo
// fixture, or a deterministic synthesized shipment, with every
// resolution written through to the store so repeated lookups of the
// same number return the identical record.
package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cargonova/logistics-api/internal/model"
	"github.com/cargonova/logistics-api/internal/store"
)

// numberPattern is the accepted tracking number shape: 8 to 20
// alphanumeric characters, case-insensitive.
var numberPattern = regexp.MustCompile(`^[A-Za-z0-9]{8,20}$`)

// Service resolves tracking numbers to shipment records.  The store
// and clock are injected so tests run against an in-memory map and a
// pinned time.  Delay emulates the latency of a carrier API call;
// production configures ~1.5s, tests zero.
type Service struct {
	store store.Store
	clock func() time.Time
	delay time.Duration
}

// NewService builds a tracking service.  A nil clock defaults to
// time.Now; a negative delay is treated as zero.
func NewService(st store.Store, clock func() time.Time, delay time.Duration) *Service {
	if st == nil {
		panic("nil store passed to tracking.NewService")
	}
	if clock == nil {
		clock = time.Now
	}
	if delay < 0 {
		delay = 0
	}
	return &Service{store: st, clock: clock, delay: delay}
}

// Lookup resolves a raw user-supplied tracking number.
//
// The input is trimmed and must match numberPattern; the uppercased
// result is the canonical key.  Resolution order: a previously stored
// record wins and is returned verbatim, then a demo fixture, then a
// synthesized record derived deterministically from the key.  Both of
// the latter are persisted before returning, so the first lookup of a
// number fixes its story permanently.
//
// Validation failures return ErrEmpty or ErrInvalidFormat; store
// failures wrap ErrStorage.  The simulated latency waits on the
// context, so a cancelled request returns ctx.Err() without resolving.
func (s *Service) Lookup(ctx context.Context, raw string) (*model.TrackingRecord, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmpty
	}
	if !numberPattern.MatchString(trimmed) {
		return nil, ErrInvalidFormat
	}
	number := strings.ToUpper(trimmed)

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	key := store.TrackingKey(number)
	if bs, ok, err := s.store.Get(ctx, key); err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrStorage, key, err)
	} else if ok {
		var rec model.TrackingRecord
		if err := json.Unmarshal(bs, &rec); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrStorage, key, err)
		}
		return &rec, nil
	}

	rec, ok := fixtureRecord(number)
	if !ok {
		rec = s.synthesize(number)
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", ErrStorage, key, err)
	}
	if err := s.store.Set(ctx, key, payload); err != nil {
		return nil, fmt.Errorf("%w: set %s: %v", ErrStorage, key, err)
	}
	return rec, nil
}

// synthesize fabricates a plausible shipment for a number with no
// stored record and no fixture.  The status is chosen by the number's
// first character so the same number always maps to the same status,
// and the three-event history is anchored on today's date.  Synthesis
// is total: every valid number yields a record.
func (s *Service) synthesize(number string) *model.TrackingRecord {
	now := s.clock()
	day := func(offset int) string {
		return formatDay(now.AddDate(0, 0, offset))
	}

	status := model.TrackingStatuses[int(number[0])%len(model.TrackingStatuses)]
	currentLocation := "Distribution Center - New York, NY"
	finalDescription := "Package arrived at distribution center"
	if status == model.StatusDelivered {
		currentLocation = "Delivered to recipient"
		finalDescription = "Package delivered successfully"
	}

	return &model.TrackingRecord{
		TrackingNumber:    number,
		Status:            status,
		CurrentLocation:   currentLocation,
		EstimatedDelivery: day(2),
		History: []model.TrackingEvent{
			{
				Date:        day(-2),
				Time:        "10:30 AM",
				Location:    "Warehouse - Los Angeles, CA",
				Status:      "Package received",
				Description: "Package received at origin facility",
			},
			{
				Date:        day(-1),
				Time:        "2:15 PM",
				Location:    "Sorting Facility - Phoenix, AZ",
				Status:      model.StatusInTransit,
				Description: "Package in transit to destination",
			},
			{
				Date:        day(0),
				Time:        "8:45 AM",
				Location:    "Distribution Center - New York, NY",
				Status:      status,
				Description: finalDescription,
			},
		},
	}
}

// formatDay renders a date as M/D/YYYY without leading zeros, the
// display format used throughout tracking histories.
func formatDay(t time.Time) string {
	return t.Format("1/2/2006")
}

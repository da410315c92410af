// Package store provides the narrow key-value persistence interface the
// booking and tracking subsystems write their records through.  Keeping the
// interface to Get/Set keeps the domain logic testable with an in-memory
// map and lets production use Redis without the domain packages knowing.
package store

import "context"

// Store is a minimal key-value store.  Get reports whether the key was
// present; a missing key is not an error.  Values are opaque bytes,
// in practice JSON-encoded records.  Writes are last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key prefixes under which the two record families are persisted.
const (
	TrackingKeyPrefix = "tracking_"
	BookingKeyPrefix  = "booking_"
)

// TrackingKey returns the storage key for a normalized tracking number.
func TrackingKey(trackingNumber string) string {
	return TrackingKeyPrefix + trackingNumber
}

// BookingKey returns the storage key for a booking number.
func BookingKey(bookingNumber string) string {
	return BookingKeyPrefix + bookingNumber
}

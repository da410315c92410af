package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cargonova/logistics-api/internal/model"
)

// BookingRepo archives confirmed bookings in MySQL.  The key-value
// store holds the canonical record served back to customers; the
// archive adds a durable, queryable copy for operations (reporting,
// support lookups by route or date).  Rows are insert-only: a booking
// is never updated or deleted once written.
//
// Schema:
//
//	CREATE TABLE bookings (
//	    id             BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
//	    booking_number VARCHAR(32)  NOT NULL UNIQUE,
//	    service_type   VARCHAR(16)  NOT NULL DEFAULT '',
//	    origin_city    VARCHAR(128) NOT NULL DEFAULT '',
//	    dest_city      VARCHAR(128) NOT NULL DEFAULT '',
//	    quote          DECIMAL(12,2) NOT NULL DEFAULT 0,
//	    status         VARCHAR(32)  NOT NULL,
//	    booking_date   VARCHAR(40)  NOT NULL,
//	    payload        JSON         NOT NULL,
//	    created_at     TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the provided DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Insert archives a confirmed booking.  The full record is stored as
// JSON in the payload column alongside a few extracted columns for
// querying.
func (r *BookingRepo) Insert(ctx context.Context, rec *model.BookingRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", rec.BookingNumber, err)
	}
	const q = `INSERT INTO bookings
		(booking_number, service_type, origin_city, dest_city, quote, status, booking_date, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, q,
		rec.BookingNumber,
		rec.Form.ServiceType,
		rec.Form.OriginCity,
		rec.Form.DestCity,
		rec.Quote,
		rec.Status,
		rec.BookingDate,
		payload,
	)
	return err
}

// GetByNumber loads an archived booking by its booking number.
// Returns ErrBookingNotFound when no row matches.
func (r *BookingRepo) GetByNumber(ctx context.Context, bookingNumber string) (*model.BookingRecord, error) {
	const q = `SELECT payload FROM bookings WHERE booking_number = ?`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, q, bookingNumber).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	var rec model.BookingRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", bookingNumber, err)
	}
	return &rec, nil
}

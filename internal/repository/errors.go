// Package repository contains the relational data access layer,
// separated from HTTP handlers.  Sentinel errors defined here let
// handlers map failures to HTTP responses without inspecting driver
// errors.
package repository

import "errors"

// ErrBookingNotFound is returned when no booking row exists for the
// requested booking number.  Handlers translate it to a 404.
var ErrBookingNotFound = errors.New("booking not found")

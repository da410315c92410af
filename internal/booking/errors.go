package booking

import "errors"

// ErrSessionConfirmed indicates an attempt to mutate or advance a
// session that already reached its terminal confirmed state.  A new
// session must be opened to book again.
var ErrSessionConfirmed = errors.New("booking session already confirmed")

// ErrUnknownField indicates a SetField call with a field name the
// booking form does not carry.
var ErrUnknownField = errors.New("unknown booking form field")

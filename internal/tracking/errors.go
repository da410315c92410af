package tracking

import "errors"

// Lookup error kinds.  Empty and InvalidFormat are validation failures
// reported straight back to the caller; Storage covers a broken or
// unreachable record store.  NotFound is reserved: every syntactically
// valid number currently resolves to a fixture or a synthesized record,
// so no code path returns it today.
var (
	ErrEmpty         = errors.New("tracking number is empty")
	ErrInvalidFormat = errors.New("invalid tracking number format")
	ErrNotFound      = errors.New("tracking number not found")
	ErrStorage       = errors.New("tracking storage failure")
)

package data

import "errors"

// Sentinel errors returned by checked Handler accessors, per the core's
// error-kind catalogue. Execution-time (unchecked) accesses never return
// these; they only ever reach a caller through the checked API.
var (
	// ErrInvalidType is returned when a Handler does not handle the
	// requested Type.
	ErrInvalidType = errors.New("data: invalid type for this handler")
	// ErrOutOfRange is returned when the requested address exceeds the
	// handler's address space for the requested Type.
	ErrOutOfRange = errors.New("data: address out of range")
)

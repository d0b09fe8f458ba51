package program

import "errors"

var (
	// ErrOutOfRange is returned by checked accessors when a line/constant
	// index is out of bounds.
	ErrOutOfRange = errors.New("program: index out of range")
	// ErrInvalidLine is returned when a Line violates the Environment's
	// invariants (out-of-range instruction/destination/source/location).
	ErrInvalidLine = errors.New("program: invalid line for this environment")
)

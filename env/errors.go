package env

import "errors"

// ErrInvalidEnvironment is returned by New when the requested configuration
// is degenerate: no usable instruction, no operand, a single data source, or
// an empty address space.
var ErrInvalidEnvironment = errors.New("env: invalid environment configuration")

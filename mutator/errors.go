package mutator

import "errors"

// ErrEnvironmentTooSmall is returned when an Environment cannot support any
// valid Line (no instructions, no registers, or no data sources).
var ErrEnvironmentTooSmall = errors.New("mutator: environment cannot produce a valid line")

// ErrParameterMisconfiguration is returned when a TPGParams value cannot
// produce a well-formed graph, e.g. nbActions < 2 or
// maxInitOutgoingEdges > nbActions (spec.md §7).
var ErrParameterMisconfiguration = errors.New("mutator: parameter misconfiguration")

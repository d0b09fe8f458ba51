// Package learn defines the external learning-environment trait the core
// is evaluated against, re-exports the instruction trait from instr, and
// provides Dummy, a minimal reference environment used by tests throughout
// the module.
//
// Grounded on the teacher's dummy package (a deliberately minimal stand-in
// implementation kept alongside the real ones, same spirit here though the
// content is unrelated) and on instr.Instruction for the execution-facing
// half of the contract.
package learn

//go:generate mockgen -write_package_comment=false -package=learn_test -destination=mock_environment_test.go github.com/tangled-program/tpgo/learn Environment

import "github.com/tangled-program/tpgo/data"

// Mode selects the evaluation regime passed to Reset.
type Mode int

const (
	Training Mode = iota
	Validation
	Testing
)

func (m Mode) String() string {
	switch m {
	case Training:
		return "training"
	case Validation:
		return "validation"
	case Testing:
		return "testing"
	default:
		return "unknown"
	}
}

// Environment is the trait a learning environment must implement to be
// driven by the core's TPG execution engine. Implementations own their
// DataHandlers and must invalidate their hashes whenever DoAction mutates
// them (PrimitiveArray does this automatically through SetDataAt/SetScalar).
type Environment interface {
	// Reset reseeds the environment and selects its evaluation mode.
	Reset(seed uint64, mode Mode)
	// DoAction applies a single action. Returns ErrInvalidAction if
	// actionID >= NbActions().
	DoAction(actionID uint64) error
	// DoActions applies a sequence of actions in order, stopping at the
	// first error.
	DoActions(actionIDs []uint64) error
	// NbActions returns the number of distinct actions this environment
	// accepts.
	NbActions() uint64
	// DataSources returns the environment's data sources, in the same
	// order an Environment (package env) was built from.
	DataSources() []data.Handler
	// Score returns the environment's current score.
	Score() float64
	// IsTerminal reports whether the current episode has ended.
	IsTerminal() bool
	// Clone returns an independent copy, or (nil, false) if IsCopyable is
	// false.
	Clone() (Environment, bool)
	// IsCopyable reports whether Clone can succeed.
	IsCopyable() bool
}

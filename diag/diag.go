// Package diag collects the structured diagnostics the core emits for
// non-fatal, informational conditions: instructions dropped during
// Environment construction, unknown keys ignored while loading
// MutationParameters, and similar soft findings. Grounded on the teacher's
// verify.Issue/RunLint accumulation pattern: a typed issue list built by a
// checking pass, rather than individual log lines scattered through the
// code.
package diag

import (
	"log/slog"

	"github.com/rs/xid"
)

// Type classifies an Issue.
type Type string

const (
	// InstructionDropped marks an instruction removed from an
	// InstructionSet because none of the Environment's data sources can
	// provide one of its operand types.
	InstructionDropped Type = "instruction_dropped"
	// UnknownKey marks a MutationParameters key the loader does not
	// recognise.
	UnknownKey Type = "unknown_key"
)

// Issue is one diagnostic finding. ID is a short, globally sortable
// correlation id so a finding can be traced across log lines even after
// the in-process Log that produced it is gone.
type Issue struct {
	ID      string
	Type    Type
	Message string
}

// Log accumulates Issues and can emit them through log/slog, matching the
// teacher's core/util.go use of the structured logger.
type Log struct {
	issues []Issue
}

// Add records an Issue, stamping it with a fresh xid.
func (l *Log) Add(t Type, message string) {
	l.issues = append(l.issues, Issue{ID: xid.New().String(), Type: t, Message: message})
}

// Issues returns every recorded Issue, in emission order.
func (l *Log) Issues() []Issue {
	return l.issues
}

// Empty reports whether no Issue was recorded.
func (l *Log) Empty() bool {
	return len(l.issues) == 0
}

// Emit logs every recorded Issue at warn level via the given logger. A nil
// logger falls back to slog.Default().
func (l *Log) Emit(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, issue := range l.issues {
		logger.Warn(issue.Message, "type", string(issue.Type), "id", issue.ID)
	}
}

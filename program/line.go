// Package program implements the Program model: an ordered sequence of
// encoded Lines plus embedded constants, intron marking, and behavioural
// equivalence.
package program

import "github.com/tangled-program/tpgo/env"

// Operand is one (dataSourceIndex, location) pair encoded in a Line.
// Location is unscaled; it is reduced modulo the selected source's address
// space at fetch time.
type Operand struct {
	SourceIndex int
	Location    int
}

// Line is a single instruction invocation: which Instruction to run, which
// register to write the result to, and the raw operand slots (always
// env.MaxNbOperands long, even though a given Instruction may only consume
// a prefix of them).
type Line struct {
	InstructionIndex int
	DestinationIndex int
	Operands         []Operand
}

func newLine(e *env.Environment) Line {
	return Line{
		Operands: make([]Operand, e.MaxNbOperands()),
	}
}

// Equal reports structural equality: same instruction, same destination,
// same operand slots.
func (l Line) Equal(other Line) bool {
	if l.InstructionIndex != other.InstructionIndex ||
		l.DestinationIndex != other.DestinationIndex {
		return false
	}
	if len(l.Operands) != len(other.Operands) {
		return false
	}
	for i := range l.Operands {
		if l.Operands[i] != other.Operands[i] {
			return false
		}
	}
	return true
}

// valid reports whether l satisfies e's invariants: instructionIndex <
// nbInstructions, destinationIndex < nbRegisters, every operand's
// dataSourceIndex < nbDataSources (location is unconstrained; it is scaled
// at fetch time).
func (l Line) valid(e *env.Environment) bool {
	if l.InstructionIndex < 0 || l.InstructionIndex >= e.NbInstructions() {
		return false
	}
	if l.DestinationIndex < 0 || l.DestinationIndex >= e.NbRegisters() {
		return false
	}
	if len(l.Operands) != e.MaxNbOperands() {
		return false
	}
	for _, op := range l.Operands {
		if op.SourceIndex < 0 || op.SourceIndex >= e.NbDataSources() {
			return false
		}
	}
	return true
}

func (l Line) clone() Line {
	return Line{
		InstructionIndex: l.InstructionIndex,
		DestinationIndex: l.DestinationIndex,
		Operands:         append([]Operand(nil), l.Operands...),
	}
}

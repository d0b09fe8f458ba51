// Package instr provides the instruction trait and the ordered instruction
// catalogue (InstructionSet) that an Environment is built from.
package instr

import "github.com/tangled-program/tpgo/data"

// Instruction is a single pure operation a Program line may invoke. Its
// OperandTypes declares, in order, the Type each operand must be fetched
// as; only the first NbOperands of a Line's encoded operand slots are
// meaningful to it.
type Instruction interface {
	// NbOperands is the number of operands this instruction consumes.
	NbOperands() int
	// OperandTypes returns, in order, the Type of each operand.
	OperandTypes() []data.Type
	// Execute computes the instruction's result from already-fetched
	// operand values. It must be pure: no side effects, no panics for
	// well-typed input.
	Execute(operands []data.Value) float64
}

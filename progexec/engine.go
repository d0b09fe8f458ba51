// Package progexec implements the ProgramExecutionEngine: interprets a
// Program against a register file and the Environment's data sources,
// returning register 0 as the Program's bid.
//
// Grounded on the teacher's core/emu.go fetch-decode-execute loop
// (instruction dispatch by opcode, read/write-operand helpers) generalised
// from a fixed CGRA opcode switch to the Environment's filtered,
// type-checked instruction catalogue.
package progexec

import (
	"math"

	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/program"
)

// Engine is a reusable program interpreter. A single Engine should be used
// by at most one goroutine at a time; callers that need concurrent
// execution (as mutator.MutateNewProgramBehaviors does) create one Engine
// per worker.
type Engine struct {
	registers          *data.PrimitiveArray[float64]
	useMemoryRegisters bool
}

// New creates an Engine with its own register file of nbRegisters slots.
// When useMemoryRegisters is true the register file is not zeroed between
// calls to Execute, matching the `useMemoryRegisters` MutationParameters
// option.
func New(nbRegisters int, useMemoryRegisters bool) *Engine {
	return &Engine{
		registers:          data.NewRegisters(nbRegisters),
		useMemoryRegisters: useMemoryRegisters,
	}
}

// Execute interprets every line of p in index order and returns register 0
// as the bid. Introns are executed as well (they cannot affect register 0
// by construction, so this is observationally a no-op, and simpler than
// skipping them).
func (e *Engine) Execute(p *program.Program) float64 {
	return e.execute(p, nil)
}

// ExecuteWithOverrides behaves like Execute, except every non-register,
// non-constant operand is fetched from overrides instead of from p's
// Environment, indexed the same way env.DataSource is. overrides must be
// at least as long as p.Environment().NbDataSources(); entries for the
// register and constant source indices are ignored. Used by
// mutator.MutateProgramBehaviorAgainstArchive to replay a program against
// an archived data-source snapshot without touching the live sources
// (which may be shared across concurrently mutating workers).
func (e *Engine) ExecuteWithOverrides(p *program.Program, overrides []data.Handler) float64 {
	return e.execute(p, overrides)
}

func (e *Engine) execute(p *program.Program, overrides []data.Handler) float64 {
	if !e.useMemoryRegisters {
		e.registers.Reset()
	}

	env := p.Environment()
	instructions := env.Instructions()
	registersIdx := env.RegistersSourceIndex()
	constantsIdx := -1
	if env.HasConstants() {
		constantsIdx = env.ConstantsSourceIndex()
	}

	for i := 0; i < p.NbLines(); i++ {
		line, err := p.Line(i)
		if err != nil {
			continue
		}

		instruction := instructions.Get(line.InstructionIndex)
		operandTypes := instruction.OperandTypes()
		n := instruction.NbOperands()
		operands := make([]data.Value, n)

		for k := 0; k < n; k++ {
			op := line.Operands[k]
			t := operandTypes[k]

			switch {
			case op.SourceIndex == registersIdx:
				operands[k] = e.registers.ScaledDataAt(t, op.Location)
			case op.SourceIndex == constantsIdx:
				operands[k] = p.Constants().ScaledDataAt(t, op.Location)
			case overrides != nil && op.SourceIndex < len(overrides):
				operands[k] = overrides[op.SourceIndex].ScaledDataAt(t, op.Location)
			default:
				operands[k] = env.DataSource(op.SourceIndex).ScaledDataAt(t, op.Location)
			}
		}

		result := instruction.Execute(operands)
		if math.IsNaN(result) {
			result = math.Inf(-1)
		}
		e.registers.SetScalar(line.DestinationIndex, result)
	}

	return e.registers.Scalar(0)
}

// ResetRegisters zeroes the engine's register file regardless of the
// useMemoryRegisters setting. Exposed for tests and for callers that want
// to force a clean slate between otherwise-memory-preserving runs.
func (e *Engine) ResetRegisters() {
	e.registers.Reset()
}

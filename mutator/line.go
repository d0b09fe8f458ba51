// Package mutator implements the random operators that grow and perturb
// Lines, Programs and TPGs: the machinery populate.go and the TPG mutator
// drive to explore program space. Grounded on
// original_source/gegelatilib/src/mutator/{lineMutator,programMutator,
// tpgMutator}.cpp, translated from gegelati's static-function style into
// Go functions taking an explicit *rng.RNG.
package mutator

import (
	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/env"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/rng"
)

// InitRandomCorrectLine builds a uniformly random Line that already
// satisfies e's validity invariants: instruction and destination indices
// in range, every operand source index in range and type-compatible with
// the operand it feeds. Operand locations are drawn from the largest
// address space in the environment; ScaledDataAt reduces them modulo
// whatever source actually ends up selected, so any location is "correct"
// here, matching the original's wider-than-necessary draw.
func InitRandomCorrectLine(e *env.Environment, r *rng.RNG) (program.Line, error) {
	if e.NbInstructions() == 0 || e.NbRegisters() == 0 || e.NbDataSources() == 0 {
		return program.Line{}, ErrEnvironmentTooSmall
	}

	destIdx := randIndex(r, e.NbRegisters())
	instrIdx := randIndex(r, e.NbInstructions())
	ins := e.Instructions().Get(instrIdx)

	line := program.Line{
		InstructionIndex: instrIdx,
		DestinationIndex: destIdx,
		Operands:         make([]program.Operand, e.MaxNbOperands()),
	}
	for i := range line.Operands {
		if i < ins.NbOperands() {
			line.Operands[i] = randomTypedOperand(e, r, ins.OperandTypes()[i], -1)
		} else {
			line.Operands[i] = randomOperand(e, r)
		}
	}
	return line, nil
}

// AlterCorrectLine returns a copy of line with exactly one bit region
// resampled, the region chosen with probability proportional to its bit
// width in e's line layout (instruction, destination, or, per operand
// slot, source and location). The resampled field is redrawn different
// from its current value whenever more than one choice exists; switching
// the instruction additionally repairs any operand whose current source is
// no longer type-compatible with the new instruction, keeping that
// operand's location untouched.
func AlterCorrectLine(e *env.Environment, r *rng.RNG, line program.Line) program.Line {
	altered := program.Line{
		InstructionIndex: line.InstructionIndex,
		DestinationIndex: line.DestinationIndex,
		Operands:         append([]program.Operand(nil), line.Operands...),
	}

	switch region := pickBitRegion(e, r); region.kind {
	case regionInstruction:
		newIdx := differentIndex(r, e.NbInstructions(), altered.InstructionIndex)
		newIns := e.Instructions().Get(newIdx)
		altered.InstructionIndex = newIdx
		for i := range altered.Operands {
			if i >= newIns.NbOperands() {
				continue
			}
			t := newIns.OperandTypes()[i]
			if !e.DataSource(altered.Operands[i].SourceIndex).CanHandle(t) {
				altered.Operands[i].SourceIndex = randomTypedOperand(e, r, t, altered.Operands[i].SourceIndex).SourceIndex
			}
		}
	case regionDestination:
		altered.DestinationIndex = differentIndex(r, e.NbRegisters(), altered.DestinationIndex)
	case regionOperandSource:
		ins := e.Instructions().Get(altered.InstructionIndex)
		op := altered.Operands[region.operand]
		if region.operand < ins.NbOperands() {
			t := ins.OperandTypes()[region.operand]
			op.SourceIndex = randomTypedOperand(e, r, t, op.SourceIndex).SourceIndex
		} else {
			op.SourceIndex = randomOperandExcluding(e, r, op.SourceIndex).SourceIndex
		}
		altered.Operands[region.operand] = op
	case regionOperandLocation:
		op := altered.Operands[region.operand]
		space := e.LargestAddressSpace()
		op.Location = differentIndex(r, space, op.Location)
		altered.Operands[region.operand] = op
	}
	return altered
}

type bitRegionKind int

const (
	regionInstruction bitRegionKind = iota
	regionDestination
	regionOperandSource
	regionOperandLocation
)

type bitRegion struct {
	kind    bitRegionKind
	operand int // meaningful only for the two per-operand kinds
}

// pickBitRegion selects one of e's line-layout bit regions with
// probability proportional to its width in bits: the instruction-index
// field, the destination-index field, and, per operand slot, its source
// field and its location field.
func pickBitRegion(e *env.Environment, r *rng.RNG) bitRegion {
	total := e.TotalBits()
	if total <= 0 {
		return bitRegion{kind: regionDestination}
	}
	pick := int(r.UnsignedInt64(0, uint64(total-1)))

	if pick < e.NbInstrBits() {
		return bitRegion{kind: regionInstruction}
	}
	pick -= e.NbInstrBits()

	if pick < e.NbDestBits() {
		return bitRegion{kind: regionDestination}
	}
	pick -= e.NbDestBits()

	perOperand := e.NbSrcBits() + e.NbLocBits()
	if perOperand <= 0 {
		return bitRegion{kind: regionDestination}
	}
	operand := pick / perOperand
	withinOperand := pick % perOperand
	if withinOperand < e.NbSrcBits() {
		return bitRegion{kind: regionOperandSource, operand: operand}
	}
	return bitRegion{kind: regionOperandLocation, operand: operand}
}

// randomTypedOperand draws an operand whose source is uniformly chosen
// among the sources that CanHandle t, rejecting already-tried sources
// until one is found (env construction guarantees at least one exists).
// exclude, if >= 0, is a source index to additionally avoid when a
// different one is available.
func randomTypedOperand(e *env.Environment, r *rng.RNG, t data.Type, exclude int) program.Operand {
	candidates := compatibleSources(e, t)
	if len(candidates) == 0 {
		// Environment construction filters out instructions with no
		// compatible source for any declared operand type, so this is
		// unreachable for a well-formed environment.
		return program.Operand{SourceIndex: 0, Location: randLocation(e, r)}
	}
	if len(candidates) > 1 && exclude >= 0 {
		filtered := candidates[:0:0]
		for _, c := range candidates {
			if c != exclude {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	src := candidates[randIndex(r, len(candidates))]
	return program.Operand{SourceIndex: src, Location: randLocation(e, r)}
}

func compatibleSources(e *env.Environment, t data.Type) []int {
	var out []int
	for i := 0; i < e.NbDataSources(); i++ {
		if e.DataSource(i).CanHandle(t) {
			out = append(out, i)
		}
	}
	return out
}

// randomOperand draws an arbitrary valid (source, location) pair, used for
// operand slots beyond the selected instruction's declared operand count:
// the execution engine never reads them, so any in-range value is fine.
func randomOperand(e *env.Environment, r *rng.RNG) program.Operand {
	return program.Operand{
		SourceIndex: randIndex(r, e.NbDataSources()),
		Location:    randLocation(e, r),
	}
}

func randomOperandExcluding(e *env.Environment, r *rng.RNG, exclude int) program.Operand {
	return program.Operand{
		SourceIndex: differentIndex(r, e.NbDataSources(), exclude),
		Location:    randLocation(e, r),
	}
}

func randLocation(e *env.Environment, r *rng.RNG) int {
	space := e.LargestAddressSpace()
	if space < 1 {
		return 0
	}
	return int(r.UnsignedInt64(0, uint64(space-1)))
}

func randIndex(r *rng.RNG, n int) int {
	if n <= 1 {
		return 0
	}
	return int(r.UnsignedInt64(0, uint64(n-1)))
}

// differentIndex draws uniformly from [0, n) excluding current, looping
// until a different value is drawn. If n <= 1 there is no alternative and
// current is returned unchanged.
func differentIndex(r *rng.RNG, n, current int) int {
	if n <= 1 {
		return current
	}
	for {
		v := randIndex(r, n)
		if v != current {
			return v
		}
	}
}

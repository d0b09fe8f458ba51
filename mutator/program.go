package mutator

import (
	"github.com/tangled-program/tpgo/env"
	"github.com/tangled-program/tpgo/mutparams"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/rng"
)

// InitRandomProgram creates a new Program bound to e with a random number
// of lines between 1 and params.MaxProgramSize, each independently a
// correct random line, and constants drawn uniformly from
// [params.MinConstValue, params.MaxConstValue].
func InitRandomProgram(e *env.Environment, params mutparams.ProgParams, r *rng.RNG) (*program.Program, error) {
	nbLines := 1 + randIndex(r, params.MaxProgramSize)
	p := program.New(e)

	for i := 0; i < nbLines; i++ {
		line, err := InitRandomCorrectLine(e, r)
		if err != nil {
			return nil, err
		}
		p.AddNewLine()
		if err := p.SetLine(p.NbLines()-1, line); err != nil {
			return nil, err
		}
	}

	for i := 0; i < p.NbConstants(); i++ {
		v := randomConstant(r, params.MinConstValue, params.MaxConstValue)
		if err := p.SetConstantAt(i, v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// DeleteRandomLine removes a uniformly chosen line from p. No-op error if p
// has no lines.
func DeleteRandomLine(p *program.Program, r *rng.RNG) error {
	if p.NbLines() == 0 {
		return program.ErrOutOfRange
	}
	return p.RemoveLine(randIndex(r, p.NbLines()))
}

// InsertRandomLine inserts a fresh, randomly initialised correct line at a
// uniformly chosen position in p.
func InsertRandomLine(p *program.Program, e *env.Environment, r *rng.RNG) error {
	line, err := InitRandomCorrectLine(e, r)
	if err != nil {
		return err
	}
	idx := randIndex(r, p.NbLines()+1)
	if err := p.AddNewLineAt(idx); err != nil {
		return err
	}
	return p.SetLine(idx, line)
}

// SwapRandomLines exchanges two distinct, uniformly chosen lines of p. A
// single-line program is left unchanged.
func SwapRandomLines(p *program.Program, r *rng.RNG) error {
	if p.NbLines() < 2 {
		return nil
	}
	i := randIndex(r, p.NbLines())
	j := randIndex(r, p.NbLines()-1)
	if j >= i {
		j++
	}
	return p.SwapLines(i, j)
}

// AlterRandomLine resamples one field of a uniformly chosen line of p via
// AlterCorrectLine.
func AlterRandomLine(p *program.Program, e *env.Environment, r *rng.RNG) error {
	if p.NbLines() == 0 {
		return program.ErrOutOfRange
	}
	idx := randIndex(r, p.NbLines())
	line, err := p.Line(idx)
	if err != nil {
		return err
	}
	return p.SetLine(idx, AlterCorrectLine(p.Environment(), r, line))
}

// AlterRandomConstant resamples a uniformly chosen constant slot of p to a
// new value in [minVal, maxVal].
func AlterRandomConstant(p *program.Program, r *rng.RNG, minVal, maxVal int32) error {
	if p.NbConstants() == 0 {
		return nil
	}
	idx := randIndex(r, p.NbConstants())
	return p.SetConstantAt(idx, randomConstant(r, minVal, maxVal))
}

func randomConstant(r *rng.RNG, minVal, maxVal int32) int32 {
	if maxVal <= minVal {
		return minVal
	}
	span := uint64(maxVal) - uint64(minVal)
	return minVal + int32(r.UnsignedInt64(0, span))
}

// MutateProgram offers each of prog's five mutation operators a single,
// independent coin toss against its configured probability, in order:
// delete, add, alter (line), swap, then constant. Grounded line-for-line on
// original_source/gegelatilib/src/mutator/programMutator.cpp's
// mutateProgram, which triggers each operator at most once per call rather
// than looping while the toss succeeds. If any operator ran,
// IdentifyIntrons is re-run and MutateProgram returns true. A program is
// never shrunk below one line or grown past params.MaxProgramSize.
func MutateProgram(prog *program.Program, params mutparams.ProgParams, r *rng.RNG) bool {
	anyMutation := false

	if prog.NbLines() > 1 && r.Float64() < params.PDelete {
		anyMutation = true
		_ = DeleteRandomLine(prog, r)
	}
	if prog.NbLines() < params.MaxProgramSize && r.Float64() < params.PAdd {
		anyMutation = true
		_ = InsertRandomLine(prog, prog.Environment(), r)
	}
	if r.Float64() < params.PMutate {
		anyMutation = true
		_ = AlterRandomLine(prog, prog.Environment(), r)
	}
	if prog.NbLines() > 1 && r.Float64() < params.PSwap {
		anyMutation = true
		_ = SwapRandomLines(prog, r)
	}
	if prog.NbConstants() > 0 && r.Float64() < params.PConstantMutation {
		anyMutation = true
		_ = AlterRandomConstant(prog, r, params.MinConstValue, params.MaxConstValue)
	}

	if anyMutation {
		prog.IdentifyIntrons()
	}
	return anyMutation
}

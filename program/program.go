package program

import (
	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/env"
)

// Program owns an ordered vector of Lines (each flagged as intron or not), a
// ConstantHandler sized to the Environment's constant count, and a
// reference to the Environment it was built for.
type Program struct {
	env       *env.Environment
	lines     []Line
	introns   []bool
	constants *data.PrimitiveArray[int32]
}

// New creates an empty Program bound to e.
func New(e *env.Environment) *Program {
	return &Program{
		env:       e,
		constants: data.NewConstants(e.NbConstants()),
	}
}

// Environment returns the Environment this Program is bound to.
func (p *Program) Environment() *env.Environment { return p.env }

// NbLines returns the number of lines in the Program.
func (p *Program) NbLines() int { return len(p.lines) }

// AddNewLine appends a fresh, zero-valued Line to the Program.
func (p *Program) AddNewLine() {
	p.lines = append(p.lines, newLine(p.env))
	p.introns = append(p.introns, false)
}

// AddNewLineAt inserts a fresh, zero-valued Line at idx, shifting following
// lines down. idx may equal NbLines() to append.
func (p *Program) AddNewLineAt(idx int) error {
	if idx < 0 || idx > len(p.lines) {
		return ErrOutOfRange
	}
	line := newLine(p.env)
	p.lines = append(p.lines, Line{})
	copy(p.lines[idx+1:], p.lines[idx:])
	p.lines[idx] = line

	p.introns = append(p.introns, false)
	copy(p.introns[idx+1:], p.introns[idx:])
	p.introns[idx] = false
	return nil
}

// RemoveLine deletes the line at idx.
func (p *Program) RemoveLine(idx int) error {
	if idx < 0 || idx >= len(p.lines) {
		return ErrOutOfRange
	}
	p.lines = append(p.lines[:idx], p.lines[idx+1:]...)
	p.introns = append(p.introns[:idx], p.introns[idx+1:]...)
	return nil
}

// SwapLines exchanges the lines at i and j.
func (p *Program) SwapLines(i, j int) error {
	if i < 0 || i >= len(p.lines) || j < 0 || j >= len(p.lines) {
		return ErrOutOfRange
	}
	p.lines[i], p.lines[j] = p.lines[j], p.lines[i]
	p.introns[i], p.introns[j] = p.introns[j], p.introns[i]
	return nil
}

// Line returns a copy of the line at idx.
func (p *Program) Line(idx int) (Line, error) {
	if idx < 0 || idx >= len(p.lines) {
		return Line{}, ErrOutOfRange
	}
	return p.lines[idx].clone(), nil
}

// SetLine overwrites the line at idx after checking it against the
// Program's Environment. This is the only way to mutate a Line's content;
// mutators go through it as well.
func (p *Program) SetLine(idx int, line Line) error {
	if idx < 0 || idx >= len(p.lines) {
		return ErrOutOfRange
	}
	if !line.valid(p.env) {
		return ErrInvalidLine
	}
	p.lines[idx] = line.clone()
	return nil
}

// IsIntron reports whether the line at idx was last marked as an intron by
// IdentifyIntrons.
func (p *Program) IsIntron(idx int) bool {
	if idx < 0 || idx >= len(p.introns) {
		return false
	}
	return p.introns[idx]
}

// ClearIntrons resets every line's intron flag to false.
func (p *Program) ClearIntrons() {
	for i := range p.introns {
		p.introns[i] = false
	}
}

// Constants returns the Program's own constant handler, used by the
// execution engine to fetch constant operands and by mutators to resample
// constant values.
func (p *Program) Constants() *data.PrimitiveArray[int32] { return p.constants }

// NbConstants returns the number of constant slots.
func (p *Program) NbConstants() int { return p.constants.Size() }

// ConstantAt returns the constant value at idx.
func (p *Program) ConstantAt(idx int) (int32, error) {
	if idx < 0 || idx >= p.constants.Size() {
		return 0, ErrOutOfRange
	}
	return p.constants.Scalar(idx), nil
}

// SetConstantAt overwrites the constant value at idx.
func (p *Program) SetConstantAt(idx int, v int32) error {
	if idx < 0 || idx >= p.constants.Size() {
		return ErrOutOfRange
	}
	p.constants.SetScalar(idx, v)
	return nil
}

// Clone returns a deep copy of the Program, sharing the same Environment
// pointer (Environments are immutable configuration, never owned by a
// Program).
func (p *Program) Clone() *Program {
	clone := &Program{
		env:       p.env,
		lines:     make([]Line, len(p.lines)),
		introns:   append([]bool(nil), p.introns...),
		constants: p.constants.Clone().(*data.PrimitiveArray[int32]),
	}
	for i, l := range p.lines {
		clone.lines[i] = l.clone()
	}
	return clone
}

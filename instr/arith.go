package instr

import (
	"math"

	"github.com/tangled-program/tpgo/data"
)

// Add computes operand[0] + operand[1] over scalar float64 operands.
// Grounded on original_source/include/instructionAdd.h, specialised to
// float64 rather than templated over every primitive type.
type Add struct{}

func (Add) NbOperands() int { return 2 }
func (Add) OperandTypes() []data.Type {
	return []data.Type{data.Scalar(data.Float64), data.Scalar(data.Float64)}
}
func (Add) Execute(operands []data.Value) float64 {
	return operands[0].F64 + operands[1].F64
}

// Sub computes operand[0] - operand[1].
type Sub struct{}

func (Sub) NbOperands() int { return 2 }
func (Sub) OperandTypes() []data.Type {
	return []data.Type{data.Scalar(data.Float64), data.Scalar(data.Float64)}
}
func (Sub) Execute(operands []data.Value) float64 {
	return operands[0].F64 - operands[1].F64
}

// Mult computes operand[0] * operand[1].
type Mult struct{}

func (Mult) NbOperands() int { return 2 }
func (Mult) OperandTypes() []data.Type {
	return []data.Type{data.Scalar(data.Float64), data.Scalar(data.Float64)}
}
func (Mult) Execute(operands []data.Value) float64 {
	return operands[0].F64 * operands[1].F64
}

// Div computes operand[0] / operand[1], returning 0 instead of dividing by
// a zero denominator: Instruction.Execute must never panic.
type Div struct{}

func (Div) NbOperands() int { return 2 }
func (Div) OperandTypes() []data.Type {
	return []data.Type{data.Scalar(data.Float64), data.Scalar(data.Float64)}
}
func (Div) Execute(operands []data.Value) float64 {
	if operands[1].F64 == 0 {
		return 0
	}
	return operands[0].F64 / operands[1].F64
}

// Neg computes -operand[0].
type Neg struct{}

func (Neg) NbOperands() int           { return 1 }
func (Neg) OperandTypes() []data.Type { return []data.Type{data.Scalar(data.Float64)} }
func (Neg) Execute(operands []data.Value) float64 {
	return -operands[0].F64
}

// Min returns the smaller of two scalar float64 operands.
type Min struct{}

func (Min) NbOperands() int { return 2 }
func (Min) OperandTypes() []data.Type {
	return []data.Type{data.Scalar(data.Float64), data.Scalar(data.Float64)}
}
func (Min) Execute(operands []data.Value) float64 {
	return math.Min(operands[0].F64, operands[1].F64)
}

// Max returns the larger of two scalar float64 operands.
type Max struct{}

func (Max) NbOperands() int { return 2 }
func (Max) OperandTypes() []data.Type {
	return []data.Type{data.Scalar(data.Float64), data.Scalar(data.Float64)}
}
func (Max) Execute(operands []data.Value) float64 {
	return math.Max(operands[0].F64, operands[1].F64)
}

// MultByConstant multiplies a scalar float64 operand by a scalar int32
// operand (typically fetched from a Program's ConstantHandler). Grounded
// on original_source/include/instructionMultByConstParam.h.
type MultByConstant struct{}

func (MultByConstant) NbOperands() int { return 2 }
func (MultByConstant) OperandTypes() []data.Type {
	return []data.Type{data.Scalar(data.Float64), data.Scalar(data.Int32)}
}
func (MultByConstant) Execute(operands []data.Value) float64 {
	return operands[0].F64 * float64(operands[1].I32)
}

// WindowSum sums a length-4 float64 window operand. A stand-in for the
// windowed-array instructions the original exposes for convolution-style
// programs.
type WindowSum struct{}

func (WindowSum) NbOperands() int { return 1 }
func (WindowSum) OperandTypes() []data.Type {
	return []data.Type{data.Window(data.Float64, 4)}
}
func (WindowSum) Execute(operands []data.Value) float64 {
	sum := 0.0
	for _, v := range operands[0].F64Window {
		sum += v
	}
	return sum
}

// DefaultSet returns an instruction catalogue containing every instruction
// defined in this file, matching the teacher's defaultISAinit grouping of
// a baseline instruction set.
func DefaultSet() *Set {
	s := NewSet()
	s.Add(Add{})
	s.Add(Sub{})
	s.Add(Mult{})
	s.Add(Div{})
	s.Add(Neg{})
	s.Add(Min{})
	s.Add(Max{})
	s.Add(MultByConstant{})
	s.Add(WindowSum{})
	return s
}

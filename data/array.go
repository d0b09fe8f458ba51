package data

import (
	"math"
	"math/bits"
)

// Number is the closed set of element types a PrimitiveArray may store,
// mirroring the teacher's FRegister/IRegister/URegister family collapsed
// into one generic handler.
type Number interface {
	~float64 | ~int32
}

// PrimitiveArray is a fixed-length vector of a primitive type. It also
// exposes windowed reads: a Type with Window == k addresses the k
// contiguous elements starting at that position, so its address space is
// len(values)-k+1 rather than len(values).
//
// Registers and constant handlers are both PrimitiveArray instances (over
// float64 and int32 respectively); nothing distinguishes them structurally,
// only by the Kind and size they are constructed with.
type PrimitiveArray[T Number] struct {
	id    uint64
	kind  Kind
	label string
	data  []T

	hashValid bool
	hash      uint64
}

// NewPrimitiveArray creates a PrimitiveArray of the given Kind and size. The
// label is used only for diagnostics (e.g. "registers", "constants").
func NewPrimitiveArray[T Number](kind Kind, size int, label string) *PrimitiveArray[T] {
	return &PrimitiveArray[T]{
		id:    nextID(),
		kind:  kind,
		label: label,
		data:  make([]T, size),
	}
}

func (p *PrimitiveArray[T]) ID() uint64 { return p.id }

// Kind returns the element kind stored by this array.
func (p *PrimitiveArray[T]) Kind() Kind { return p.kind }

func (p *PrimitiveArray[T]) Label() string { return p.label }

func (p *PrimitiveArray[T]) Size() int { return len(p.data) }

func (p *PrimitiveArray[T]) CanHandle(t Type) bool {
	return t.Elem == p.kind && t.Window >= 1 && t.Window <= len(p.data)
}

func (p *PrimitiveArray[T]) AddressSpace(t Type) int {
	if !p.CanHandle(t) {
		return 0
	}
	return len(p.data) - t.Window + 1
}

func (p *PrimitiveArray[T]) LargestAddressSpace() int {
	// The largest address space for a given type is reached at the
	// smallest window (1), which always yields len(data) unless the array
	// is empty.
	return len(p.data)
}

func (p *PrimitiveArray[T]) DataAt(t Type, address int) (Value, error) {
	if !p.CanHandle(t) {
		return Value{}, ErrInvalidType
	}
	space := p.AddressSpace(t)
	if address < 0 || address >= space {
		return Value{}, ErrOutOfRange
	}
	return p.valueAt(t, address), nil
}

// ScaledDataAt is the unchecked accessor used by the execution engine:
// address is scaled modulo the handler's address space for t, so it can
// never fail. CanHandle must already have been verified by the caller (the
// line layout guarantees this).
func (p *PrimitiveArray[T]) ScaledDataAt(t Type, address int) Value {
	space := p.AddressSpace(t)
	if space <= 0 {
		return Value{}
	}
	return p.valueAt(t, address%space)
}

func (p *PrimitiveArray[T]) valueAt(t Type, address int) Value {
	if t.Window == 1 {
		return p.scalarValue(p.data[address])
	}
	window := p.data[address : address+t.Window]
	return p.windowValue(window)
}

func (p *PrimitiveArray[T]) scalarValue(v T) Value {
	switch p.kind {
	case Float64:
		return Value{F64: float64(any(v).(float64))}
	case Int32:
		return Value{I32: int32(any(v).(int32))}
	default:
		return Value{}
	}
}

func (p *PrimitiveArray[T]) windowValue(window []T) Value {
	switch p.kind {
	case Float64:
		out := make([]float64, len(window))
		for i, v := range window {
			out[i] = float64(any(v).(float64))
		}
		return Value{F64Window: out}
	case Int32:
		out := make([]int32, len(window))
		for i, v := range window {
			out[i] = int32(any(v).(int32))
		}
		return Value{I32Window: out}
	default:
		return Value{}
	}
}

func (p *PrimitiveArray[T]) SetDataAt(t Type, address int, v Value) error {
	if t.Window != 1 || t.Elem != p.kind {
		return ErrInvalidType
	}
	if address < 0 || address >= len(p.data) {
		return ErrOutOfRange
	}
	switch p.kind {
	case Float64:
		p.data[address] = any(v.F64).(T)
	case Int32:
		p.data[address] = any(v.I32).(T)
	}
	p.hashValid = false
	return nil
}

// SetScalar is a typed convenience writer used by constant setters and by
// the execution engine to commit a register result.
func (p *PrimitiveArray[T]) SetScalar(address int, v T) {
	p.data[address] = v
	p.hashValid = false
}

// Scalar is a typed convenience reader matching SetScalar.
func (p *PrimitiveArray[T]) Scalar(address int) T {
	return p.data[address]
}

// Reset zeroes every element and invalidates the hash. Used by the
// execution engine to clear the register file between runs unless
// useMemoryRegisters is set.
func (p *PrimitiveArray[T]) Reset() {
	for i := range p.data {
		p.data[i] = T(0)
	}
	p.hashValid = false
}

func (p *PrimitiveArray[T]) Clone() Handler {
	clone := &PrimitiveArray[T]{
		id:        p.id,
		kind:      p.kind,
		label:     p.label,
		data:      append([]T(nil), p.data...),
		hashValid: p.hashValid,
		hash:      p.hash,
	}
	return clone
}

func (p *PrimitiveArray[T]) Hash() uint64 {
	if !p.hashValid {
		p.hash = p.computeHash()
		p.hashValid = true
	}
	return p.hash
}

// computeHash is an insertion-rotated XOR of each element's hash, seeded by
// the handler's id so that two handlers with identical content but
// different ids do not collide in the Archive's combined hash.
func (p *PrimitiveArray[T]) computeHash() uint64 {
	h := p.id
	for _, v := range p.data {
		h = bits.RotateLeft64(h, 1) ^ elementHash(p.kind, v)
	}
	return h
}

func elementHash[T Number](kind Kind, v T) uint64 {
	switch kind {
	case Float64:
		return math.Float64bits(float64(any(v).(float64)))
	case Int32:
		return uint64(uint32(any(v).(int32)))
	default:
		return 0
	}
}

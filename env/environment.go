// Package env derives the Environment a Program is interpreted against: the
// filtered instruction catalogue, the data source vector (registers,
// constants, real sources), and the bit layout of an encoded Line.
package env

import (
	"fmt"
	"math/bits"

	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/diag"
	"github.com/tangled-program/tpgo/instr"
)

// Environment is the immutable configuration a Program and its
// ProgramExecutionEngine are bound to.
type Environment struct {
	instructions *instr.Set
	sources      []data.Handler
	hasConstants bool

	nbRegisters int
	nbConstants int

	nbInstrBits int
	nbDestBits  int
	nbSrcBits   int
	nbLocBits   int

	maxNbOperands        int
	largestAddressSpace  int
	totalBits            int
}

// New builds an Environment from an instruction catalogue, the ordered list
// of real data sources, the register file size and the constant count. It
// filters iSet so only instructions whose every operand type is providable
// by at least one source survive; a diag.Issue is emitted for each dropped
// instruction. Construction fails with ErrInvalidEnvironment if the
// resulting layout is degenerate.
func New(iSet *instr.Set, sources []data.Handler, nbRegisters, nbConstants int, log *diag.Log) (*Environment, error) {
	registers := data.NewRegisters(nbRegisters)
	all := []data.Handler{registers}

	hasConstants := nbConstants > 0
	if hasConstants {
		all = append(all, data.NewConstants(nbConstants))
	}
	all = append(all, sources...)

	kept := filterInstructions(iSet, all, log)

	e := &Environment{
		instructions: kept,
		sources:      all,
		hasConstants: hasConstants,
		nbRegisters:  nbRegisters,
		nbConstants:  nbConstants,
	}

	e.maxNbOperands = kept.MaxNbOperands()
	e.largestAddressSpace = largestAddressSpace(all)

	if nbRegisters == 0 || kept.NbInstructions() <= 1 || e.maxNbOperands == 0 ||
		len(all) <= 1 || e.largestAddressSpace == 0 {
		return nil, ErrInvalidEnvironment
	}

	e.nbInstrBits = ceilLog2(kept.NbInstructions())
	e.nbDestBits = ceilLog2(nbRegisters)
	e.nbSrcBits = ceilLog2(len(all))
	e.nbLocBits = ceilLog2(e.largestAddressSpace)
	e.totalBits = e.nbInstrBits + e.nbDestBits +
		e.maxNbOperands*(e.nbSrcBits+e.nbLocBits)

	return e, nil
}

// filterInstructions drops every instruction with at least one operand type
// unprovidable by any of sources, logging one diag.Issue per dropped
// instruction.
func filterInstructions(iSet *instr.Set, sources []data.Handler, log *diag.Log) *instr.Set {
	providable := func(t data.Type) bool {
		for _, s := range sources {
			if s.CanHandle(t) {
				return true
			}
		}
		return false
	}

	kept := instr.NewSet()
	for i := 0; i < iSet.NbInstructions(); i++ {
		ins := iSet.Get(i)
		ok := true
		for _, t := range ins.OperandTypes() {
			if !providable(t) {
				ok = false
				break
			}
		}
		if ok {
			kept.Add(ins)
		} else if log != nil {
			log.Add(diag.InstructionDropped,
				fmt.Sprintf("dropped instruction %T: operand type unprovidable by any data source", ins))
		}
	}
	return kept
}

func largestAddressSpace(sources []data.Handler) int {
	max := 0
	for _, s := range sources {
		if n := s.LargestAddressSpace(); n > max {
			max = n
		}
	}
	return max
}

// ceilLog2 returns ceil(log2(n)) for n >= 1, and 0 for n <= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func (e *Environment) NbRegisters() int { return e.nbRegisters }
func (e *Environment) NbConstants() int { return e.nbConstants }
func (e *Environment) HasConstants() bool { return e.hasConstants }
func (e *Environment) NbDataSources() int { return len(e.sources) }
func (e *Environment) DataSource(i int) data.Handler { return e.sources[i] }
func (e *Environment) DataSources() []data.Handler { return e.sources }
func (e *Environment) Instructions() *instr.Set { return e.instructions }
func (e *Environment) NbInstructions() int { return e.instructions.NbInstructions() }
func (e *Environment) MaxNbOperands() int { return e.maxNbOperands }
func (e *Environment) LargestAddressSpace() int { return e.largestAddressSpace }
func (e *Environment) NbInstrBits() int { return e.nbInstrBits }
func (e *Environment) NbDestBits() int { return e.nbDestBits }
func (e *Environment) NbSrcBits() int { return e.nbSrcBits }
func (e *Environment) NbLocBits() int { return e.nbLocBits }
func (e *Environment) TotalBits() int { return e.totalBits }

// RegistersSourceIndex is the data source index of the virtual register
// file: always 0.
func (e *Environment) RegistersSourceIndex() int { return 0 }

// ConstantsSourceIndex is the data source index of the virtual constant
// handler, valid only when HasConstants is true.
func (e *Environment) ConstantsSourceIndex() int {
	if !e.hasConstants {
		panic("env: environment has no constants")
	}
	return 1
}

func (e *Environment) String() string {
	return fmt.Sprintf("Environment{instructions=%d sources=%d registers=%d constants=%d}",
		e.NbInstructions(), e.NbDataSources(), e.nbRegisters, e.nbConstants)
}

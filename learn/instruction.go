package learn

import "github.com/tangled-program/tpgo/instr"

// Instruction re-exports instr.Instruction under the learn package so
// callers wiring a learning environment and its instruction set together
// need only import learn.
type Instruction = instr.Instruction

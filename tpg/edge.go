package tpg

import "github.com/tangled-program/tpgo/program"

// Edge connects a source Vertex to a destination Vertex and carries a
// shared Program: the bidder whose register 0 after execution is the
// edge's bid. Multiple Edges may reference the same Program; Go's garbage
// collector reclaims a Program once the last Edge (and any Archive
// recording) referencing it is gone, so no explicit refcounting is
// required.
type Edge struct {
	id uint64

	source      *Vertex
	destination *Vertex
	program     *program.Program
}

// ID returns the edge's graph-unique id.
func (e *Edge) ID() uint64 { return e.id }

// Source returns the edge's source vertex.
func (e *Edge) Source() *Vertex { return e.source }

// Destination returns the edge's destination vertex.
func (e *Edge) Destination() *Vertex { return e.destination }

// Program returns the edge's bidding Program.
func (e *Edge) Program() *program.Program { return e.program }

// SetProgram rebinds the edge to a different Program. Used by
// mutator.MutateOutgoingEdge after cloning a program.
func (e *Edge) SetProgram(p *program.Program) { e.program = p }

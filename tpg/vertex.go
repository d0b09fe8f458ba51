// Package tpg implements the Tangled Program Graph model: Teams and Actions
// connected by Program-bidding Edges, plus the TPGExecutionEngine that
// walks a graph from a root to a chosen Action.
//
// Grounded on the teacher's cgra/cgra.go graph-of-tiles ownership idiom
// (interface-driven vertices connected by typed edges) and on
// original_source/gegelatilib/src/tpg/tpgGraph.cpp for the exact
// ownership/cascade-removal/clone semantics. The spec's redesign note
// (§9) recommends avoiding owner/back-pointer cycles via an arena of
// stable ids; Go's garbage collector handles reference cycles natively, so
// this port keeps direct *Vertex/*Edge pointers in both directions (Graph
// owns every Vertex/Edge it creates; nothing outside the Graph holds one
// past its removal) rather than emulating C++'s manual-memory-management
// workaround.
package tpg

// Vertex is a Team (interior) or an Action (leaf) of a TPGGraph.
type Vertex struct {
	id uint64

	isAction    bool
	actionID    uint64
	hasClass    bool
	actionClass uint64

	incoming []*Edge
	outgoing []*Edge // always empty for an Action vertex
}

// ID returns the vertex's graph-unique id.
func (v *Vertex) ID() uint64 { return v.id }

// IsAction reports whether this vertex is an Action leaf.
func (v *Vertex) IsAction() bool { return v.isAction }

// IsTeam reports whether this vertex is an interior Team.
func (v *Vertex) IsTeam() bool { return !v.isAction }

// ActionID returns the action id and true, or (0, false) for a Team.
func (v *Vertex) ActionID() (uint64, bool) {
	if !v.isAction {
		return 0, false
	}
	return v.actionID, true
}

// ActionClass returns the optional action class and whether one was set.
// Only meaningful for Action vertices.
func (v *Vertex) ActionClass() (uint64, bool) {
	if !v.isAction || !v.hasClass {
		return 0, false
	}
	return v.actionClass, true
}

// Incoming returns the vertex's incoming edges.
func (v *Vertex) Incoming() []*Edge { return v.incoming }

// Outgoing returns the vertex's outgoing edges (always empty for an
// Action).
func (v *Vertex) Outgoing() []*Edge { return v.outgoing }

// IsRoot reports whether the vertex has no incoming edges.
func (v *Vertex) IsRoot() bool { return len(v.incoming) == 0 }

func (v *Vertex) addIncoming(e *Edge) {
	v.incoming = append(v.incoming, e)
}

func (v *Vertex) addOutgoing(e *Edge) {
	v.outgoing = append(v.outgoing, e)
}

func (v *Vertex) removeIncoming(e *Edge) {
	v.incoming = removeEdge(v.incoming, e)
}

func (v *Vertex) removeOutgoing(e *Edge) {
	v.outgoing = removeEdge(v.outgoing, e)
}

func removeEdge(edges []*Edge, target *Edge) []*Edge {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

package tpg

import "github.com/tangled-program/tpgo/program"

// Graph owns every Vertex and Edge it creates, arena-style: vertices and
// edges are never accessible except through the Graph that created them or
// through pointers already handed out, and RemoveVertex/RemoveEdge are the
// only way to release one.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge

	nextVertexID uint64
	nextEdgeID   uint64
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNewTeam creates and returns a new, edgeless Team vertex.
func (g *Graph) AddNewTeam() *Vertex {
	v := &Vertex{id: g.nextVertexID}
	g.nextVertexID++
	g.vertices = append(g.vertices, v)
	return v
}

// AddNewAction creates and returns a new Action vertex with the given
// action id.
func (g *Graph) AddNewAction(actionID uint64) *Vertex {
	v := &Vertex{id: g.nextVertexID, isAction: true, actionID: actionID}
	g.nextVertexID++
	g.vertices = append(g.vertices, v)
	return v
}

// AddNewActionWithClass creates a new Action vertex with an action id and
// an action class, for multi-action environments.
func (g *Graph) AddNewActionWithClass(actionID, actionClass uint64) *Vertex {
	v := &Vertex{
		id: g.nextVertexID, isAction: true,
		actionID: actionID, hasClass: true, actionClass: actionClass,
	}
	g.nextVertexID++
	g.vertices = append(g.vertices, v)
	return v
}

// Vertices returns every vertex currently owned by the graph.
func (g *Graph) Vertices() []*Vertex { return g.vertices }

// Edges returns every edge currently owned by the graph.
func (g *Graph) Edges() []*Edge { return g.edges }

// NbVertices returns the number of vertices owned by the graph.
func (g *Graph) NbVertices() int { return len(g.vertices) }

// NbRootVertices returns the number of vertices with no incoming edges.
func (g *Graph) NbRootVertices() int {
	n := 0
	for _, v := range g.vertices {
		if v.IsRoot() {
			n++
		}
	}
	return n
}

// Roots returns every vertex with no incoming edges.
func (g *Graph) Roots() []*Vertex {
	var roots []*Vertex
	for _, v := range g.vertices {
		if v.IsRoot() {
			roots = append(roots, v)
		}
	}
	return roots
}

// HasVertex reports whether v is owned by this graph.
func (g *Graph) HasVertex(v *Vertex) bool {
	for _, candidate := range g.vertices {
		if candidate == v {
			return true
		}
	}
	return false
}

// HasEdge reports whether e is owned by this graph.
func (g *Graph) HasEdge(e *Edge) bool {
	for _, candidate := range g.edges {
		if candidate == e {
			return true
		}
	}
	return false
}

// AddNewEdge creates a new edge from src to dst carrying prog. Fails if
// either endpoint is not a member of the graph, or if src is an Action
// (Actions may only have incoming edges).
func (g *Graph) AddNewEdge(src, dst *Vertex, prog *program.Program) (*Edge, error) {
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return nil, ErrInvalidGraphOperation
	}
	if src.IsAction() {
		return nil, ErrInvalidGraphOperation
	}

	e := &Edge{id: g.nextEdgeID, source: src, destination: dst, program: prog}
	g.nextEdgeID++
	g.edges = append(g.edges, e)
	src.addOutgoing(e)
	dst.addIncoming(e)
	return e, nil
}

// RemoveVertex deletes v and cascades: every edge incident to v (incoming
// or outgoing) is removed first.
func (g *Graph) RemoveVertex(v *Vertex) error {
	idx := g.vertexIndex(v)
	if idx < 0 {
		return ErrInvalidGraphOperation
	}

	for _, e := range append([]*Edge(nil), v.incoming...) {
		_ = g.RemoveEdge(e)
	}
	for _, e := range append([]*Edge(nil), v.outgoing...) {
		_ = g.RemoveEdge(e)
	}

	g.vertices = append(g.vertices[:idx], g.vertices[idx+1:]...)
	return nil
}

// RemoveEdge deletes e, unlinking it from both endpoints.
func (g *Graph) RemoveEdge(e *Edge) error {
	idx := g.edgeIndex(e)
	if idx < 0 {
		return ErrInvalidGraphOperation
	}
	e.source.removeOutgoing(e)
	e.destination.removeIncoming(e)
	g.edges = append(g.edges[:idx], g.edges[idx+1:]...)
	return nil
}

// SetEdgeSource rewires e's source to newSrc, maintaining both endpoints'
// incoming/outgoing lists. Fails if e is not a graph member, newSrc is not
// a graph member, or newSrc is an Action.
func (g *Graph) SetEdgeSource(e *Edge, newSrc *Vertex) error {
	if !g.HasEdge(e) || !g.HasVertex(newSrc) || newSrc.IsAction() {
		return ErrInvalidGraphOperation
	}
	e.source.removeOutgoing(e)
	e.source = newSrc
	newSrc.addOutgoing(e)
	return nil
}

// SetEdgeDestination rewires e's destination to newDst, maintaining both
// endpoints' incoming/outgoing lists.
func (g *Graph) SetEdgeDestination(e *Edge, newDst *Vertex) error {
	if !g.HasEdge(e) || !g.HasVertex(newDst) {
		return ErrInvalidGraphOperation
	}
	e.destination.removeIncoming(e)
	e.destination = newDst
	newDst.addIncoming(e)
	return nil
}

// CloneVertex creates a new vertex of the same variant as v (same actionID
// if v is an Action) and copies only v's outgoing edges: each becomes a new
// edge from the clone to the original destination, sharing the original's
// Program. Incoming edges are not duplicated.
func (g *Graph) CloneVertex(v *Vertex) (*Vertex, error) {
	if !g.HasVertex(v) {
		return nil, ErrInvalidGraphOperation
	}

	var clone *Vertex
	if v.isAction {
		if v.hasClass {
			clone = g.AddNewActionWithClass(v.actionID, v.actionClass)
		} else {
			clone = g.AddNewAction(v.actionID)
		}
	} else {
		clone = g.AddNewTeam()
	}

	for _, e := range v.outgoing {
		if _, err := g.AddNewEdge(clone, e.destination, e.program); err != nil {
			return nil, err
		}
	}

	return clone, nil
}

func (g *Graph) vertexIndex(v *Vertex) int {
	for i, candidate := range g.vertices {
		if candidate == v {
			return i
		}
	}
	return -1
}

func (g *Graph) edgeIndex(e *Edge) int {
	for i, candidate := range g.edges {
		if candidate == e {
			return i
		}
	}
	return -1
}

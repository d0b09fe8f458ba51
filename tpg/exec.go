package tpg

import (
	"math"

	"github.com/tangled-program/tpgo/archive"
	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/progexec"
)

// ExecutionEngine walks a Graph from a root Team to a chosen Action,
// picking at each Team the outgoing edge with the highest program bid
// while avoiding already-visited teams. Grounded on
// original_source/gegelatilib/include/tpg/tpgExecutionEngine.h.
type ExecutionEngine struct {
	progEngine *progexec.Engine
	arc        *archive.Archive
}

// NewExecutionEngine creates a TPG execution engine. arc may be nil, in
// which case no recordings are archived.
func NewExecutionEngine(progEngine *progexec.Engine, arc *archive.Archive) *ExecutionEngine {
	return &ExecutionEngine{progEngine: progEngine, arc: arc}
}

// EvaluateEdge executes edge's Program against the data sources of the
// Program's own Environment and returns its bid. sources is not read during
// execution: it is the data state offered to an attached Archive together
// with the program and result (subject to the archive's own recording
// probability).
func (e *ExecutionEngine) EvaluateEdge(edge *Edge, sources []data.Handler) float64 {
	result := e.progEngine.Execute(edge.Program())
	if e.arc != nil {
		e.arc.AddRecording(edge.Program(), sources, result, false)
	}
	return result
}

// EvaluateTeam evaluates every outgoing edge of team whose destination is
// not in excluded, and returns the one with the highest bid. NaN bids
// compare as -Inf. Ties are resolved in favour of the edge encountered
// last in iteration order. Fails with ErrNoReachableEdge if every outgoing
// edge is excluded.
func (e *ExecutionEngine) EvaluateTeam(team *Vertex, excluded map[uint64]bool, sources []data.Handler) (*Edge, error) {
	var best *Edge
	bestBid := math.Inf(-1)
	found := false

	for _, edge := range team.Outgoing() {
		if excluded[edge.Destination().ID()] {
			continue
		}
		found = true

		bid := e.EvaluateEdge(edge, sources)
		if math.IsNaN(bid) {
			bid = math.Inf(-1)
		}
		if bid >= bestBid {
			bestBid = bid
			best = edge
		}
	}

	if !found {
		return nil, ErrNoReachableEdge
	}
	return best, nil
}

// ExecuteFromRoot walks the graph starting at root, excluding already
// visited teams, until it reaches an Action. Returns the full path,
// root included, always ending in an Action vertex. If root is itself an
// Action the path is simply [root].
func (e *ExecutionEngine) ExecuteFromRoot(root *Vertex, sources []data.Handler) ([]*Vertex, error) {
	if root.IsAction() {
		return []*Vertex{root}, nil
	}

	path := []*Vertex{root}
	excluded := map[uint64]bool{root.ID(): true}
	current := root

	for {
		edge, err := e.EvaluateTeam(current, excluded, sources)
		if err != nil {
			return nil, err
		}
		dest := edge.Destination()
		path = append(path, dest)
		if dest.IsAction() {
			return path, nil
		}
		excluded[dest.ID()] = true
		current = dest
	}
}

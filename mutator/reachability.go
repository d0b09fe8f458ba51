package mutator

import "github.com/tangled-program/tpgo/tpg"

// reachableActionIDs returns the set of distinct action ids reachable from
// v by following outgoing edges, skipping excludeEdge itself (used to test
// "what would remain reachable if this edge were removed" without mutating
// the graph). visited guards against revisiting any vertex already explored
// during this search.
func reachableActionIDs(v *tpg.Vertex, excludeEdge *tpg.Edge, visited map[uint64]bool) map[uint64]bool {
	if visited[v.ID()] {
		return nil
	}
	visited[v.ID()] = true

	if v.IsAction() {
		id, _ := v.ActionID()
		return map[uint64]bool{id: true}
	}

	found := map[uint64]bool{}
	for _, e := range v.Outgoing() {
		if e == excludeEdge {
			continue
		}
		for id := range reachableActionIDs(e.Destination(), excludeEdge, visited) {
			found[id] = true
		}
	}
	return found
}

// removingEdgeLeavesEnoughActions reports whether team would still reach at
// least 2 distinct actions if edge were removed from it.
func removingEdgeLeavesEnoughActions(team *tpg.Vertex, edge *tpg.Edge) bool {
	ids := reachableActionIDs(team, edge, map[uint64]bool{})
	return len(ids) >= 2
}

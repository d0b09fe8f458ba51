package tpg

import "errors"

var (
	// ErrInvalidGraphOperation covers every structurally invalid graph
	// edit: adding an outgoing edge to an Action, an edge whose endpoints
	// are not members of the graph, or cloning/rewiring a non-member
	// vertex or edge.
	ErrInvalidGraphOperation = errors.New("tpg: invalid graph operation")
	// ErrNoReachableEdge is returned by evaluateTeam when every outgoing
	// edge of a team has been excluded, which indicates a malformed
	// graph (every cycle must have at least one action exit).
	ErrNoReachableEdge = errors.New("tpg: no reachable outgoing edge")
)

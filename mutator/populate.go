package mutator

import (
	"github.com/tangled-program/tpgo/archive"
	"github.com/tangled-program/tpgo/env"
	"github.com/tangled-program/tpgo/mutparams"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/rng"
	"github.com/tangled-program/tpgo/tpg"
)

// PopulateTPG regenerates roots up to params.TPG.NbRoots: if g has no root
// team yet it seeds the graph via InitRandomTPG, then repeatedly clones a
// uniformly chosen existing root team (root Actions are permitted but
// never chosen as templates), mutates the clone via MutateTPGTeam, and
// finally mutates every newly cloned Program's behaviour in bulk via
// MutateNewProgramBehaviors. Grounded on
// original_source/gegelatilib/src/tpg/tpgMutator.cpp's populateTPG.
func PopulateTPG(g *tpg.Graph, e *env.Environment, arc *archive.Archive, params mutparams.Parameters, r *rng.RNG, tau float64, maxAttempts int) error {
	if !hasRootTeam(g) {
		if err := InitRandomTPG(g, e, params, r); err != nil {
			return err
		}
	}

	preEdges := append([]*tpg.Edge(nil), g.Edges()...)
	var newPrograms []*program.Program

	for len(g.Roots()) < params.TPG.NbRoots {
		templates := rootTeams(g)
		if len(templates) == 0 {
			break
		}
		template := templates[randIndex(r, len(templates))]

		clone, err := g.CloneVertex(template)
		if err != nil {
			return err
		}

		teams, actions := partitionVertices(g)
		if err := MutateTPGTeam(g, clone, preEdges, teams, actions, &newPrograms, params, r); err != nil {
			return err
		}
	}

	MutateNewProgramBehaviors(newPrograms, params, arc, r, tau, maxAttempts)
	return nil
}

func hasRootTeam(g *tpg.Graph) bool {
	return len(rootTeams(g)) > 0
}

func rootTeams(g *tpg.Graph) []*tpg.Vertex {
	var teams []*tpg.Vertex
	for _, v := range g.Roots() {
		if v.IsTeam() {
			teams = append(teams, v)
		}
	}
	return teams
}

func partitionVertices(g *tpg.Graph) (teams, actions []*tpg.Vertex) {
	for _, v := range g.Vertices() {
		if v.IsAction() {
			actions = append(actions, v)
		} else {
			teams = append(teams, v)
		}
	}
	return teams, actions
}

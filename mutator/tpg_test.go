package mutator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tangled-program/tpgo/archive"
	"github.com/tangled-program/tpgo/mutator"
	"github.com/tangled-program/tpgo/mutparams"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/rng"
	"github.com/tangled-program/tpgo/tpg"
)

func partitionForTest(g *tpg.Graph) (teams, actions []*tpg.Vertex) {
	for _, v := range g.Vertices() {
		if v.IsAction() {
			actions = append(actions, v)
		} else {
			teams = append(teams, v)
		}
	}
	return teams, actions
}

var _ = Describe("InitRandomTPG", func() {
	It("wires every team to exactly two distinct actions and uses every program once", func() {
		e := newMutatorEnv()
		params := mutparams.Default()
		params.TPG.NbActions = 4
		params.TPG.MaxInitOutgoingEdges = 2
		r := rng.New(10)

		g := tpg.NewGraph()
		Expect(mutator.InitRandomTPG(g, e, *params, r)).To(Succeed())

		Expect(g.NbVertices()).To(Equal(2 * params.TPG.NbActions))
		Expect(len(g.Edges())).To(Equal(2 * params.TPG.NbActions))

		for _, v := range g.Vertices() {
			if v.IsTeam() {
				destinations := map[uint64]bool{}
				for _, edge := range v.Outgoing() {
					destinations[edge.Destination().ID()] = true
				}
				Expect(destinations).To(HaveLen(2))
			}
		}

		programs := map[*program.Program]bool{}
		for _, edge := range g.Edges() {
			Expect(programs[edge.Program()]).To(BeFalse())
			programs[edge.Program()] = true
		}
	})

	It("rejects a misconfigured action count", func() {
		e := newMutatorEnv()
		params := mutparams.Default()
		params.TPG.NbActions = 1
		r := rng.New(11)

		g := tpg.NewGraph()
		err := mutator.InitRandomTPG(g, e, *params, r)
		Expect(err).To(Equal(mutator.ErrParameterMisconfiguration))
	})

	It("rejects maxInitOutgoingEdges greater than nbActions", func() {
		e := newMutatorEnv()
		params := mutparams.Default()
		params.TPG.NbActions = 2
		params.TPG.MaxInitOutgoingEdges = 3
		r := rng.New(12)

		g := tpg.NewGraph()
		err := mutator.InitRandomTPG(g, e, *params, r)
		Expect(err).To(Equal(mutator.ErrParameterMisconfiguration))
	})
})

var _ = Describe("MutateTPGTeam", func() {
	It("never lets a team drop below reaching two distinct actions", func() {
		e := newMutatorEnv()
		params := mutparams.Default()
		params.TPG.NbActions = 3
		params.TPG.MaxInitOutgoingEdges = 2
		params.TPG.PEdgeDeletion = 1
		params.TPG.PEdgeAddition = 0
		params.TPG.PProgramMutation = 0
		r := rng.New(20)

		g := tpg.NewGraph()
		Expect(mutator.InitRandomTPG(g, e, *params, r)).To(Succeed())

		var team *tpg.Vertex
		for _, v := range g.Vertices() {
			if v.IsTeam() {
				team = v
				break
			}
		}
		Expect(team).NotTo(BeNil())

		preEdges := append([]*tpg.Edge(nil), g.Edges()...)
		teams, actions := partitionForTest(g)
		var newPrograms []*program.Program

		err := mutator.MutateTPGTeam(g, team, preEdges, teams, actions, &newPrograms, *params, r)
		Expect(err).NotTo(HaveOccurred())

		reached := map[uint64]bool{}
		for _, edge := range team.Outgoing() {
			id, _ := edge.Destination().ActionID()
			reached[id] = true
		}
		Expect(len(reached)).To(BeNumerically(">=", 2))
	})
})

var _ = Describe("PopulateTPG", func() {
	It("grows the graph's root team count up to the configured target", func() {
		e := newMutatorEnv()
		params := mutparams.Default()
		params.TPG.NbActions = 2
		params.TPG.NbRoots = 4
		params.TPG.MaxInitOutgoingEdges = 2
		r := rng.New(30)

		g := tpg.NewGraph()
		arc := archive.New(params.ArchiveSize, params.ArchivingProbability, 1)

		Expect(mutator.PopulateTPG(g, e, arc, *params, r, 0.1, 5)).To(Succeed())

		rootTeamCount := 0
		for _, v := range g.Roots() {
			if v.IsTeam() {
				rootTeamCount++
			}
		}
		Expect(rootTeamCount).To(Equal(params.TPG.NbRoots))
	})
})

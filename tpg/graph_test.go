package tpg_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/diag"
	"github.com/tangled-program/tpgo/env"
	"github.com/tangled-program/tpgo/instr"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/tpg"
)

func newGraphEnv() *env.Environment {
	obs := data.NewPrimitiveArray[float64](data.Float64, 4, "obs")
	e, err := env.New(instr.DefaultSet(), []data.Handler{obs}, 4, 2, &diag.Log{})
	Expect(err).NotTo(HaveOccurred())
	return e
}

var _ = Describe("Graph", func() {
	var e *env.Environment

	BeforeEach(func() {
		e = newGraphEnv()
	})

	It("creates teams and actions and tracks roots", func() {
		g := tpg.NewGraph()
		team := g.AddNewTeam()
		action := g.AddNewAction(3)

		Expect(g.NbVertices()).To(Equal(2))
		Expect(team.IsTeam()).To(BeTrue())
		Expect(action.IsAction()).To(BeTrue())

		id, ok := action.ActionID()
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(uint64(3)))

		Expect(g.NbRootVertices()).To(Equal(2))

		_, err := g.AddNewEdge(team, action, program.New(e))
		Expect(err).NotTo(HaveOccurred())

		Expect(g.NbRootVertices()).To(Equal(1))
		Expect(g.Roots()).To(ConsistOf(team))
	})

	It("rejects an outgoing edge from an action", func() {
		g := tpg.NewGraph()
		team := g.AddNewTeam()
		action := g.AddNewAction(0)

		_, err := g.AddNewEdge(action, team, program.New(e))
		Expect(err).To(Equal(tpg.ErrInvalidGraphOperation))
	})

	It("rejects edges whose endpoints are not graph members", func() {
		g := tpg.NewGraph()
		other := tpg.NewGraph()
		team := g.AddNewTeam()
		foreignAction := other.AddNewAction(0)

		_, err := g.AddNewEdge(team, foreignAction, program.New(e))
		Expect(err).To(Equal(tpg.ErrInvalidGraphOperation))
	})

	It("cascades edge removal when a vertex is removed", func() {
		g := tpg.NewGraph()
		team := g.AddNewTeam()
		action := g.AddNewAction(0)
		edge, err := g.AddNewEdge(team, action, program.New(e))
		Expect(err).NotTo(HaveOccurred())

		Expect(g.RemoveVertex(team)).To(Succeed())
		Expect(g.HasVertex(team)).To(BeFalse())
		Expect(g.HasEdge(edge)).To(BeFalse())
		Expect(action.Incoming()).To(BeEmpty())
	})

	It("rewires an edge's source and destination", func() {
		g := tpg.NewGraph()
		team1 := g.AddNewTeam()
		team2 := g.AddNewTeam()
		action1 := g.AddNewAction(0)
		action2 := g.AddNewAction(1)

		edge, err := g.AddNewEdge(team1, action1, program.New(e))
		Expect(err).NotTo(HaveOccurred())

		Expect(g.SetEdgeSource(edge, team2)).To(Succeed())
		Expect(edge.Source()).To(BeIdenticalTo(team2))
		Expect(team1.Outgoing()).To(BeEmpty())
		Expect(team2.Outgoing()).To(ConsistOf(edge))

		Expect(g.SetEdgeDestination(edge, action2)).To(Succeed())
		Expect(edge.Destination()).To(BeIdenticalTo(action2))
		Expect(action1.Incoming()).To(BeEmpty())
		Expect(action2.Incoming()).To(ConsistOf(edge))
	})

	It("clones a vertex's outgoing edges, sharing programs but not incoming edges", func() {
		g := tpg.NewGraph()
		root := g.AddNewTeam()
		team := g.AddNewTeam()
		action := g.AddNewAction(5)

		_, err := g.AddNewEdge(root, team, program.New(e))
		Expect(err).NotTo(HaveOccurred())
		prog := program.New(e)
		outEdge, err := g.AddNewEdge(team, action, prog)
		Expect(err).NotTo(HaveOccurred())

		clone, err := g.CloneVertex(team)
		Expect(err).NotTo(HaveOccurred())
		Expect(clone.IsTeam()).To(BeTrue())
		Expect(clone.Incoming()).To(BeEmpty())
		Expect(clone.Outgoing()).To(HaveLen(1))
		Expect(clone.Outgoing()[0].Program()).To(BeIdenticalTo(outEdge.Program()))
		Expect(clone.Outgoing()[0].Destination()).To(BeIdenticalTo(action))
	})
})

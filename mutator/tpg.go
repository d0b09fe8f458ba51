package mutator

import (
	"sync"

	"github.com/tangled-program/tpgo/archive"
	"github.com/tangled-program/tpgo/env"
	"github.com/tangled-program/tpgo/mutparams"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/progexec"
	"github.com/tangled-program/tpgo/rng"
	"github.com/tangled-program/tpgo/tpg"
)

// InitRandomTPG builds one Team and one Action per entry in
// [0, params.TPG.NbActions), creates 2*nbActions freshly randomised
// Programs, and wires team i to actions i and i+1 (mod nbActions) through
// two of those programs - so every team reaches exactly two distinct
// actions, every program is used exactly once, and every action is the
// destination of exactly two edges. Requires nbActions >= 2 and
// maxInitOutgoingEdges <= nbActions, returning ErrParameterMisconfiguration
// otherwise. Grounded line-for-line on
// original_source/src/mutator/tpgMutator.cpp's initRandomTPG: the
// team-to-action wiring there is deliberately deterministic (randomness
// would complicate the code for no behavioural benefit, since every
// Program is already independently randomised).
func InitRandomTPG(g *tpg.Graph, e *env.Environment, params mutparams.Parameters, r *rng.RNG) error {
	nbActions := params.TPG.NbActions
	if nbActions < 2 || params.TPG.MaxInitOutgoingEdges > nbActions {
		return ErrParameterMisconfiguration
	}

	actions := make([]*tpg.Vertex, nbActions)
	teams := make([]*tpg.Vertex, nbActions)
	for i := 0; i < nbActions; i++ {
		actions[i] = g.AddNewAction(uint64(i))
		teams[i] = g.AddNewTeam()
	}

	programs := make([]*program.Program, 2*nbActions)
	for i := range programs {
		prog, err := InitRandomProgram(e, params.Prog, r)
		if err != nil {
			return err
		}
		programs[i] = prog
	}

	for i := 0; i < 2*nbActions; i++ {
		team := teams[i/2]
		dest := actions[((i/2)+(i%2))%nbActions]
		if _, err := g.AddNewEdge(team, dest, programs[i]); err != nil {
			return err
		}
	}
	return nil
}

// AddRandomEdge adds a new edge out of team by cloning a uniformly chosen
// candidate edge: the new edge keeps the candidate's destination and
// shares its Program, but its source becomes team. Candidates whose
// destination already appears among team's outgoing edges are skipped.
// candidateEdges is expected to be a snapshot of the graph's edges taken
// before this mutation pass began.
func AddRandomEdge(g *tpg.Graph, team *tpg.Vertex, candidateEdges []*tpg.Edge, r *rng.RNG) (*tpg.Edge, error) {
	existing := map[uint64]bool{}
	for _, e := range team.Outgoing() {
		existing[e.Destination().ID()] = true
	}

	var pool []*tpg.Edge
	for _, e := range candidateEdges {
		if !existing[e.Destination().ID()] {
			pool = append(pool, e)
		}
	}
	if len(pool) == 0 {
		return nil, tpg.ErrInvalidGraphOperation
	}

	chosen := pool[randIndex(r, len(pool))]
	return g.AddNewEdge(team, chosen.Destination(), chosen.Program())
}

// MutateEdgeDestination rewires edge to a new destination: with
// probability params.TPG.PEdgeDestinationIsAction the new destination is a
// uniformly chosen action from actionsCands, otherwise a uniformly chosen
// team from teamsCands. If the chosen bucket is empty, the other is used
// instead. The new destination may equal the current one.
func MutateEdgeDestination(g *tpg.Graph, edge *tpg.Edge, teamsCands, actionsCands []*tpg.Vertex, params mutparams.Parameters, r *rng.RNG) error {
	pool := teamsCands
	if r.Float64() < params.TPG.PEdgeDestinationIsAction {
		pool = actionsCands
	}
	if len(pool) == 0 {
		if pool = teamsCands; len(pool) == 0 {
			pool = actionsCands
		}
	}
	if len(pool) == 0 {
		return tpg.ErrInvalidGraphOperation
	}
	return g.SetEdgeDestination(edge, pool[randIndex(r, len(pool))])
}

// MutateOutgoingEdge clones edge's Program into a new, exclusively-owned
// Program and attaches it to edge (any other edge still sharing the
// original Program is unaffected), appends the clone to newPrograms, and
// with probability params.TPG.PEdgeDestinationChange also rewires edge's
// destination. The clone's actual content is perturbed later, in bulk, by
// MutateNewProgramBehaviors - this function only establishes ownership.
func MutateOutgoingEdge(g *tpg.Graph, edge *tpg.Edge, teamsCands, actionsCands []*tpg.Vertex, newPrograms *[]*program.Program, params mutparams.Parameters, r *rng.RNG) error {
	clone := edge.Program().Clone()
	edge.SetProgram(clone)
	*newPrograms = append(*newPrograms, clone)

	if r.Float64() < params.TPG.PEdgeDestinationChange {
		return MutateEdgeDestination(g, edge, teamsCands, actionsCands, params, r)
	}
	return nil
}

// MutateTPGTeam applies one mutation pass to team: repeated edge deletion
// (stopping before it would leave team reaching fewer than 2 distinct
// actions), repeated edge addition from preEdges (a graph-wide edge
// snapshot taken before this pass started), then for each surviving edge a
// chance of MutateOutgoingEdge. Every Program cloned along the way is
// appended to newPrograms.
func MutateTPGTeam(
	g *tpg.Graph,
	team *tpg.Vertex,
	preEdges []*tpg.Edge,
	teamsCands, actionsCands []*tpg.Vertex,
	newPrograms *[]*program.Program,
	params mutparams.Parameters,
	r *rng.RNG,
) error {
	for len(team.Outgoing()) > 0 && r.Float64() < params.TPG.PEdgeDeletion {
		candidate := team.Outgoing()[randIndex(r, len(team.Outgoing()))]
		if !removingEdgeLeavesEnoughActions(team, candidate) {
			break
		}
		if err := g.RemoveEdge(candidate); err != nil {
			return err
		}
	}

	for len(team.Outgoing()) < params.TPG.MaxOutgoingEdges && r.Float64() < params.TPG.PEdgeAddition {
		if _, err := AddRandomEdge(g, team, preEdges, r); err != nil {
			break
		}
	}

	for _, edge := range append([]*tpg.Edge(nil), team.Outgoing()...) {
		if r.Float64() < params.TPG.PProgramMutation {
			if err := MutateOutgoingEdge(g, edge, teamsCands, actionsCands, newPrograms, params, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// MutateProgramBehaviorAgainstArchive mutates prog (in place) via
// MutateProgram, then, if params.TPG.ForceProgramBehaviorChangeOnMutation
// is set, keeps re-mutating until prog's bid against every archived
// data-source snapshot is behaviourally distinct from every program
// already in arc (per arc.AreProgramResultsUnique), or maxAttempts is
// exhausted. When the flag is false the loop always stops after the first
// mutation. progEngine must not be shared with a concurrently running
// call: see progexec.Engine's single-goroutine-at-a-time contract.
func MutateProgramBehaviorAgainstArchive(
	prog *program.Program,
	params mutparams.Parameters,
	arc *archive.Archive,
	progEngine *progexec.Engine,
	r *rng.RNG,
	tau float64,
	maxAttempts int,
) {
	for attempt := 0; ; attempt++ {
		MutateProgram(prog, params.Prog, r)

		if !params.TPG.ForceProgramBehaviorChangeOnMutation {
			return
		}
		if arc == nil || arc.NbDataHandlers() == 0 {
			return
		}

		results := make(map[uint64]float64, arc.NbDataHandlers())
		for hash, snapshot := range arc.Snapshots() {
			results[hash] = progEngine.ExecuteWithOverrides(prog, snapshot)
		}
		if arc.AreProgramResultsUnique(results, tau) {
			return
		}
		if attempt+1 >= maxAttempts {
			return
		}
	}
}

// MutateNewProgramBehaviors runs MutateProgramBehaviorAgainstArchive over
// every program in programs, bounded to params.NbThreads workers. Each
// worker gets its own sub-RNG (derived from r via RNG.Derive, drawn in
// list order before dispatch so the result is independent of scheduling)
// and its own progexec.Engine, since neither is safe to share across
// goroutines.
func MutateNewProgramBehaviors(
	programs []*program.Program,
	params mutparams.Parameters,
	arc *archive.Archive,
	r *rng.RNG,
	tau float64,
	maxAttempts int,
) {
	subRNGs := make([]*rng.RNG, len(programs))
	for i := range programs {
		subRNGs[i] = r.Derive()
	}

	nbThreads := params.NbThreads
	if nbThreads < 1 {
		nbThreads = 1
	}
	if nbThreads > len(programs) {
		nbThreads = len(programs)
	}
	if nbThreads == 0 {
		return
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < nbThreads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine := progexec.New(params.NbRegisters, params.UseMemoryRegisters)
			for i := range jobs {
				MutateProgramBehaviorAgainstArchive(
					programs[i], params, arc, engine, subRNGs[i], tau, maxAttempts)
			}
		}()
	}
	for i := range programs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

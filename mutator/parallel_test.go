package mutator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tangled-program/tpgo/archive"
	"github.com/tangled-program/tpgo/mutator"
	"github.com/tangled-program/tpgo/mutparams"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/rng"
)

var _ = Describe("MutateNewProgramBehaviors", func() {
	It("produces identical results regardless of worker count, given the same seed", func() {
		e := newMutatorEnv()
		params := *mutparams.Default()
		params.Prog.PMutate = 1
		params.Prog.PDelete = 0
		params.Prog.PAdd = 0
		params.Prog.PSwap = 0
		params.Prog.PConstantMutation = 0
		params.TPG.ForceProgramBehaviorChangeOnMutation = false

		newPrograms := func() []*program.Program {
			r := rng.New(77)
			progs := make([]*program.Program, 8)
			for i := range progs {
				p, err := mutator.InitRandomProgram(e, params.Prog, r)
				Expect(err).NotTo(HaveOccurred())
				progs[i] = p
			}
			return progs
		}

		sequential := newPrograms()
		parallel := newPrograms()

		arc := archive.New(params.ArchiveSize, params.ArchivingProbability, 1)

		params.NbThreads = 1
		mutator.MutateNewProgramBehaviors(sequential, params, arc, rng.New(99), 0.1, 3)

		params.NbThreads = 4
		mutator.MutateNewProgramBehaviors(parallel, params, arc, rng.New(99), 0.1, 3)

		for i := range sequential {
			Expect(sequential[i].NbLines()).To(Equal(parallel[i].NbLines()))
			for line := 0; line < sequential[i].NbLines(); line++ {
				sLine, _ := sequential[i].Line(line)
				pLine, _ := parallel[i].Line(line)
				Expect(sLine).To(Equal(pLine))
			}
		}
	})
})

package mutator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tangled-program/tpgo/env"
	"github.com/tangled-program/tpgo/mutator"
	"github.com/tangled-program/tpgo/mutparams"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/rng"
)

var _ = Describe("InitRandomProgram", func() {
	It("builds a program within the configured size bounds, with constants set", func() {
		e := newMutatorEnv()
		params := mutparams.Default().Prog
		r := rng.New(3)

		p, err := mutator.InitRandomProgram(e, params, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.NbLines()).To(BeNumerically(">=", 1))
		Expect(p.NbLines()).To(BeNumerically("<=", params.MaxProgramSize))
		Expect(p.NbConstants()).To(Equal(e.NbConstants()))
	})
})

var _ = Describe("MutateProgram", func() {
	var e *env.Environment
	var params mutparams.ProgParams

	BeforeEach(func() {
		e = newMutatorEnv()
		params = mutparams.Default().Prog
	})

	It("fires every operator when every probability is 1 and reports a mutation", func() {
		params.PDelete = 1
		params.PAdd = 1
		params.PMutate = 1
		params.PSwap = 1
		params.PConstantMutation = 1
		r := rng.New(4)

		p := program.New(e)
		p.AddNewLine()
		p.AddNewLine()
		p.AddNewLine()
		before := p.NbLines()

		changed := mutator.MutateProgram(p, params, r)
		Expect(changed).To(BeTrue())
		// delete then add nets to the same line count (both fire once).
		Expect(p.NbLines()).To(Equal(before))
	})

	It("reports no mutation when every probability is 0", func() {
		params.PDelete = 0
		params.PAdd = 0
		params.PMutate = 0
		params.PSwap = 0
		params.PConstantMutation = 0
		r := rng.New(5)

		p, err := mutator.InitRandomProgram(e, params, r)
		Expect(err).NotTo(HaveOccurred())

		changed := mutator.MutateProgram(p, params, r)
		Expect(changed).To(BeFalse())
	})

	It("never shrinks a program below one line", func() {
		params.PDelete = 1
		params.PAdd = 0
		params.PMutate = 0
		params.PSwap = 0
		params.PConstantMutation = 0
		r := rng.New(6)

		p := program.New(e)
		p.AddNewLine()
		Expect(p.NbLines()).To(Equal(1))

		mutator.MutateProgram(p, params, r)
		Expect(p.NbLines()).To(Equal(1))
	})
})

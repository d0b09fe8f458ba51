package learn_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gomock "github.com/golang/mock/gomock"

	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/learn"
)

// runEpisode drives env through the Reset/DoAction/IsTerminal/Score
// sequence a policy-evaluation loop is expected to use, and returns the
// final score. It exists purely to give the mocked Environment below
// something concrete to be exercised by.
func runEpisode(env learn.Environment, seed uint64, actions []uint64) (float64, error) {
	env.Reset(seed, learn.Training)
	for _, id := range actions {
		if env.IsTerminal() {
			break
		}
		if err := env.DoAction(id); err != nil {
			return 0, err
		}
	}
	return env.Score(), nil
}

var _ = Describe("Environment contract", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("is driven through the expected reset/act/score call sequence", func() {
		mockEnv := NewMockEnvironment(ctrl)

		gomock.InOrder(
			mockEnv.EXPECT().Reset(uint64(42), learn.Training),
			mockEnv.EXPECT().IsTerminal().Return(false),
			mockEnv.EXPECT().DoAction(uint64(1)).Return(nil),
			mockEnv.EXPECT().IsTerminal().Return(false),
			mockEnv.EXPECT().DoAction(uint64(0)).Return(nil),
			mockEnv.EXPECT().IsTerminal().Return(true),
			mockEnv.EXPECT().Score().Return(3.5),
		)

		score, err := runEpisode(mockEnv, 42, []uint64{1, 0, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(Equal(3.5))
	})

	It("propagates DoAction errors without calling Score", func() {
		mockEnv := NewMockEnvironment(ctrl)

		gomock.InOrder(
			mockEnv.EXPECT().Reset(uint64(1), learn.Validation),
			mockEnv.EXPECT().IsTerminal().Return(false),
			mockEnv.EXPECT().DoAction(uint64(9)).Return(learn.ErrInvalidAction),
		)

		_, err := runEpisode(mockEnv, 1, []uint64{9})
		Expect(err).To(Equal(learn.ErrInvalidAction))
	})

	It("reports DataSources through the mock like a real Environment", func() {
		mockEnv := NewMockEnvironment(ctrl)
		obs := data.NewPrimitiveArray[float64](data.Float64, 2, "mock.obs")

		mockEnv.EXPECT().DataSources().Return([]data.Handler{obs})

		sources := mockEnv.DataSources()
		Expect(sources).To(HaveLen(1))
		Expect(sources[0]).To(BeIdenticalTo(data.Handler(obs)))
	})
})

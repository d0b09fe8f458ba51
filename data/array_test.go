package data_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tangled-program/tpgo/data"
)

var _ = Describe("PrimitiveArray", func() {
	Describe("scalar reads and writes", func() {
		It("round-trips a scalar value", func() {
			arr := data.NewPrimitiveArray[float64](data.Float64, 4, "test")
			arr.SetScalar(2, 3.5)

			v, err := arr.DataAt(data.Scalar(data.Float64), 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.F64).To(Equal(3.5))
		})
	})

	Describe("windowed reads", func() {
		var arr *data.PrimitiveArray[float64]

		BeforeEach(func() {
			arr = data.NewPrimitiveArray[float64](data.Float64, 5, "test")
			for i := 0; i < 5; i++ {
				arr.SetScalar(i, float64(i))
			}
		})

		It("shrinks the address space by window-1", func() {
			Expect(arr.AddressSpace(data.Window(data.Float64, 3))).To(Equal(3))
		})

		It("returns a contiguous view starting at the address", func() {
			v, err := arr.DataAt(data.Window(data.Float64, 3), 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.F64Window).To(Equal([]float64{1, 2, 3}))
		})
	})

	Describe("checked accessor failure modes", func() {
		var arr *data.PrimitiveArray[float64]

		BeforeEach(func() {
			arr = data.NewPrimitiveArray[float64](data.Float64, 2, "test")
		})

		It("rejects an out-of-range address", func() {
			_, err := arr.DataAt(data.Scalar(data.Float64), 5)
			Expect(err).To(MatchError(data.ErrOutOfRange))
		})

		It("rejects a type it does not handle", func() {
			_, err := arr.DataAt(data.Scalar(data.Int32), 0)
			Expect(err).To(MatchError(data.ErrInvalidType))
		})
	})

	Describe("ScaledDataAt", func() {
		It("never fails, wrapping the address modulo the address space", func() {
			arr := data.NewPrimitiveArray[float64](data.Float64, 3, "test")
			arr.SetScalar(1, 9)

			v := arr.ScaledDataAt(data.Scalar(data.Float64), 4) // 4 % 3 == 1
			Expect(v.F64).To(Equal(9.0))
		})
	})

	Describe("hashing and cloning", func() {
		It("changes the hash after a write, and keeps a clone independent", func() {
			arr := data.NewPrimitiveArray[float64](data.Float64, 2, "test")
			h1 := arr.Hash()

			clone := arr.Clone().(*data.PrimitiveArray[float64])
			Expect(clone.Hash()).To(Equal(h1))

			arr.SetScalar(0, 42)
			h2 := arr.Hash()
			Expect(h2).NotTo(Equal(h1))
			Expect(clone.Hash()).NotTo(Equal(h2))
		})

		It("preserves the handler id across a clone", func() {
			arr := data.NewPrimitiveArray[int32](data.Int32, 1, "test")
			clone := arr.Clone()
			Expect(clone.ID()).To(Equal(arr.ID()))
		})
	})
})

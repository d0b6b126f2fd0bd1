package observe_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinlab/internal/observe"
)

var _ = Describe("Accumulator", func() {
	var acc *observe.Accumulator

	BeforeEach(func() {
		acc = observe.NewAccumulator(4)
	})

	It("leaves the response functions undefined before two sweeps", func() {
		_, ok := acc.SpecificHeat()
		Expect(ok).To(BeFalse())
		_, ok = acc.Susceptibility()
		Expect(ok).To(BeFalse())

		acc.Observe(2, -2, 0)

		_, ok = acc.SpecificHeat()
		Expect(ok).To(BeFalse(), "one sample cannot define a variance")
		Expect(acc.SpecificHeats()).To(BeEmpty())
		Expect(acc.Susceptibilities()).To(BeEmpty())
		Expect(acc.Passes()).To(Equal(1))
	})

	It("derives both responses from the second sweep on", func() {
		acc.Observe(2, -2, 0)
		acc.Observe(2, -4, 2)

		// Population variance of {-2, -4} and of {0, 2} is 1 in both
		// cases; four sites at T=2.
		heat, ok := acc.SpecificHeat()
		Expect(ok).To(BeTrue())
		Expect(heat).To(BeNumerically("~", 1.0/16, 1e-12))

		susc, ok := acc.Susceptibility()
		Expect(ok).To(BeTrue())
		Expect(susc).To(BeNumerically("~", 1.0/8, 1e-12))
	})

	It("uses the full history and the latest temperature", func() {
		acc.Observe(2, -2, 0)
		acc.Observe(2, -4, 2)
		acc.Observe(1, -4, 2)

		// Var{-2,-4,-4} = Var{0,2,2} = 8/9, divided by 4 sites at T=1.
		heat, _ := acc.SpecificHeat()
		Expect(heat).To(BeNumerically("~", 2.0/9, 1e-12))
		susc, _ := acc.Susceptibility()
		Expect(susc).To(BeNumerically("~", 2.0/9, 1e-12))
	})

	It("keeps the derived series one entry behind the primaries", func() {
		for i := 0; i < 5; i++ {
			acc.Observe(1.5, float64(-i), i%3)

			Expect(acc.Temperatures()).To(HaveLen(i + 1))
			Expect(acc.Energies()).To(HaveLen(i + 1))
			Expect(acc.Magnetizations()).To(HaveLen(i + 1))
			Expect(acc.SpecificHeats()).To(HaveLen(i))
			Expect(acc.Susceptibilities()).To(HaveLen(i))
		}
		Expect(acc.Passes()).To(Equal(5))
	})

	It("never rewrites earlier history entries", func() {
		acc.Observe(3, -1, 1)
		acc.Observe(2, -2, -1)
		first := acc.Energies()[0]
		firstHeat := acc.SpecificHeats()[0]

		acc.Observe(1, -8, 3)

		Expect(acc.Energies()[0]).To(Equal(first))
		Expect(acc.SpecificHeats()[0]).To(Equal(firstHeat))
	})
})

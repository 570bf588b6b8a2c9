package gf2_test

import (
	"math"
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/webartifex/lalib/core/gf2"
)

// OneLikeEntries lists values that resolve to One under the default strict
// casting rules.
var OneLikeEntries = []TableEntry{
	Entry("from the int 1", 1),
	Entry("from the int64 1", int64(1)),
	Entry("from the uint 1", uint(1)),
	Entry("from the float 1.0", 1.0),
	Entry("from the float32 1.0", float32(1.0)),
	Entry("from a float within the threshold of 1", 1.0+1e-13),
	Entry("from the complex 1+0i", complex(1, 0)),
	Entry("from a complex with negligible imaginary part", complex(1, 1e-13)),
	Entry("from the bool true", true),
	Entry("from the string \"1\"", "1"),
	Entry("from a big integer", big.NewInt(1)),
	Entry("from a big rational", big.NewRat(1, 1)),
	Entry("from the One singleton itself", One),
}

// ZeroLikeEntries lists values that resolve to Zero under the default
// strict casting rules.
var ZeroLikeEntries = []TableEntry{
	Entry("from the int 0", 0),
	Entry("from the int64 0", int64(0)),
	Entry("from the uint 0", uint(0)),
	Entry("from the float 0.0", 0.0),
	Entry("from a float within the threshold of 0", 1e-13),
	Entry("from a negative float within the threshold of 0", -1e-13),
	Entry("from the complex 0+0i", complex(0, 0)),
	Entry("from the bool false", false),
	Entry("from the string \"0\"", "0"),
	Entry("from a big integer", big.NewInt(0)),
	Entry("from a big rational", big.NewRat(0, 1)),
	Entry("from the Zero singleton itself", Zero),
}

var _ = Describe("GF2 elements", func() {
	Context("when constructing an element", func() {
		DescribeTable("1-like values resolve to the One singleton", func(value interface{}) {
			e, err := New(value)
			Expect(err).To(BeNil())
			Expect(e).To(BeIdenticalTo(One))
		},
			OneLikeEntries...,
		)

		DescribeTable("0-like values resolve to the Zero singleton", func(value interface{}) {
			e, err := New(value)
			Expect(err).To(BeNil())
			Expect(e).To(BeIdenticalTo(Zero))
		},
			ZeroLikeEntries...,
		)

		Context("with values that are not 1-like or 0-like", func() {
			DescribeTable("strict mode fails", func(value interface{}) {
				_, err := New(value)
				Expect(err).To(MatchError(ErrNotOneOrZeroLike))
			},
				Entry("for the int 2", 2),
				Entry("for the int -1", -1),
				Entry("for the float 0.5", 0.5),
				Entry("for a float just outside the threshold of 1", 1.0+1e-11),
				Entry("for a large float", 42.87),
				Entry("for positive infinity", math.Inf(1)),
				Entry("for negative infinity", math.Inf(-1)),
				Entry("for NaN", math.NaN()),
				Entry("for a complex with a real imaginary part", complex(1, 1)),
			)

			DescribeTable("non-strict mode casts anything non-zero as One", func(value interface{}, expected *Element) {
				e, err := New(value, Strict(false))
				Expect(err).To(BeNil())
				Expect(e).To(BeIdenticalTo(expected))
			},
				Entry("for the int 2", 2, One),
				Entry("for the int -1", -1, One),
				Entry("for the float 0.5", 0.5, One),
				Entry("for a large float", 42.87, One),
				Entry("for positive infinity", math.Inf(1), One),
				Entry("for a float within the threshold of 0", 1e-13, Zero),
			)

			It("rejects NaN and imaginary values even in non-strict mode", func() {
				_, err := New(math.NaN(), Strict(false))
				Expect(err).To(MatchError(ErrNotOneOrZeroLike))

				_, err = New(complex(1, 1), Strict(false))
				Expect(err).To(MatchError(ErrNotOneOrZeroLike))
			})
		})

		DescribeTable("non-numeric values fail with ErrNotANumber", func(value interface{}) {
			_, err := New(value)
			Expect(err).To(MatchError(ErrNotANumber))
		},
			Entry("for a word", "abc"),
			Entry("for a slice", []int{1}),
			Entry("for a struct", struct{}{}),
			Entry("for nil", nil),
		)

		It("widens the accepted range with a custom threshold", func() {
			_, err := New(1.01)
			Expect(err).To(MatchError(ErrNotOneOrZeroLike))

			e, err := New(1.01, Threshold(0.1))
			Expect(err).To(BeNil())
			Expect(e).To(BeIdenticalTo(One))
		})
	})

	Context("when reducing numbers with ToBit", func() {
		It("accepts values within the threshold of 1 and 0", func() {
			Expect(ToBit(complex(1+1e-13, 0))).To(Equal(1))
			Expect(ToBit(complex(1e-13, 0))).To(Equal(0))
		})

		It("rejects values just outside the threshold in strict mode", func() {
			_, err := ToBit(complex(1+1e-11, 0))
			Expect(err).To(MatchError(ErrNotOneOrZeroLike))

			_, err = ToBit(complex(1e-11, 0))
			Expect(err).To(MatchError(ErrNotOneOrZeroLike))
		})

		It("reduces any non-zero value to 1 in non-strict mode", func() {
			Expect(ToBit(complex(1e-11, 0), Strict(false))).To(Equal(1))
			Expect(ToBit(complex(-12345.6, 0), Strict(false))).To(Equal(1))
		})

		It("rejects numbers with a non-negligible imaginary part", func() {
			_, err := ToBit(complex(1, 0.5))
			Expect(err).To(MatchError(ErrNotOneOrZeroLike))

			_, err = ToBit(complex(1, math.NaN()))
			Expect(err).To(MatchError(ErrNotOneOrZeroLike))
		})
	})

	Context("when constructing repeatedly", func() {
		const Trials = 100

		It("always returns the identical singleton", func() {
			for i := 0; i < Trials; i++ {
				e1, err := New(1.0)
				Expect(err).To(BeNil())
				e2, err := New(uint8(1))
				Expect(err).To(BeNil())
				Expect(e1).To(BeIdenticalTo(e2))

				z1, err := New(0.0)
				Expect(err).To(BeNil())
				z2, err := New(false)
				Expect(err).To(BeNil())
				Expect(z1).To(BeIdenticalTo(z2))
			}
		})

		It("returns an existing element unchanged", func() {
			e, err := New(One)
			Expect(err).To(BeNil())
			Expect(e).To(BeIdenticalTo(One))
		})
	})

	Context("when rendering and parsing the text representation", func() {
		It("round-trips back to the identical singleton", func() {
			Expect(One.String()).To(Equal("one"))
			Expect(Zero.String()).To(Equal("zero"))

			Expect(Parse(One.String())).To(BeIdenticalTo(One))
			Expect(Parse(Zero.String())).To(BeIdenticalTo(Zero))
		})

		It("rejects unknown names", func() {
			_, err := Parse("two")
			Expect(err).To(MatchError(ErrUnknownElement))
		})
	})

	Context("when using the numeric protocol", func() {
		It("converts exactly to the native types", func() {
			Expect(One.Int()).To(Equal(1))
			Expect(Zero.Int()).To(Equal(0))
			Expect(One.Float()).To(Equal(1.0))
			Expect(Zero.Float()).To(Equal(0.0))
			Expect(One.Complex()).To(Equal(complex(1, 0)))
			Expect(One.Bool()).To(BeTrue())
			Expect(Zero.Bool()).To(BeFalse())
		})

		It("is its own absolute value, conjugate, and negation", func() {
			Expect(One.Abs()).To(BeIdenticalTo(One))
			Expect(Zero.Abs()).To(BeIdenticalTo(Zero))
			Expect(One.Conjugate()).To(BeIdenticalTo(One))
			Expect(One.Neg()).To(BeIdenticalTo(One))
			Expect(Zero.Neg()).To(BeIdenticalTo(Zero))
			Expect(One.Pos()).To(BeIdenticalTo(One))
		})

		It("truncates and rounds to its own integer value", func() {
			Expect(One.Trunc()).To(Equal(1))
			Expect(One.Floor()).To(Equal(1))
			Expect(One.Ceil()).To(Equal(1))
			Expect(One.Round(5)).To(Equal(1))
			Expect(Zero.Round(0)).To(Equal(0))
		})

		It("behaves like a rational number", func() {
			Expect(One.Numerator()).To(Equal(1))
			Expect(Zero.Numerator()).To(Equal(0))
			Expect(One.Denominator()).To(Equal(1))
			Expect(Zero.Denominator()).To(Equal(1))
			Expect(One.Real()).To(Equal(1))
			Expect(One.Imag()).To(Equal(0))
		})
	})

	Context("when comparing elements", func() {
		It("equates elements with 1-like and 0-like numbers", func() {
			Expect(One.Eq(1)).To(BeTrue())
			Expect(One.Eq(1.0)).To(BeTrue())
			Expect(One.Eq(complex(1, 0))).To(BeTrue())
			Expect(Zero.Eq(0)).To(BeTrue())
			Expect(One.Eq(Zero)).To(BeFalse())
			Expect(One.Eq(One)).To(BeTrue())
		})

		It("treats non-coercible operands as unequal instead of failing", func() {
			Expect(One.Eq("abc")).To(BeFalse())
			Expect(One.Eq(2)).To(BeFalse())
			Expect(Zero.Eq(math.NaN())).To(BeFalse())
		})

		It("orders Zero strictly before One", func() {
			Expect(Zero.Lt(One)).To(BeTrue())
			Expect(Zero.Lt(1)).To(BeTrue())
			Expect(One.Lt(One)).To(BeFalse())
			Expect(One.Lt(Zero)).To(BeFalse())

			Expect(Zero.Le(Zero)).To(BeTrue())
			Expect(Zero.Le(One)).To(BeTrue())
			Expect(One.Le(Zero)).To(BeFalse())
		})

		It("fails ordering against out-of-range or non-numeric operands", func() {
			_, err := One.Lt(2)
			Expect(err).To(MatchError(ErrNotOneOrZeroLike))

			_, err = One.Lt("abc")
			Expect(err).To(MatchError(ErrNotANumber))

			_, err = One.Le(2)
			Expect(err).To(MatchError(ErrNotOneOrZeroLike))
		})
	})

	Context("when doing arithmetic", func() {
		DescribeTable("the addition table holds, with subtraction as the same operation", func(a, b interface{}, expected *Element) {
			sum, err := Add(a, b)
			Expect(err).To(BeNil())
			Expect(sum).To(BeIdenticalTo(expected))

			difference, err := Sub(a, b)
			Expect(err).To(BeNil())
			Expect(difference).To(BeIdenticalTo(expected))
		},
			Entry("one + one", One, One, Zero),
			Entry("one + zero", One, Zero, One),
			Entry("zero + one", Zero, One, One),
			Entry("zero + zero", Zero, Zero, Zero),
			Entry("one + 1", One, 1, Zero),
			Entry("1 + one", 1, One, Zero),
			Entry("zero + 0.0", Zero, 0.0, Zero),
		)

		DescribeTable("the multiplication table holds", func(a, b interface{}, expected *Element) {
			product, err := Mul(a, b)
			Expect(err).To(BeNil())
			Expect(product).To(BeIdenticalTo(expected))
		},
			Entry("one * one", One, One, One),
			Entry("one * zero", One, Zero, Zero),
			Entry("zero * zero", Zero, Zero, Zero),
			Entry("0 * one", 0, One, Zero),
			Entry("1 * one", 1, One, One),
		)

		DescribeTable("division works like dividing integers", func(a, b interface{}, expected *Element) {
			quotient, err := Div(a, b)
			Expect(err).To(BeNil())
			Expect(quotient).To(BeIdenticalTo(expected))
		},
			Entry("one / one", One, One, One),
			Entry("zero / one", Zero, One, Zero),
			Entry("1 / one", 1, One, One),
		)

		DescribeTable("the power table holds", func(a, b interface{}, expected *Element) {
			power, err := Pow(a, b)
			Expect(err).To(BeNil())
			Expect(power).To(BeIdenticalTo(expected))
		},
			Entry("one ** one", One, One, One),
			Entry("zero ** one", Zero, One, Zero),
			Entry("one ** zero", One, Zero, One),
			Entry("zero ** zero", Zero, Zero, One),
			Entry("1 ** one", 1, One, One),
		)

		It("computes modulo like integers", func() {
			Expect(One.Mod(One)).To(BeIdenticalTo(Zero))
			Expect(Zero.Mod(One)).To(BeIdenticalTo(Zero))
		})

		It("fails division and modulo by the zero element", func() {
			_, err := One.Div(Zero)
			Expect(err).To(MatchError(ErrDivisionByZero))

			_, err = One.Div(0)
			Expect(err).To(MatchError(ErrDivisionByZero))

			_, err = One.Mod(Zero)
			Expect(err).To(MatchError(ErrDivisionByZero))

			_, err = Zero.Div(Zero)
			Expect(err).To(MatchError(ErrDivisionByZero))
		})

		It("propagates coercion failures from either operand", func() {
			_, err := Add(One, "abc")
			Expect(err).To(MatchError(ErrNotANumber))

			_, err = Add(struct{}{}, One)
			Expect(err).To(MatchError(ErrNotANumber))

			_, err = Mul(One, 2)
			Expect(err).To(MatchError(ErrNotOneOrZeroLike))
		})
	})
})

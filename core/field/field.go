// Package field provides a uniform interface over heterogeneous numeric
// representations: the rational, real and complex numbers, and the Galois
// field of two elements. Each concrete field is a process-wide singleton
// that casts arbitrary numeric input into its canonical element type,
// tests values for field membership, and draws random elements.
package field

import (
	"errors"
	"reflect"

	"github.com/webartifex/lalib/core/config"
)

var (
	// ErrNotAFieldElement signifies that a value cannot be cast as an
	// element of the field.
	ErrNotAFieldElement = errors.New("field: value is not an element of the field")

	// ErrDivisionByZero signifies an inversion of the additive identity.
	ErrDivisionByZero = errors.New("field: division by the zero element")

	// ErrUnknownField signifies that a name does not resolve to a field.
	ErrUnknownField = errors.New("field: unknown field name")
)

// A Field is an algebraic structure with addition and multiplication
// satisfying closure, associativity, commutativity, identities, inverses,
// and distributivity.
//
// Elements are passed in and out as interface{} values backed by the
// field's storage type, which DType exposes for introspection. Convenience
// subtraction and division functions are derived from the respective
// additive and multiplicative inverses; see Sub and Div.
type Field interface {
	// Name is the field's short mathematical symbol. It doubles as the
	// lookup key resolving back to the singleton; see Lookup.
	Name() string

	// String equals Name.
	String() string

	// DType is the concrete storage type backing the field's elements.
	DType() reflect.Type

	// Zero is the field's additive identity.
	Zero() interface{}

	// One is the field's multiplicative identity.
	One() interface{}

	// Cast coerces a value into a canonical field element. Input outside
	// the field's accepted representations, and castable input rejected by
	// a post-cast filter, fail with ErrNotAFieldElement.
	Cast(value interface{}, opts ...Option) (interface{}, error)

	// Validate reports whether a value is castable. It wraps Cast and
	// suppresses its error; callers that need the error call Cast.
	Validate(value interface{}, opts ...Option) bool

	// IsZero casts the value and compares it to the additive identity,
	// within the field's tolerance policy. Uncastable values fail.
	IsZero(value interface{}, opts ...Option) (bool, error)

	// IsOne casts the value and compares it to the multiplicative
	// identity, within the field's tolerance policy.
	IsOne(value interface{}, opts ...Option) (bool, error)

	// Random draws a uniformly distributed element between the Lower and
	// Upper bound options. A missing lower bound defaults to Zero and a
	// missing upper bound to One; bounds may come in reversed order.
	// Uncastable bounds fail with ErrNotAFieldElement.
	Random(opts ...Option) (interface{}, error)

	// Add returns a + b, casting both operands first.
	Add(a, b interface{}) (interface{}, error)

	// Neg returns the additive inverse of a.
	Neg(a interface{}) (interface{}, error)

	// Mul returns a * b, casting both operands first.
	Mul(a, b interface{}) (interface{}, error)

	// Inv returns the multiplicative inverse of a. Inverting the zero
	// element fails with ErrDivisionByZero.
	Inv(a interface{}) (interface{}, error)
}

// An Option adjusts casting, comparison, and sampling behavior. Unknown
// options are ignored by fields they do not apply to.
type Option func(*options)

type options struct {
	strict         bool
	threshold      float64
	ndigits        int
	maxDenominator int64
	lower, upper   interface{}
}

// Strict controls GF2's casting mode; see the gf2 package.
func Strict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// Threshold overrides the equality threshold used by tolerance-based
// comparisons and by GF2 casting. The default is config.Threshold.
func Threshold(threshold float64) Option {
	return func(o *options) { o.threshold = threshold }
}

// NDigits overrides the number of decimal digits random draws are rounded
// to. The default is config.NDigits.
func NDigits(ndigits int) Option {
	return func(o *options) { o.ndigits = ndigits }
}

// MaxDenominator overrides the largest denominator rational casting may
// produce. The default is config.MaxDenominator.
func MaxDenominator(max int64) Option {
	return func(o *options) { o.maxDenominator = max }
}

// Lower sets the lower bound for Random. It defaults to the field's
// additive identity.
func Lower(value interface{}) Option {
	return func(o *options) { o.lower = value }
}

// Upper sets the upper bound for Random. It defaults to the field's
// multiplicative identity.
func Upper(value interface{}) Option {
	return func(o *options) { o.upper = value }
}

func newOptions(opts []Option) options {
	o := options{
		strict:         true,
		threshold:      config.Threshold,
		ndigits:        config.NDigits,
		maxDenominator: config.MaxDenominator,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// bounds resolves the Lower and Upper options into cast field elements,
// falling back to the field's identities.
func bounds(f Field, o options, opts []Option) (lower, upper interface{}, err error) {
	lo, hi := o.lower, o.upper
	if lo == nil {
		lo = f.Zero()
	}
	if hi == nil {
		hi = f.One()
	}

	if lower, err = f.Cast(lo, opts...); err != nil {
		return nil, nil, err
	}
	if upper, err = f.Cast(hi, opts...); err != nil {
		return nil, nil, err
	}
	return lower, upper, nil
}

// Sub returns a - b, derived from the additive inverse.
func Sub(f Field, a, b interface{}) (interface{}, error) {
	nb, err := f.Neg(b)
	if err != nil {
		return nil, err
	}
	return f.Add(a, nb)
}

// Div returns a / b, derived from the multiplicative inverse. Dividing by
// the zero element fails with ErrDivisionByZero.
func Div(f Field, a, b interface{}) (interface{}, error) {
	ib, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, ib)
}

// Eq reports whether two values are equal as elements of the field, within
// the field's tolerance policy: the difference is compared to zero.
func Eq(f Field, a, b interface{}, opts ...Option) (bool, error) {
	d, err := Sub(f, a, b)
	if err != nil {
		return false, err
	}
	return f.IsZero(d, opts...)
}

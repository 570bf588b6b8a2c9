// Package gf2 implements the Galois field of two elements.
//
// The package defines two singleton objects, One and Zero, that follow the
// rules of GF2: addition and subtraction are the same operation modulo 2,
// and multiplication behaves like integer multiplication. Both singletons
// mix with native numbers that are 1-like or 0-like, for example
//
//	gf2.Add(gf2.One, 1)  // == gf2.Zero
//	gf2.Mul(0, gf2.Zero) // == gf2.Zero
package gf2

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/webartifex/lalib/core/config"
)

var (
	// ErrNotANumber signifies that a value cannot be interpreted as a number.
	ErrNotANumber = errors.New("gf2: value must be a number")

	// ErrNotOneOrZeroLike signifies that a numeric value resolves to neither
	// 1 nor 0 under the active casting rules.
	ErrNotOneOrZeroLike = errors.New("gf2: value must be either 1-like or 0-like")

	// ErrDivisionByZero signifies a division or modulo by the zero element.
	ErrDivisionByZero = errors.New("gf2: division by 0-like value")

	// ErrUnknownElement signifies that a name does not refer to One or Zero.
	ErrUnknownElement = errors.New("gf2: unknown element name")
)

// An Element is one of the two values of GF2. Exactly two instances exist
// for the lifetime of the process, One and Zero, so elements compare equal
// exactly when they are the same pointer.
type Element struct {
	value int
}

var (
	// One is the multiplicative identity of GF2.
	One = &Element{value: 1}

	// Zero is the additive identity of GF2.
	Zero = &Element{value: 0}
)

// An Option adjusts how numeric values are cast into GF2.
type Option func(*options)

type options struct {
	strict    bool
	threshold float64
}

// Strict controls the casting mode. In strict mode, the default, only values
// within the threshold of exactly 1 or 0 are accepted. In non-strict mode
// any value that is not 0-like counts as 1, with no bound on its magnitude.
func Strict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// Threshold overrides the equality threshold used to find 1-like and 0-like
// values. The default is config.Threshold.
func Threshold(threshold float64) Option {
	return func(o *options) { o.threshold = threshold }
}

func newOptions(opts []Option) options {
	o := options{strict: true, threshold: config.Threshold}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToBit casts a number as a possible Galois field value, 1 or 0.
//
// The imaginary part of the value must vanish within the threshold, and the
// real part must not be NaN. In strict mode the real part must additionally
// lie within the threshold of 1 or 0; otherwise any real part that is not
// 0-like is cast as 1.
func ToBit(value complex128, opts ...Option) (int, error) {
	o := newOptions(opts)

	if !(math.Abs(imag(value)) < o.threshold) {
		return 0, ErrNotOneOrZeroLike
	}

	re := real(value)
	if math.IsNaN(re) {
		return 0, ErrNotOneOrZeroLike
	}

	if o.strict {
		switch {
		case math.Abs(re-1) < o.threshold:
			return 1, nil
		case math.Abs(re) < o.threshold:
			return 0, nil
		default:
			return 0, ErrNotOneOrZeroLike
		}
	}

	if math.Abs(re) < o.threshold {
		return 0, nil
	}
	return 1, nil
}

// toComplex interprets the finite set of accepted input representations as a
// complex number. Everything else fails with ErrNotANumber.
func toComplex(value interface{}) (complex128, error) {
	switch v := value.(type) {
	case *Element:
		return complex(float64(v.value), 0), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return complex(float64(v), 0), nil
	case int8:
		return complex(float64(v), 0), nil
	case int16:
		return complex(float64(v), 0), nil
	case int32:
		return complex(float64(v), 0), nil
	case int64:
		return complex(float64(v), 0), nil
	case uint:
		return complex(float64(v), 0), nil
	case uint8:
		return complex(float64(v), 0), nil
	case uint16:
		return complex(float64(v), 0), nil
	case uint32:
		return complex(float64(v), 0), nil
	case uint64:
		return complex(float64(v), 0), nil
	case float32:
		return complex(float64(v), 0), nil
	case float64:
		return complex(v, 0), nil
	case complex64:
		return complex128(v), nil
	case complex128:
		return v, nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(v).Float64()
		return complex(f, 0), nil
	case *big.Rat:
		f, _ := v.Float64()
		return complex(f, 0), nil
	case string:
		c, err := strconv.ParseComplex(v, 128)
		if err != nil {
			return 0, ErrNotANumber
		}
		return c, nil
	default:
		return 0, ErrNotANumber
	}
}

// New resolves a value into one of the two singletons.
//
// Passing an existing Element returns it unchanged. Any other accepted
// numeric representation is reduced with ToBit first. Non-numeric input
// fails with ErrNotANumber; numeric input outside the legal value set fails
// with ErrNotOneOrZeroLike.
func New(value interface{}, opts ...Option) (*Element, error) {
	if e, ok := value.(*Element); ok {
		return e, nil
	}

	c, err := toComplex(value)
	if err != nil {
		return nil, err
	}

	bit, err := ToBit(c, opts...)
	if err != nil {
		return nil, err
	}
	return fromBit(bit), nil
}

// fromBit maps a reduced bit onto the corresponding singleton. Any other
// integer is an internal-invariant violation.
func fromBit(bit int) *Element {
	switch bit {
	case 1:
		return One
	case 0:
		return Zero
	default:
		panic("gf2: bit outside {0, 1}")
	}
}

// Parse resolves the text representation of an element, "one" or "zero",
// back into the identical singleton.
func Parse(name string) (*Element, error) {
	switch name {
	case "one":
		return One, nil
	case "zero":
		return Zero, nil
	default:
		return nil, ErrUnknownElement
	}
}

func (e *Element) String() string {
	if e.value == 1 {
		return "one"
	}
	return "zero"
}

// Int casts the element as an integer, exactly 1 or 0.
func (e *Element) Int() int { return e.value }

// Float casts the element as a floating-point number.
func (e *Element) Float() float64 { return float64(e.value) }

// Complex casts the element as a complex number.
func (e *Element) Complex() complex128 { return complex(float64(e.value), 0) }

// Bool casts the element as a boolean; One is true, Zero is false.
func (e *Element) Bool() bool { return e.value == 1 }

// Abs returns the absolute value, which is the element itself.
func (e *Element) Abs() *Element { return e }

// Trunc truncates the element to an integer.
func (e *Element) Trunc() int { return e.value }

// Floor rounds the element down to an integer.
func (e *Element) Floor() int { return e.value }

// Ceil rounds the element up to an integer.
func (e *Element) Ceil() int { return e.value }

// Round rounds the element to an integer; ndigits is irrelevant because the
// value is already exact.
func (e *Element) Round(_ int) int { return e.value }

// Real is the real part when the element is viewed as a complex number.
func (e *Element) Real() int { return e.value }

// Imag is the imaginary part, always 0.
func (e *Element) Imag() int { return 0 }

// Conjugate is the complex conjugate, which is the element itself.
func (e *Element) Conjugate() *Element { return e }

// Numerator is the smallest numerator when the element is expressed as a
// rational number, so either 1 or 0.
func (e *Element) Numerator() int { return e.value }

// Denominator is the smallest denominator when the element is expressed as
// a rational number, always 1.
func (e *Element) Denominator() int { return 1 }

// Pos returns the element unchanged.
func (e *Element) Pos() *Element { return e }

// Neg returns the element unchanged; every GF2 element is its own additive
// inverse.
func (e *Element) Neg() *Element { return e }

// Eq reports whether the other operand resolves to the same singleton. The
// operand is coerced with the default strict rules; an operand that cannot
// be coerced compares unequal instead of failing.
func (e *Element) Eq(other interface{}) bool {
	o, err := New(other)
	if err != nil {
		return false
	}
	return e == o
}

// Lt reports whether the element sorts strictly before the other operand.
// A non-numeric operand fails with ErrNotANumber and a numeric operand
// outside the legal value set fails with ErrNotOneOrZeroLike.
func (e *Element) Lt(other interface{}) (bool, error) {
	o, err := New(other)
	if err != nil {
		return false, err
	}
	return e.value < o.value, nil
}

// Le reports whether the element sorts before or equal to the other operand.
// It is derived from Eq and Lt.
func (e *Element) Le(other interface{}) (bool, error) {
	if e.Eq(other) {
		return true, nil
	}
	return e.Lt(other)
}

// compute coerces both operands and runs the integer operation. The result
// is re-wrapped as one of the two singletons.
func compute(a, b interface{}, op func(x, y int) (int, error)) (*Element, error) {
	x, err := New(a)
	if err != nil {
		return nil, err
	}
	y, err := New(b)
	if err != nil {
		return nil, err
	}

	bit, err := op(x.value, y.value)
	if err != nil {
		return nil, err
	}
	return fromBit(bit), nil
}

// Add returns a + b modulo 2. In GF2 addition and subtraction are the same
// operation, so Sub is an alias.
func Add(a, b interface{}) (*Element, error) {
	return compute(a, b, func(x, y int) (int, error) {
		return (x + y) % 2, nil
	})
}

// Sub returns a - b, which in GF2 equals a + b.
func Sub(a, b interface{}) (*Element, error) {
	return Add(a, b)
}

// Mul returns a * b.
func Mul(a, b interface{}) (*Element, error) {
	return compute(a, b, func(x, y int) (int, error) {
		return x * y, nil
	})
}

// Div returns a / b. True and floor division coincide because every result
// is exact. Dividing by the zero element fails with ErrDivisionByZero.
func Div(a, b interface{}) (*Element, error) {
	return compute(a, b, func(x, y int) (int, error) {
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	})
}

// Mod returns a % b. Taking the modulo by the zero element fails with
// ErrDivisionByZero.
func Mod(a, b interface{}) (*Element, error) {
	return compute(a, b, func(x, y int) (int, error) {
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x % y, nil
	})
}

// Pow returns a ** b; in particular, anything to the power of zero is One.
func Pow(a, b interface{}) (*Element, error) {
	return compute(a, b, func(x, y int) (int, error) {
		if y == 0 {
			return 1, nil
		}
		return x, nil
	})
}

// Add returns e + other; see the package-level Add.
func (e *Element) Add(other interface{}) (*Element, error) { return Add(e, other) }

// Sub returns e - other; see the package-level Sub.
func (e *Element) Sub(other interface{}) (*Element, error) { return Sub(e, other) }

// Mul returns e * other; see the package-level Mul.
func (e *Element) Mul(other interface{}) (*Element, error) { return Mul(e, other) }

// Div returns e / other; see the package-level Div.
func (e *Element) Div(other interface{}) (*Element, error) { return Div(e, other) }

// Mod returns e % other; see the package-level Mod.
func (e *Element) Mod(other interface{}) (*Element, error) { return Mod(e, other) }

// Pow returns e ** other; see the package-level Pow.
func (e *Element) Pow(other interface{}) (*Element, error) { return Pow(e, other) }

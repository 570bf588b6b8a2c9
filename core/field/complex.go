package field

import (
	"math/cmplx"
	"math/rand"
	"reflect"
	"strconv"
)

// ComplexField is the field over ℂ, the complex numbers, stored as
// complex128s. Like the real field, it filters out non-finite values after
// casting.
type ComplexField struct{}

var complexSingleton = &ComplexField{}

// NewComplexField returns the process-wide ComplexField instance.
func NewComplexField() *ComplexField { return complexSingleton }

// C is the field of complex numbers.
var C = NewComplexField()

// Name implements the Field interface.
func (f *ComplexField) Name() string { return "ℂ" }

func (f *ComplexField) String() string { return f.Name() }

// DType implements the Field interface; complex elements are complex128.
func (f *ComplexField) DType() reflect.Type {
	return reflect.TypeOf(complex128(0))
}

// Zero implements the Field interface.
func (f *ComplexField) Zero() interface{} { return complex(0, 0) }

// One implements the Field interface.
func (f *ComplexField) One() interface{} { return complex(1, 0) }

func (f *ComplexField) cast(value interface{}) (complex128, bool) {
	switch v := value.(type) {
	case complex128:
		return v, true
	case complex64:
		return complex128(v), true
	case string:
		x, err := strconv.ParseComplex(v, 128)
		if err != nil {
			return 0, false
		}
		return x, true
	default:
		// Everything the real field accepts is a complex number with a
		// vanishing imaginary part.
		x, ok := R.cast(value)
		if !ok {
			return 0, false
		}
		return complex(x, 0), true
	}
}

// Cast implements the Field interface.
func (f *ComplexField) Cast(value interface{}, opts ...Option) (interface{}, error) {
	z, ok := f.cast(value)
	if !ok || cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return nil, ErrNotAFieldElement
	}
	return z, nil
}

// Validate implements the Field interface.
func (f *ComplexField) Validate(value interface{}, opts ...Option) bool {
	_, err := f.Cast(value, opts...)
	return err == nil
}

// IsZero implements the Field interface; the value counts as zero when the
// magnitude of its difference to 0+0i stays below the threshold.
func (f *ComplexField) IsZero(value interface{}, opts ...Option) (bool, error) {
	o := newOptions(opts)
	v, err := f.Cast(value, opts...)
	if err != nil {
		return false, err
	}
	return cmplx.Abs(v.(complex128)) < o.threshold, nil
}

// IsOne implements the Field interface; the value counts as one when the
// magnitude of its difference to 1+0i stays below the threshold.
func (f *ComplexField) IsOne(value interface{}, opts ...Option) (bool, error) {
	o := newOptions(opts)
	v, err := f.Cast(value, opts...)
	if err != nil {
		return false, err
	}
	return cmplx.Abs(v.(complex128)-complex(1, 0)) < o.threshold, nil
}

// Random implements the Field interface. The real and imaginary parts are
// drawn independently, so the element comes from the rectangle with the two
// bounds as opposing corners; each part is rounded to NDigits decimal
// digits. Bounds may come in reversed order.
func (f *ComplexField) Random(opts ...Option) (interface{}, error) {
	o := newOptions(opts)
	lower, upper, err := bounds(f, o, opts)
	if err != nil {
		return nil, err
	}

	lo := lower.(complex128)
	hi := upper.(complex128)

	re := roundTo(real(lo)+rand.Float64()*(real(hi)-real(lo)), o.ndigits)
	im := roundTo(imag(lo)+rand.Float64()*(imag(hi)-imag(lo)), o.ndigits)

	return complex(re, im), nil
}

// Add implements the Field interface.
func (f *ComplexField) Add(a, b interface{}) (interface{}, error) {
	x, y, err := f.castPair(a, b)
	if err != nil {
		return nil, err
	}
	return x + y, nil
}

// Neg implements the Field interface.
func (f *ComplexField) Neg(a interface{}) (interface{}, error) {
	x, err := f.Cast(a)
	if err != nil {
		return nil, err
	}
	return -x.(complex128), nil
}

// Mul implements the Field interface.
func (f *ComplexField) Mul(a, b interface{}) (interface{}, error) {
	x, y, err := f.castPair(a, b)
	if err != nil {
		return nil, err
	}
	return x * y, nil
}

// Inv implements the Field interface.
func (f *ComplexField) Inv(a interface{}) (interface{}, error) {
	x, err := f.Cast(a)
	if err != nil {
		return nil, err
	}
	z := x.(complex128)
	if z == 0 {
		return nil, ErrDivisionByZero
	}
	return 1 / z, nil
}

func (f *ComplexField) castPair(a, b interface{}) (complex128, complex128, error) {
	x, err := f.Cast(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := f.Cast(b)
	if err != nil {
		return 0, 0, err
	}
	return x.(complex128), y.(complex128), nil
}

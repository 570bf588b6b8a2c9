package field

import (
	"math/rand"
	"reflect"

	"github.com/webartifex/lalib/core/gf2"
)

// GaloisField2 is the Galois field of two elements, backed by the gf2
// package's two singletons.
//
// Casting delegates to gf2.New, so the Strict and Threshold options control
// which numeric values count as 1-like or 0-like. Identity checks are exact:
// values near but not at 0 or 1 beyond the casting threshold already fail
// during the cast, not during IsZero or IsOne.
type GaloisField2 struct{}

var galoisSingleton = &GaloisField2{}

// NewGaloisField2 returns the process-wide GaloisField2 instance.
func NewGaloisField2() *GaloisField2 { return galoisSingleton }

// GF2 is the Galois field of two elements.
var GF2 = NewGaloisField2()

// Name implements the Field interface.
func (f *GaloisField2) Name() string { return "GF2" }

func (f *GaloisField2) String() string { return f.Name() }

// DType implements the Field interface; GF2 elements are *gf2.Element.
func (f *GaloisField2) DType() reflect.Type {
	return reflect.TypeOf((*gf2.Element)(nil))
}

// Zero implements the Field interface.
func (f *GaloisField2) Zero() interface{} { return gf2.Zero }

// One implements the Field interface.
func (f *GaloisField2) One() interface{} { return gf2.One }

// Cast implements the Field interface.
func (f *GaloisField2) Cast(value interface{}, opts ...Option) (interface{}, error) {
	o := newOptions(opts)
	e, err := gf2.New(value, gf2.Strict(o.strict), gf2.Threshold(o.threshold))
	if err != nil {
		return nil, ErrNotAFieldElement
	}
	return e, nil
}

// Validate implements the Field interface.
func (f *GaloisField2) Validate(value interface{}, opts ...Option) bool {
	_, err := f.Cast(value, opts...)
	return err == nil
}

// IsZero implements the Field interface; the two singletons make this an
// identity comparison.
func (f *GaloisField2) IsZero(value interface{}, opts ...Option) (bool, error) {
	v, err := f.Cast(value, opts...)
	if err != nil {
		return false, err
	}
	return v.(*gf2.Element) == gf2.Zero, nil
}

// IsOne implements the Field interface.
func (f *GaloisField2) IsOne(value interface{}, opts ...Option) (bool, error) {
	v, err := f.Cast(value, opts...)
	if err != nil {
		return false, err
	}
	return v.(*gf2.Element) == gf2.One, nil
}

// Random implements the Field interface. With only two values in the field,
// the draw picks either bound with equal probability; the default bounds
// are Zero and One, so the order of the bounds cannot matter.
func (f *GaloisField2) Random(opts ...Option) (interface{}, error) {
	o := newOptions(opts)
	lower, upper, err := bounds(f, o, opts)
	if err != nil {
		return nil, err
	}

	if rand.Intn(2) == 0 {
		return lower, nil
	}
	return upper, nil
}

// Add implements the Field interface.
func (f *GaloisField2) Add(a, b interface{}) (interface{}, error) {
	e, err := gf2.Add(a, b)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Neg implements the Field interface; every GF2 element is its own additive
// inverse.
func (f *GaloisField2) Neg(a interface{}) (interface{}, error) {
	v, err := f.Cast(a)
	if err != nil {
		return nil, err
	}
	return v.(*gf2.Element).Neg(), nil
}

// Mul implements the Field interface.
func (f *GaloisField2) Mul(a, b interface{}) (interface{}, error) {
	e, err := gf2.Mul(a, b)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Inv implements the Field interface.
func (f *GaloisField2) Inv(a interface{}) (interface{}, error) {
	v, err := f.Cast(a)
	if err != nil {
		return nil, err
	}
	if v.(*gf2.Element) == gf2.Zero {
		return nil, ErrDivisionByZero
	}
	// One is its own multiplicative inverse.
	return v, nil
}

package field

import (
	"math/big"
	"math/rand"
	"reflect"

	"github.com/webartifex/lalib/core/gf2"
)

// RationalField is the field over ℚ, the rational numbers, stored as exact
// ratios of integers.
//
// Although Cast accepts floats as possible field elements, do so only with
// care as floats are inherently imprecise. To mitigate this, Cast limits
// the denominator as configured with MaxDenominator, so floats with just a
// couple of digits resolve to the possibly desired element: 0.1 becomes
// 1/10 rather than 3602879701896397/36028797018963968. It is recommended to
// use strings like "0.1" or "1/10" instead.
type RationalField struct{}

var rationalSingleton = &RationalField{}

// NewRationalField returns the process-wide RationalField instance.
func NewRationalField() *RationalField { return rationalSingleton }

// Q is the field of rational numbers.
var Q = NewRationalField()

// Name implements the Field interface.
func (f *RationalField) Name() string { return "ℚ" }

func (f *RationalField) String() string { return f.Name() }

// DType implements the Field interface; rational elements are *big.Rat.
func (f *RationalField) DType() reflect.Type {
	return reflect.TypeOf((*big.Rat)(nil))
}

// Zero implements the Field interface. A fresh value is returned because
// *big.Rat is mutable.
func (f *RationalField) Zero() interface{} { return new(big.Rat) }

// One implements the Field interface.
func (f *RationalField) One() interface{} { return big.NewRat(1, 1) }

func (f *RationalField) cast(value interface{}, o options) (*big.Rat, bool) {
	r := new(big.Rat)
	switch v := value.(type) {
	case *big.Rat:
		r.Set(v)
	case *big.Int:
		r.SetInt(v)
	case *gf2.Element:
		r.SetInt64(int64(v.Int()))
	case bool:
		if v {
			r.SetInt64(1)
		}
	case int:
		r.SetInt64(int64(v))
	case int8:
		r.SetInt64(int64(v))
	case int16:
		r.SetInt64(int64(v))
	case int32:
		r.SetInt64(int64(v))
	case int64:
		r.SetInt64(v)
	case uint:
		r.SetUint64(uint64(v))
	case uint8:
		r.SetUint64(uint64(v))
	case uint16:
		r.SetUint64(uint64(v))
	case uint32:
		r.SetUint64(uint64(v))
	case uint64:
		r.SetUint64(v)
	case float32:
		if r.SetFloat64(float64(v)) == nil {
			return nil, false
		}
	case float64:
		if r.SetFloat64(v) == nil {
			return nil, false
		}
	case string:
		// big.Rat accepts both "1/10" and "0.1" notations.
		if _, ok := r.SetString(v); !ok {
			return nil, false
		}
	default:
		return nil, false
	}
	return limitDenominator(r, o.maxDenominator), true
}

// Cast implements the Field interface.
func (f *RationalField) Cast(value interface{}, opts ...Option) (interface{}, error) {
	r, ok := f.cast(value, newOptions(opts))
	if !ok {
		return nil, ErrNotAFieldElement
	}
	return r, nil
}

// Validate implements the Field interface.
func (f *RationalField) Validate(value interface{}, opts ...Option) bool {
	_, err := f.Cast(value, opts...)
	return err == nil
}

// IsZero implements the Field interface; ratios are exact, so this is plain
// equality.
func (f *RationalField) IsZero(value interface{}, opts ...Option) (bool, error) {
	v, err := f.Cast(value, opts...)
	if err != nil {
		return false, err
	}
	return v.(*big.Rat).Sign() == 0, nil
}

// IsOne implements the Field interface.
func (f *RationalField) IsOne(value interface{}, opts ...Option) (bool, error) {
	v, err := f.Cast(value, opts...)
	if err != nil {
		return false, err
	}
	return v.(*big.Rat).Cmp(big.NewRat(1, 1)) == 0, nil
}

// Random implements the Field interface. The draw is uniform over the
// interval spanned by the bounds, which may come in reversed order, and the
// result's denominator is limited like in Cast.
func (f *RationalField) Random(opts ...Option) (interface{}, error) {
	o := newOptions(opts)
	lower, upper, err := bounds(f, o, opts)
	if err != nil {
		return nil, err
	}

	lo, _ := lower.(*big.Rat).Float64()
	hi, _ := upper.(*big.Rat).Float64()

	// A negative span flips the direction of the draw, which still lands
	// between the two bounds.
	x := lo + rand.Float64()*(hi-lo)

	return limitDenominator(new(big.Rat).SetFloat64(x), o.maxDenominator), nil
}

// Add implements the Field interface.
func (f *RationalField) Add(a, b interface{}) (interface{}, error) {
	ra, rb, err := f.castPair(a, b)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Add(ra, rb), nil
}

// Neg implements the Field interface.
func (f *RationalField) Neg(a interface{}) (interface{}, error) {
	ra, err := f.Cast(a)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Neg(ra.(*big.Rat)), nil
}

// Mul implements the Field interface.
func (f *RationalField) Mul(a, b interface{}) (interface{}, error) {
	ra, rb, err := f.castPair(a, b)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Mul(ra, rb), nil
}

// Inv implements the Field interface.
func (f *RationalField) Inv(a interface{}) (interface{}, error) {
	ra, err := f.Cast(a)
	if err != nil {
		return nil, err
	}
	r := ra.(*big.Rat)
	if r.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Inv(r), nil
}

func (f *RationalField) castPair(a, b interface{}) (*big.Rat, *big.Rat, error) {
	ra, err := f.Cast(a)
	if err != nil {
		return nil, nil, err
	}
	rb, err := f.Cast(b)
	if err != nil {
		return nil, nil, err
	}
	return ra.(*big.Rat), rb.(*big.Rat), nil
}

// limitDenominator returns the closest rational to r whose denominator does
// not exceed max, using the continued-fraction bounds of r. Fractions whose
// denominator is already small enough pass through unchanged, so exact
// input is never disturbed.
func limitDenominator(r *big.Rat, max int64) *big.Rat {
	maxDen := big.NewInt(max)
	if r.Denom().Cmp(maxDen) <= 0 {
		return r
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())

	for d.Sign() != 0 {
		a := new(big.Int).Div(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(maxDen) > 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, new(big.Int).Add(p0, new(big.Int).Mul(a, p1)), q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}

	k := new(big.Int).Div(new(big.Int).Sub(maxDen, q0), q1)
	first := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	second := new(big.Rat).SetFrac(p1, q1)

	dFirst := new(big.Rat).Sub(first, r)
	dFirst.Abs(dFirst)
	dSecond := new(big.Rat).Sub(second, r)
	dSecond.Abs(dSecond)

	if dSecond.Cmp(dFirst) <= 0 {
		return second
	}
	return first
}

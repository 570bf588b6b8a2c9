package field

import (
	"math"
	"math/big"
	"math/rand"
	"reflect"
	"strconv"

	"github.com/webartifex/lalib/core/gf2"
)

// RealField is the field over ℝ, the real numbers, stored as float64s.
// Non-finite values are castable in principle but rejected by the post-cast
// filter, so NaN and ±Inf are never field elements.
type RealField struct{}

var realSingleton = &RealField{}

// NewRealField returns the process-wide RealField instance.
func NewRealField() *RealField { return realSingleton }

// R is the field of real numbers.
var R = NewRealField()

// Name implements the Field interface.
func (f *RealField) Name() string { return "ℝ" }

func (f *RealField) String() string { return f.Name() }

// DType implements the Field interface; real elements are float64.
func (f *RealField) DType() reflect.Type {
	return reflect.TypeOf(float64(0))
}

// Zero implements the Field interface.
func (f *RealField) Zero() interface{} { return 0.0 }

// One implements the Field interface.
func (f *RealField) One() interface{} { return 1.0 }

func (f *RealField) cast(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case *big.Int:
		x, _ := new(big.Float).SetInt(v).Float64()
		return x, true
	case *big.Rat:
		x, _ := v.Float64()
		return x, true
	case *gf2.Element:
		return v.Float(), true
	case string:
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return x, true
	default:
		return 0, false
	}
}

// Cast implements the Field interface.
func (f *RealField) Cast(value interface{}, opts ...Option) (interface{}, error) {
	x, ok := f.cast(value)
	if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, ErrNotAFieldElement
	}
	return x, nil
}

// Validate implements the Field interface.
func (f *RealField) Validate(value interface{}, opts ...Option) bool {
	_, err := f.Cast(value, opts...)
	return err == nil
}

// IsZero implements the Field interface; the value counts as zero when its
// absolute difference to 0.0 stays below the threshold.
func (f *RealField) IsZero(value interface{}, opts ...Option) (bool, error) {
	o := newOptions(opts)
	v, err := f.Cast(value, opts...)
	if err != nil {
		return false, err
	}
	return math.Abs(v.(float64)) < o.threshold, nil
}

// IsOne implements the Field interface; the value counts as one when its
// absolute difference to 1.0 stays below the threshold.
func (f *RealField) IsOne(value interface{}, opts ...Option) (bool, error) {
	o := newOptions(opts)
	v, err := f.Cast(value, opts...)
	if err != nil {
		return false, err
	}
	return math.Abs(v.(float64)-1) < o.threshold, nil
}

// Random implements the Field interface. The draw is uniform between the
// bounds, which may come in reversed order, and rounded to NDigits decimal
// digits.
func (f *RealField) Random(opts ...Option) (interface{}, error) {
	o := newOptions(opts)
	lower, upper, err := bounds(f, o, opts)
	if err != nil {
		return nil, err
	}

	lo := lower.(float64)
	hi := upper.(float64)
	x := lo + rand.Float64()*(hi-lo)

	return roundTo(x, o.ndigits), nil
}

// Add implements the Field interface.
func (f *RealField) Add(a, b interface{}) (interface{}, error) {
	x, y, err := f.castPair(a, b)
	if err != nil {
		return nil, err
	}
	return x + y, nil
}

// Neg implements the Field interface.
func (f *RealField) Neg(a interface{}) (interface{}, error) {
	x, err := f.Cast(a)
	if err != nil {
		return nil, err
	}
	return -x.(float64), nil
}

// Mul implements the Field interface.
func (f *RealField) Mul(a, b interface{}) (interface{}, error) {
	x, y, err := f.castPair(a, b)
	if err != nil {
		return nil, err
	}
	return x * y, nil
}

// Inv implements the Field interface.
func (f *RealField) Inv(a interface{}) (interface{}, error) {
	x, err := f.Cast(a)
	if err != nil {
		return nil, err
	}
	if x.(float64) == 0 {
		return nil, ErrDivisionByZero
	}
	return 1 / x.(float64), nil
}

func (f *RealField) castPair(a, b interface{}) (float64, float64, error) {
	x, err := f.Cast(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := f.Cast(b)
	if err != nil {
		return 0, 0, err
	}
	return x.(float64), y.(float64), nil
}

// roundTo rounds x to ndigits decimal digits. Above 2^52 the scaled value
// has no fractional digits left and may overflow, so x passes through
// unchanged.
func roundTo(x float64, ndigits int) float64 {
	shift := math.Pow(10, float64(ndigits))
	scaled := x * shift
	if math.Abs(scaled) >= 1<<52 {
		return x
	}
	return math.Round(scaled) / shift
}

// Package poly implements polynomials with coefficients in any field.
package poly

import (
	"errors"

	"github.com/webartifex/lalib/core/field"
)

// ErrNoCoefficients signifies that a polynomial was given an empty
// coefficient list.
var ErrNoCoefficients = errors.New("poly: must provide at least one coefficient")

// A Polynomial over a field, stored by its coefficients in ascending order
// of degree.
type Polynomial struct {
	field        field.Field
	coefficients []interface{}
}

// New creates a polynomial over the given field. Every coefficient is cast
// into the field first; a coefficient that is not a field element fails
// with the field's cast error.
func New(f field.Field, coefficients []interface{}, opts ...field.Option) (Polynomial, error) {
	if len(coefficients) == 0 {
		return Polynomial{}, ErrNoCoefficients
	}

	cast := make([]interface{}, len(coefficients))
	for i, c := range coefficients {
		element, err := f.Cast(c, opts...)
		if err != nil {
			return Polynomial{}, err
		}
		cast[i] = element
	}
	return Polynomial{field: f, coefficients: cast}, nil
}

// NewRandom creates a polynomial over the given field with random
// coefficients drawn via the field's Random. The coefficient of the
// x^degree term is resampled until it is non-zero, so the polynomial always
// has the requested degree; only for degree 0 may the zero polynomial come
// out.
func NewRandom(f field.Field, degree uint, opts ...field.Option) (Polynomial, error) {
	coefficients := make([]interface{}, degree+1)
	for i := range coefficients {
		c, err := f.Random(opts...)
		if err != nil {
			return Polynomial{}, err
		}
		coefficients[i] = c
	}

	for degree > 0 {
		zero, err := f.IsZero(coefficients[degree])
		if err != nil {
			return Polynomial{}, err
		}
		if !zero {
			break
		}
		c, err := f.Random(opts...)
		if err != nil {
			return Polynomial{}, err
		}
		coefficients[degree] = c
	}

	return Polynomial{field: f, coefficients: coefficients}, nil
}

// Field returns the field the coefficients live in.
func (p Polynomial) Field() field.Field { return p.field }

// Coefficients returns the coefficients of the polynomial, constant term
// first.
func (p Polynomial) Coefficients() []interface{} {
	coefficients := make([]interface{}, len(p.coefficients))
	copy(coefficients, p.coefficients)
	return coefficients
}

// Degree returns the degree of the polynomial, ignoring trailing zero
// coefficients. The zero polynomial is considered to have degree 0.
func (p Polynomial) Degree() uint {
	degree := uint(len(p.coefficients)) - 1
	for degree != 0 {
		zero, err := p.field.IsZero(p.coefficients[degree])
		if err != nil {
			// Coefficients were cast on the way in.
			panic("poly: coefficient is not a field element")
		}
		if !zero {
			break
		}
		degree--
	}
	return degree
}

// Evaluate computes the value of the polynomial at the given point using
// Horner's method. The point must be castable into the field.
func (p Polynomial) Evaluate(x interface{}) (interface{}, error) {
	point, err := p.field.Cast(x)
	if err != nil {
		return nil, err
	}

	degree := p.Degree()
	accum := p.coefficients[degree]
	for i := int(degree) - 1; i >= 0; i-- {
		accum, err = p.field.Mul(accum, point)
		if err != nil {
			return nil, err
		}
		accum, err = p.field.Add(accum, p.coefficients[i])
		if err != nil {
			return nil, err
		}
	}
	return accum, nil
}

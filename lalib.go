// Package lalib re-exports the public surface of the core packages: the
// four numeric fields, the two GF2 singletons, and the Domain type used to
// index discrete vectors and matrices.
package lalib

import (
	"github.com/webartifex/lalib/core/domain"
	"github.com/webartifex/lalib/core/field"
	"github.com/webartifex/lalib/core/gf2"
)

type (
	Field = field.Field

	Option = field.Option

	Domain = domain.Domain

	GF2Element = gf2.Element
)

var (
	// Q, R, C, and GF2 are the four field singletons.
	Q   = field.Q
	R   = field.R
	C   = field.C
	GF2 = field.GF2

	// One and Zero are the two GF2 element singletons.
	One  = gf2.One
	Zero = gf2.Zero

	NewDomain = domain.New

	LookupField = field.Lookup
)

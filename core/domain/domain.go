// Package domain models the index sets of discrete vectors and matrices.
//
// In conventional math such domains are implicitly the strictly positive
// natural numbers; here counting starts at 0. A domain equal to
// {0, 1, ..., n-1} for some n is called canonical and can be built from the
// integer n directly. Labels do not need to be numbers: any comparable
// value works, so letters, words, or tuples of numbers are all fine. A
// string is treated as a sequence of characters, not as a single label.
package domain

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrInvalidLabels signifies that the input is neither a collection of
	// hashable labels nor an integer.
	ErrInvalidLabels = errors.New("domain: must provide hashable labels or a positive integer")

	// ErrEmptyDomain signifies that the input collection has no elements.
	ErrEmptyDomain = errors.New("domain: must provide at least one label")

	// ErrNotPositive signifies an integer input smaller than 1.
	ErrNotPositive = errors.New("domain: must provide a positive integer")
)

// A Domain is an immutable set of at least one label. Integer labels of
// canonical domains are stored as int regardless of which integer kind the
// domain was constructed from.
type Domain struct {
	labels map[interface{}]struct{}

	canonicalOnce sync.Once
	canonical     bool
}

// New creates a domain from labels given as a slice or array (the
// deduplicated elements), a map (its keys), a string (its deduplicated
// characters, each a one-character label), or a positive integer n (the
// canonical labels 0 to n-1). Passing an existing *Domain returns it
// unchanged.
func New(labels interface{}) (*Domain, error) {
	if d, ok := labels.(*Domain); ok {
		return d, nil
	}

	if s, ok := labels.(string); ok {
		set := make(map[interface{}]struct{}, len(s))
		for _, r := range s {
			set[string(r)] = struct{}{}
		}
		if len(set) == 0 {
			return nil, ErrEmptyDomain
		}
		return &Domain{labels: set}, nil
	}

	if n, ok := toInt(labels); ok {
		if n < 1 {
			return nil, ErrNotPositive
		}
		set := make(map[interface{}]struct{}, n)
		for i := 0; i < n; i++ {
			set[i] = struct{}{}
		}
		return &Domain{labels: set}, nil
	}

	rv := reflect.ValueOf(labels)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		set := make(map[interface{}]struct{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el := rv.Index(i)
			if !el.Comparable() {
				return nil, ErrInvalidLabels
			}
			set[el.Interface()] = struct{}{}
		}
		if len(set) == 0 {
			return nil, ErrEmptyDomain
		}
		return &Domain{labels: set}, nil
	case reflect.Map:
		set := make(map[interface{}]struct{}, rv.Len())
		for _, key := range rv.MapKeys() {
			set[key.Interface()] = struct{}{}
		}
		if len(set) == 0 {
			return nil, ErrEmptyDomain
		}
		return &Domain{labels: set}, nil
	default:
		return nil, ErrInvalidLabels
	}
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	default:
		return 0, false
	}
}

// Len returns the number of labels.
func (d *Domain) Len() int { return len(d.labels) }

// Contains reports whether the label is part of the domain.
func (d *Domain) Contains(label interface{}) bool {
	if label == nil || !reflect.ValueOf(label).Comparable() {
		return false
	}
	_, ok := d.labels[label]
	return ok
}

// Labels returns a copy of the labels in a deterministic order.
func (d *Domain) Labels() []interface{} {
	labels := make([]interface{}, 0, len(d.labels))
	for label := range d.labels {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return fmt.Sprint(labels[i]) < fmt.Sprint(labels[j])
	})
	return labels
}

// Equal reports whether two domains hold the same labels.
func (d *Domain) Equal(other *Domain) bool {
	if d == other {
		return true
	}
	if other == nil || len(d.labels) != len(other.labels) {
		return false
	}
	for label := range d.labels {
		if _, ok := other.labels[label]; !ok {
			return false
		}
	}
	return true
}

// IsCanonical reports whether the labels equal {0, 1, ..., n-1} for some n.
// The answer is computed once and memoized; racing reads recompute the same
// value, so no locking is needed beyond the once.
func (d *Domain) IsCanonical() bool {
	d.canonicalOnce.Do(func() {
		for i := 0; i < len(d.labels); i++ {
			if _, ok := d.labels[i]; !ok {
				return
			}
		}
		d.canonical = true
	})
	return d.canonical
}

// String renders canonical domains as Domain(n) and all others with their
// labels listed.
func (d *Domain) String() string {
	if d.IsCanonical() {
		return fmt.Sprintf("Domain(%d)", len(d.labels))
	}

	parts := make([]string, 0, len(d.labels))
	for _, label := range d.Labels() {
		parts = append(parts, fmt.Sprintf("%v", label))
	}
	return fmt.Sprintf("Domain({%s})", strings.Join(parts, ", "))
}

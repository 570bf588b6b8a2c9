package field

import "sync"

var (
	registryOnce sync.Once
	registry     map[string]Field
)

// buildRegistry collects the four field singletons under their mathematical
// symbols. The map is built once and never mutated afterwards, so lookups
// are safe without locking.
func buildRegistry() {
	registry = make(map[string]Field, 4)
	for _, f := range []Field{Q, R, C, GF2} {
		if _, dup := registry[f.Name()]; dup {
			panic("field: singleton registry corrupted")
		}
		registry[f.Name()] = f
	}
}

// Lookup resolves a field's text representation, e.g. "ℚ" or "GF2", back to
// the singleton it was produced by.
func Lookup(name string) (Field, error) {
	registryOnce.Do(buildRegistry)

	f, ok := registry[name]
	if !ok {
		return nil, ErrUnknownField
	}
	return f, nil
}

// All returns the four fields in a stable order.
func All() []Field {
	return []Field{Q, R, C, GF2}
}

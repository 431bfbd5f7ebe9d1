package monitor

import "cmp"

// Peak is a high-water mark. It starts at the zero value and never decreases.
type Peak[T cmp.Ordered] struct {
	value T
}

// Observe folds v into the mark and returns the current peak.
func (p *Peak[T]) Observe(v T) T {
	if v > p.value {
		p.value = v
	}
	return p.value
}

// Value returns the current peak.
func (p *Peak[T]) Value() T {
	return p.value
}

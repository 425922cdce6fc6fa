// Package options provides the ordered option collection shared by every
// environment in the document tree. Options of the same kind are mutually
// exclusive: inserting a new one replaces the previous occurrence. Custom
// pass-through options are exempt and accumulate in insertion order.
package options

import "fmt"

// KindCustom marks free-form options that are written verbatim into the
// generated markup. They are never deduplicated, even when their text is
// identical.
const KindCustom = "custom"

// Option is a single presentation setting. Kind reports the identity used to
// detect mutual exclusivity; String reports the option's markup spelling.
type Option interface {
	fmt.Stringer
	Kind() string
}

// Set is an ordered collection of options enforcing at most one option per
// non-custom kind. The zero value is an empty set ready for use.
type Set[T Option] struct {
	items []T
}

// Add inserts an option. If a non-custom option of the same kind already
// exists it is removed first, so the surviving occurrence always sits at the
// most recent insertion position.
func (s *Set[T]) Add(opt T) {
	if opt.Kind() != KindCustom {
		for i, existing := range s.items {
			if existing.Kind() == opt.Kind() {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
	}
	s.items = append(s.items, opt)
}

// All returns the options in render order. The slice is owned by the set and
// must not be mutated by the caller.
func (s *Set[T]) All() []T {
	return s.items
}

// Len reports the number of options in the set.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the set holds no options.
func (s *Set[T]) Empty() bool {
	return len(s.items) == 0
}

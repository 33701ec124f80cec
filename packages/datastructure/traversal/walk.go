package traversal

import (
	"iter"
)

// Step advances a walk by one element. It returns false once the chain is exhausted.
type Step[T any] func() (element *T, ok bool)

// Follow returns a Step that walks a chain of links from first until it reaches end. The resolve function returns the
// element stored behind a link together with the link to its successor.
func Follow[Link comparable, T any](first, end Link, resolve func(link Link) (element *T, next Link)) Step[T] {
	current := first

	return func() (element *T, ok bool) {
		if current == end {
			return nil, false
		}

		element, current = resolve(current)

		return element, true
	}
}

// walk drives a Step in a given Mode. It is fused: after the Step reported the end of the chain it is never called
// again.
type walk[T any] struct {
	mode      Mode
	step      Step[T]
	exhausted bool
}

func newWalk[T any](mode Mode, step Step[T]) walk[T] {
	return walk[T]{mode: mode, step: step, exhausted: step == nil}
}

func (w *walk[T]) next() (element *T, ok bool) {
	if w.exhausted {
		return nil, false
	}

	if element, ok = w.step(); !ok {
		w.exhausted = true
		w.step = nil
	}

	return element, ok
}

// seq returns a sequence that continues the walk from its current position.
func (w *walk[T]) seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for element, ok := w.next(); ok; element, ok = w.next() {
			if !yield(element) {
				return
			}
		}
	}
}

func (w *walk[T]) forEach(callback func(element *T) error) error {
	for element, ok := w.next(); ok; element, ok = w.next() {
		if err := callback(element); err != nil {
			return err
		}
	}

	return nil
}

// Collect drains the sequence into a slice.
func Collect[T any](seq iter.Seq[T]) (elements []T) {
	elements = make([]T, 0)
	for element := range seq {
		elements = append(elements, element)
	}

	return elements
}

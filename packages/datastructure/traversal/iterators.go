package traversal

import (
	"iter"
)

// region Iter /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Iter is a lazy, finite iterator that yields copies of the elements of a container.
type Iter[T any] struct {
	walk walk[T]
}

// NewIter creates an Iter that is driven by the given Step.
func NewIter[T any](step Step[T]) *Iter[T] {
	return &Iter[T]{walk: newWalk[T](Shared, step)}
}

// Next returns the next element or false if the iterator is exhausted.
func (i *Iter[T]) Next() (element T, ok bool) {
	pointer, ok := i.walk.next()
	if !ok {
		return element, false
	}

	return *pointer, true
}

// All returns a sequence over the remaining elements.
func (i *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pointer := range i.walk.seq() {
			if !yield(*pointer) {
				return
			}
		}
	}
}

// ForEach calls the callback for every remaining element and stops at the first error.
func (i *Iter[T]) ForEach(callback func(element T) error) error {
	return i.walk.forEach(func(element *T) error {
		return callback(*element)
	})
}

// Mode returns the access Mode of the iterator.
func (i *Iter[T]) Mode() Mode {
	return i.walk.mode
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region IterMut //////////////////////////////////////////////////////////////////////////////////////////////////////

// IterMut is a lazy, finite iterator that yields pointers to the stored elements of a container. Writing through a
// pointer modifies the element in place; the structure of the container stays untouched.
type IterMut[T any] struct {
	walk walk[T]
}

// NewIterMut creates an IterMut that is driven by the given Step.
func NewIterMut[T any](step Step[T]) *IterMut[T] {
	return &IterMut[T]{walk: newWalk[T](Exclusive, step)}
}

// Next returns a pointer to the next element or false if the iterator is exhausted.
func (i *IterMut[T]) Next() (element *T, ok bool) {
	return i.walk.next()
}

// All returns a sequence over the remaining elements.
func (i *IterMut[T]) All() iter.Seq[*T] {
	return i.walk.seq()
}

// ForEach calls the callback for every remaining element and stops at the first error.
func (i *IterMut[T]) ForEach(callback func(element *T) error) error {
	return i.walk.forEach(callback)
}

// Mode returns the access Mode of the iterator.
func (i *IterMut[T]) Mode() Mode {
	return i.walk.mode
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region IntoIter /////////////////////////////////////////////////////////////////////////////////////////////////////

// IntoIter is a lazy, finite iterator that moves the elements out of a container. It is single-pass: once an element
// was yielded it is gone, and ranging over All twice continues where the previous range stopped.
type IntoIter[T any] struct {
	walk walk[T]
}

// NewIntoIter creates an IntoIter that pops its elements with the given function.
func NewIntoIter[T any](pop func() (T, bool)) *IntoIter[T] {
	return &IntoIter[T]{walk: newWalk[T](Consuming, func() (*T, bool) {
		element, ok := pop()
		if !ok {
			return nil, false
		}

		return &element, true
	})}
}

// Next moves the next element out of the container or returns false if it is empty.
func (i *IntoIter[T]) Next() (element T, ok bool) {
	pointer, ok := i.walk.next()
	if !ok {
		return element, false
	}

	return *pointer, true
}

// All returns a sequence that drains the remaining elements.
func (i *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pointer := range i.walk.seq() {
			if !yield(*pointer) {
				return
			}
		}
	}
}

// ForEach drains the remaining elements into the callback and stops at the first error.
func (i *IntoIter[T]) ForEach(callback func(element T) error) error {
	return i.walk.forEach(func(element *T) error {
		return callback(*element)
	})
}

// Mode returns the access Mode of the iterator.
func (i *IntoIter[T]) Mode() Mode {
	return i.walk.mode
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

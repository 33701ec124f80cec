package arena

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// region Arena ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Arena is a slot map that owns its values and hands out generation-checked Indexes to them. Freed slots are recycled,
// but an Index issued for a previous occupant of a slot never resolves again.
type Arena[T any] struct {
	slots    []slot[T]
	freeHead uint32
	size     int

	optsCapacity int
}

// New creates a new, empty Arena.
func New[T any](opts ...options.Option[Arena[T]]) *Arena[T] {
	return options.Apply(new(Arena[T]), opts, func(a *Arena[T]) {
		if a.optsCapacity > 0 {
			a.slots = make([]slot[T], 0, a.optsCapacity)
		}
	})
}

// Insert moves the value into the Arena and returns the Index that addresses it.
func (a *Arena[T]) Insert(value T) Index {
	if a.freeHead == 0 {
		a.slots = append(a.slots, slot[T]{generation: 1})
		a.freeHead = uint32(len(a.slots))
	}

	position := a.freeHead - 1
	s := &a.slots[position]
	a.freeHead = s.nextFree

	s.value = value
	s.occupied = true
	s.nextFree = 0
	a.size++

	return Index{slot: position, generation: s.generation}
}

// Remove moves the value out of the Arena and frees its slot.
func (a *Arena[T]) Remove(index Index) (value T, err error) {
	s, err := a.slot(index)
	if err != nil {
		return value, errors.Wrapf(err, "failed to remove %s", index)
	}

	value = s.value
	a.release(index.slot, s)

	return value, nil
}

// Get returns a pointer to the value addressed by the Index. The pointer must not be retained across calls to Insert,
// which may grow the slot storage.
func (a *Arena[T]) Get(index Index) (value *T, err error) {
	s, err := a.slot(index)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", index)
	}

	return &s.value, nil
}

// MustGet returns a pointer to the value addressed by the Index and panics if the Index does not resolve.
func (a *Arena[T]) MustGet(index Index) *T {
	value, err := a.Get(index)
	if err != nil {
		panic(err)
	}

	return value
}

// MustRemove removes the value addressed by the Index and panics if the Index does not resolve.
func (a *Arena[T]) MustRemove(index Index) T {
	value, err := a.Remove(index)
	if err != nil {
		panic(err)
	}

	return value
}

// Contains returns true if the Index addresses a live value.
func (a *Arena[T]) Contains(index Index) bool {
	_, err := a.slot(index)

	return err == nil
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.size
}

// Cap returns the number of slots that were allocated so far.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Clear drops all values. Indexes issued before the call never resolve afterwards.
func (a *Arena[T]) Clear() {
	var zero T

	a.freeHead = 0
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.occupied {
			s.value = zero
			s.occupied = false
			s.bumpGeneration()
		}

		s.nextFree = a.freeHead
		a.freeHead = uint32(i) + 1
	}

	a.size = 0
}

// String returns a human-readable version of the Arena.
func (a *Arena[T]) String() string {
	return stringify.Struct("Arena",
		stringify.NewStructField("len", a.size),
		stringify.NewStructField("cap", len(a.slots)),
	)
}

func (a *Arena[T]) slot(index Index) (*slot[T], error) {
	if index.IsNil() || int(index.slot) >= len(a.slots) {
		return nil, ErrInvalidIndex
	}

	s := &a.slots[index.slot]
	if !s.occupied || s.generation != index.generation {
		return nil, ErrStaleIndex
	}

	return s, nil
}

func (a *Arena[T]) release(position uint32, s *slot[T]) {
	var zero T

	s.value = zero
	s.occupied = false
	s.bumpGeneration()
	s.nextFree = a.freeHead
	a.freeHead = position + 1
	a.size--
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region slot /////////////////////////////////////////////////////////////////////////////////////////////////////////

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool

	// nextFree is the position+1 of the next free slot (0 terminates the free list).
	nextFree uint32
}

func (s *slot[T]) bumpGeneration() {
	if s.generation++; s.generation == 0 {
		s.generation = 1
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Options //////////////////////////////////////////////////////////////////////////////////////////////////////

// WithCapacity preallocates storage for the given number of values.
func WithCapacity[T any](capacity int) options.Option[Arena[T]] {
	return func(a *Arena[T]) {
		a.optsCapacity = capacity
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

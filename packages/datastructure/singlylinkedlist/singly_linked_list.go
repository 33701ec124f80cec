// Package singlylinkedlist implements a singly-linked list that supports constant time insertion and removal at its
// front. The nodes live in an arena owned by the list; the links between them are generation-checked indexes.
package singlylinkedlist

import (
	"iter"
	"strconv"

	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/linkedlists/packages/datastructure/arena"
	"github.com/iotaledger/linkedlists/packages/datastructure/traversal"
)

// region SinglyLinkedList /////////////////////////////////////////////////////////////////////////////////////////////

// SinglyLinkedList is a list with constant time access to its front. The zero value is an empty list that is ready to
// use. It is not safe for concurrent use.
//
// Removing from an empty list is not an error: RemoveFront and Front report the absence of an element with false.
type SinglyLinkedList[T any] struct {
	nodes *arena.Arena[node[T]]
	head  arena.Index
	size  int

	optsCapacity int
}

// New creates a new, empty SinglyLinkedList.
func New[T any](opts ...options.Option[SinglyLinkedList[T]]) *SinglyLinkedList[T] {
	return options.Apply(new(SinglyLinkedList[T]), opts, (*SinglyLinkedList[T]).initNodes)
}

// FromSlice creates a SinglyLinkedList whose front to back order matches the order of the given elements.
func FromSlice[T any](elements []T, opts ...options.Option[SinglyLinkedList[T]]) *SinglyLinkedList[T] {
	l := New(opts...)
	for i := len(elements) - 1; i >= 0; i-- {
		l.AddFront(elements[i])
	}

	return l
}

// AddFront inserts the element at the front of the list.
func (l *SinglyLinkedList[T]) AddFront(element T) {
	if l.nodes == nil {
		l.initNodes()
	}

	l.head = l.nodes.Insert(node[T]{element: element, next: l.head})
	l.size++
}

// RemoveFront removes the front element and returns it. It returns false if the list is empty.
func (l *SinglyLinkedList[T]) RemoveFront() (element T, exists bool) {
	if l.head.IsNil() {
		return element, false
	}

	removed := l.nodes.MustRemove(l.head)
	l.head = removed.next
	l.size--

	return removed.element, true
}

// Front returns the front element without removing it.
func (l *SinglyLinkedList[T]) Front() (element T, exists bool) {
	if l.head.IsNil() {
		return element, false
	}

	return l.nodes.MustGet(l.head).element, true
}

// FrontMut returns a pointer to the front element, which allows to modify it in place.
func (l *SinglyLinkedList[T]) FrontMut() (element *T, exists bool) {
	if l.head.IsNil() {
		return nil, false
	}

	return &l.nodes.MustGet(l.head).element, true
}

// Len returns the number of elements in the list.
func (l *SinglyLinkedList[T]) Len() int {
	return l.size
}

// IsEmpty returns true if the list contains no elements.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.head.IsNil()
}

// Clear removes all elements.
func (l *SinglyLinkedList[T]) Clear() {
	if l.nodes != nil {
		l.nodes.Clear()
	}
	l.head = arena.Nil
	l.size = 0
}

// ContainsFunc returns true if the predicate matches any element.
func (l *SinglyLinkedList[T]) ContainsFunc(predicate func(element T) bool) bool {
	for element := range l.All() {
		if predicate(element) {
			return true
		}
	}

	return false
}

// Iter returns an iterator over the elements, from front to back.
func (l *SinglyLinkedList[T]) Iter() *traversal.Iter[T] {
	return traversal.NewIter(l.follow())
}

// IterMut returns an iterator over pointers to the elements, from front to back.
func (l *SinglyLinkedList[T]) IterMut() *traversal.IterMut[T] {
	return traversal.NewIterMut(l.follow())
}

// IntoIter returns an iterator that removes the elements from the front of the list.
func (l *SinglyLinkedList[T]) IntoIter() *traversal.IntoIter[T] {
	return traversal.NewIntoIter(l.RemoveFront)
}

// All returns a sequence over the elements, from front to back. Every range starts at the front.
func (l *SinglyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.Iter().All()(yield)
	}
}

// String returns a human-readable version of the SinglyLinkedList.
func (l *SinglyLinkedList[T]) String() string {
	builder := stringify.NewStructBuilder("SinglyLinkedList")
	builder.AddField(stringify.NewStructField("len", l.size))

	position := 0
	for element := range l.All() {
		builder.AddField(stringify.NewStructField(strconv.Itoa(position), element))
		position++
	}

	return builder.String()
}

func (l *SinglyLinkedList[T]) initNodes() {
	l.nodes = arena.New(arena.WithCapacity[node[T]](l.optsCapacity))
}

func (l *SinglyLinkedList[T]) follow() traversal.Step[T] {
	return traversal.Follow(l.head, arena.Nil, func(index arena.Index) (*T, arena.Index) {
		n := l.nodes.MustGet(index)

		return &n.element, n.next
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region node /////////////////////////////////////////////////////////////////////////////////////////////////////////

// node owns its element. The link to its successor does not own anything, the arena of the list does.
type node[T any] struct {
	element T
	next    arena.Index
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Options //////////////////////////////////////////////////////////////////////////////////////////////////////

// WithCapacity preallocates storage for the given number of elements.
func WithCapacity[T any](capacity int) options.Option[SinglyLinkedList[T]] {
	return func(l *SinglyLinkedList[T]) {
		l.optsCapacity = capacity
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

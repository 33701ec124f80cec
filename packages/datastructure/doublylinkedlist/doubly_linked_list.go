// Package doublylinkedlist implements a doubly-linked list with constant time insertion and removal at both ends and
// constant time concatenation.
//
// Entries are stored in arenas and linked by generation-checked indexes instead of pointers, so a link that outlived
// its entry can never be followed.
package doublylinkedlist

import (
	"iter"
	"strconv"

	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/linkedlists/packages/datastructure/arena"
	"github.com/iotaledger/linkedlists/packages/datastructure/traversal"
)

// region DoublyLinkedList /////////////////////////////////////////////////////////////////////////////////////////////

// DoublyLinkedList is a list with constant time access to both of its ends. The zero value is an empty list that is
// ready to use. It is not safe for concurrent use.
//
// Removing from an empty list is not an error: PopFront, PopBack, Front and Back report the absence of an element with
// false.
type DoublyLinkedList[T any] struct {
	nodes *arena.Arena[entry[T]]
	head  link[T]
	tail  link[T]
	size  int

	optsCapacity int
}

// New creates a new, empty DoublyLinkedList.
func New[T any](opts ...options.Option[DoublyLinkedList[T]]) *DoublyLinkedList[T] {
	return options.Apply(new(DoublyLinkedList[T]), opts, (*DoublyLinkedList[T]).reset)
}

// FromSlice creates a DoublyLinkedList whose front to back order matches the order of the given elements.
func FromSlice[T any](elements []T, opts ...options.Option[DoublyLinkedList[T]]) *DoublyLinkedList[T] {
	l := New(opts...)
	for _, element := range elements {
		l.PushBack(element)
	}

	return l
}

// PushFront inserts the element at the front of the list.
func (l *DoublyLinkedList[T]) PushFront(element T) {
	newHead := l.insert(entry[T]{element: element, next: l.head})

	if l.head.isNil() {
		l.tail = newHead
	} else {
		l.head.setPrev(newHead)
	}

	l.head = newHead
	l.size++
}

// PushBack inserts the element at the back of the list.
func (l *DoublyLinkedList[T]) PushBack(element T) {
	newTail := l.insert(entry[T]{element: element, prev: l.tail})

	if l.tail.isNil() {
		l.head = newTail
	} else {
		l.tail.setNext(newTail)
	}

	l.tail = newTail
	l.size++
}

// PopFront removes the front element and returns it. It returns false if the list is empty.
func (l *DoublyLinkedList[T]) PopFront() (element T, exists bool) {
	if l.head.isNil() {
		return element, false
	}

	removed := l.head.remove()
	l.head = removed.next

	if l.head.isNil() {
		l.tail = link[T]{}
	} else {
		l.head.setPrev(link[T]{})
	}

	l.size--

	return removed.element, true
}

// PopBack removes the back element and returns it. It returns false if the list is empty.
func (l *DoublyLinkedList[T]) PopBack() (element T, exists bool) {
	if l.tail.isNil() {
		return element, false
	}

	removed := l.tail.remove()
	l.tail = removed.prev

	if l.tail.isNil() {
		l.head = link[T]{}
	} else {
		l.tail.setNext(link[T]{})
	}

	l.size--

	return removed.element, true
}

// Front returns the front element without removing it.
func (l *DoublyLinkedList[T]) Front() (element T, exists bool) {
	if l.head.isNil() {
		return element, false
	}

	return l.head.entry().element, true
}

// Back returns the back element without removing it.
func (l *DoublyLinkedList[T]) Back() (element T, exists bool) {
	if l.tail.isNil() {
		return element, false
	}

	return l.tail.entry().element, true
}

// FrontMut returns a pointer to the front element, which allows to modify it in place.
func (l *DoublyLinkedList[T]) FrontMut() (element *T, exists bool) {
	if l.head.isNil() {
		return nil, false
	}

	return &l.head.entry().element, true
}

// BackMut returns a pointer to the back element, which allows to modify it in place.
func (l *DoublyLinkedList[T]) BackMut() (element *T, exists bool) {
	if l.tail.isNil() {
		return nil, false
	}

	return &l.tail.entry().element, true
}

// Append moves all elements of other to the back of the list and leaves other empty. It does not visit the moved
// elements. Appending a list to itself does nothing.
//
// The moved entries stay in the arena of other, which other gives up in exchange for a fresh one. That arena keeps all
// of its slots allocated for as long as any of the moved entries is still in the list, and Clear only recycles the
// arena that the list allocated itself.
func (l *DoublyLinkedList[T]) Append(other *DoublyLinkedList[T]) {
	if other == nil || other == l || other.IsEmpty() {
		return
	}

	if l.IsEmpty() {
		l.nodes, other.nodes = other.nodes, l.nodes
		l.head, other.head = other.head, l.head
		l.tail, other.tail = other.tail, l.tail
		l.size, other.size = other.size, l.size

		return
	}

	l.tail.setNext(other.head)
	other.head.setPrev(l.tail)
	l.tail = other.tail
	l.size += other.size

	// the entries of other stay in their arena, which is now only reachable through l
	other.reset()
}

// Len returns the number of elements in the list.
func (l *DoublyLinkedList[T]) Len() int {
	return l.size
}

// IsEmpty returns true if the list contains no elements.
func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear removes all elements.
func (l *DoublyLinkedList[T]) Clear() {
	if l.nodes != nil {
		l.nodes.Clear()
	}
	l.head = link[T]{}
	l.tail = link[T]{}
	l.size = 0
}

// ContainsFunc returns true if the predicate matches any element.
func (l *DoublyLinkedList[T]) ContainsFunc(predicate func(element T) bool) bool {
	for element := range l.All() {
		if predicate(element) {
			return true
		}
	}

	return false
}

// Iter returns an iterator over the elements, from front to back.
func (l *DoublyLinkedList[T]) Iter() *traversal.Iter[T] {
	return traversal.NewIter(l.forward())
}

// IterMut returns an iterator over pointers to the elements, from front to back.
func (l *DoublyLinkedList[T]) IterMut() *traversal.IterMut[T] {
	return traversal.NewIterMut(l.forward())
}

// IterBack returns an iterator over the elements, from back to front.
func (l *DoublyLinkedList[T]) IterBack() *traversal.Iter[T] {
	return traversal.NewIter(l.backward())
}

// IterMutBack returns an iterator over pointers to the elements, from back to front.
func (l *DoublyLinkedList[T]) IterMutBack() *traversal.IterMut[T] {
	return traversal.NewIterMut(l.backward())
}

// IntoIter returns an iterator that removes the elements from the front of the list.
func (l *DoublyLinkedList[T]) IntoIter() *traversal.IntoIter[T] {
	return traversal.NewIntoIter(l.PopFront)
}

// All returns a sequence over the elements, from front to back. Every range starts at the front.
func (l *DoublyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.Iter().All()(yield)
	}
}

// Backward returns a sequence over the elements, from back to front. Every range starts at the back.
func (l *DoublyLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.IterBack().All()(yield)
	}
}

// String returns a human-readable version of the DoublyLinkedList.
func (l *DoublyLinkedList[T]) String() string {
	builder := stringify.NewStructBuilder("DoublyLinkedList")
	builder.AddField(stringify.NewStructField("len", l.size))

	position := 0
	for element := range l.All() {
		builder.AddField(stringify.NewStructField(strconv.Itoa(position), element))
		position++
	}

	return builder.String()
}

// insert stores the entry in the arena of the list and returns the link to it.
func (l *DoublyLinkedList[T]) insert(e entry[T]) link[T] {
	if l.nodes == nil {
		l.reset()
	}

	return link[T]{nodes: l.nodes, index: l.nodes.Insert(e)}
}

// reset turns the list into an empty list with a fresh arena.
func (l *DoublyLinkedList[T]) reset() {
	l.nodes = arena.New(arena.WithCapacity[entry[T]](l.optsCapacity))
	l.head = link[T]{}
	l.tail = link[T]{}
	l.size = 0
}

func (l *DoublyLinkedList[T]) forward() traversal.Step[T] {
	return traversal.Follow(l.head, link[T]{}, func(current link[T]) (*T, link[T]) {
		e := current.entry()

		return &e.element, e.next
	})
}

func (l *DoublyLinkedList[T]) backward() traversal.Step[T] {
	return traversal.Follow(l.tail, link[T]{}, func(current link[T]) (*T, link[T]) {
		e := current.entry()

		return &e.element, e.prev
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Options //////////////////////////////////////////////////////////////////////////////////////////////////////

// WithCapacity preallocates storage for the given number of elements.
func WithCapacity[T any](capacity int) options.Option[DoublyLinkedList[T]] {
	return func(l *DoublyLinkedList[T]) {
		l.optsCapacity = capacity
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

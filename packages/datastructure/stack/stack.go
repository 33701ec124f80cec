// Package stack implements a LIFO stack on top of a singly-linked chain of nodes that is owned by the Stack.
package stack

import (
	"iter"
	"strconv"

	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/linkedlists/packages/datastructure/traversal"
)

// region Stack ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Stack is a LIFO container. The zero value is an empty Stack that is ready to use. It is not safe for concurrent use.
type Stack[T any] struct {
	head *node[T]
	size int
}

// New creates a new, empty Stack.
func New[T any]() *Stack[T] {
	return new(Stack[T])
}

// FromSlice creates a Stack that contains the given elements, with the last element on top.
func FromSlice[T any](elements []T) *Stack[T] {
	s := New[T]()
	for _, element := range elements {
		s.Push(element)
	}

	return s
}

// Push puts the element on top of the Stack.
func (s *Stack[T]) Push(element T) {
	s.head = &node[T]{element: element, next: s.head}
	s.size++
}

// Pop removes the top element and returns it. It returns ErrEmptyContainer if the Stack is empty.
func (s *Stack[T]) Pop() (element T, err error) {
	if s.head == nil {
		return element, ErrEmptyContainer
	}

	top := s.head
	s.head, top.next = top.next, nil
	s.size--

	return top.element, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (element T, exists bool) {
	if s.head == nil {
		return element, false
	}

	return s.head.element, true
}

// PeekMut returns a pointer to the top element, which allows to modify it in place.
func (s *Stack[T]) PeekMut() (element *T, exists bool) {
	if s.head == nil {
		return nil, false
	}

	return &s.head.element, true
}

// IsEmpty returns true if the Stack contains no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Len returns the number of elements in the Stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	*s = Stack[T]{}
}

// Iter returns an iterator over the elements, from the top to the bottom of the Stack.
func (s *Stack[T]) Iter() *traversal.Iter[T] {
	return traversal.NewIter(s.follow())
}

// IterMut returns an iterator over pointers to the elements, from the top to the bottom of the Stack.
func (s *Stack[T]) IterMut() *traversal.IterMut[T] {
	return traversal.NewIterMut(s.follow())
}

// IntoIter returns an iterator that pops the elements of the Stack.
func (s *Stack[T]) IntoIter() *traversal.IntoIter[T] {
	return traversal.NewIntoIter(func() (element T, ok bool) {
		element, err := s.Pop()

		return element, err == nil
	})
}

// All returns a sequence over the elements, from the top to the bottom of the Stack. Every range starts at the top.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.Iter().All()(yield)
	}
}

// String returns a human-readable version of the Stack.
func (s *Stack[T]) String() string {
	builder := stringify.NewStructBuilder("Stack")
	builder.AddField(stringify.NewStructField("len", s.size))

	position := 0
	for element := range s.All() {
		builder.AddField(stringify.NewStructField(strconv.Itoa(position), element))
		position++
	}

	return builder.String()
}

func (s *Stack[T]) follow() traversal.Step[T] {
	return traversal.Follow(s.head, nil, func(n *node[T]) (*T, *node[T]) {
		return &n.element, n.next
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region node /////////////////////////////////////////////////////////////////////////////////////////////////////////

// node owns its element and the rest of the chain below it.
type node[T any] struct {
	element T
	next    *node[T]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

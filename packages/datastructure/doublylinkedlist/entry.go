package doublylinkedlist

import (
	"github.com/iotaledger/linkedlists/packages/datastructure/arena"
)

// entry owns an element of the list. Its links to the neighbours do not own anything.
type entry[T any] struct {
	element T
	prev    link[T]
	next    link[T]
}

// link addresses an entry by the arena that stores it and its index inside that arena. The zero value is the nil link.
type link[T any] struct {
	nodes *arena.Arena[entry[T]]
	index arena.Index
}

func (l link[T]) isNil() bool {
	return l.nodes == nil
}

// entry returns the linked entry. The pointer must not be retained across insertions into the same arena.
func (l link[T]) entry() *entry[T] {
	return l.nodes.MustGet(l.index)
}

func (l link[T]) getNext() link[T] {
	return l.entry().next
}

func (l link[T]) setNext(next link[T]) {
	l.entry().next = next
}

func (l link[T]) getPrev() link[T] {
	return l.entry().prev
}

func (l link[T]) setPrev(prev link[T]) {
	l.entry().prev = prev
}

// remove frees the linked entry and moves it out of its arena.
func (l link[T]) remove() entry[T] {
	return l.nodes.MustRemove(l.index)
}

package doublylinkedlist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/linkedlists/packages/datastructure/traversal"
)

func TestAdd(t *testing.T) {
	doublyLinkedList := New[int]()

	doublyLinkedList.PushBack(12)
	doublyLinkedList.PushBack(12)
	doublyLinkedList.PushBack(15)
	doublyLinkedList.PushBack(99)

	assert.Equal(t, 4, doublyLinkedList.Len(), "the size of the list is wrong")
	assertInvariants(t, doublyLinkedList)
}

func TestDelete(t *testing.T) {
	doublyLinkedList := New[int]()

	doublyLinkedList.PushBack(12)
	doublyLinkedList.PushBack(13)
	doublyLinkedList.PushBack(15)
	doublyLinkedList.PushBack(99)

	_, exists := doublyLinkedList.PopFront()
	require.True(t, exists)

	firstEntry, exists := doublyLinkedList.Front()
	require.True(t, exists)
	assert.Equal(t, 13, firstEntry, "first entry should be 13 after delete")

	_, exists = doublyLinkedList.PopBack()
	require.True(t, exists)

	lastEntry, exists := doublyLinkedList.Back()
	require.True(t, exists)
	assert.Equal(t, 15, lastEntry, "last entry should be 15 after delete")

	assert.Equal(t, 2, doublyLinkedList.Len(), "the size of the list should be 2 after delete")
	assertInvariants(t, doublyLinkedList)
}

func TestDoublyLinkedList_PushBack(t *testing.T) {
	l := New[int]()
	l.PushBack(1)

	back, exists := l.Back()
	require.True(t, exists)
	assert.Equal(t, 1, back)

	front, exists := l.Front()
	require.True(t, exists)
	assert.Equal(t, 1, front)
	assert.Equal(t, l.head, l.tail)
}

func TestDoublyLinkedList_PushFront(t *testing.T) {
	l := New[int]()
	l.PushFront(1)

	front, exists := l.Front()
	require.True(t, exists)
	assert.Equal(t, 1, front)
	assert.Equal(t, l.head, l.tail)
}

func TestDoublyLinkedList_PopFront(t *testing.T) {
	l := New[int]()
	l.PushFront(1)

	assertPopFront(t, l, 1)

	_, exists := l.PopFront()
	assert.False(t, exists)
	assert.True(t, l.head.isNil())
	assert.True(t, l.tail.isNil())
}

func TestDoublyLinkedList_PopBack(t *testing.T) {
	l := New[int]()
	l.PushFront(1)
	l.PushFront(3)

	assertPopBack(t, l, 1)
	assertInvariants(t, l)
	assertPopBack(t, l, 3)

	_, exists := l.PopBack()
	assert.False(t, exists)
	assert.True(t, l.IsEmpty())
}

func TestDoublyLinkedList_FIFO(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	assertInvariants(t, l)

	for i := 0; i < 10; i++ {
		assertPopFront(t, l, i)
	}

	assertDrained(t, l)
}

func TestDoublyLinkedList_LIFO(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.PushFront(i)
	}
	assertInvariants(t, l)

	for i := 9; i >= 0; i-- {
		assertPopFront(t, l, i)
	}

	assertDrained(t, l)
}

func TestDoublyLinkedList_MixedEnds(t *testing.T) {
	l := New[int]()

	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	l.PushFront(0)
	assertInvariants(t, l)
	assert.Equal(t, []int{0, 1, 2, 3}, traversal.Collect(l.All()))
	assert.Equal(t, []int{3, 2, 1, 0}, traversal.Collect(l.Backward()))

	assertPopBack(t, l, 3)
	assertPopFront(t, l, 0)
	assertInvariants(t, l)
	assertPopBack(t, l, 2)
	assertPopBack(t, l, 1)

	assertDrained(t, l)
}

func TestDoublyLinkedList_Len(t *testing.T) {
	l := New[int](WithCapacity[int](4))

	for i := 0; i < 8; i++ {
		l.PushBack(i)
	}
	for i := 0; i < 5; i++ {
		if i%2 == 0 {
			l.PopFront()
		} else {
			l.PopBack()
		}
	}

	assert.Equal(t, 3, l.Len())
	assert.False(t, l.IsEmpty())
	assertInvariants(t, l)
}

func TestDoublyLinkedList_Append(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{4, 5})
	arenaOfB := b.nodes

	a.Append(b)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, traversal.Collect(a.All()))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, traversal.Collect(a.Backward()))
	assert.Equal(t, 5, a.Len())
	assertInvariants(t, a)

	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, traversal.Collect(b.All()))
	assert.NotSame(t, arenaOfB, b.nodes, "the appended entries must not stay reachable from b")

	// b stays usable and independent of a
	b.PushBack(6)
	assert.Equal(t, []int{6}, traversal.Collect(b.All()))
	assert.Equal(t, 5, a.Len())

	for i := 5; i >= 1; i-- {
		assertPopBack(t, a, i)
	}
	assertDrained(t, a)
	assert.Equal(t, 0, arenaOfB.Len(), "popping the appended entries must free them")
}

func TestDoublyLinkedList_AppendToEmpty(t *testing.T) {
	a := New[int]()
	b := FromSlice([]int{4, 5})

	a.Append(b)

	assert.Equal(t, []int{4, 5}, traversal.Collect(a.All()))
	assert.Equal(t, 2, a.Len())
	assertInvariants(t, a)
	assert.True(t, b.IsEmpty())
	assertDrained(t, b)
}

func TestDoublyLinkedList_AppendEdgeCases(t *testing.T) {
	a := FromSlice([]int{1, 2})

	a.Append(New[int]())
	assert.Equal(t, []int{1, 2}, traversal.Collect(a.All()))

	a.Append(a)
	assert.Equal(t, []int{1, 2}, traversal.Collect(a.All()))

	a.Append(nil)
	assert.Equal(t, 2, a.Len())
	assertInvariants(t, a)
}

func TestDoublyLinkedList_AppendChain(t *testing.T) {
	a := FromSlice([]int{1})
	b := FromSlice([]int{2})
	c := FromSlice([]int{3})

	b.Append(c)
	a.Append(b)
	a.PushBack(4)
	a.PushFront(0)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, traversal.Collect(a.All()))
	assertInvariants(t, a)

	a.Clear()
	assertDrained(t, a)
}

func TestDoublyLinkedList_Clear(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})
	l.Clear()

	assertDrained(t, l)

	l.PushBack("d")
	l.PushFront("c")
	assert.Equal(t, []string{"c", "d"}, traversal.Collect(l.All()))
	assertInvariants(t, l)
}

func TestDoublyLinkedList_ZeroValue(t *testing.T) {
	var l DoublyLinkedList[int]

	assert.True(t, l.IsEmpty())
	_, exists := l.PopBack()
	assert.False(t, exists)
	assert.Empty(t, traversal.Collect(l.All()))
	l.Clear()

	l.PushBack(2)
	l.PushFront(1)
	assert.Equal(t, []int{1, 2}, traversal.Collect(l.All()))
	assertInvariants(t, &l)

	var target DoublyLinkedList[int]
	target.Append(&l)
	assert.Equal(t, []int{1, 2}, traversal.Collect(target.All()))
	assert.True(t, l.IsEmpty())

	l.PushBack(3)
	assert.Equal(t, []int{3}, traversal.Collect(l.All()))
	assert.Equal(t, 2, target.Len())
}

func TestDoublyLinkedList_Contains(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	assert.True(t, Contains(l, 2))
	assert.False(t, Contains(l, 7))
	assert.False(t, Contains(New[int](), 0))
	assert.True(t, l.ContainsFunc(func(element int) bool { return element > 2 }))
}

func TestDoublyLinkedList_Mut(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	front, exists := l.FrontMut()
	require.True(t, exists)
	*front = 10

	back, exists := l.BackMut()
	require.True(t, exists)
	*back = 30

	assert.Equal(t, []int{10, 2, 30}, traversal.Collect(l.All()))

	l.Clear()
	_, exists = l.FrontMut()
	assert.False(t, exists)
	_, exists = l.BackMut()
	assert.False(t, exists)
}

func TestDoublyLinkedList_Iterators(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	for element := range l.IterMut().All() {
		*element *= 2
	}
	assert.Equal(t, []int{2, 4, 6}, traversal.Collect(l.Iter().All()))

	for element := range l.IterMutBack().All() {
		*element++
	}
	assert.Equal(t, []int{7, 5, 3}, traversal.Collect(l.IterBack().All()))

	// every request of a borrowing iterator starts at the front again
	iterator := l.Iter()
	element, ok := iterator.Next()
	require.True(t, ok)
	assert.Equal(t, 3, element)
	assert.Equal(t, []int{3, 5, 7}, traversal.Collect(l.All()))
	assert.Equal(t, []int{5, 7}, traversal.Collect(iterator.All()))

	drained := traversal.Collect(l.IntoIter().All())
	assert.Equal(t, []int{3, 5, 7}, drained)
	assertDrained(t, l)
}

func TestDoublyLinkedList_RoundTrip(t *testing.T) {
	l := New[int]()
	for i := 0; i < 100; i++ {
		l.PushBack(i)
	}
	for i := 0; i < 100; i++ {
		assertPopFront(t, l, i)
	}

	assertDrained(t, l)
}

func TestDoublyLinkedList_String(t *testing.T) {
	str := FromSlice([]string{"front", "back"}).String()

	assert.Contains(t, str, "DoublyLinkedList")
	assert.Contains(t, str, "front")
	assert.Contains(t, str, "back")
}

// assertInvariants walks the list in both directions and checks that the links are consistent with each other and
// with the size of the list.
func assertInvariants[T any](t *testing.T, l *DoublyLinkedList[T]) {
	t.Helper()

	if l.size == 0 {
		assert.True(t, l.head.isNil())
		assert.True(t, l.tail.isNil())

		return
	}

	require.False(t, l.head.isNil())
	require.False(t, l.tail.isNil())
	assert.True(t, l.head.getPrev().isNil(), "head must not have a predecessor")
	assert.True(t, l.tail.getNext().isNil(), "tail must not have a successor")

	count := 0
	previous := link[T]{}
	for current := l.head; !current.isNil(); current = current.getNext() {
		assert.Equal(t, previous, current.getPrev(), "prev link of entry %d is inconsistent", count)

		previous = current
		count++
		require.LessOrEqual(t, count, l.size, "the chain is longer than the list")
	}

	assert.Equal(t, l.size, count)
	assert.Equal(t, l.tail, previous)
}

func assertDrained[T any](t *testing.T, l *DoublyLinkedList[T]) {
	t.Helper()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.nodes.Len(), "no entry may outlive its removal")
	assertInvariants(t, l)

	_, exists := l.Front()
	assert.False(t, exists)
	_, exists = l.Back()
	assert.False(t, exists)
	_, exists = l.PopFront()
	assert.False(t, exists)
	_, exists = l.PopBack()
	assert.False(t, exists)
}

func assertPopFront[T any](t *testing.T, l *DoublyLinkedList[T], expected T) {
	t.Helper()

	element, exists := l.PopFront()
	require.True(t, exists)
	assert.Equal(t, expected, element)
}

func assertPopBack[T any](t *testing.T, l *DoublyLinkedList[T], expected T) {
	t.Helper()

	element, exists := l.PopBack()
	require.True(t, exists)
	assert.Equal(t, expected, element)
}

func BenchmarkDoublyLinkedList_PushBackPopFront(b *testing.B) {
	l := New[int]()

	for i := 0; i < b.N; i++ {
		l.PushBack(i)
		l.PopFront()
	}
}

func ExampleDoublyLinkedList_Append() {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{4, 5})

	a.Append(b)

	fmt.Println(traversal.Collect(a.All()), a.Len())
	fmt.Println(traversal.Collect(b.All()), b.Len())

	// Output:
	// [1 2 3 4 5] 5
	// [] 0
}

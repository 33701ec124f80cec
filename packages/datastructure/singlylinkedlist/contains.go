package singlylinkedlist

// Contains returns true if the list holds an element that is equal to the given value.
func Contains[T comparable](list *SinglyLinkedList[T], value T) bool {
	return list.ContainsFunc(func(element T) bool {
		return element == value
	})
}

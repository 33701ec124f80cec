package traversal

// Mode defines how a walk accesses the elements of a container.
type Mode uint8

const (
	// Shared walks yield copies of the elements and leave the container untouched.
	Shared Mode = iota
	// Exclusive walks yield pointers to the stored elements, which allows to modify them in place.
	Exclusive
	// Consuming walks move the elements out of the container.
	Consuming
)

// String returns a human-readable version of the Mode.
func (m Mode) String() string {
	switch m {
	case Shared:
		return "Shared"
	case Exclusive:
		return "Exclusive"
	case Consuming:
		return "Consuming"
	default:
		return "Mode(unknown)"
	}
}

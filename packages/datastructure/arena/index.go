package arena

import (
	"strconv"
)

// Index addresses a value stored in an Arena. The zero value is the nil Index and never resolves.
type Index struct {
	slot       uint32
	generation uint32
}

// Nil is the Index that refers to nothing.
var Nil Index

// IsNil returns true if the Index does not refer to any slot.
func (i Index) IsNil() bool {
	return i.generation == 0
}

// String returns a human-readable version of the Index.
func (i Index) String() string {
	if i.IsNil() {
		return "Index(nil)"
	}

	return "Index(" + strconv.FormatUint(uint64(i.slot), 10) + "@" + strconv.FormatUint(uint64(i.generation), 10) + ")"
}

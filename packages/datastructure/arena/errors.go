package arena

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidIndex is returned if an Index is nil or points outside of the Arena.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrStaleIndex is returned if an Index points to a slot that was freed since the Index was issued.
	ErrStaleIndex = errors.New("stale index")
)

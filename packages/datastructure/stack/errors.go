package stack

import "github.com/cockroachdb/errors"

// ErrEmptyContainer is returned if an element is popped from an empty Stack.
var ErrEmptyContainer = errors.New("stack is empty")

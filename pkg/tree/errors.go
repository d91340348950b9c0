package tree

import (
	"errors"
	"fmt"
)

// Error kinds returned by tree operations. Callers match them with errors.Is.
var (
	// ErrNodeNotFound is returned when a value that must be present in the tree is not.
	ErrNodeNotFound = errors.New("node not found")
	// ErrInvalidArgument is returned for structurally invalid requests, such as
	// a zero value where a node is required or a second root.
	ErrInvalidArgument = errors.New("invalid argument")
)

func nodeNotFound(value any) error {
	return fmt.Errorf("%w: no node was found for %v", ErrNodeNotFound, value)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

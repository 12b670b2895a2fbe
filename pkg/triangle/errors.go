package triangle

import "errors"

// Sentinel errors for vertex naming and constraint resolution.
var (
	// ErrMalformedName is returned when a triangle name does not split
	// into exactly three distinct vertex names.
	ErrMalformedName = errors.New("malformed triangle name")

	// ErrMalformedSideName is returned when a side token parses to
	// neither the lowercase spelling of one vertex nor exactly two
	// vertex names.
	ErrMalformedSideName = errors.New("malformed side name")

	// ErrUnknownVertex is returned when a referenced vertex is not part
	// of the triangle.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrConflictingConstraint is returned when two requested lengths
	// disagree for the same physical side.
	ErrConflictingConstraint = errors.New("conflicting constraint")
)

package subdiv

import "errors"

// Sentinel errors for the package's five-member error taxonomy.
var (
	// ErrInvalidArgument is returned by construction for user-fault inputs:
	// negative epsilon, non-finite coordinates, or a nil segment slice.
	ErrInvalidArgument = errors.New("subdiv: invalid argument")

	// ErrInvariantViolation is returned by Validate when a structural
	// invariant fails; it implies a bug in the builder, not user error.
	ErrInvariantViolation = errors.New("subdiv: invariant violation")

	// ErrOutOfRange is returned by index-based queries outside valid ranges.
	ErrOutOfRange = errors.New("subdiv: index out of range")

	// ErrNotFound is returned by lookups with no matching entry.
	ErrNotFound = errors.New("subdiv: not found")

	// ErrNotSupported is returned by any attempted mutation of a read-only view.
	ErrNotSupported = errors.New("subdiv: not supported")
)

// Package werr defines the error taxonomy the wire codec and reconciler
// surface to callers. Every sentinel here corresponds to one of the error
// kinds in the protocol's error handling design: a decode call aborts and
// returns one of these, wrapped with call-site context, the moment it hits
// bad input. Nothing is recovered internally and nothing is silently
// zero-filled.
package werr

import "errors"

// Sentinel errors. Callers should match against these with errors.Is;
// wrapping (via github.com/pkg/errors) adds context without hiding the
// sentinel.
var (
	// ErrTruncated means the cursor would advance past the declared
	// patch length while reading.
	ErrTruncated = errors.New("statesync: truncated patch")

	// ErrUnknownField means a field index in the patch stream has no
	// entry in the current schema's field table.
	ErrUnknownField = errors.New("statesync: unknown field index")

	// ErrUnknownWireKind means a field table entry names a wire-kind
	// the dispatcher doesn't recognize; this is a metadata bug, not a
	// malformed patch.
	ErrUnknownWireKind = errors.New("statesync: unknown wire-kind")

	// ErrUnknownNumberPrefix means a tagged-number read encountered a
	// prefix byte outside the documented fixint/ext ranges.
	ErrUnknownNumberPrefix = errors.New("statesync: unknown number prefix")

	// ErrFactoryMiss means a ref field needed to construct a child but
	// no factory entry exists for the declared child-schema identity.
	ErrFactoryMiss = errors.New("statesync: no factory for child schema")

	// ErrStringOverrun means a short-string's length byte implies more
	// bytes than remain in the patch.
	ErrStringOverrun = errors.New("statesync: short string overruns patch")

	// ErrInvalidSetAt means an array write targeted an index greater
	// than the array's current size (only index == size, i.e. append,
	// or index < size, i.e. overwrite, are defined).
	ErrInvalidSetAt = errors.New("statesync: setAt index beyond array size")

	// ErrMaxDepthExceeded guards against unbounded recursive descent
	// into nested ref/array/map structures from a hostile patch.
	ErrMaxDepthExceeded = errors.New("statesync: maximum recursion depth exceeded")

	// ErrInvalidMapIndex means an INDEX_CHANGE or map-index-form key
	// referenced an ordinal outside the bounds of the map's previous
	// snapshot.
	ErrInvalidMapIndex = errors.New("statesync: map index ordinal out of range")
)

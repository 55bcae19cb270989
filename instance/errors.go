package instance

import (
	"errors"
	"strconv"
)

// Sentinel errors for instance loading. All are instance-structural
// errors in the sense of the spec: fatal, no partial result, exit 99 at
// the CLI boundary (see cmd/starverify).
var (
	// ErrWidthExceeded indicates n exceeds the bitmask width compiled
	// into this binary (64, or 128 with the mask128 build tag).
	ErrWidthExceeded = errors.New("instance: n exceeds bitmask width")

	// ErrTendrilZero indicates an L= line named vertex 0, which the
	// data model forbids unconditionally (vertex 0 is the fixed
	// palette-break color and can never be a two-color tendril leaf).
	ErrTendrilZero = errors.New("instance: vertex 0 cannot be a tendril leaf")

	// ErrNBeforeStructural indicates a G=, B=, T=, U=, L=, or S= line
	// was encountered before any n= line had set the vertex count.
	ErrNBeforeStructural = errors.New("instance: structural line before n=")

	// ErrMalformedLine indicates a recognized-prefix line whose payload
	// could not be parsed (wrong arity, non-integer field, etc).
	ErrMalformedLine = errors.New("instance: malformed line")

	// ErrUnreadable indicates the input file could not be opened or
	// read. Per the spec's resolved open question (§9), this is
	// promoted to a fatal load error rather than silently producing an
	// empty instance.
	ErrUnreadable = errors.New("instance: input file unreadable")
)

// LoadError wraps one of the sentinels above with positional context
// (the offending line number and text, when available). Callers should
// branch with errors.Is(err, ErrX); LoadError implements Unwrap so that
// works directly.
type LoadError struct {
	Line int    // 1-indexed source line; 0 if not line-specific
	Text string // the offending line, empty if not line-specific
	Err  error  // one of the sentinels above
}

func (e *LoadError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return e.Err.Error() + ": line " + strconv.Itoa(e.Line) + ": " + e.Text
}

func (e *LoadError) Unwrap() error { return e.Err }

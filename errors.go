package hashlife

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvariantError reports a caller-side programming error: Create was given
// children at the wrong level, or Step/Advance was called on a node whose
// level is too small to evolve. It is not meant to be retried.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("hashlife: invariant violated in %s: %s", e.Op, e.Detail)
}

// BoundsError reports that SetCell was given coordinates outside the node's
// [0, 2^level) range. It is recoverable: the caller may Expand and retry.
type BoundsError struct {
	Level uint8
	X, Y  int64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("hashlife: coordinates (%d, %d) out of range for level %d node", e.X, e.Y, e.Level)
}

// CapacityError reports that the interner's id space or memory is
// exhausted. It is terminal for the current process: the caller should not
// attempt to keep simulating against the same pool.
type CapacityError struct {
	Detail string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("hashlife: capacity exhausted: %s", e.Detail)
}

// newCapacityError wraps a CapacityError with a stack trace, since this
// condition is unexpected and worth full context in logs.
func newCapacityError(detail string) error {
	return errors.WithStack(&CapacityError{Detail: detail})
}

package vecmath

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a reduction receives no vectors.
var ErrEmptyInput = errors.New("no vectors provided")

// ErrLengthMismatch indicates that vectors expected to share a length do not.
//
// Expected is the reference length (the first operand or the first member of
// a collection). Index identifies the offending operand: 1 for the second
// argument of a binary operation, or the position within a collection.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
	Index    int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch at index %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

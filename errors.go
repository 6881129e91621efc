package vecsim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must not be negative")

	// ErrInvalidCount is returned when a vector count is negative.
	ErrInvalidCount = errors.New("count must not be negative")

	// ErrDimensionMismatchKind matches every *ErrDimensionMismatch via errors.Is.
	ErrDimensionMismatchKind = errors.New("dimension mismatch")
)

// ErrDimensionMismatch indicates that an operand's length disagrees with
// the configured dimensionality (or with count*dimensions for a flattened set).
type ErrDimensionMismatch struct {
	Operand  string
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %s: expected length %d, got %d", e.Operand, e.Expected, e.Actual)
}

// Is reports whether target is ErrDimensionMismatchKind.
func (e *ErrDimensionMismatch) Is(target error) bool {
	return target == ErrDimensionMismatchKind
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

package memory

import "errors"

var (
	// ErrInvalidSize is returned when an element count is not positive.
	ErrInvalidSize = errors.New("memory: element count must be positive")
	// ErrInvalidHandle is returned for unknown, stale or already freed handles.
	ErrInvalidHandle = errors.New("memory: invalid handle")
	// ErrSizeMismatch is returned when Free names a different element count than Allocate.
	ErrSizeMismatch = errors.New("memory: element count mismatch")
	// ErrMemoryLimit is returned when an allocation would exceed the configured limit.
	ErrMemoryLimit = errors.New("memory: limit exceeded")
)

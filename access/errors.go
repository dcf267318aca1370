package access

import "errors"

var (
	// ErrOutOfBounds is returned when a read or write position falls outside
	// the bytes a buffer or reservation actually holds.
	ErrOutOfBounds = errors.New("offset out of bounds")

	// ErrCapacityExceeded is returned when a Builder would have to grow past
	// its maximum size.
	ErrCapacityExceeded = errors.New("builder capacity exceeded")

	ErrInvalidAlignment = errors.New("alignment must be a positive power of two")
)

package zboot

import (
	"fmt"
)

type (
	// ErrSeekFailed reports that the input could not be positioned at
	// the payload offset. Nothing has been written when it is returned.
	ErrSeekFailed struct {
		Offset uint64
		Cause  error
	}
	// ErrShortRead reports an input that ended before the declared
	// payload length was fully read. Output flushed before the failure
	// stays in the sink; there is no rollback.
	ErrShortRead struct {
		Want  uint64
		Got   uint64
		Cause error
	}
	// ErrWriteFailed reports a sink that rejected a write. As with
	// ErrShortRead, earlier output is not rolled back.
	ErrWriteFailed struct {
		Cause error
	}
)

func (r ErrSeekFailed) Error() string {
	return fmt.Sprintf("seek to payload offset %d: %v", r.Offset, r.Cause)
}

func (r ErrSeekFailed) Unwrap() error {
	return r.Cause
}

func (r ErrShortRead) Error() string {
	return fmt.Sprintf(
		"short read: input ended after %d of %d payload bytes: %v",
		r.Got, r.Want, r.Cause,
	)
}

func (r ErrShortRead) Unwrap() error {
	return r.Cause
}

func (r ErrWriteFailed) Error() string {
	return fmt.Sprintf("write to payload sink: %v", r.Cause)
}

func (r ErrWriteFailed) Unwrap() error {
	return r.Cause
}

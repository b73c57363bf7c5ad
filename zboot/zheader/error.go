package zheader

import (
	"fmt"
)

type (
	// ErrTruncatedHeader reports an input that ended before the full
	// header could be read.
	ErrTruncatedHeader struct {
		Length int
	}
	// ErrNotZbootImage reports a mismatch in one of the three magic
	// fields. Field holds the name of the first field that failed.
	ErrNotZbootImage struct {
		Field    string
		Expected []byte
		Actual   []byte
	}
)

func (r ErrTruncatedHeader) Error() string {
	return fmt.Sprintf(
		"truncated zboot header: %d bytes available; expected %d",
		r.Length, HeaderSize,
	)
}

func (r ErrNotZbootImage) Error() string {
	return fmt.Sprintf(
		`not an EFI zboot image: field "%s" expected "% X", got "% X"`,
		r.Field, r.Expected, r.Actual,
	)
}

package zboot

import (
	"io"

	"efiextract/zboot/zheader"
	"github.com/pkg/errors"
)

// Inspect reads the zboot header from the start of reader and decodes it.
// The read cursor advances by zheader.HeaderSize bytes on success; on
// failure its position is unspecified and callers must re-seek before
// reusing the stream.
func Inspect(reader io.Reader) (*zheader.Header, error) {
	bs := make([]byte, zheader.HeaderSize)
	n, err := io.ReadFull(reader, bs)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, zheader.ErrTruncatedHeader{Length: n}
	}
	if err != nil {
		return nil, errors.Wrap(err, "Inspect error: read zboot header")
	}
	return zheader.Decode(bs)
}

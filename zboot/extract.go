package zboot

import (
	"io"
)

// ChunkSize is the fixed buffer size CopyPayload transfers with, so peak
// memory stays constant however large the payload is.
const ChunkSize = 16 * 1024

// CopyPayload seeks src to offset and copies exactly length bytes to dst
// in ChunkSize chunks. A length of zero is a no-op success with no read,
// write, or seek calls. On failure partially written output stays in dst;
// the copy is not transactional.
func CopyPayload(src io.ReadSeeker, dst io.Writer, offset uint64, length uint64) error {
	if length == 0 {
		return nil
	}

	if _, err := src.Seek(int64(offset), io.SeekStart); err != nil {
		return ErrSeekFailed{Offset: offset, Cause: err}
	}

	buf := make([]byte, ChunkSize)
	transferred := uint64(0)
	for transferred < length {
		size := length - transferred
		if size > ChunkSize {
			size = ChunkSize
		}

		n, err := io.ReadFull(src, buf[:size])
		if err != nil {
			return ErrShortRead{
				Want:  length,
				Got:   transferred + uint64(n),
				Cause: err,
			}
		}
		if _, err := dst.Write(buf[:size]); err != nil {
			return ErrWriteFailed{Cause: err}
		}

		transferred += size
	}
	return nil
}

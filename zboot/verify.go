package zboot

import (
	"bytes"
	"io"

	"efiextract/zboot/zcomp"
	"efiextract/zboot/zheader"
	"github.com/pkg/errors"
)

// VerifyCompression reads the leading payload bytes from src and checks
// them against the compression label declared in header. The src cursor
// position afterwards is unspecified.
func VerifyCompression(src io.ReadSeeker, header zheader.Header) error {
	length := uint64(zcomp.MaxMagicLength)
	if uint64(header.PayloadSize) < length {
		length = uint64(header.PayloadSize)
	}

	prefix := bytes.Buffer{}
	if err := CopyPayload(src, &prefix, uint64(header.PayloadOffset), length); err != nil {
		return errors.Wrap(err, "VerifyCompression error: read payload prefix")
	}
	return zcomp.Verify(header.CompressionType, prefix.Bytes())
}

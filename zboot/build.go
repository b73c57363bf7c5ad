package zboot

import (
	"efiextract/zboot/zheader"
)

// BuildImage assembles a minimal zboot image: a well-formed header
// followed immediately by the payload bytes. Useful for fixtures and for
// repacking an extracted payload.
func BuildImage(compressionType string, payload []byte) []byte {
	header := zheader.NewHeader(
		compressionType,
		zheader.HeaderSize,
		uint32(len(payload)),
	)
	return append(zheader.Encode(header), payload...)
}

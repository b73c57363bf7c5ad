package zheader

import (
	"efiextract/zboot/zbytes"
)

// NewHeader creates a well-formed Header with all three magic fields
// filled in and the reserved regions zeroed.
func NewHeader(compressionType string, payloadOffset uint32, payloadSize uint32) Header {
	return Header{
		MsdosMagic:      MsdosMagicBytes,
		Reserved0:       make([]byte, SizeReserved0),
		Zimg:            ZimgMagicBytes,
		PayloadOffset:   payloadOffset,
		PayloadSize:     payloadSize,
		Reserved1:       make([]byte, SizeReserved1),
		CompressionType: compressionType,
		LinuxMagic:      LinuxMagicBytes,
		PEHeaderOffset:  HeaderSize,
	}
}

// Encode is the inverse of Decode: it lays header out into its
// HeaderSize-byte on-wire form, integers little-endian.
func Encode(header Header) []byte {
	bs := make([]byte, HeaderSize)
	copy(bs[OffsetMsdosMagic:], header.MsdosMagic)
	copy(bs[OffsetReserved0:], header.Reserved0)
	copy(bs[OffsetZimg:], header.Zimg)
	copy(bs[OffsetPayloadOffset:], zbytes.EncodeUint32(header.PayloadOffset))
	copy(bs[OffsetPayloadSize:], zbytes.EncodeUint32(header.PayloadSize))
	copy(bs[OffsetReserved1:], header.Reserved1)
	copy(bs[OffsetCompressionType:], zbytes.EncodeStringZ(header.CompressionType, SizeCompressionType))
	copy(bs[OffsetLinuxMagic:], header.LinuxMagic)
	copy(bs[OffsetPEHeaderOffset:], zbytes.EncodeUint32(header.PEHeaderOffset))
	return bs
}

package zheader

type (
	// Header is the decoded form of the fixed-layout header at the start of
	// an EFI zboot image. A successfully decoded Header means all three
	// magic fields matched and the integer fields are host-native.
	//
	// The de facto specification for the on-wire layout is
	// drivers/firmware/efi/libstub/zboot-header.S in the Linux tree.
	Header struct {
		MsdosMagic      []byte `json:"msdos_magic"`
		Reserved0       []byte `json:"reserved_0"`
		Zimg            []byte `json:"zimg"`
		PayloadOffset   uint32 `json:"payload_offset"`
		PayloadSize     uint32 `json:"payload_size"`
		Reserved1       []byte `json:"reserved_1"`
		CompressionType string `json:"compression_type"`
		LinuxMagic      []byte `json:"linux_magic"`
		PEHeaderOffset  uint32 `json:"pe_header_offset"`
	}
)

// Per-field byte offsets and sizes of the on-wire layout.
const (
	HeaderSize = 64

	OffsetMsdosMagic      = 0
	OffsetReserved0       = 2
	OffsetZimg            = 4
	OffsetPayloadOffset   = 8
	OffsetPayloadSize     = 12
	OffsetReserved1       = 16
	OffsetCompressionType = 24
	OffsetLinuxMagic      = 56
	OffsetPEHeaderOffset  = 60

	SizeMsdosMagic      = 2
	SizeReserved0       = 2
	SizeZimg            = 4
	SizeReserved1       = 8
	SizeCompressionType = 32
	SizeLinuxMagic      = 4
)

var (
	// MsdosMagicBytes is the PE/COFF MS-DOS stub magic number.
	MsdosMagicBytes = []byte("MZ")
	// ZimgMagicBytes marks Linux EFI zboot images.
	ZimgMagicBytes = []byte("zimg")
	// LinuxMagicBytes is the Linux header magic number for an EFI PE/COFF
	// image targeting an unspecified architecture.
	LinuxMagicBytes = []byte{0xCD, 0x23, 0x82, 0x81}
)

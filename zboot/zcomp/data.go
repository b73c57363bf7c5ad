package zcomp

type (
	// Signature describes a compression format by the magic byte
	// prefixes its streams start with. A format may have more than one
	// on-disk framing (lz4 has a legacy and a frame format).
	Signature struct {
		Name   string
		Magics [][]byte
	}
)

// KnownSignatures covers the compressors a Linux zboot build can embed.
// Based on https://github.com/torvalds/linux/blob/master/scripts/extract-vmlinux.
var KnownSignatures = []Signature{
	{
		Name:   "gzip",
		Magics: [][]byte{{0x1F, 0x8B, 0x08}},
	},
	{
		Name:   "zstd",
		Magics: [][]byte{{0x28, 0xB5, 0x2F, 0xFD}},
	},
	{
		Name:   "xz",
		Magics: [][]byte{{0xFD, '7', 'z', 'X', 'Z', 0x00}},
	},
	{
		Name: "lz4",
		Magics: [][]byte{
			{0x02, 0x21, 0x4C, 0x18},
			{0x04, 0x22, 0x4D, 0x18},
		},
	},
	{
		Name:   "lzma",
		Magics: [][]byte{{0x5D, 0x00, 0x00}},
	},
	{
		Name:   "lzo",
		Magics: [][]byte{{0x89, 'L', 'Z', 'O', 0x00}},
	},
}

// MaxMagicLength is the number of leading payload bytes that is enough to
// match any known signature.
const MaxMagicLength = 6

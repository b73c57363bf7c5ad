package zheader

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createHeaderBytes(t *testing.T, compressionType string, payloadOffset uint32, payloadSize uint32) []byte {
	t.Helper()
	bs := Encode(NewHeader(compressionType, payloadOffset, payloadSize))
	require.Len(t, bs, HeaderSize)
	return bs
}

func TestDecode(t *testing.T) {
	bs := createHeaderBytes(t, "gzip", 64, 4)

	header, err := Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, MsdosMagicBytes, header.MsdosMagic)
	assert.Equal(t, ZimgMagicBytes, header.Zimg)
	assert.Equal(t, LinuxMagicBytes, header.LinuxMagic)
	assert.Equal(t, "gzip", header.CompressionType)
	assert.Equal(t, uint32(64), header.PayloadOffset)
	assert.Equal(t, uint32(4), header.PayloadSize)
	assert.Equal(t, uint32(HeaderSize), header.PEHeaderOffset)
}

func TestDecode_Truncated(t *testing.T) {
	bs := createHeaderBytes(t, "gzip", 64, 4)

	for _, length := range []int{0, 1, 2, 32, HeaderSize - 1} {
		_, err := Decode(bs[:length])
		truncatedErr := ErrTruncatedHeader{}
		require.ErrorAsf(t, err, &truncatedErr, "length %d", length)
		assert.Equal(t, length, truncatedErr.Length)
	}
}

func TestDecode_CorruptedMagic(t *testing.T) {
	magicRegions := []struct {
		field  string
		offset int
		size   int
	}{
		{"msdos_magic", OffsetMsdosMagic, SizeMsdosMagic},
		{"zimg", OffsetZimg, SizeZimg},
		{"linux_magic", OffsetLinuxMagic, SizeLinuxMagic},
	}
	for _, region := range magicRegions {
		for i := 0; i < region.size; i++ {
			bs := createHeaderBytes(t, "gzip", 64, 4)
			bs[region.offset+i] ^= 0xFF

			_, err := Decode(bs)
			notZbootErr := ErrNotZbootImage{}
			require.ErrorAsf(t, err, &notZbootErr, "field %s byte %d", region.field, i)
			assert.Equal(t, region.field, notZbootErr.Field)
		}
	}
}

func TestDecode_CompressionType(t *testing.T) {
	// padding after the first zero byte is not significant
	bs := createHeaderBytes(t, "zstd22", 64, 4)
	copy(bs[OffsetCompressionType+7:], "junk")
	header, err := Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, "zstd22", header.CompressionType)

	// a label filling all 32 bytes without a zero decodes whole
	longLabel := "abcdefghijklmnopqrstuvwxyz012345"
	bs = createHeaderBytes(t, "gzip", 64, 4)
	copy(bs[OffsetCompressionType:], longLabel)
	header, err = Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, longLabel, header.CompressionType)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2187))
	for i := 0; i < 256; i++ {
		payloadOffset := rng.Uint32()
		payloadSize := rng.Uint32()

		header, err := Decode(Encode(NewHeader("lzma", payloadOffset, payloadSize)))
		require.NoError(t, err)
		assert.Equal(t, payloadOffset, header.PayloadOffset)
		assert.Equal(t, payloadSize, header.PayloadSize)
		assert.Equal(t, "lzma", header.CompressionType)
	}
}

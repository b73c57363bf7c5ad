package cli

import (
	"os"
	"path/filepath"
	"testing"

	"efiextract/zboot"
	"efiextract/zboot/zheader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createImageFile(t *testing.T, bs []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vmlinuz.efi")
	require.NoError(t, os.WriteFile(path, bs, 0644))
	return path
}

func TestRunInfo(t *testing.T) {
	from := createImageFile(t, zboot.BuildImage("zstd22", []byte{1, 2, 3, 4, 5}))

	output, err := runInfo(from, false)
	require.NoError(t, err)
	assert.Contains(t, output, "Compression:      zstd22")
	assert.Contains(t, output, "Payload offset:   64 Bytes")
	assert.Contains(t, output, "Payload size:     5 Bytes")

	output, err = runInfo(from, true)
	require.NoError(t, err)
	assert.Contains(t, output, `"compression_type": "zstd22"`)
	assert.Contains(t, output, `"payload_offset": 64`)
}

func TestRunExtract(t *testing.T) {
	payload := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	from := createImageFile(t, zboot.BuildImage("gzip", payload))
	to := filepath.Join(t.TempDir(), "vmlinux.gz")

	require.NoError(t, runExtract(from, to, false))

	result, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, payload, result)
}

func TestRunExtract_NoOutputOnParseFailure(t *testing.T) {
	// corrupt the zimg magic so parsing fails before the output opens
	bs := zboot.BuildImage("gzip", []byte{1, 2, 3, 4})
	bs[zheader.OffsetZimg] = 'x'
	from := createImageFile(t, bs)
	to := filepath.Join(t.TempDir(), "vmlinux.gz")

	err := runExtract(from, to, false)
	notZbootErr := zheader.ErrNotZbootImage{}
	require.ErrorAs(t, err, &notZbootErr)

	_, err = os.Stat(to)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunExtract_Verify(t *testing.T) {
	gzipPayload := []byte{0x1F, 0x8B, 0x08, 0x00, 0x01}
	from := createImageFile(t, zboot.BuildImage("gzip", gzipPayload))
	to := filepath.Join(t.TempDir(), "vmlinux.gz")

	require.NoError(t, runExtract(from, to, true))

	// declared gzip, payload clearly is not
	from = createImageFile(t, zboot.BuildImage("gzip", []byte{0xAA, 0xBB, 0xCC, 0xDD}))
	to = filepath.Join(t.TempDir(), "vmlinux2.gz")
	err := runExtract(from, to, true)
	assert.Error(t, err)
	_, statErr := os.Stat(to)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

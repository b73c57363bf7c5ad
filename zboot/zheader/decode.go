package zheader

import (
	"bytes"

	"efiextract/zboot/zbytes"
	"github.com/pkg/errors"
)

// Decode turns the first HeaderSize bytes of bs into a Header. It is a
// pure function over the buffer: shorter inputs fail with
// ErrTruncatedHeader, a mismatch in any of the three magic fields fails
// with ErrNotZbootImage, and the multi-byte integer fields come out
// host-native regardless of the host's byte order.
//
// PayloadOffset and PayloadSize are not checked against the actual image
// length here; that is only meaningful once extraction is attempted.
func Decode(bs []byte) (*Header, error) {
	if len(bs) < HeaderSize {
		return nil, ErrTruncatedHeader{Length: len(bs)}
	}

	reader := zbytes.NewBytesReader(bs[:HeaderSize])
	header := Header{}
	err := error(nil)

	header.MsdosMagic, err = reader.ReadBytes(SizeMsdosMagic)
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.MsdosMagic")
	}
	header.Reserved0, err = reader.ReadBytes(SizeReserved0)
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.Reserved0")
	}
	header.Zimg, err = reader.ReadBytes(SizeZimg)
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.Zimg")
	}
	header.PayloadOffset, err = reader.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.PayloadOffset")
	}
	header.PayloadSize, err = reader.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.PayloadSize")
	}
	header.Reserved1, err = reader.ReadBytes(SizeReserved1)
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.Reserved1")
	}
	header.CompressionType, err = reader.ReadStringZ(SizeCompressionType)
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.CompressionType")
	}
	header.LinuxMagic, err = reader.ReadBytes(SizeLinuxMagic)
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.LinuxMagic")
	}
	header.PEHeaderOffset, err = reader.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read header.PEHeaderOffset")
	}

	if err := validateMagic(header); err != nil {
		return nil, err
	}

	return &header, nil
}

func validateMagic(header Header) error {
	checks := []struct {
		field    string
		expected []byte
		actual   []byte
	}{
		{"msdos_magic", MsdosMagicBytes, header.MsdosMagic},
		{"zimg", ZimgMagicBytes, header.Zimg},
		{"linux_magic", LinuxMagicBytes, header.LinuxMagic},
	}
	for _, check := range checks {
		if !bytes.Equal(check.expected, check.actual) {
			return ErrNotZbootImage{
				Field:    check.field,
				Expected: check.expected,
				Actual:   check.actual,
			}
		}
	}
	return nil
}

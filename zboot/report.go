package zboot

import (
	"fmt"

	"efiextract/zboot/zheader"
	"github.com/iancoleman/orderedmap"
)

// Report renders the metadata of a parsed header the way a human wants
// to read it.
func Report(header zheader.Header) string {
	return fmt.Sprintf(
		"Compression:      %s\n"+
			"Payload offset:   %d Bytes\n"+
			"Payload size:     %d Bytes\n"+
			"PE header offset: %d Bytes\n",
		header.CompressionType,
		header.PayloadOffset,
		header.PayloadSize,
		header.PEHeaderOffset,
	)
}

// ToOrderedMap turns a parsed header into an ordered map so JSON output
// keeps the fields in on-wire order.
func ToOrderedMap(header zheader.Header) *orderedmap.OrderedMap {
	result := orderedmap.New()
	result.Set("compression_type", header.CompressionType)
	result.Set("payload_offset", header.PayloadOffset)
	result.Set("payload_size", header.PayloadSize)
	result.Set("pe_header_offset", header.PEHeaderOffset)
	return result
}

package zbytes

import (
	"encoding/binary"
)

func EncodeUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

// EncodeStringZ lays a string out into a fixed-size buffer of n bytes,
// with the unused tail as zero padding. A string longer than n-1 bytes is
// cut so the buffer always keeps a terminating zero byte.
func EncodeStringZ(value string, n int) []byte {
	bs := make([]byte, n)
	if len(value) > n-1 {
		value = value[:n-1]
	}
	copy(bs, value)
	return bs
}

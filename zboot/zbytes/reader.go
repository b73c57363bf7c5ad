package zbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs := make([]byte, 4)
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return 0, err
	}
	result := binary.LittleEndian.Uint32(bs)
	return result, nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// return early to avoid EOF error
	// when reader's pointer reached end of the buffer
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// ReadStringZ reads a fixed-size buffer of n bytes and cuts the result at
// the first zero byte. The bytes after the first zero are padding and may
// hold garbage, which is why a plain right trim is not enough.
func (b *Reader) ReadStringZ(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(bs, 0); i != -1 {
		bs = bs[:i]
	}
	return string(bs), nil
}

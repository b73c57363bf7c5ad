package zbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
)

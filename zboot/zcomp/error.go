package zcomp

import (
	"fmt"
)

type (
	// ErrUnknownCompression reports a header compression label that no
	// known signature matches.
	ErrUnknownCompression struct {
		Label string
	}
	// ErrCompressionMismatch reports a payload whose leading bytes do not
	// match the compression label declared in the header. Sniffed holds
	// the name of the format the bytes do look like, or "" when nothing
	// matched.
	ErrCompressionMismatch struct {
		Label   string
		Sniffed string
	}
)

func (r ErrUnknownCompression) Error() string {
	return fmt.Sprintf(`unknown compression label "%s"`, r.Label)
}

func (r ErrCompressionMismatch) Error() string {
	if r.Sniffed == "" {
		return fmt.Sprintf(
			`payload does not look like "%s" data`,
			r.Label,
		)
	}
	return fmt.Sprintf(
		`header declares compression "%s" but the payload looks like "%s"`,
		r.Label, r.Sniffed,
	)
}

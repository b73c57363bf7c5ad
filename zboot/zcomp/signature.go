package zcomp

import (
	"bytes"
	"strings"

	"github.com/samber/lo"
)

// Matches reports whether prefix starts with any of the signature's
// magic byte sequences.
func (s Signature) Matches(prefix []byte) bool {
	return lo.SomeBy(
		s.Magics,
		func(magic []byte) bool {
			return bytes.HasPrefix(prefix, magic)
		},
	)
}

// Lookup resolves a compression label from a zboot header to a known
// signature. Labels may carry a level suffix ("zstd22" is zstd at level
// 22), so matching is by name prefix.
func Lookup(label string) (*Signature, bool) {
	for i := range KnownSignatures {
		if strings.HasPrefix(label, KnownSignatures[i].Name) {
			return &KnownSignatures[i], true
		}
	}
	return nil, false
}

// Sniff identifies a compression format from the leading payload bytes.
func Sniff(prefix []byte) (*Signature, bool) {
	for i := range KnownSignatures {
		if KnownSignatures[i].Matches(prefix) {
			return &KnownSignatures[i], true
		}
	}
	return nil, false
}

// Verify cross-checks a declared compression label against the leading
// payload bytes.
func Verify(label string, prefix []byte) error {
	signature, ok := Lookup(label)
	if !ok {
		return ErrUnknownCompression{Label: label}
	}
	if signature.Matches(prefix) {
		return nil
	}
	sniffed := ""
	if actual, ok := Sniff(prefix); ok {
		sniffed = actual.Name
	}
	return ErrCompressionMismatch{Label: label, Sniffed: sniffed}
}

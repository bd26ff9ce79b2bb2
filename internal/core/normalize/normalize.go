// Package normalize canonicalizes item identifiers so ids printed by different
// label software compare equal
// Pipeline order
// 1 Sanitize drop invalid bytes and control runes
// 2 Unicode NFKC normalization
// 3 Remove format runes (zero-width joiners, BOM)
// 4 Width fold fullwidth to ASCII
// 5 Trim surrounding whitespace
// Case is preserved, SKUs are case sensitive
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// ItemID returns the canonical form of an item id
func ItemID(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}
	return strings.TrimSpace(ns)
}

// Equal reports whether a and b canonicalize to the same id
func Equal(a, b string) bool { return ItemID(a) == ItemID(b) }

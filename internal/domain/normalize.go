package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for answer comparison:
//   - composes to Unicode NFC so precomposed and combining forms compare equal
//   - trims leading/trailing whitespace
//   - applies Unicode case folding
//   - compresses runs of whitespace into a single space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	// A Caser keeps state between calls, so one is built per invocation.
	text = cases.Fold().String(norm.NFC.String(text))

	return strings.Join(strings.Fields(text), " ")
}

package corpus

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatureReplacer expands ligatures and letters that carry no combining
// mark after decomposition.
var ligatureReplacer = strings.NewReplacer(
	"æ", "ae", // æ → ae
	"Æ", "Ae", // Æ → Ae
	"œ", "oe", // œ → oe
	"Œ", "Oe", // Œ → Oe
)

// jvReplacer converts j/v spelling to classical i/u.
var jvReplacer = strings.NewReplacer(
	"J", "I",
	"j", "i",
	"v", "u",
	"V", "U",
)

// RemoveMacrons strips every diacritic (macrons, breves, accents,
// diaereses) and expands ligatures, leaving plain Latin letters.
func RemoveMacrons(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// the chain cannot fail on valid UTF-8; keep the input otherwise
		out = s
	}
	return ligatureReplacer.Replace(out)
}

// ReplaceJV converts j→i, J→I, v→u and V→U.
func ReplaceJV(s string) string {
	return jvReplacer.Replace(s)
}

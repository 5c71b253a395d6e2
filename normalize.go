package declinatio

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// breveReplacer maps vowels explicitly marked short (breve) to the bare
// short vowel, which is how the classification tables write them.
var breveReplacer = strings.NewReplacer(
	"ă", "a", // ă → a
	"ĕ", "e", // ĕ → e
	"ĭ", "i", // ĭ → i
	"ŏ", "o", // ŏ → o
	"ŭ", "u", // ŭ → u
	"ў", "y", // ў → y
	"Ă", "A", // Ă → A
	"Ĕ", "E", // Ĕ → E
	"Ĭ", "I", // Ĭ → I
	"Ŏ", "O", // Ŏ → O
	"Ŭ", "U", // Ŭ → U
	"Ў", "Y", // Ў → Y
)

// macronAliases maps look-alike long vowels found in older data files
// (Cyrillic u with macron) onto the Latin letters of the tables.
var macronAliases = strings.NewReplacer(
	"ӯ", "ȳ", // ӯ → ȳ
	"Ӯ", "Ȳ", // Ӯ → Ȳ
)

// NormalizeStem trims s, composes combining marks into precomposed letters
// (a + U+0304 → ā), drops breves and maps macron look-alikes onto ȳ.
func NormalizeStem(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = breveReplacer.Replace(s)
	// a combining breve left over after composition has no precomposed form
	s = strings.ReplaceAll(s, "\u0306", "")
	return macronAliases.Replace(s)
}

package declinatio

import (
	"fmt"
	"slices"
)

// Classification tables. shortVowels and longVowels correspond
// position by position.
var (
	shortVowels = []rune{'a', 'e', 'i', 'o', 'u', 'y'}
	longVowels  = []rune{'ā', 'ē', 'ī', 'ō', 'ū', 'ȳ'}
	stops       = []rune{'p', 'b', 't', 'd', 'c', 'g', 'k'}
	dentals     = []rune{'t', 'd'}
	velars      = []rune{'c', 'g', 'k'}
)

// diphthongs are vowel pairs that form a single syllable nucleus.
var diphthongs = map[string]bool{
	"ae": true,
	"au": true,
	"oe": true,
	"ei": true,
	"eu": true,
}

// Classification predicates over the tables above.
func IsShortVowel(r rune) bool { return slices.Contains(shortVowels, r) }
func IsLongVowel(r rune) bool { return slices.Contains(longVowels, r) }
func IsVowel(r rune) bool { return IsShortVowel(r) || IsLongVowel(r) }
func IsStop(r rune) bool { return slices.Contains(stops, r) }
func IsDental(r rune) bool { return slices.Contains(dentals, r) }
func IsVelar(r rune) bool { return slices.Contains(velars, r) }

// ShortenVowel maps a long vowel to its short counterpart.
func ShortenVowel(v rune) (rune, error) {
	i := slices.Index(longVowels, v)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q is not a long vowel", ErrInvalidInput, v)
	}
	return shortVowels[i], nil
}

// LengthenVowel maps a short vowel to its long counterpart.
func LengthenVowel(v rune) (rune, error) {
	i := slices.Index(shortVowels, v)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q is not a short vowel", ErrInvalidInput, v)
	}
	return longVowels[i], nil
}

// Rhotacism turns a stem-final s into r when a vowel (short or long)
// precedes it: flōs → flōr, cinis → ciner. Other stems are returned
// unchanged.
func Rhotacism(s Stem) Stem {
	r := []rune(string(s))
	n := len(r)
	if n < 2 || r[n-1] != 's' || !IsVowel(r[n-2]) {
		return s
	}
	r[n-1] = 'r'
	return Stem(r)
}

// VowelWeakening reduces the short vowel before the final consonant to i,
// or to e before r: mīlet → mīlit, ciner → ciner. It expects a stem that
// has already gone through Rhotacism.
//
// The stem is left alone when it has fewer than two phonemes, when the
// third phoneme from the end is i, or when the second from the end is not
// a short vowel.
func VowelWeakening(s Stem) Stem {
	r := []rune(string(s))
	n := len(r)
	if n < 2 {
		return s
	}
	if n >= 3 && r[n-3] == 'i' {
		return s
	}
	if !IsShortVowel(r[n-2]) {
		return s
	}
	if r[n-1] == 'r' {
		r[n-2] = 'e'
	} else {
		r[n-2] = 'i'
	}
	return Stem(r)
}

// weaken applies Rhotacism and then VowelWeakening, the preparation every
// consonant-final stem receives before a vowel-initial ending.
func weaken(s Stem) string {
	return string(VowelWeakening(Rhotacism(s)))
}

// Nuclei returns the syllable nuclei of s in order. Every vowel opens a
// nucleus, except the second member of a diphthong (ae, au, oe, ei, eu)
// and a u following q.
func Nuclei(s Stem) []string {
	r := []rune(string(s))
	var out []string
	for i := 0; i < len(r); i++ {
		if !IsVowel(r[i]) {
			continue
		}
		if r[i] == 'u' && i > 0 && r[i-1] == 'q' {
			continue
		}
		if i+1 < len(r) && diphthongs[string(r[i:i+2])] {
			out = append(out, string(r[i:i+2]))
			i++
			continue
		}
		out = append(out, string(r[i]))
	}
	return out
}

// SyllableCount returns the number of syllable nuclei in s.
func SyllableCount(s Stem) int {
	return len(Nuclei(s))
}

// isShortNucleus reports whether a nucleus is a single short vowel.
// Diphthongs count as long.
func isShortNucleus(nucleus string) bool {
	r := []rune(nucleus)
	return len(r) == 1 && IsShortVowel(r[0])
}

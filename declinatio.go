// Package declinatio derives the singular case forms of Latin nouns from
// their historical stems by applying an ordered set of sound changes:
// vowel shortening and lengthening, rhotacism, vowel weakening and
// consonant assimilation.
//
// Every operation is a pure function of a Stem. Nothing is cached and
// nothing is mutated, so all functions are safe for concurrent use.
package declinatio

import "fmt"

// Stem is the abstract historical base form of a noun, e.g. "mīlet" or
// "puero". Long vowels are written with precomposed macron letters.
type Stem string

// NewStem normalizes s (see NormalizeStem) and returns it as a Stem.
// An empty or blank input yields ErrInvalidInput.
func NewStem(s string) (Stem, error) {
	s = NormalizeStem(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty stem", ErrInvalidInput)
	}
	return Stem(s), nil
}

// String returns the stem as written.
func (s Stem) String() string {
	return string(s)
}

// Len returns the number of phonemes (runes) in s.
func (s Stem) Len() int {
	return len([]rune(string(s)))
}

// Last returns the final phoneme of s, or 0 for an empty stem.
func (s Stem) Last() rune {
	return s.fromEnd(1)
}

// fromEnd returns the n-th phoneme counted from the end (1 = last),
// or 0 when s is too short.
func (s Stem) fromEnd(n int) rune {
	r := []rune(string(s))
	if n < 1 || n > len(r) {
		return 0
	}
	return r[len(r)-n]
}

// phonemes splits s into runes and rejects the empty stem.
func (s Stem) phonemes() ([]rune, error) {
	r := []rune(string(s))
	if len(r) == 0 {
		return nil, fmt.Errorf("%w: empty stem", ErrInvalidInput)
	}
	return r, nil
}

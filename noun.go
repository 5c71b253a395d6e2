package declinatio

import (
	"fmt"
	"strings"
)

// Noun pairs a Stem with the grammatical metadata of a dictionary noun
// and derives its singular case forms.
type Noun struct {
	Stem   Stem
	Gender Gender
	// Irregular is reserved for nouns whose forms come from a lexicon
	// rather than the rules; no operation consults it.
	Irregular bool
}

// NewNoun normalizes stem and wraps it in a Noun.
func NewNoun(stem string, gender Gender) (Noun, error) {
	s, err := NewStem(stem)
	if err != nil {
		return Noun{}, err
	}
	return Noun{Stem: s, Gender: gender}, nil
}

// NominativeSingular leaves a-stems as they are (puella) and
// attaches -s to everything else.
func (n Noun) NominativeSingular() (string, error) {
	if n.Stem.Last() == 'a' {
		return string(n.Stem), nil
	}
	return AddS(n.Stem)
}

// GenitiveSingular uses the old -ei for a-, o- and ē-stems and -is
// elsewhere.
func (n Noun) GenitiveSingular() (string, error) {
	switch n.Stem.Last() {
	case 'a', 'o', 'ē':
		return AddI(n.Stem)
	}
	return AddIs(n.Stem)
}

// DativeSingular attaches the old -ei (mīlitī, puellae).
func (n Noun) DativeSingular() (string, error) {
	return AddI(n.Stem)
}

// AccusativeSingular attaches -m (mīlitem, lupum).
func (n Noun) AccusativeSingular() (string, error) {
	return AddM(n.Stem)
}

// AblativeSingular lengthens a final a, i, o or u, attaches -e to
// consonant stems and leaves ē-stems unchanged. Stems in e, y or another
// long vowel have no ablative rule.
func (n Noun) AblativeSingular() (string, error) {
	r, err := n.Stem.phonemes()
	if err != nil {
		return "", err
	}
	last := r[len(r)-1]
	switch {
	case last == 'a' || last == 'i' || last == 'o' || last == 'u':
		long, err := LengthenVowel(last)
		if err != nil {
			return "", err
		}
		return string(r[:len(r)-1]) + string(long), nil
	case last == 'ē':
		return string(n.Stem), nil
	case !IsVowel(last):
		return AddE(n.Stem)
	}
	return "", fmt.Errorf("%w: ablative singular of %q", ErrUnspecified, n.Stem)
}

// VocativeSingular equals the nominative except for o-stems: -io gives
// -ī (fīlio → fīlī), -er nominatives are kept (puer) and the rest turn
// the o into e (lupo → lupe).
func (n Noun) VocativeSingular() (string, error) {
	r, err := n.Stem.phonemes()
	if err != nil {
		return "", err
	}
	k := len(r)
	if r[k-1] != 'o' {
		return n.NominativeSingular()
	}
	if k >= 2 && r[k-2] == 'i' {
		return string(r[:k-2]) + "ī", nil
	}
	nom, err := AddS(n.Stem)
	if err != nil {
		return "", err
	}
	if strings.HasSuffix(nom, "r") {
		return nom, nil
	}
	return string(r[:k-1]) + "e", nil
}

// Decline dispatches to the operation for case c.
func (n Noun) Decline(c Case) (string, error) {
	switch c {
	case Nominative:
		return n.NominativeSingular()
	case Genitive:
		return n.GenitiveSingular()
	case Dative:
		return n.DativeSingular()
	case Accusative:
		return n.AccusativeSingular()
	case Ablative:
		return n.AblativeSingular()
	case Vocative:
		return n.VocativeSingular()
	}
	return "", fmt.Errorf("%w: unknown case %d", ErrInvalidInput, int(c))
}

// Apply runs a single ending operation on the noun's stem.
func (n Noun) Apply(e Ending) (string, error) {
	fn, ok := e.Func()
	if !ok {
		return "", fmt.Errorf("%w: unknown ending %q", ErrInvalidInput, string(e))
	}
	return fn(n.Stem)
}

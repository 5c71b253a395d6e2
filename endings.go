package declinatio

import "fmt"

// EndingFunc applies one historical case/number suffix to a stem and
// returns the surface form.
type EndingFunc func(Stem) (string, error)

// AddS attaches the nominative -s.
//
//	mīlet → mīles   (dental dropped)
//	sorōr → soror   (s lost after r, vowel shortened)
//	homon → homō    (n lost, compensatory lengthening; -en stays)
//	rēg   → rēx     (velar + s)
//	puero → puer    (-er syncope), lupo → lupus
func AddS(s Stem) (string, error) {
	r, err := s.phonemes()
	if err != nil {
		return "", err
	}
	n := len(r)
	last := r[n-1]
	var prev rune
	if n >= 2 {
		prev = r[n-2]
	}

	switch {
	case IsDental(last):
		return string(r[:n-1]) + "s", nil

	case last == 'r' && IsLongVowel(prev):
		short, err := ShortenVowel(prev)
		if err != nil {
			return "", err
		}
		return string(r[:n-2]) + string(short) + "r", nil

	case last == 'n':
		if prev == 'e' {
			return string(s), nil
		}
		if IsShortVowel(prev) {
			long, err := LengthenVowel(prev)
			if err != nil {
				return "", err
			}
			return string(r[:n-2]) + string(long), nil
		}
		if n == 1 {
			return "", fmt.Errorf("%w: -s would leave nothing of %q", ErrUnspecified, s)
		}
		return string(r[:n-1]), nil

	case IsVelar(last):
		return string(r[:n-1]) + "x", nil

	case last == 'e':
		return string(s) + "ēs", nil

	case last == 's':
		return string(s), nil

	case last == 'o':
		return addSToO(s, r), nil
	}
	return string(s) + "s", nil
}

// addSToO handles second-declension stems. A three-syllable stem in -ro
// whose penultimate nucleus is a short vowel loses its final vowel and
// surfaces in -er; every other o-stem takes -us.
func addSToO(s Stem, r []rune) string {
	n := len(r)
	nuclei := Nuclei(s)
	if n >= 3 && r[n-2] == 'r' && len(nuclei) == 3 && isShortNucleus(nuclei[1]) {
		if r[n-3] == 'e' {
			return string(r[:n-1])
		}
		return string(r[:n-2]) + "er"
	}
	return string(r[:n-1]) + "us"
}

// AddM attaches the accusative -m.
func AddM(s Stem) (string, error) {
	r, err := s.phonemes()
	if err != nil {
		return "", err
	}
	n := len(r)
	last := r[n-1]

	switch {
	case last == 'o':
		return string(r[:n-1]) + "um", nil
	case IsShortVowel(last):
		return string(s) + "m", nil
	case IsLongVowel(last):
		short, err := ShortenVowel(last)
		if err != nil {
			return "", err
		}
		return string(r[:n-1]) + string(short) + "m", nil
	}
	return weaken(s) + "em", nil
}

// AddI attaches the historical -ei, realized as ī (or as the
// diphthong ae after a).
func AddI(s Stem) (string, error) {
	r, err := s.phonemes()
	if err != nil {
		return "", err
	}
	n := len(r)
	last := r[n-1]

	switch {
	case last == 'a':
		return string(s) + "e", nil
	case last == 'o':
		return string(r[:n-1]) + "ī", nil
	case IsShortVowel(last):
		return string(s) + "ī", nil
	case last == 'ē' && n >= 2 && IsVowel(r[n-2]):
		return string(s) + "ī", nil
	case IsLongVowel(last):
		short, err := ShortenVowel(last)
		if err != nil {
			return "", err
		}
		return string(r[:n-1]) + string(short) + "ī", nil
	}
	return weaken(s) + "ī", nil
}

// AddNS attaches the accusative plural -ns. After a vowel the n is lost
// and a short vowel is lengthened in compensation.
func AddNS(s Stem) (string, error) {
	r, err := s.phonemes()
	if err != nil {
		return "", err
	}
	n := len(r)
	last := r[n-1]

	switch {
	case IsShortVowel(last):
		long, err := LengthenVowel(last)
		if err != nil {
			return "", err
		}
		return string(r[:n-1]) + string(long) + "s", nil
	case IsLongVowel(last):
		return string(s) + "s", nil
	}
	return weaken(s) + "ēs", nil
}

// AddSum attaches the genitive plural -som, which surfaces as -rum.
// Only a stem consisting of a single short vowel is lengthened first.
func AddSum(s Stem) (string, error) {
	r, err := s.phonemes()
	if err != nil {
		return "", err
	}
	if len(r) == 1 && IsShortVowel(r[0]) {
		long, err := LengthenVowel(r[0])
		if err != nil {
			return "", err
		}
		return string(long) + "rum", nil
	}
	return string(s) + "rum", nil
}

// AddE attaches the ablative -e.
func AddE(s Stem) (string, error) {
	if _, err := s.phonemes(); err != nil {
		return "", err
	}
	return weaken(s) + "e", nil
}

// AddIs attaches the genitive -is. Stems in a long vowel have no rule.
func AddIs(s Stem) (string, error) {
	r, err := s.phonemes()
	if err != nil {
		return "", err
	}
	n := len(r)
	last := r[n-1]

	switch {
	case last == 'u':
		return string(r[:n-1]) + "ūs", nil
	case IsShortVowel(last):
		return string(r[:n-1]) + "is", nil
	case IsLongVowel(last):
		return "", fmt.Errorf("%w: -is after long vowel in %q", ErrUnspecified, s)
	}
	return weaken(s) + "is", nil
}

// AddEis attaches the dative/ablative plural -eis, which replaces the
// final vowel with īs.
func AddEis(s Stem) (string, error) {
	r, err := s.phonemes()
	if err != nil {
		return "", err
	}
	n := len(r)
	if !IsVowel(r[n-1]) {
		return "", fmt.Errorf("%w: -eis after consonant in %q", ErrUnspecified, s)
	}
	return string(r[:n-1]) + "īs", nil
}

// AddIbus attaches the dative/ablative plural -ibus.
func AddIbus(s Stem) (string, error) {
	r, err := s.phonemes()
	if err != nil {
		return "", err
	}
	n := len(r)
	last := r[n-1]

	switch {
	case IsLongVowel(last):
		return string(s) + "bus", nil
	case last == 'a':
		return string(r[:n-1]) + "ābus", nil
	case IsShortVowel(last):
		return string(r[:n-1]) + "ibus", nil
	}
	return weaken(s) + "ibus", nil
}

// AddEs is declared for the third-declension nominative plural but has
// no rule.
func AddEs(s Stem) (string, error) {
	return "", unimplemented("es", s)
}

// AddUm is declared for the third-declension genitive plural but has
// no rule.
func AddUm(s Stem) (string, error) {
	return "", unimplemented("um", s)
}

// AddNTS is declared for participial -nt- stems but has no rule.
func AddNTS(s Stem) (string, error) {
	return "", unimplemented("nts", s)
}

func unimplemented(ending string, s Stem) error {
	return fmt.Errorf("%w: ending -%s (stem %q)", ErrUnimplemented, ending, s)
}

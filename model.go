package declinatio

import (
	"fmt"
	"strings"
)

// Gender is carried by a Noun but does not influence any rule yet.
type Gender rune

const (
	Masculine Gender = 'm'
	Feminine  Gender = 'f'
	Neuter    Gender = 'n'
)

// String returns the full English name of g.
func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	default:
		return "unknown"
	}
}

// ParseGender accepts "m", "f", "n" or the full English names.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "masc", "masculine":
		return Masculine, nil
	case "f", "fem", "feminine":
		return Feminine, nil
	case "n", "neut", "neuter":
		return Neuter, nil
	}
	return 0, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, s)
}

// Case is a singular grammatical case.
type Case int

const (
	Nominative Case = iota + 1
	Genitive
	Dative
	Accusative
	Ablative
	Vocative
)

// Cases lists the singular cases in traditional table order.
var Cases = []Case{Nominative, Genitive, Dative, Accusative, Ablative, Vocative}

var caseNames = map[Case]string{
	Nominative: "nominative",
	Genitive:   "genitive",
	Dative:     "dative",
	Accusative: "accusative",
	Ablative:   "ablative",
	Vocative:   "vocative",
}

// String returns the English name of c, e.g. "genitive".
func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

// Abbrev returns the grammar-book abbreviation, e.g. "nom. sg.".
func (c Case) Abbrev() string {
	name, ok := caseNames[c]
	if !ok {
		return "?"
	}
	return name[:3] + ". sg."
}

// Ending names a historical case/number suffix.
type Ending string

const (
	EndingS    Ending = "s"
	EndingM    Ending = "m"
	EndingI    Ending = "ei"
	EndingNS   Ending = "ns"
	EndingSum  Ending = "sum"
	EndingE    Ending = "e"
	EndingIs   Ending = "is"
	EndingEis  Ending = "eis"
	EndingIbus Ending = "ibus"
	EndingEs   Ending = "es"
	EndingUm   Ending = "um"
	EndingNTS  Ending = "nts"
)

// Endings lists every ending operation, implemented or not.
var Endings = []Ending{
	EndingS, EndingM, EndingI, EndingNS, EndingSum, EndingE,
	EndingIs, EndingEis, EndingIbus, EndingEs, EndingUm, EndingNTS,
}

var endingFuncs = map[Ending]EndingFunc{
	EndingS:    AddS,
	EndingM:    AddM,
	EndingI:    AddI,
	EndingNS:   AddNS,
	EndingSum:  AddSum,
	EndingE:    AddE,
	EndingIs:   AddIs,
	EndingEis:  AddEis,
	EndingIbus: AddIbus,
	EndingEs:   AddEs,
	EndingUm:   AddUm,
	EndingNTS:  AddNTS,
}

var unimplementedEndings = map[Ending]bool{
	EndingEs:  true,
	EndingUm:  true,
	EndingNTS: true,
}

// Func returns the operation implementing e.
func (e Ending) Func() (EndingFunc, bool) {
	fn, ok := endingFuncs[e]
	return fn, ok
}

// Implemented reports whether e carries a rule.
func (e Ending) Implemented() bool {
	_, known := endingFuncs[e]
	return known && !unimplementedEndings[e]
}

// ParseEnding accepts an ending name with or without the historical
// "+" or "add_" prefix: "ibus", "+ibus" and "add_ibus" are equivalent.
// "i" is accepted for "ei".
func ParseEnding(s string) (Ending, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "add_")
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimPrefix(s, "-")
	if s == "i" {
		s = string(EndingI)
	}
	e := Ending(s)
	if _, ok := endingFuncs[e]; !ok {
		return "", fmt.Errorf("%w: unknown ending %q", ErrInvalidInput, s)
	}
	return e, nil
}

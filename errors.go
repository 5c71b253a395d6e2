package declinatio

import "errors"

var (
	// ErrInvalidInput is returned when a vowel-table lookup receives a
	// character outside the expected vowel set, or when a stem is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnspecified marks stem/ending combinations for which the rule
	// set defines no result.
	ErrUnspecified = errors.New("unspecified behavior")

	// ErrUnimplemented marks ending operations that are declared
	// but carry no rule.
	ErrUnimplemented = errors.New("unimplemented")
)

// Outcome classifies the result of a derivation.
type Outcome string

// Outcomes of a derivation. Only OutcomeOK carries a form.
const (
	OutcomeOK            Outcome = "ok"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeUnspecified   Outcome = "unspecified"
	OutcomeUnimplemented Outcome = "unimplemented"
)

// OutcomeOf maps an error returned by an ending or case operation
// to its Outcome. A nil error is OutcomeOK.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrUnimplemented):
		return OutcomeUnimplemented
	case errors.Is(err, ErrUnspecified):
		return OutcomeUnspecified
	default:
		return OutcomeInvalid
	}
}

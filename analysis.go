package declinatio

// Form is one cell of a Paradigm: the derived surface form, or the reason
// there is none.
type Form struct {
	// Value is the surface form; empty unless Outcome is OutcomeOK.
	Value string
	// Outcome classifies the derivation.
	Outcome Outcome
	// Err is the error returned by the operation, nil for OutcomeOK.
	Err error
}

// Paradigm holds every singular case form of a noun together with the
// raw result of each ending operation on its stem.
type Paradigm struct {
	// Noun is the noun the paradigm was derived from.
	Noun Noun
	// Cases maps each singular case to its form.
	Cases map[Case]Form
	// Endings maps each ending operation to its result.
	Endings map[Ending]Form
}

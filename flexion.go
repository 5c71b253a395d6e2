package declinatio

// NewParadigm derives every case and every ending cell for n.
// Cells whose operation fails keep the error and its Outcome, so gaps in
// the rule set stay visible.
func NewParadigm(n Noun) *Paradigm {
	p := &Paradigm{
		Noun:    n,
		Cases:   make(map[Case]Form, len(Cases)),
		Endings: make(map[Ending]Form, len(Endings)),
	}
	for _, c := range Cases {
		p.Cases[c] = newForm(n.Decline(c))
	}
	for _, e := range Endings {
		p.Endings[e] = newForm(n.Apply(e))
	}
	return p
}

// Form returns the cell for case c.
func (p *Paradigm) Form(c Case) Form {
	return p.Cases[c]
}

// Forms returns the surface forms of the cases that derived successfully,
// in table order, without duplicates.
func (p *Paradigm) Forms() []string {
	var forms []string
	seen := make(map[string]bool, len(Cases))
	for _, c := range Cases {
		f := p.Cases[c]
		if f.Outcome != OutcomeOK || seen[f.Value] {
			continue
		}
		seen[f.Value] = true
		forms = append(forms, f.Value)
	}
	return forms
}

func newForm(value string, err error) Form {
	if err != nil {
		return Form{Outcome: OutcomeOf(err), Err: err}
	}
	return Form{Value: value, Outcome: OutcomeOK}
}

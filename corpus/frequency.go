package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Frequency is the number of occurrences of a word form.
type Frequency struct {
	Form  string
	Count int
}

// Options control which tokens are counted.
type Options struct {
	// Tagger, when set, removes proper nouns.
	Tagger Tagger
	// SplitQue counts the host word of an enclitic -que instead of the
	// whole token.
	SplitQue bool
}

// FilterTokens applies opts to tokens and returns lowercase word forms
// without trailing periods. Proper nouns are checked before lowercasing.
func FilterTokens(tokens []string, opts Options) []string {
	var out []string
	for _, tok := range tokens {
		w := Word(strings.TrimRight(tok, "."))
		if w == "" || w.IsProperNoun(opts.Tagger) {
			continue
		}
		if opts.SplitQue {
			w = w.WithoutQue()
		}
		out = append(out, strings.ToLower(string(w)))
	}
	return out
}

// Frequencies counts forms and sorts them by descending count, then
// alphabetically.
func Frequencies(forms []string) []Frequency {
	counts := make(map[string]int)
	for _, f := range forms {
		counts[f]++
	}
	out := make([]Frequency, 0, len(counts))
	for form, n := range counts {
		out = append(out, Frequency{Form: form, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Form < out[j].Form
	})
	return out
}

// UniqueForms returns the distinct tokens of text in first-seen order.
func UniqueForms(text string) []string {
	return unique(Tokens(text))
}

// CompileLemmata returns the distinct lemmata of text in first-seen
// order. Proper nouns recognized by tagger are ignored and enclitic -que
// is split off its host word before lemmatization. The enclitic itself
// counts as a form ("que").
func CompileLemmata(text string, tagger Tagger, lem Lemmatizer) []string {
	forms := append([]string{"que"}, UniqueForms(text)...)

	seen := make(map[string]bool, len(forms))
	var kept []string
	keep := func(f string) {
		if !seen[f] {
			seen[f] = true
			kept = append(kept, f)
		}
	}
	for _, f := range forms {
		w := Word(f)
		switch {
		case w.IsProperNoun(tagger):
			continue
		case w.HasEncliticQue():
			keep(string(w.WithoutQue()))
		default:
			keep(f)
		}
	}

	for i, f := range kept {
		kept[i] = strings.ToLower(f)
	}

	var lemmata []string
	for _, p := range lem.Lemmatize(kept) {
		lemmata = append(lemmata, p.Lemma)
	}
	return unique(lemmata)
}

// WriteFrequenciesCSV writes a "form,count" table.
func WriteFrequenciesCSV(w io.Writer, freqs []Frequency) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"form", "count"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, f := range freqs {
		if err := cw.Write([]string{f.Form, strconv.Itoa(f.Count)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLemmataCSV writes a one-column "lemma" table.
func WriteLemmataCSV(w io.Writer, lemmata []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"lemma"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, l := range lemmata {
		if err := cw.Write([]string{l}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// unique drops repeated strings, keeping the first occurrence of each.
func unique(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	return slices.DeleteFunc(slices.Clone(ss), func(s string) bool {
		dup := seen[s]
		seen[s] = true
		return dup
	})
}

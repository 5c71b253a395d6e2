package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// LemmaPair associates a word form with its lemma.
type LemmaPair struct {
	Form  string
	Lemma string
}

// Lemmatizer maps word forms to lemmata, one pair per input form and in
// input order.
type Lemmatizer interface {
	Lemmatize(forms []string) []LemmaPair
}

// Lexicon is a dictionary Lemmatizer. Forms it does not know are their
// own lemma.
type Lexicon struct {
	entries map[string]string
}

// NewLexicon builds a Lexicon from a form → lemma map. Keys are
// normalized like tokens (lowercase, no macrons, i/u).
func NewLexicon(entries map[string]string) *Lexicon {
	lx := &Lexicon{entries: make(map[string]string, len(entries))}
	for form, lemma := range entries {
		lx.Add(form, lemma)
	}
	return lx
}

// Add registers form as an inflected form of lemma.
func (lx *Lexicon) Add(form, lemma string) {
	lx.entries[lexiconKey(form)] = strings.TrimSpace(lemma)
}

// Len returns the number of known forms.
func (lx *Lexicon) Len() int {
	return len(lx.entries)
}

// Lookup returns the lemma of form and whether it was found.
func (lx *Lexicon) Lookup(form string) (string, bool) {
	lemma, ok := lx.entries[lexiconKey(form)]
	return lemma, ok
}

// Lemmatize pairs each form with its lemma. Unknown forms are their own
// lemma.
func (lx *Lexicon) Lemmatize(forms []string) []LemmaPair {
	out := make([]LemmaPair, 0, len(forms))
	for _, f := range forms {
		lemma, ok := lx.Lookup(f)
		if !ok {
			lemma = f
		}
		out = append(out, LemmaPair{Form: f, Lemma: lemma})
	}
	return out
}

func lexiconKey(form string) string {
	return strings.ToLower(ReplaceJV(RemoveMacrons(strings.TrimSpace(form))))
}

// LoadLexicon reads a lexicon file at path.
// Format: "form:lemma", one entry per line; blank lines and lines
// starting with "!" are skipped, as are lines without a colon.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	lx := NewLexicon(nil)
	skipped := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx <= 0 || idx == len(line)-1 {
			skipped++
			continue
		}
		lx.Add(line[:idx], line[idx+1:])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	log.Debug().
		Str("path", path).
		Int("forms", lx.Len()).
		Int("skipped", skipped).
		Msg("lexicon loaded")
	return lx, nil
}

// Package corpus prepares plain-text Latin passages for vocabulary work:
// it splits a text into sentences, strips punctuation, numerals, macrons
// and editorial marks, separates the enclitic -que, drops proper nouns and
// tabulates word forms or lemmata.
package corpus

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
)

// sentenceEnds are the punctuation marks that close a sentence.
const sentenceEnds = ".!?;:"

// clauseEnds close a sentence too, but Punkt only knows . ! and ?.
const clauseEnds = ";:"

// nonAlpha lists the characters RemoveNonAlpha deletes. Periods survive
// because abbreviations keep them.
const nonAlpha = ",0123456789(){}[]*<>-+'†\"“”„«»‘’"

// latinPunkt is a Punkt model whose abbreviation types are the Roman
// praenomina, magistracies, month names of dates and common citation
// abbreviations.
//
//go:embed punkt/latin.json
var latinPunkt []byte

var sentenceTokenizer = newSentenceTokenizer(latinPunkt)

func newSentenceTokenizer(training []byte) *sentences.DefaultSentenceTokenizer {
	storage, err := sentences.LoadTraining(training)
	if err != nil {
		panic(fmt.Sprintf("corpus: load punkt model: %v", err))
	}
	return sentences.NewSentenceTokenizer(storage)
}

// ReadWork returns the whole content of the text file at path.
func ReadWork(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read work %s: %w", path, err)
	}
	return string(data), nil
}

// SplitSentences splits text with the Punkt tokenizer, so a period closing
// an abbreviation (M. Tullius, a. d. III Kal. Ian.) does not end a
// sentence. Each Punkt sentence is split again at ; and : followed by
// whitespace. Sentences keep their closing mark; blank sentences are
// dropped.
func SplitSentences(text string) []string {
	var out []string
	for _, sent := range sentenceTokenizer.Tokenize(text) {
		out = append(out, splitClauses(sent.Text)...)
	}
	return out
}

// splitClauses splits s after every ; or : that is followed by whitespace
// or ends s.
func splitClauses(s string) []string {
	r := []rune(s)
	var out []string
	start := 0
	for i, c := range r {
		if !strings.ContainsRune(clauseEnds, c) {
			continue
		}
		if i+1 < len(r) && !unicode.IsSpace(r[i+1]) {
			continue
		}
		if part := strings.TrimSpace(string(r[start : i+1])); part != "" {
			out = append(out, part)
		}
		start = i + 1
	}
	if part := strings.TrimSpace(string(r[start:])); part != "" {
		out = append(out, part)
	}
	return out
}

// Sentence is a single sentence going through the cleaning steps.
// Each step returns a new Sentence.
type Sentence string

// String returns the sentence text.
func (s Sentence) String() string {
	return string(s)
}

// RemoveFinalPunctuation drops the closing mark of s, if it has one.
// Whitespace after the mark is ignored.
func (s Sentence) RemoveFinalPunctuation() Sentence {
	r := []rune(strings.TrimRightFunc(string(s), unicode.IsSpace))
	if len(r) == 0 || !strings.ContainsRune(sentenceEnds, r[len(r)-1]) {
		return s
	}
	return Sentence(r[:len(r)-1])
}

// RemoveNewlines joins the lines of s with single spaces.
func (s Sentence) RemoveNewlines() Sentence {
	lines := strings.FieldsFunc(string(s), func(c rune) bool {
		return c == '\n' || c == '\r'
	})
	return Sentence(strings.Join(lines, " "))
}

// RemoveNonAlpha deletes numerals, most punctuation and editorial signs
// (brackets, daggers, asterisks). Periods are kept.
func (s Sentence) RemoveNonAlpha() Sentence {
	return Sentence(strings.Map(func(c rune) rune {
		if strings.ContainsRune(nonAlpha, c) {
			return -1
		}
		return c
	}, string(s)))
}

// RemoveMacrons strips vowel-quantity marks and other diacritics.
func (s Sentence) RemoveMacrons() Sentence {
	return Sentence(RemoveMacrons(string(s)))
}

// ReplaceJV standardizes j/v to i/u.
func (s Sentence) ReplaceJV() Sentence {
	return Sentence(ReplaceJV(string(s)))
}

// Clean runs every cleaning step in order. Non-letters go first so that a
// closing quote or bracket does not hide the final mark.
func (s Sentence) Clean() Sentence {
	return s.RemoveNonAlpha().
		RemoveFinalPunctuation().
		RemoveNewlines().
		RemoveMacrons().
		ReplaceJV()
}

// Tokenize splits s on spaces. Tokens may still carry periods of
// abbreviations; empty tokens and bare periods left behind by numerals
// are dropped.
func (s Sentence) Tokenize() []string {
	var out []string
	for _, tok := range strings.Split(string(s), " ") {
		if tok = strings.TrimSpace(tok); strings.Trim(tok, ".") != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Tokens splits text into sentences, cleans each and returns all
// tokens in text order.
func Tokens(text string) []string {
	var out []string
	for _, s := range SplitSentences(text) {
		out = append(out, Sentence(s).Clean().Tokenize()...)
	}
	return out
}

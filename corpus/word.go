package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// queWords end in -que without carrying the enclitic.
var queWords = map[string]struct{}{
	// adverbs and conjunctions
	"atque": {}, "denique": {}, "itaque": {}, "namque": {}, "neque": {},
	"quoque": {}, "undique": {},
	// inflected quisque, uterque and friends
	"plerique": {}, "plerumque": {}, "plerisque": {}, "quaeque": {},
	"quaque": {}, "quasque": {}, "quemque": {}, "quique": {}, "quisque": {},
	"quodque": {}, "quorumque": {}, "uterque": {}, "utramque": {}, "utraque": {},
	"utrisque": {}, "utriusque": {}, "utrumque": {},
	// -cumque
	"quascumque": {}, "quibuscumque": {}, "quodcumque": {}, "quaecumque": {},
}

// Tagger recognizes proper nouns.
type Tagger interface {
	IsProperNoun(word string) bool
}

// Word is a single token, possibly abbreviated or carrying an enclitic.
type Word string

// HasEncliticQue reports whether w ends in the enclitic -que.
func (w Word) HasEncliticQue() bool {
	if utf8.RuneCountInString(string(w)) <= 3 || !strings.HasSuffix(string(w), "que") {
		return false
	}
	_, listed := queWords[strings.ToLower(string(w))]
	return !listed
}

// WithoutQue returns w without the enclitic, or w itself when it has none.
func (w Word) WithoutQue() Word {
	if !w.HasEncliticQue() {
		return w
	}
	return w[:len(w)-len("que")]
}

// IsProperNoun asks t whether w is a name. A nil Tagger knows no names.
func (w Word) IsProperNoun(t Tagger) bool {
	if t == nil {
		return false
	}
	return t.IsProperNoun(string(w))
}

// NameList is a Tagger backed by a fixed list of proper names. Lookups
// are case-sensitive and ignore a trailing period.
type NameList struct {
	names map[string]struct{}
}

// NewNameList builds a NameList from names.
func NewNameList(names ...string) *NameList {
	nl := &NameList{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		nl.Add(n)
	}
	return nl
}

// Add registers a name, normalized like tokens are (no macrons, i/u).
func (nl *NameList) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	nl.names[ReplaceJV(RemoveMacrons(name))] = struct{}{}
}

// Len returns the number of names in the list.
func (nl *NameList) Len() int {
	return len(nl.names)
}

// IsProperNoun reports whether word, without a trailing period, is in the
// list.
func (nl *NameList) IsProperNoun(word string) bool {
	_, ok := nl.names[strings.TrimSuffix(word, ".")]
	return ok
}

// LoadNameList reads one name per line from path. Blank lines and lines
// starting with "!" are skipped.
func LoadNameList(path string) (*NameList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open name list: %w", err)
	}
	defer f.Close()

	nl := NewNameList()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		nl.Add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read name list %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("names", nl.Len()).Msg("name list loaded")
	return nl, nil
}

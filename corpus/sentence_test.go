package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	text := "Gallia est omnis divisa in partes tres. Quarum unam incolunt Belgae; " +
		"aliam Aquitani! M. Tullius Cicero consul fuit? Anno 3.5 ita"
	want := []string{
		"Gallia est omnis divisa in partes tres.",
		"Quarum unam incolunt Belgae;",
		"aliam Aquitani!",
		"M. Tullius Cicero consul fuit?",
		"Anno 3.5 ita",
	}
	assert.Equal(t, want, SplitSentences(text))
}

func TestSplitSentencesAbbreviations(t *testing.T) {
	text := "Caesar a. d. III Kal. Ian. Romam uenit. Cf. Liu. 2 ita. " +
		"Cn. Pompeius cos. iterum fuit."
	want := []string{
		"Caesar a. d. III Kal. Ian. Romam uenit.",
		"Cf. Liu. 2 ita.",
		"Cn. Pompeius cos. iterum fuit.",
	}
	assert.Equal(t, want, SplitSentences(text))
}

func TestSplitSentencesBlank(t *testing.T) {
	assert.Empty(t, SplitSentences("  \n "))
	assert.Equal(t, []string{"Veni."}, SplitSentences("Veni.  "))
}

func TestSentenceClean(t *testing.T) {
	s := Sentence("Arma virumque canō, Trōiae quī prīmus ab ōrīs [1]\nItaliam, fātō profugus.")
	want := []string{
		"Arma", "uirumque", "cano", "Troiae", "qui", "primus", "ab", "oris",
		"Italiam", "fato", "profugus",
	}
	assert.Equal(t, want, s.Clean().Tokenize())
}

func TestSentenceSteps(t *testing.T) {
	assert.Equal(t, Sentence("abc"), Sentence("abc.").RemoveFinalPunctuation())
	assert.Equal(t, Sentence(""), Sentence("").RemoveFinalPunctuation())
	assert.Equal(t, Sentence("ita"), Sentence("ita").RemoveFinalPunctuation())
	assert.Equal(t, Sentence("ita"), Sentence("ita; ").RemoveFinalPunctuation())
	assert.Equal(t, Sentence("ueni dixit"), Sentence("\"ueni\" “dixit”").RemoveNonAlpha())
	assert.Equal(t, Sentence("a b c"), Sentence("a\nb\r\nc").RemoveNewlines())
	assert.Equal(t, Sentence("sic  M. Tullius"), Sentence("sic (12) M. Tullius†").RemoveNonAlpha())
	assert.Equal(t, Sentence("Iulius uenit"), Sentence("Julius venit").ReplaceJV())
}

func TestRemoveMacrons(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Trōiae", "Troiae"},
		{"cæli", "caeli"},
		{"ĭtă", "ita"},
		{"Œdipus", "Oedipus"},
		{"poëta", "poeta"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RemoveMacrons(tt.in), "RemoveMacrons(%q)", tt.in)
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("Veni, vidi, vici. Alea iacta est!")
	assert.Equal(t, []string{"Ueni", "uidi", "uici", "Alea", "iacta", "est"}, got)
}

func TestTokensWithoutFinalMark(t *testing.T) {
	assert.Equal(t, []string{"Gallia", "est", "omnis", "diuisa"}, Tokens("Gallia est omnis divisa"))
	assert.Equal(t, []string{"Ueni", "Uidi", "uici"}, Tokens("Veni. Vidi vici"))
	assert.Equal(t, []string{"Anno", "ita"}, Tokens("Anno 3.5 ita"))
}

func TestTokensQuoted(t *testing.T) {
	assert.Equal(t, []string{"Dixit", "ueni"}, Tokens("Dixit \"ueni.\""))
	assert.Equal(t, []string{"Tum", "abiit", "et", "rediit"}, Tokens("Tum „abiit“ et «rediit»."))
}

func TestReadWork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.txt")
	require.NoError(t, os.WriteFile(path, []byte("Veni.\nVidi.\n"), 0o644))

	text, err := ReadWork(path)
	require.NoError(t, err)
	assert.Equal(t, "Veni.\nVidi.\n", text)

	_, err = ReadWork(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

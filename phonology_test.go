package declinatio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortenLengthenAreInverses(t *testing.T) {
	for _, v := range shortVowels {
		long, err := LengthenVowel(v)
		require.NoError(t, err)
		short, err := ShortenVowel(long)
		require.NoError(t, err)
		assert.Equal(t, v, short)

		again, err := LengthenVowel(short)
		require.NoError(t, err)
		assert.Equal(t, long, again)
	}
}

func TestShortenVowelRejectsShort(t *testing.T) {
	_, err := ShortenVowel('a')
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ShortenVowel('t')
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLengthenVowelRejectsLong(t *testing.T) {
	_, err := LengthenVowel('ā')
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = LengthenVowel('r')
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRhotacism(t *testing.T) {
	tests := []struct {
		in   Stem
		want Stem
	}{
		{"flōs", "flōr"},
		{"cinis", "ciner"},
		{"corpos", "corpor"},
		{"mīlet", "mīlet"},
		{"urbs", "urbs"},
		{"s", "s"},
		{"", ""},
	}
	for _, tt := range tests {
		got := Rhotacism(tt.in)
		assert.Equal(t, tt.want, got, "Rhotacism(%q)", tt.in)
		assert.Equal(t, got, Rhotacism(got), "Rhotacism not idempotent on %q", tt.in)
	}
}

func TestVowelWeakening(t *testing.T) {
	tests := []struct {
		in   Stem
		want Stem
	}{
		{"mīlet", "mīlit"},
		{"ciner", "ciner"},
		{"corpor", "corper"},
		{"flōr", "flōr"},   // long vowel
		{"urbs", "urbs"},   // consonant cluster
		{"t", "t"},         // single phoneme
		{"ar", "er"},       // no antepenult
		{"piur", "piur"},   // i third from last
		{"capit", "capit"}, // already i
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VowelWeakening(tt.in), "VowelWeakening(%q)", tt.in)
	}
}

func TestVowelWeakeningShortStemDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, Stem("a"), VowelWeakening("a"))
		assert.Equal(t, Stem(""), VowelWeakening(""))
	})
}

func TestNuclei(t *testing.T) {
	tests := []struct {
		in   Stem
		want []string
	}{
		{"puero", []string{"u", "e", "o"}},
		{"libro", []string{"i", "o"}},
		{"magistro", []string{"a", "i", "o"}},
		{"caelo", []string{"ae", "o"}},
		{"equo", []string{"e", "o"}},
		{"fīlio", []string{"ī", "i", "o"}},
		{"rēg", []string{"ē"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Nuclei(tt.in), "Nuclei(%q)", tt.in)
		assert.Equal(t, len(tt.want), SyllableCount(tt.in))
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, IsDental('t'))
	assert.True(t, IsVelar('g'))
	assert.True(t, IsStop('p'))
	assert.False(t, IsStop('s'))
	assert.True(t, IsVowel('ȳ'))
	assert.False(t, IsShortVowel('ē'))
}

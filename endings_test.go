package declinatio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type endingCase struct {
	stem Stem
	want string
}

func runEndingCases(t *testing.T, name string, fn EndingFunc, cases []endingCase) {
	t.Helper()
	for _, tt := range cases {
		got, err := fn(tt.stem)
		if assert.NoError(t, err, "%s(%q)", name, tt.stem) {
			assert.Equal(t, tt.want, got, "%s(%q)", name, tt.stem)
		}
	}
}

func TestAddS(t *testing.T) {
	runEndingCases(t, "AddS", AddS, []endingCase{
		{"mīlet", "mīles"},
		{"ped", "pes"},
		{"sorōr", "soror"},
		{"homon", "homō"},
		{"leōn", "leō"},
		{"nōmen", "nōmen"},
		{"rēg", "rēx"},
		{"duc", "dux"},
		{"flōs", "flōs"},
		{"manu", "manus"},
		{"rē", "rēs"},
		{"turri", "turris"},
		{"urb", "urbs"},
		{"lupo", "lupus"},
		{"puero", "puer"},
		{"magistro", "magister"},
		// two syllables: no -er syncope, unlike classical liber
		{"libro", "librus"},
		{"agro", "agrus"},
		// e-stems take -ēs after the stem vowel
		{"nube", "nubeēs"},
	})
}

func TestAddSBareN(t *testing.T) {
	_, err := AddS("n")
	assert.ErrorIs(t, err, ErrUnspecified)

	got, err := AddS("tn")
	require.NoError(t, err)
	assert.Equal(t, "t", got)

	p := NewParadigm(Noun{Stem: "n"})
	assert.Equal(t, OutcomeUnspecified, p.Form(Nominative).Outcome)
	assert.Equal(t, OutcomeUnspecified, p.Endings[EndingS].Outcome)
	assert.NotContains(t, p.Forms(), "")
}

func TestAddM(t *testing.T) {
	runEndingCases(t, "AddM", AddM, []endingCase{
		{"lupo", "lupum"},
		{"puella", "puellam"},
		{"manu", "manum"},
		{"rē", "rem"},
		{"mīlet", "mīlitem"},
		{"flōs", "flōrem"},
		{"cinis", "cinerem"},
		{"rēg", "rēgem"},
	})
}

// The two rule variants disagree on i-stems; the accusative keeps the
// stem vowel (turrim), not the consonant-stem -em (turrem).
func TestAddMIStem(t *testing.T) {
	got, err := AddM("turri")
	require.NoError(t, err)
	assert.Equal(t, "turrim", got)
	assert.NotEqual(t, "turrem", got)
}

func TestAddI(t *testing.T) {
	runEndingCases(t, "AddI", AddI, []endingCase{
		{"puella", "puellae"},
		{"pino", "pinī"},
		{"manu", "manuī"},
		{"turri", "turriī"},
		{"diē", "diēī"},
		{"spē", "speī"},
		{"rē", "reī"},
		{"mīlet", "mīlitī"},
		{"cinis", "cinerī"},
	})
}

func TestAddNS(t *testing.T) {
	runEndingCases(t, "AddNS", AddNS, []endingCase{
		{"puella", "puellās"},
		{"lupo", "lupōs"},
		{"manu", "manūs"},
		{"rē", "rēs"},
		{"mīlet", "mīlitēs"},
		{"flōs", "flōrēs"},
	})
}

func TestAddSum(t *testing.T) {
	runEndingCases(t, "AddSum", AddSum, []endingCase{
		{"puella", "puellarum"},
		{"lupo", "luporum"},
		{"rē", "rērum"},
		{"a", "ārum"},
	})
}

func TestAddE(t *testing.T) {
	runEndingCases(t, "AddE", AddE, []endingCase{
		{"mīlet", "mīlite"},
		{"cinis", "cinere"},
		{"rēg", "rēge"},
	})
}

func TestAddIs(t *testing.T) {
	runEndingCases(t, "AddIs", AddIs, []endingCase{
		{"manu", "manūs"},
		{"turri", "turris"},
		{"mīlet", "mīlitis"},
		{"cinis", "cineris"},
		{"rēg", "rēgis"},
	})

	_, err := AddIs("rē")
	assert.ErrorIs(t, err, ErrUnspecified)
}

func TestAddEis(t *testing.T) {
	runEndingCases(t, "AddEis", AddEis, []endingCase{
		{"puella", "puellīs"},
		{"lupo", "lupīs"},
	})

	_, err := AddEis("mīlet")
	assert.ErrorIs(t, err, ErrUnspecified)
}

func TestAddIbus(t *testing.T) {
	runEndingCases(t, "AddIbus", AddIbus, []endingCase{
		{"rē", "rēbus"},
		{"puella", "puellābus"},
		{"manu", "manibus"},
		{"turri", "turribus"},
		{"mīlet", "mīlitibus"},
	})
}

func TestPlaceholderEndings(t *testing.T) {
	for _, fn := range []EndingFunc{AddEs, AddUm, AddNTS} {
		_, err := fn("mīlet")
		assert.ErrorIs(t, err, ErrUnimplemented)
		assert.Equal(t, OutcomeUnimplemented, OutcomeOf(err))
	}
}

func TestEndingsRejectEmptyStem(t *testing.T) {
	for _, e := range Endings {
		if !e.Implemented() {
			continue
		}
		fn, ok := e.Func()
		require.True(t, ok)
		_, err := fn("")
		assert.ErrorIs(t, err, ErrInvalidInput, "ending %s", e)
	}
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeak(t *testing.T) {
	assert.Equal(t, "TτGEN", speak("τ", "GEN"))
	assert.Equal(t, "Taxbyz", speak("ab", "xyz"))
	assert.Equal(t, "T", speak("", ""))
	assert.Equal(t, "Tab", speak("ab", ""))
	assert.Equal(t, "Txy", speak("", "xy"))
}

func TestFracture(t *testing.T) {
	// "ω" cracks to "|ω"; input runes come out wrapped in markers.
	assert.Equal(t, "|-G-ω-E--N-", fracture("ω", "GEN"))
	assert.Equal(t, "|", fracture("", ""))
	assert.Equal(t, "ab|cd", fracture("abcd", ""))
	assert.Equal(t, "|-x--y-", fracture("", "xy"))
}

func TestFoldDelta(t *testing.T) {
	assert.Equal(t, "(GEN)δ", foldDelta("δ", "GEN"))
	assert.Equal(t, "ab(x)dc", foldDelta("abcd", "x"))
	assert.Equal(t, "()", foldDelta("", ""))
}

func TestShiftEntropy(t *testing.T) {
	assert.Equal(t, "GENε", shiftEntropy("ε", "GEN"))
	assert.Equal(t, "E", shiftEntropy("", ""))
	assert.Equal(t, "Ea", shiftEntropy("", "a"))
	assert.Equal(t, "ba", shiftEntropy("a", "b"))
}

func TestBirth(t *testing.T) {
	assert.Equal(t, "ηGEN→", birth("η", "GEN"))
	assert.Equal(t, "→", birth("", ""))
}

func TestChildOfDelta(t *testing.T) {
	// "(GEN)δ" strided by 2 is "(E)", reversed ")E(".
	assert.Equal(t, "K)E(", childOfDelta("(GEN)δ"))
	assert.Equal(t, "K", childOfDelta(""))
	assert.Equal(t, "Ka", childOfDelta("ab"))
}

func TestChildOfEta(t *testing.T) {
	assert.Equal(t, "ZNEGη", childOfEta("ηGEN→"))
	assert.Equal(t, "Zcba", childOfEta("abc")) // no birth marker: whole string
	assert.Equal(t, "Z", childOfEta("→tail"))  // empty core before marker
}

func TestRulesTotalOnPathologicalInput(t *testing.T) {
	// No rule may panic for any input, including empty strings and
	// inputs containing the rules' own markers.
	inputs := []string{"", "→", "_S", "T|K-Z", "()", "-"}
	for _, prev := range inputs {
		for _, in := range inputs {
			assert.NotPanics(t, func() {
				speak(prev, in)
				fracture(prev, in)
				foldDelta(prev, in)
				shiftEntropy(prev, in)
				birth(prev, in)
				childOfDelta(prev)
				childOfEta(prev)
			})
		}
	}
}

func TestDiffCount(t *testing.T) {
	assert.Equal(t, 0, diffCount("abc", "abc"))
	assert.Equal(t, 1, diffCount("abc", "abd"))
	assert.Equal(t, 3, diffCount("", "abc"))      // padded positions all differ
	assert.Equal(t, 2, diffCount("abc", "abcde")) // tail counts as different
	assert.Equal(t, 1, diffCount("τ", "ω"))       // rune-wise, not byte-wise
	assert.Equal(t, 0, diffCount("", ""))
}

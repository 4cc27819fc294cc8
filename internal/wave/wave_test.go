package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumEmpty(t *testing.T) {
	assert.Equal(t, uint64(0), Sum(""))
}

func TestSumKnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"a", 97},                 // 'a' * 1
		{"ab", 97 + 98*2},         // zig-zag order covers both indices
		{"abc", 97 + 98*2 + 99*3}, // remainder appended ascending
		{"τ", 964},                // U+03C4, single rune not single byte
		{"TEST", 84 + 69*2 + 83*3 + 84*4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Sum(c.in), "Sum(%q)", c.in)
	}
}

func TestSumDeterministic(t *testing.T) {
	in := "T→τωEδ_S"
	first := Sum(in)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Sum(in))
	}
}

func TestSumWeightsByRank(t *testing.T) {
	// Same multiset of characters, different order, different sums.
	assert.NotEqual(t, Sum("ab"), Sum("ba"))
}

package node

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyState() map[string]string {
	state := make(map[string]string)
	for _, name := range SignatureNames {
		state[name] = ""
	}
	return state
}

func TestDeriveEmptyState(t *testing.T) {
	// All wave sums are 0, so the product is 1 and the big value is
	// 1 + curv + fold. Pressure is digitLen(1) + digitLen(0) = 2 with
	// divisor 1, so one extra digit: 6 total.
	digits, trace := Derive(emptyState(), 0, 1)

	assert.Equal(t, "2", digits)
	assert.Equal(t, int64(1), trace.Product.Int64())
	assert.Equal(t, int64(2), trace.BigValue.Int64())
	assert.Equal(t, 2, trace.Pressure)
	assert.Equal(t, 1, trace.Divisor)
	assert.Equal(t, 2, trace.Expansions)
	assert.Equal(t, 6, trace.DigitCount)
}

func TestDeriveDigitCountBounds(t *testing.T) {
	states := []map[string]string{
		emptyState(),
		{
			"tau": "Tτ", "omega": "ω|", "delta": "δ(GEN)", "epsilon": "εG",
			"eta": "ηGEN→", "kappa": "K)δ", "zeta": "ZNEGη",
		},
		{
			"tau": strings.Repeat("Tx", 200), "omega": strings.Repeat("ωy", 150),
			"delta": strings.Repeat("ab(c)", 80), "epsilon": strings.Repeat("E", 99),
			"eta": strings.Repeat("η→", 300), "kappa": strings.Repeat("K", 64),
			"zeta": strings.Repeat("Z", 31),
		},
	}
	for i, state := range states {
		digits, trace := Derive(state, i*17, i+1)
		assert.GreaterOrEqual(t, trace.DigitCount, 5, "state %d", i)
		assert.LessOrEqual(t, trace.DigitCount, 16, "state %d", i)
		assert.LessOrEqual(t, len(digits), trace.DigitCount, "state %d", i)
		assert.NotEmpty(t, digits, "state %d", i)
		if digits != "0" {
			assert.False(t, strings.HasPrefix(digits, "0"), "state %d", i)
		}
	}
}

func TestDeriveDeterministic(t *testing.T) {
	state := map[string]string{
		"tau": "TτGEN", "omega": "ω-G-|-E-N", "delta": "(GEN)δ", "epsilon": "GENε",
		"eta": "ηGEN→", "kappa": "Kδ)E(", "zeta": "ZNEGη",
	}
	first, firstTrace := Derive(state, 9, 3)
	for i := 0; i < 20; i++ {
		digits, trace := Derive(state, 9, 3)
		assert.Equal(t, first, digits)
		assert.Equal(t, firstTrace.DigitCount, trace.DigitCount)
		assert.Zero(t, firstTrace.Product.Cmp(trace.Product))
	}
}

func TestDeriveTraceConsistency(t *testing.T) {
	state := map[string]string{
		"tau": "TτTEST", "omega": "ω-T-|-E-S-T", "delta": "(TEST)δ", "epsilon": "TESTε",
		"eta": "ηTEST→", "kappa": "KδS(T", "zeta": "ZTSETη",
	}
	curv, fold := 14, 2
	digits, trace := Derive(state, curv, fold)

	require.NotNil(t, trace.Product)
	require.NotNil(t, trace.BigValue)

	// big value = product + curv + fold
	want := new(big.Int).Add(trace.Product, big.NewInt(int64(curv+fold)))
	assert.Zero(t, want.Cmp(trace.BigValue))

	assert.Equal(t, trace.Expansions, trace.Pressure/trace.Divisor)
	assert.Equal(t, digits, trace.Digits)
	if trace.RawMod != "0" {
		assert.Equal(t, digits, strings.TrimLeft(trace.RawMod, "0"))
	}

	// digits is the big value reduced mod 10^digit_count
	mod := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(trace.DigitCount)), nil)
	reduced := new(big.Int).Mod(trace.BigValue, mod)
	assert.Equal(t, reduced.String(), digits)
}

func TestDeriveProductNeverZero(t *testing.T) {
	// Every factor is at least 1, so the product is at least 1.
	_, trace := Derive(emptyState(), 0, 0)
	assert.Equal(t, 1, trace.Product.Sign())
}

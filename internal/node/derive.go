package node

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kokistudios/sigil/internal/wave"
)

// SignatureNames lists the seven signatures in derivation order.
var SignatureNames = []string{"tau", "omega", "delta", "epsilon", "eta", "kappa", "zeta"}

// Trace records every intermediate of one derivation. It is a diagnostic
// view only; nothing downstream consumes it.
type Trace struct {
	Product    *big.Int
	BigValue   *big.Int
	CurvTotal  int
	Pressure   int
	Divisor    int
	Expansions int
	DigitCount int
	RawMod     string // decimal of big value mod 10^digit_count, pre-strip
	Digits     string // RawMod with leading zeros stripped, "0" if empty
}

// Derive compresses an evolved signature state into a bounded decimal
// digit string.
//
// The big value is the product over all seven signatures of (1 + wave sum)
// plus the curvature total plus the fold count. A pressure scalar sizes
// the output: base 5 digits, growing by half the expansion count, capped
// at 16 digits. Leading zeros are stripped from the final modulus; an
// all-zero result collapses to "0".
func Derive(state map[string]string, curvTotal, foldCount int) (string, Trace) {
	product := big.NewInt(1)
	for _, name := range SignatureNames {
		factor := new(big.Int).SetUint64(1 + wave.Sum(state[name]))
		product.Mul(product, factor)
	}

	bigValue := new(big.Int).Add(product, big.NewInt(int64(curvTotal)+int64(foldCount)))

	pressure := curvTotal +
		utf8.RuneCountInString(state["eta"]) +
		digitLen(uint64(foldCount)) +
		digitLen(wave.Sum(state["omega"]))

	divisor := 1 + distinctHalf(state["delta"])
	expansions := pressure / divisor

	digitCount := 5 + expansions/2
	if digitCount > 16 {
		digitCount = 16
	}

	modBase := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digitCount)), nil)
	final := new(big.Int).Mod(bigValue, modBase)

	raw := final.String()
	digits := strings.TrimLeft(raw, "0")
	if digits == "" {
		digits = "0"
	}

	return digits, Trace{
		Product:    product,
		BigValue:   bigValue,
		CurvTotal:  curvTotal,
		Pressure:   pressure,
		Divisor:    divisor,
		Expansions: expansions,
		DigitCount: digitCount,
		RawMod:     raw,
		Digits:     digits,
	}
}

// distinctHalf counts the distinct runes in the first floor-half of s.
func distinctHalf(s string) int {
	runes := []rune(s)
	seen := make(map[rune]struct{})
	for _, r := range runes[:len(runes)/2] {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func digitLen(n uint64) int {
	return len(strconv.FormatUint(n, 10))
}

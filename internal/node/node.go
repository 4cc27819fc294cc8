// Package node derives, encodes, and parses sigil node identifiers.
//
// A node has two textual forms. The public form is a plain address,
// n<digits>@sigil.dev. The internal form additionally carries a waveform
// fingerprint between the digits and the domain:
//
//	n<digits>|W-<omega>C-<curv>K-<kappa>F-<fold>@sigil.dev
//
// Parsing is deliberately lenient: any field that cannot be recovered is
// zero, and no input ever produces an error.
package node

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Domain is the fixed domain literal every node address ends with.
const Domain = "sigil.dev"

const domainSuffix = "@" + Domain

// Fingerprint holds the numeric components of a parsed node identifier.
// Fields that could not be recovered from the text are zero.
type Fingerprint struct {
	NumericID uint64
	WaveOmega uint64
	CurvSum   uint64
	KappaSum  uint64
	FoldCount int
	Raw       string // the original node text, untouched
}

// Encode renders the internal form of a node identifier.
func Encode(digits string, fp Fingerprint) string {
	return fmt.Sprintf("n%s|W-%dC-%dK-%dF-%d%s",
		digits, fp.WaveOmega, fp.CurvSum, fp.KappaSum, fp.FoldCount, domainSuffix)
}

// EncodePublic renders the public address form, omitting the waveform
// segment entirely.
func EncodePublic(digits string) string {
	return "n" + digits + domainSuffix
}

// Parse decomposes a node identifier into its numeric components.
//
// The numeric id is whatever sits between the leading "n" and the first
// "|" (or "@", or end of string). If a "|" is present, the right side is
// scanned for the delimiters W-, C-, K-, F- in that fixed order; each
// stage defaults to zero on failure instead of aborting the parse. Parse
// never fails: a fully malformed input yields an all-zero Fingerprint.
func Parse(s string) Fingerprint {
	fp := Fingerprint{Raw: s}

	if strings.HasPrefix(s, "n") {
		idPart := s[1:]
		if i := strings.Index(idPart, "|"); i >= 0 {
			idPart = idPart[:i]
		} else if i := strings.Index(idPart, "@"); i >= 0 {
			idPart = idPart[:i]
		}
		fp.NumericID = parseUint(idPart)
	}

	pipe := strings.Index(s, "|")
	if pipe < 0 {
		return fp
	}

	wavePart := strings.ReplaceAll(s[pipe+1:], domainSuffix, "")
	wavePart = strings.TrimPrefix(wavePart, "W-")

	if c := strings.Index(wavePart, "C-"); c >= 0 {
		fp.WaveOmega = parseUint(wavePart[:c])
		wavePart = wavePart[c+2:]
	}
	if k := strings.Index(wavePart, "K-"); k >= 0 {
		fp.CurvSum = parseUint(wavePart[:k])
		wavePart = wavePart[k+2:]
	}
	if f := strings.Index(wavePart, "F-"); f >= 0 {
		fp.KappaSum = parseUint(wavePart[:f])
		fp.FoldCount = int(parseUint(wavePart[f+2:]))
	}
	return fp
}

// parseUint is the lenient integer read used by Parse: 0 on any failure.
func parseUint(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

var addressPattern = regexp.MustCompile(`^n\d+@` + regexp.QuoteMeta(Domain) + `$`)

// ValidAddress reports whether s is exactly a public node address. Used
// for display statistics only; it has no effect on engine state.
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

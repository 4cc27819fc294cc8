package engine

import "strings"

// Fixed markers emitted by the evolution rules.
const (
	speakMarker   = "T"
	entropyMarker = "E"
	birthMarker   = "→"
	kappaMarker   = "K"
	zetaMarker    = "Z"
	splitSuffix   = "_S" // symmetry-breaking suffix appended to tau on a repeated state
)

// speak interleaves the previous tau with the external input, one rune
// from each side while both remain, and prefixes the speak marker.
func speak(prev, input string) string {
	a, b := []rune(prev), []rune(input)
	out := make([]rune, 0, len(a)+len(b))
	for len(a) > 0 || len(b) > 0 {
		if len(a) > 0 {
			out = append(out, a[0])
			a = a[1:]
		}
		if len(b) > 0 {
			out = append(out, b[0])
			b = b[1:]
		}
	}
	return speakMarker + string(out)
}

// fracture splits the previous omega at its floor-half, joins the halves
// with "|", then interleaves the cracked string with the input, emitting
// cracked runes plain and input runes wrapped in "-" markers.
func fracture(prev, input string) string {
	r := []rune(prev)
	cracked := make([]rune, 0, len(r)+1)
	cracked = append(cracked, r[:len(r)/2]...)
	cracked = append(cracked, '|')
	cracked = append(cracked, r[len(r)/2:]...)

	in := []rune(input)
	var sb strings.Builder
	for len(in) > 0 || len(cracked) > 0 {
		if len(cracked) > 0 {
			sb.WriteRune(cracked[0])
			cracked = cracked[1:]
		}
		if len(in) > 0 {
			sb.WriteByte('-')
			sb.WriteRune(in[0])
			sb.WriteByte('-')
			in = in[1:]
		}
	}
	return sb.String()
}

// foldDelta wraps the input in parentheses between the left half of the
// previous delta and the reversed right half.
func foldDelta(prev, input string) string {
	r := []rune(prev)
	mid := len(r) / 2
	return string(r[:mid]) + "(" + input + ")" + reverse(string(r[mid:]))
}

// shiftEntropy concatenates and rotates left by one rune; short results
// get the entropy marker instead.
func shiftEntropy(prev, input string) string {
	mix := []rune(prev + input)
	if len(mix) <= 1 {
		return entropyMarker + string(mix)
	}
	return string(mix[1:]) + string(mix[0])
}

// birth concatenates and appends the directional birth marker.
func birth(prev, input string) string {
	return prev + input + birthMarker
}

// childOfDelta derives kappa from the freshly evolved delta: every second
// rune, reversed, behind the kappa marker.
func childOfDelta(newDelta string) string {
	r := []rune(newDelta)
	alt := make([]rune, 0, (len(r)+1)/2)
	for i := 0; i < len(r); i += 2 {
		alt = append(alt, r[i])
	}
	return kappaMarker + reverse(string(alt))
}

// childOfEta derives zeta from the freshly evolved eta: everything before
// the first birth marker (or the whole string), reversed, behind the zeta
// marker.
func childOfEta(newEta string) string {
	core := newEta
	if i := strings.Index(newEta, birthMarker); i >= 0 {
		core = newEta[:i]
	}
	return zetaMarker + reverse(core)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

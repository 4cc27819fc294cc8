package node

// Growth classifies the symbolic pressure recovered from a node.
type Growth string

const (
	GrowthLow      Growth = "Low"
	GrowthModerate Growth = "Moderate"
	GrowthHigh     Growth = "High"
)

// Resolution is the fixed-shape report produced by Resolve.
type Resolution struct {
	Fingerprint
	Pressure uint64
	Growth   Growth
}

// Resolve parses a node and reports its symbolic pressure, the sum of the
// omega waveform, curvature sum, and kappa waveform. Pure reporting; no
// engine state is touched.
func Resolve(s string) Resolution {
	fp := Parse(s)
	pressure := fp.WaveOmega + fp.CurvSum + fp.KappaSum

	growth := GrowthHigh
	switch {
	case pressure < 500:
		growth = GrowthLow
	case pressure < 3000:
		growth = GrowthModerate
	}

	return Resolution{Fingerprint: fp, Pressure: pressure, Growth: growth}
}

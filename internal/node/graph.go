package node

import "errors"

// ErrNeedTwoNodes is returned by Compare when fewer than two nodes are
// supplied; there is nothing to pair.
var ErrNeedTwoNodes = errors.New("node: need at least 2 nodes to compare")

// DriftLabel classifies the total drift between two parsed nodes.
type DriftLabel string

const (
	DriftMinimal  DriftLabel = "Minimal"
	DriftModerate DriftLabel = "Moderate"
	DriftHigh     DriftLabel = "High"
)

// Comparison holds the field deltas for one unordered pair of nodes,
// identified by their 0-based positions in the input list.
type Comparison struct {
	A, B       int
	IDDelta    uint64
	WaveDelta  uint64
	CurvDelta  uint64
	KappaDelta uint64
	FoldDelta  int
	Drift      uint64
	Label      DriftLabel
}

// GraphResult is the full pairwise comparison of a set of nodes.
type GraphResult struct {
	Nodes []Fingerprint
	Pairs []Comparison
}

// Compare parses each supplied node independently and computes drift for
// every unordered pair (i < j): the sum of absolute differences of numeric
// id, omega waveform, curvature sum, kappa waveform, and fold count.
func Compare(nodes []string) (*GraphResult, error) {
	if len(nodes) < 2 {
		return nil, ErrNeedTwoNodes
	}

	parsed := make([]Fingerprint, len(nodes))
	for i, n := range nodes {
		parsed[i] = Parse(n)
	}

	result := &GraphResult{Nodes: parsed}
	for i := 0; i < len(parsed); i++ {
		for j := i + 1; j < len(parsed); j++ {
			a, b := parsed[i], parsed[j]
			cmp := Comparison{
				A:          i,
				B:          j,
				IDDelta:    absDiff(a.NumericID, b.NumericID),
				WaveDelta:  absDiff(a.WaveOmega, b.WaveOmega),
				CurvDelta:  absDiff(a.CurvSum, b.CurvSum),
				KappaDelta: absDiff(a.KappaSum, b.KappaSum),
				FoldDelta:  absInt(a.FoldCount - b.FoldCount),
			}
			cmp.Drift = cmp.IDDelta + cmp.WaveDelta + cmp.CurvDelta + cmp.KappaDelta + uint64(cmp.FoldDelta)
			cmp.Label = classifyDrift(cmp.Drift)
			result.Pairs = append(result.Pairs, cmp)
		}
	}
	return result, nil
}

func classifyDrift(drift uint64) DriftLabel {
	switch {
	case drift < 100:
		return DriftMinimal
	case drift < 1000:
		return DriftModerate
	default:
		return DriftHigh
	}
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

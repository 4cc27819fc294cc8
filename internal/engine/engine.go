// Package engine owns the fold state machine: seven evolving string
// signatures, their step history, and the fold counter. Each fold evolves
// every signature from one external input, measures curvature against the
// previous step, and derives a node identifier for the new state.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kokistudios/sigil/internal/node"
	"github.com/kokistudios/sigil/internal/wave"
)

// ErrCollision is returned by Fold when an internal node identifier
// repeats within one engine's lifetime. It is a terminal fault: the
// symmetry-breaking mutation exists to make it unlikely, not impossible.
var ErrCollision = errors.New("engine: duplicate internal node")

// Primary signatures evolve directly from external input; kappa and zeta
// are derived from the new delta and eta values each step.
var (
	primaryNames = []string{"tau", "omega", "delta", "epsilon", "eta"}
	seeds        = map[string]string{
		"tau":     "τ",
		"omega":   "ω",
		"delta":   "δ",
		"epsilon": "ε",
		"eta":     "η",
		"kappa":   "",
		"zeta":    "",
	}
)

// Result is the outcome of one fold.
type Result struct {
	FoldCount  int
	Signatures map[string]string // the seven newly evolved values
	Curvature  map[string]int    // per-primary rune-position diffs, pre-mutation
	Node       string            // internal form, carries the waveform fingerprint
	PublicNode string            // public address form
	Trace      node.Trace        // derivation intermediates, diagnostic only
}

// Engine holds the signature histories and fold counter for one identity
// line. Not safe for concurrent use; folds are strictly sequential.
type Engine struct {
	signatures map[string][]string
	seen       map[string]struct{} // canonical keys of all committed steps
	emitted    map[string]struct{} // internal nodes produced so far
	foldCount  int
}

// New returns a freshly seeded engine at fold count zero.
func New() *Engine {
	e := &Engine{
		signatures: make(map[string][]string, len(node.SignatureNames)),
		seen:       make(map[string]struct{}),
		emitted:    make(map[string]struct{}),
	}
	for _, name := range node.SignatureNames {
		e.signatures[name] = []string{seeds[name]}
	}
	return e
}

// NewFromNode returns a seeded engine whose fold counter is restored from
// the given internal node, when one can be recovered.
func NewFromNode(resumeNode string) *Engine {
	e := New()
	e.Resume(resumeNode)
	return e
}

// Resume overwrites the fold counter with the one embedded in the node's
// waveform fingerprint, if it parses to a positive value. No signature
// history is reconstructed; malformed nodes make Resume a no-op.
func (e *Engine) Resume(nodeStr string) {
	fp := node.Parse(nodeStr)
	if fp.FoldCount > 0 {
		e.foldCount = fp.FoldCount
	}
}

// FoldCount reports the number of completed folds (or the counter
// restored by Resume).
func (e *Engine) FoldCount() int { return e.foldCount }

// History returns the value sequence of one signature, seed first.
func (e *Engine) History(name string) []string {
	h := e.signatures[name]
	out := make([]string, len(h))
	copy(out, h)
	return out
}

// Fold performs one evolution step with the given external input.
//
// The only possible failure is ErrCollision, raised when the derived
// internal node was already emitted by this engine; the state commit
// still happens, but callers must stop folding.
func (e *Engine) Fold(input string) (*Result, error) {
	e.foldCount++

	next := map[string]string{
		"tau":     speak(e.latest("tau"), input),
		"omega":   fracture(e.latest("omega"), input),
		"delta":   foldDelta(e.latest("delta"), input),
		"epsilon": shiftEntropy(e.latest("epsilon"), input),
		"eta":     birth(e.latest("eta"), input),
	}
	next["kappa"] = childOfDelta(next["delta"])
	next["zeta"] = childOfEta(next["eta"])

	// Curvature is measured before any symmetry break, against the
	// committed previous values.
	curvature := make(map[string]int, len(primaryNames))
	curvTotal := 0
	for _, name := range primaryNames {
		d := diffCount(e.latest(name), next[name])
		curvature[name] = d
		curvTotal += d
	}

	// Exact repeat of any prior step: break the symmetry on tau only.
	if _, repeat := e.seen[stateKey(next)]; repeat {
		next["tau"] += splitSuffix
	}

	for _, name := range node.SignatureNames {
		e.signatures[name] = append(e.signatures[name], next[name])
	}
	e.seen[stateKey(next)] = struct{}{}

	digits, trace := node.Derive(next, curvTotal, e.foldCount)
	internal := node.Encode(digits, node.Fingerprint{
		WaveOmega: wave.Sum(next["omega"]),
		CurvSum:   uint64(curvTotal),
		KappaSum:  wave.Sum(next["kappa"]),
		FoldCount: e.foldCount,
	})

	if _, dup := e.emitted[internal]; dup {
		return nil, fmt.Errorf("fold %d: %s: %w", e.foldCount, internal, ErrCollision)
	}
	e.emitted[internal] = struct{}{}

	return &Result{
		FoldCount:  e.foldCount,
		Signatures: next,
		Curvature:  curvature,
		Node:       internal,
		PublicNode: node.EncodePublic(digits),
		Trace:      trace,
	}, nil
}

func (e *Engine) latest(name string) string {
	h := e.signatures[name]
	return h[len(h)-1]
}

// diffCount counts differing rune positions between old and new, the
// shorter side padded conceptually with an absent sentinel.
func diffCount(old, new string) int {
	a, b := []rune(old), []rune(new)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	diff := 0
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a) || i >= len(b):
			diff++
		case a[i] != b[i]:
			diff++
		}
	}
	return diff
}

// stateKey canonicalizes a seven-value step for exact-equality checks.
// Fields are length-prefixed so no input string can forge a boundary.
func stateKey(state map[string]string) string {
	var sb strings.Builder
	for _, name := range node.SignatureNames {
		v := state[name]
		sb.WriteString(strconv.Itoa(len(v)))
		sb.WriteByte(':')
		sb.WriteString(v)
	}
	return sb.String()
}

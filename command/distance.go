package command

import "github.com/agnivade/levenshtein"

// Default classification thresholds. They were tuned by hand for short
// English command words.
const (
	DefaultMatchDistance   = 1
	DefaultSuggestDistance = 3
	DefaultDistanceCap     = 10
)

// Thresholds controls how edit distances are classified.
type Thresholds struct {
	// Match is the largest distance treated as a confident match.
	Match int
	// Suggest is the exclusive upper bound for suggestions; only distances in
	// (Match, Suggest) are surfaced.
	Suggest int
	// Cap bounds the reported distance. Zero or negative disables it. A
	// positive cap is never allowed to fall inside the match or suggest range,
	// see Normalize.
	Cap int
}

// DefaultThresholds returns {1, 3, 10}.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Match:   DefaultMatchDistance,
		Suggest: DefaultSuggestDistance,
		Cap:     DefaultDistanceCap,
	}
}

// MinCap is the smallest positive cap that keeps every clamped distance
// outside both the match and the suggest range.
func (t Thresholds) MinCap() int {
	return max(t.Suggest, t.Match+1)
}

// Normalize raises a positive Cap to MinCap. A lower cap would clamp
// unrelated words down to a match or a suggestion.
func (t Thresholds) Normalize() Thresholds {
	if t.Cap > 0 && t.Cap < t.MinCap() {
		t.Cap = t.MinCap()
	}
	return t
}

// Distance returns the Levenshtein distance between a and b using the default cap.
func Distance(a, b string) int {
	return DefaultThresholds().Distance(a, b)
}

// Distance returns the Levenshtein distance between a and b, clamped to t.Cap.
func (t Thresholds) Distance(a, b string) int {
	d := levenshtein.ComputeDistance(a, b)
	if t.Cap > 0 && d > t.Cap {
		return t.Cap
	}
	return d
}

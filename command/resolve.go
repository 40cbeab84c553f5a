package command

import "strings"

// Outcome classifies a resolution.
type Outcome int

const (
	NoMatch Outcome = iota
	Matched
	Suggested
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Suggested:
		return "suggested"
	default:
		return "no_match"
	}
}

// MarshalText renders the outcome as its String form.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Result is the classification of one chat line.
type Result struct {
	Outcome Outcome `json:"outcome"`
	// Entry is the matched or suggested command. Zero for NoMatch.
	Entry Entry `json:"entry"`
	// Distance is the edit distance to Entry's name.
	Distance int `json:"distance"`
	// Command is the raw command token as typed.
	Command string `json:"command,omitempty"`
	// Params are the remaining tokens in their original order and casing.
	Params []string `json:"params"`
}

// Matched reports whether the result is a confident match.
func (r Result) Matched() bool { return r.Outcome == Matched }

// Suggested reports whether the result is a "did you mean" suggestion.
func (r Result) Suggested() bool { return r.Outcome == Suggested }

// Resolver resolves lines against a Catalog. The zero Thresholds value
// selects DefaultThresholds. A Resolver holds no mutable state.
type Resolver struct {
	Catalog    *Catalog
	Thresholds Thresholds
}

// NewResolver returns a Resolver with default thresholds.
func NewResolver(c *Catalog) *Resolver {
	return &Resolver{Catalog: c, Thresholds: DefaultThresholds()}
}

// Resolve tokenizes line and resolves it against catalog with default thresholds.
func Resolve(line string, catalog *Catalog) Result {
	return NewResolver(catalog).Resolve(line)
}

// Resolve classifies line. Empty lines and lines containing any non-ASCII
// byte resolve to NoMatch with no parameters.
func (r *Resolver) Resolve(line string) Result {
	tokens := Tokenize(line)
	if len(tokens) == 0 || !isASCII(line) {
		return Result{Outcome: NoMatch}
	}
	return r.ResolveToken(tokens[0], tokens[1:])
}

// ResolveToken classifies an already tokenized command. params are carried
// through to the result unmodified.
func (r *Resolver) ResolveToken(token string, params []string) Result {
	res := Result{Outcome: NoMatch, Command: token, Params: params}
	if token == "" || !isASCII(token) || r.Catalog == nil {
		return res
	}

	th := r.thresholds()
	candidate := strings.ToLower(token)

	matched, matchDist := -1, 0
	suggested, suggestDist := -1, th.Suggest
	for i, e := range r.Catalog.entries {
		d := th.Distance(candidate, e.Name)
		if d <= th.Match {
			// a confident match always erases an earlier suggestion
			matched, matchDist = i, d
			suggested = -1
			if d == 0 {
				break
			}
			continue
		}
		if d < suggestDist {
			suggested, suggestDist = i, d
		}
	}

	if matched >= 0 {
		res.Outcome = Matched
		res.Entry = r.Catalog.entries[matched]
		res.Distance = matchDist
		return res
	}
	if suggested < 0 {
		return res
	}

	e := r.Catalog.entries[suggested]
	if r.Catalog.IsIgnoredSuggestion(e.ID) {
		return res
	}
	if target, ok := r.Catalog.AliasTarget(e.ID); ok {
		res.Outcome = Matched
		res.Entry, _ = r.Catalog.Lookup(target)
		res.Distance = suggestDist
		return res
	}
	res.Outcome = Suggested
	res.Entry = e
	res.Distance = suggestDist
	return res
}

// thresholds treats the zero value as DefaultThresholds, so an exact-only
// resolver needs a non-zero Suggest or Cap.
func (r *Resolver) thresholds() Thresholds {
	if r.Thresholds == (Thresholds{}) {
		return DefaultThresholds()
	}
	return r.Thresholds.Normalize()
}

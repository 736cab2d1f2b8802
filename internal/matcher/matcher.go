// Package matcher defines the port to the regex execution engine and a local
// implementation backed by regexp2.
package matcher

import (
	"context"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// Matcher executes a pattern against input. The explainer never calls it;
// it exists for surfaces that show live matches next to an explanation.
type Matcher interface {
	Match(ctx context.Context, pattern, flags, input string) (*Result, error)
}

// Result holds every match found. Offsets are in runes.
type Result struct {
	Matches []Match `json:"matches"`
}

// Match is a single match span with its groups.
type Match struct {
	Index  int     `json:"index"`
	Length int     `json:"length"`
	Value  string  `json:"value"`
	Groups []Group `json:"groups,omitempty"`
}

// Group is a capture group inside a match. Group 0 (the whole match) is
// not repeated here.
type Group struct {
	Number  int    `json:"number"`
	Name    string `json:"name,omitempty"`
	Matched bool   `json:"matched"`
	Index   int    `json:"index"`
	Length  int    `json:"length"`
	Value   string `json:"value"`
}

const (
	// DefaultTimeout bounds a single regexp2 evaluation.
	DefaultTimeout = 2 * time.Second
	// DefaultMaxMatches caps the number of matches collected in global mode.
	DefaultMaxMatches = 1000
)

// Regexp2Matcher runs patterns locally with github.com/dlclark/regexp2,
// which supports lookaround and backreferences.
type Regexp2Matcher struct {
	Timeout    time.Duration
	MaxMatches int
}

// NewRegexp2Matcher creates a matcher. Zero values select the defaults.
func NewRegexp2Matcher(timeout time.Duration, maxMatches int) *Regexp2Matcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxMatches <= 0 {
		maxMatches = DefaultMaxMatches
	}
	return &Regexp2Matcher{Timeout: timeout, MaxMatches: maxMatches}
}

// Match compiles pattern with flags and collects the first match, or every
// match when the g flag is set.
func (m *Regexp2Matcher) Match(ctx context.Context, pattern, flags, input string) (*Result, error) {
	f, err := ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	re, err := regexp2.Compile(pattern, options(f))
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	re.MatchTimeout = m.Timeout

	result := &Result{Matches: make([]Match, 0)}

	found, err := re.FindStringMatch(input)
	for found != nil && err == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		result.Matches = append(result.Matches, convert(found))
		if !f.Global || len(result.Matches) >= m.MaxMatches {
			break
		}
		found, err = re.FindNextMatch(found)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to match: %w", err)
	}

	return result, nil
}

func options(f Flags) regexp2.RegexOptions {
	opt := regexp2.None
	if f.IgnoreCase {
		opt |= regexp2.IgnoreCase
	}
	if f.Multiline {
		opt |= regexp2.Multiline
	}
	if f.DotAll {
		opt |= regexp2.Singleline
	}
	return opt
}

func convert(m *regexp2.Match) Match {
	out := Match{
		Index:  m.Index,
		Length: m.Length,
		Value:  m.String(),
	}

	groups := m.Groups()
	for i := 1; i < len(groups); i++ {
		g := groups[i]
		grp := Group{
			Number:  i,
			Matched: len(g.Captures) > 0,
		}
		if g.Name != fmt.Sprint(i) {
			grp.Name = g.Name
		}
		if grp.Matched {
			grp.Index = g.Index
			grp.Length = g.Length
			grp.Value = g.String()
		}
		out.Groups = append(out.Groups, grp)
	}

	return out
}

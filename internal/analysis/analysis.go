// Package analysis reports structural facts about a pattern using Go's
// regexp/syntax parser.
package analysis

import (
	"regexp/syntax"
	"sort"
	"strings"
)

// Report contains the results of structural analysis.
type Report struct {
	// GoCompatible is true when the pattern parses as a Go (RE2) regexp.
	GoCompatible bool   `json:"go_compatible"`
	ParseError   string `json:"parse_error,omitempty"`

	// FeatureLabels are derived from pattern structure (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels,omitempty"`

	CaptureCount      int      `json:"capture_count"`
	CaptureNames      []string `json:"capture_names,omitempty"`
	NestedQuantifiers bool     `json:"nested_quantifiers"`
}

// Analyze parses pattern with the given flags and describes its structure.
// A pattern Go cannot parse yields a report with GoCompatible false and the
// parser's message; it is not treated as an error.
func Analyze(pattern, flags string) *Report {
	re, err := syntax.Parse(pattern, parseFlags(flags))
	if err != nil {
		return &Report{ParseError: err.Error()}
	}

	names := extractCaptureNames(re)
	return &Report{
		GoCompatible:      true,
		FeatureLabels:     deriveFeatureLabels(pattern, re),
		CaptureCount:      len(names),
		CaptureNames:      namedOnly(names),
		NestedQuantifiers: detectNestedQuantifiers(re),
	}
}

// parseFlags translates a flag string into regexp/syntax flags. Flags with
// no RE2 counterpart are ignored.
func parseFlags(flags string) syntax.Flags {
	f := syntax.Perl
	for _, c := range flags {
		switch c {
		case 'i':
			f |= syntax.FoldCase
		case 's':
			f |= syntax.DotNL
		case 'm':
			f &^= syntax.OneLine
		}
	}
	return f
}

// deriveFeatureLabels extracts feature labels from the pattern structure.
// Labels are sorted alphabetically.
func deriveFeatureLabels(pattern string, re *syntax.Regexp) []string {
	var labels []string

	if walkAny(re, isAnchorOp) {
		labels = append(labels, "Anchored")
	}

	if walkAny(re, func(r *syntax.Regexp) bool { return r.Op == syntax.OpAlternate }) {
		labels = append(labels, "Alternation")
	}

	if walkAny(re, func(r *syntax.Regexp) bool { return r.Op == syntax.OpCapture }) {
		labels = append(labels, "Captures")
	}

	if hasCharClass(pattern, re) {
		labels = append(labels, "CharClass")
	}

	if hasMultibyte(pattern) {
		labels = append(labels, "Multibyte")
	}

	// NonCapturing: pattern contains (?:...)
	if strings.Contains(pattern, "(?:") {
		labels = append(labels, "NonCapturing")
	}

	if walkAny(re, isRepeatOp) {
		labels = append(labels, "Quantifiers")
	}

	if walkAny(re, func(r *syntax.Regexp) bool {
		return r.Op == syntax.OpWordBoundary || r.Op == syntax.OpNoWordBoundary
	}) {
		labels = append(labels, "WordBoundary")
	}

	if len(labels) == 0 {
		labels = append(labels, "Simple")
	}

	sort.Strings(labels)
	return labels
}

// hasCharClass checks if the pattern uses character classes.
func hasCharClass(pattern string, re *syntax.Regexp) bool {
	if strings.ContainsAny(pattern, "[]") {
		return true
	}
	for _, esc := range []string{`\d`, `\D`, `\w`, `\W`, `\s`, `\S`} {
		if strings.Contains(pattern, esc) {
			return true
		}
	}
	return walkAny(re, func(r *syntax.Regexp) bool {
		return r.Op == syntax.OpCharClass || r.Op == syntax.OpAnyCharNotNL || r.Op == syntax.OpAnyChar
	})
}

// hasMultibyte checks if the pattern contains non-ASCII characters.
func hasMultibyte(pattern string) bool {
	for _, r := range pattern {
		if r > 127 {
			return true
		}
	}
	return false
}

func isAnchorOp(r *syntax.Regexp) bool {
	switch r.Op {
	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText:
		return true
	}
	return false
}

func isRepeatOp(r *syntax.Regexp) bool {
	switch r.Op {
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		return true
	}
	return false
}

// walkAny reports whether any node of the tree satisfies pred.
func walkAny(re *syntax.Regexp, pred func(*syntax.Regexp) bool) bool {
	if re == nil {
		return false
	}
	if pred(re) {
		return true
	}
	for _, sub := range re.Sub {
		if walkAny(sub, pred) {
			return true
		}
	}
	return false
}

// extractCaptureNames lists capture groups in order; unnamed groups are "".
func extractCaptureNames(re *syntax.Regexp) []string {
	var names []string

	var walk func(*syntax.Regexp)
	walk = func(r *syntax.Regexp) {
		if r.Op == syntax.OpCapture {
			names = append(names, r.Name)
		}
		for _, sub := range r.Sub {
			walk(sub)
		}
	}

	walk(re)
	return names
}

func namedOnly(names []string) []string {
	var out []string
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// detectNestedQuantifiers reports a repetition inside another repetition,
// the usual cause of catastrophic backtracking in backtracking engines.
func detectNestedQuantifiers(re *syntax.Regexp) bool {
	return walkCheckRepeating(re, false)
}

func walkCheckRepeating(re *syntax.Regexp, inRepeat bool) bool {
	isRepeating := isRepeatOp(re)
	if isRepeating && inRepeat {
		return true
	}

	for _, sub := range re.Sub {
		if walkCheckRepeating(sub, inRepeat || isRepeating) {
			return true
		}
	}

	return false
}

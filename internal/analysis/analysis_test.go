package analysis

import (
	"regexp/syntax"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectNestedQuantifiers(t *testing.T) {
	tests := []struct {
		pattern     string
		hasNested   bool
		description string
	}{
		// Patterns WITH nested quantifiers (catastrophic backtracking risk)
		{`(a+)+`, true, "plus inside plus"},
		{`(a*)*b`, true, "star inside star with suffix"},
		{`(a?)+`, true, "optional inside plus"},
		{`(a{2,})+`, true, "repeat inside plus"},
		{`((a+)+)`, true, "nested groups with nested quantifiers"},
		{`(a|b+)+`, true, "alternation with nested quantifiers"},

		// Patterns WITHOUT nested quantifiers
		{`a+b`, false, "simple plus"},
		{`(a+)b`, false, "capture with plus, no nesting"},
		{`(ab)+`, false, "capture repeated, no nested quantifier"},
		{`a+b+c+`, false, "sequential quantifiers"},
		{`\d{4}-\d{2}-\d{2}`, false, "date pattern"},
		{`(?:a|b)+`, false, "non-capturing group repeated"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			re, err := syntax.Parse(tt.pattern, syntax.Perl)
			if err != nil {
				t.Fatalf("failed to parse pattern %q: %v", tt.pattern, err)
			}

			if got := detectNestedQuantifiers(re); got != tt.hasNested {
				t.Errorf("pattern %q: detectNestedQuantifiers = %v, want %v",
					tt.pattern, got, tt.hasNested)
			}
		})
	}
}

func TestAnalyzeFeatureLabels(t *testing.T) {
	tests := []struct {
		pattern string
		flags   string
		want    []string
	}{
		{"abc", "", []string{"Simple"}},
		{"", "", []string{"Simple"}},
		{"^abc$", "", []string{"Anchored"}},
		{"^abc$", "m", []string{"Anchored"}},
		{"cat|dog", "", []string{"Alternation"}},
		{`(?P<year>\d{4})-(?P<month>\d{2})`, "", []string{"Captures", "CharClass", "Quantifiers"}},
		{"(?:ab)+", "", []string{"NonCapturing", "Quantifiers"}},
		{`\bword\b`, "", []string{"WordBoundary"}},
		{"héllo", "", []string{"Multibyte"}},
		{"a.c", "", []string{"CharClass"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			r := Analyze(tt.pattern, tt.flags)
			if !r.GoCompatible {
				t.Fatalf("Analyze(%q) not Go compatible: %s", tt.pattern, r.ParseError)
			}
			if diff := cmp.Diff(tt.want, r.FeatureLabels); diff != "" {
				t.Errorf("Analyze(%q) labels mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestAnalyzeCaptures(t *testing.T) {
	r := Analyze(`(?P<year>\d{4})-(\d{2})-(?P<day>\d{2})`, "")
	if r.CaptureCount != 3 {
		t.Errorf("CaptureCount = %d, want 3", r.CaptureCount)
	}
	if diff := cmp.Diff([]string{"year", "day"}, r.CaptureNames); diff != "" {
		t.Errorf("CaptureNames mismatch (-want +got):\n%s", diff)
	}
	if r.NestedQuantifiers {
		t.Error("NestedQuantifiers = true, want false")
	}
}

func TestAnalyzeUnsupportedSyntax(t *testing.T) {
	tests := []string{"a(?=b)", "(?<=a)b", "[abc", "(a", "a**"}

	for _, p := range tests {
		r := Analyze(p, "")
		if r.GoCompatible {
			t.Errorf("Analyze(%q) GoCompatible = true, want false", p)
		}
		if r.ParseError == "" {
			t.Errorf("Analyze(%q) has no parse error", p)
		}
		if len(r.FeatureLabels) != 0 {
			t.Errorf("Analyze(%q) labels = %v, want none", p, r.FeatureLabels)
		}
	}

	if r := Analyze("a(?=b)", ""); !strings.Contains(r.ParseError, "(?=") {
		t.Errorf("ParseError = %q, want it to mention (?=", r.ParseError)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		flags string
		want  syntax.Flags
	}{
		{"", syntax.Perl},
		{"g", syntax.Perl},
		{"i", syntax.Perl | syntax.FoldCase},
		{"s", syntax.Perl | syntax.DotNL},
		{"m", syntax.Perl &^ syntax.OneLine},
		{"gims", (syntax.Perl | syntax.FoldCase | syntax.DotNL) &^ syntax.OneLine},
	}

	for _, tt := range tests {
		if got := parseFlags(tt.flags); got != tt.want {
			t.Errorf("parseFlags(%q) = %v, want %v", tt.flags, got, tt.want)
		}
	}
}

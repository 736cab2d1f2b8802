// Package tips derives advisory hints from a raw pattern and its flags.
package tips

import "strings"

// Rule is a single independent heuristic. Applies inspects the untokenized
// pattern and flag string.
type Rule struct {
	Name    string
	Applies func(pattern, flags string) bool
	Text    string
}

var rules = []Rule{
	{
		Name:    "greedy-quantifiers",
		Applies: hasUnboundedQuantifier,
		Text:    "Quantifiers + and * are greedy and match as much text as possible; append ? (as in +? or *?) to make them lazy.",
	},
	{
		Name: "non-capturing-groups",
		Applies: func(pattern, _ string) bool {
			return strings.Contains(pattern, "(?:")
		},
		Text: "Non-capturing groups (?:...) group without storing a backreference, which is cheaper than a capturing group when the captured text is not needed.",
	},
	{
		Name: "dot-newline",
		Applies: func(pattern, flags string) bool {
			return strings.Contains(pattern, ".") && !strings.Contains(flags, "s")
		},
		Text: "The dot (.) does not match newline characters unless the dotAll (s) flag is enabled.",
	},
	{
		Name: "full-anchoring",
		Applies: func(pattern, _ string) bool {
			return strings.Contains(pattern, "^") && strings.Contains(pattern, "$")
		},
		Text: "Using both ^ and $ forces the pattern to match the whole string rather than a part of it.",
	},
	{
		Name: "global-flag",
		Applies: func(pattern, flags string) bool {
			return !strings.Contains(flags, "g") && hasUnboundedQuantifier(pattern, flags)
		},
		Text: "Without the global (g) flag only the first match is returned; add the g flag to find all matches.",
	},
	{
		Name: "digits",
		Applies: func(pattern, _ string) bool {
			return strings.Contains(pattern, `\d`) || strings.Contains(pattern, "[0-9]")
		},
		Text: `Both \d and [0-9] match a single digit; use a quantifier such as \d+ or \d{4} to match a whole number.`,
	},
	{
		Name: "lookahead",
		Applies: func(pattern, _ string) bool {
			return strings.Contains(pattern, "(?=") || strings.Contains(pattern, "(?!")
		},
		Text: "Lookaheads (?=...) and (?!...) check what follows the current position without consuming it, so the looked-ahead text is not part of the match.",
	},
}

func hasUnboundedQuantifier(pattern, _ string) bool {
	return strings.ContainsAny(pattern, "+*")
}

// Rules returns the rule battery in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Generate evaluates every rule against pattern and flags and returns the
// text of each one that applies, in rule order.
func Generate(pattern, flags string) []string {
	out := make([]string, 0)
	for _, r := range rules {
		if r.Applies(pattern, flags) {
			out = append(out, r.Text)
		}
	}
	return out
}

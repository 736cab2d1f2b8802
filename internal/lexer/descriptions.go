package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Static descriptions for tokens.
const (
	descClass          = "Character class: matches any one of the characters between the brackets"
	descNegatedClass   = "Negated character class: matches any one character not listed between the brackets"
	descCapturing      = "Capturing group: groups the enclosed pattern and creates a numbered backreference"
	descNonCapturing   = "Non-capturing group: groups the enclosed pattern without creating a backreference"
	descLookahead      = "Positive lookahead: asserts that the enclosed pattern follows, without consuming characters"
	descNegLookahead   = "Negative lookahead: asserts that the enclosed pattern does not follow, without consuming characters"
	descOneOrMore      = "Quantifier: matches the preceding element one or more times"
	descZeroOrMore     = "Quantifier: matches the preceding element zero or more times"
	descOptional       = "Quantifier: makes the preceding element optional (zero or one time)"
	descStart          = "Anchor: matches the start of the string"
	descEnd            = "Anchor: matches the end of the string"
	descWordBoundary   = "Anchor: matches a word boundary"
	descNoWordBoundary = "Anchor: matches a position that is not a word boundary"
	descWildcard       = "Wildcard: matches any character except newline"
	descAlternation    = "Alternation: matches either the expression before or the expression after"
	descTrailingSlash  = "Trailing backslash: matches a literal backslash"
)

// escapeDescriptions covers the shorthand and control escapes.
var escapeDescriptions = map[rune]string{
	'd': "Escape: matches any digit (0-9)",
	'D': "Escape: matches any character that is not a digit",
	'w': "Escape: matches any word character (letter, digit or underscore)",
	'W': "Escape: matches any character that is not a word character",
	's': "Escape: matches any whitespace character",
	'S': "Escape: matches any character that is not whitespace",
	't': "Escape: matches a tab character",
	'n': "Escape: matches a newline character",
	'r': "Escape: matches a carriage return character",
}

// metaChars are the characters that lose their special meaning when escaped.
const metaChars = `\.+*?[](){}|^$`

func escapedLiteralDescription(r rune) string {
	return fmt.Sprintf("Escaped character: matches literal %c", r)
}

func unknownEscapeDescription(r rune) string {
	return fmt.Sprintf("Unrecognized escape: matches literal %c", r)
}

func literalDescription(value string) string {
	return fmt.Sprintf("Literal: matches exactly the character %q", value)
}

// boundedDescription describes a {n}, {n,} or {n,m} repetition. Bodies
// that are not numeric are still quantifiers, described generically.
func boundedDescription(value string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(value, "{"), "}")
	lo, hi, hasComma := strings.Cut(body, ",")
	lower, err := strconv.Atoi(lo)
	if err != nil {
		return fmt.Sprintf("Quantifier: repeats the preceding element as specified by %s", value)
	}
	if !hasComma {
		return fmt.Sprintf("Quantifier: matches the preceding element exactly %d times", lower)
	}
	if hi == "" {
		return fmt.Sprintf("Quantifier: matches the preceding element at least %d times", lower)
	}
	upper, err := strconv.Atoi(hi)
	if err != nil {
		return fmt.Sprintf("Quantifier: repeats the preceding element as specified by %s", value)
	}
	return fmt.Sprintf("Quantifier: matches the preceding element between %d and %d times", lower, upper)
}

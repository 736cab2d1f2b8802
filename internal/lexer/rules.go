package lexer

import (
	"strings"
	"unicode/utf8"
)

// rule tries to classify the token starting at offset i. It reports false
// when it does not apply, in which case the next rule in priority order is
// tried. A rule that applies always returns a non-empty token.
type rule struct {
	name  string
	match func(s *scanner, i int) (Token, bool)
}

// rules is the classification priority order. The literal rule is last and
// always applies.
var rules = []rule{
	{"character-class", matchCharacterClass},
	{"group", matchGroup},
	{"quantifier", matchQuantifier},
	{"bounded-quantifier", matchBoundedQuantifier},
	{"anchor", matchAnchor},
	{"backslash", matchBackslash},
	{"wildcard", matchWildcard},
	{"alternation", matchAlternation},
	{"literal", matchLiteral},
}

// RuleNames returns the classification rules in priority order.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

func matchCharacterClass(s *scanner, i int) (Token, bool) {
	if s.src[i] != '[' {
		return Token{}, false
	}
	end := s.closingBracket(i)
	if end < 0 {
		return Token{}, false
	}
	value := s.src[i : end+1]
	if strings.HasPrefix(value, "[^") {
		return newToken(CharacterClass, value, descNegatedClass), true
	}
	return newToken(CharacterClass, value, descClass), true
}

func matchGroup(s *scanner, i int) (Token, bool) {
	if s.src[i] != '(' {
		return Token{}, false
	}
	end := s.closingParen(i)
	if end < 0 {
		return Token{}, false
	}
	value := s.src[i : end+1]
	switch {
	case strings.HasPrefix(value, "(?="):
		return newToken(Lookahead, value, descLookahead), true
	case strings.HasPrefix(value, "(?!"):
		return newToken(Lookahead, value, descNegLookahead), true
	case strings.HasPrefix(value, "(?:"):
		return newToken(NonCapturingGroup, value, descNonCapturing), true
	default:
		// Lookbehind and named groups land here as well.
		return newToken(CapturingGroup, value, descCapturing), true
	}
}

func matchQuantifier(s *scanner, i int) (Token, bool) {
	switch s.src[i] {
	case '+':
		return newToken(Quantifier, "+", descOneOrMore), true
	case '*':
		return newToken(Quantifier, "*", descZeroOrMore), true
	case '?':
		return newToken(Quantifier, "?", descOptional), true
	}
	return Token{}, false
}

func matchBoundedQuantifier(s *scanner, i int) (Token, bool) {
	if s.src[i] != '{' {
		return Token{}, false
	}
	end := s.closingBrace(i)
	if end < 0 {
		return Token{}, false
	}
	value := s.src[i : end+1]
	return newToken(Quantifier, value, boundedDescription(value)), true
}

func matchAnchor(s *scanner, i int) (Token, bool) {
	switch s.src[i] {
	case '^':
		return newToken(Anchor, "^", descStart), true
	case '$':
		return newToken(Anchor, "$", descEnd), true
	}
	return Token{}, false
}

func matchBackslash(s *scanner, i int) (Token, bool) {
	if s.src[i] != '\\' {
		return Token{}, false
	}
	if i+1 >= len(s.src) {
		return newToken(Literal, `\`, descTrailingSlash), true
	}

	r, size := utf8.DecodeRuneInString(s.src[i+1:])
	value := s.src[i : i+1+size]

	switch {
	case r == 'b':
		return newToken(Anchor, value, descWordBoundary), true
	case r == 'B':
		return newToken(Anchor, value, descNoWordBoundary), true
	}
	if desc, ok := escapeDescriptions[r]; ok {
		return newToken(Escape, value, desc), true
	}
	if strings.ContainsRune(metaChars, r) {
		return newToken(Literal, value, escapedLiteralDescription(r)), true
	}
	return newToken(Literal, value, unknownEscapeDescription(r)), true
}

func matchWildcard(s *scanner, i int) (Token, bool) {
	if s.src[i] != '.' {
		return Token{}, false
	}
	return newToken(Wildcard, ".", descWildcard), true
}

func matchAlternation(s *scanner, i int) (Token, bool) {
	if s.src[i] != '|' {
		return Token{}, false
	}
	return newToken(Alternation, "|", descAlternation), true
}

// matchLiteral consumes one rune. Invalid UTF-8 is consumed one byte at a time.
func matchLiteral(s *scanner, i int) (Token, bool) {
	_, size := utf8.DecodeRuneInString(s.src[i:])
	value := s.src[i : i+size]
	return newToken(Literal, value, literalDescription(value)), true
}

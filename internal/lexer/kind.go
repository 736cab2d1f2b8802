// Package lexer splits a regular-expression source string into classified tokens.
package lexer

import "fmt"

// Kind classifies a token.
type Kind uint8

const (
	// Literal matches a single character (or an escaped one) verbatim.
	Literal Kind = iota
	// CharacterClass is a bracket expression such as [a-z].
	CharacterClass
	// CapturingGroup is a parenthesised group that creates a numbered backreference.
	CapturingGroup
	// NonCapturingGroup is a (?:...) group.
	NonCapturingGroup
	// Lookahead is a (?=...) or (?!...) zero-width assertion.
	Lookahead
	// Quantifier is +, *, ? or a bounded {n,m} repetition.
	Quantifier
	// Anchor is ^, $, \b or \B.
	Anchor
	// Escape is a shorthand class or control escape such as \d or \n.
	Escape
	// Wildcard is the dot.
	Wildcard
	// Alternation is the | operator.
	Alternation
)

var kindNames = [...]string{
	Literal:           "Literal",
	CharacterClass:    "CharacterClass",
	CapturingGroup:    "CapturingGroup",
	NonCapturingGroup: "NonCapturingGroup",
	Lookahead:         "Lookahead",
	Quantifier:        "Quantifier",
	Anchor:            "Anchor",
	Escape:            "Escape",
	Wildcard:          "Wildcard",
	Alternation:       "Alternation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown token kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// ColorTag is a presentation hint shared by a family of kinds.
type ColorTag string

const (
	TagLiteral     ColorTag = "literal"
	TagClass       ColorTag = "class"
	TagGroup       ColorTag = "group"
	TagLookaround  ColorTag = "lookaround"
	TagQuantifier  ColorTag = "quantifier"
	TagAnchor      ColorTag = "anchor"
	TagEscape      ColorTag = "escape"
	TagWildcard    ColorTag = "wildcard"
	TagAlternation ColorTag = "alternation"
)

// Tag returns the color tag for the kind's family.
func (k Kind) Tag() ColorTag {
	switch k {
	case CharacterClass:
		return TagClass
	case CapturingGroup, NonCapturingGroup:
		return TagGroup
	case Lookahead:
		return TagLookaround
	case Quantifier:
		return TagQuantifier
	case Anchor:
		return TagAnchor
	case Escape:
		return TagEscape
	case Wildcard:
		return TagWildcard
	case Alternation:
		return TagAlternation
	default:
		return TagLiteral
	}
}

// Token is one classified, contiguous slice of a pattern.
type Token struct {
	Value       string   `json:"value"`
	Kind        Kind     `json:"kind"`
	Description string   `json:"description"`
	Tag         ColorTag `json:"tag"`
}

func newToken(kind Kind, value, description string) Token {
	return Token{
		Value:       value,
		Kind:        kind,
		Description: description,
		Tag:         kind.Tag(),
	}
}

package lexer

import "strings"

// Tokenize splits pattern into classified tokens. Concatenating the Value of
// every returned token reproduces pattern exactly. Malformed syntax never
// fails: an opening [, ( or { without a partner becomes a Literal.
func Tokenize(pattern string) []Token {
	tokens := make([]Token, 0)
	s := newScanner(pattern)

	for i := 0; i < len(pattern); {
		tok := s.next(i)
		tokens = append(tokens, tok)
		i += len(tok.Value)
	}

	return tokens
}

// scanner holds lookup state derived from a single pattern. It is created
// per Tokenize call and never shared.
type scanner struct {
	src string

	// parens maps the offset of each unescaped ( to its matching ).
	// Built on first use.
	parens map[int]int

	// Once a search for ] or } has run off the end of the pattern, every
	// later search for the same closer fails too.
	noBracket bool
	noBrace   bool
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) next(i int) Token {
	for _, r := range rules {
		if tok, ok := r.match(s, i); ok {
			return tok
		}
	}
	tok, _ := matchLiteral(s, i)
	return tok
}

// closingBracket returns the offset of the nearest unescaped ] after the [
// at i, or -1.
func (s *scanner) closingBracket(i int) int {
	if s.noBracket {
		return -1
	}
	for j := i + 1; j < len(s.src); j++ {
		switch s.src[j] {
		case '\\':
			j++
		case ']':
			return j
		}
	}
	s.noBracket = true
	return -1
}

// closingBrace returns the offset of the nearest } after the { at i, or -1.
func (s *scanner) closingBrace(i int) int {
	if s.noBrace {
		return -1
	}
	end := strings.IndexByte(s.src[i+1:], '}')
	if end < 0 {
		s.noBrace = true
		return -1
	}
	return i + 1 + end
}

// closingParen returns the offset of the ) that brings the nesting depth
// opened by the ( at i back to zero, or -1 if the group never closes.
// Parentheses preceded by an unescaped backslash do not count.
func (s *scanner) closingParen(i int) int {
	if s.parens == nil {
		s.parens = pairParens(s.src)
	}
	if end, ok := s.parens[i]; ok {
		return end
	}
	return -1
}

// pairParens matches every unescaped ( with its closing ) in one pass.
// A ( paired here is exactly one whose depth count returns to zero.
func pairParens(src string) map[int]int {
	pairs := make(map[int]int)
	var open []int

	for j := 0; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '(':
			open = append(open, j)
		case ')':
			if n := len(open); n > 0 {
				pairs[open[n-1]] = j
				open = open[:n-1]
			}
		}
	}

	return pairs
}

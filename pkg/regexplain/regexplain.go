// Package regexplain breaks regular expressions into classified tokens and
// derives usage tips from them. It never executes the pattern.
package regexplain

import (
	"strings"

	"go.uber.org/zap"

	"github.com/KromDaniel/regexplain/internal/analysis"
	"github.com/KromDaniel/regexplain/internal/lexer"
	"github.com/KromDaniel/regexplain/internal/tips"
)

// Token is one classified slice of a pattern.
type Token = lexer.Token

// Kind classifies a token.
type Kind = lexer.Kind

// ColorTag is the presentation hint carried by a token.
type ColorTag = lexer.ColorTag

// Report holds the optional structural analysis of a pattern.
type Report = analysis.Report

// Token kinds.
const (
	Literal           = lexer.Literal
	CharacterClass    = lexer.CharacterClass
	CapturingGroup    = lexer.CapturingGroup
	NonCapturingGroup = lexer.NonCapturingGroup
	Lookahead         = lexer.Lookahead
	Quantifier        = lexer.Quantifier
	Anchor            = lexer.Anchor
	Escape            = lexer.Escape
	Wildcard          = lexer.Wildcard
	Alternation       = lexer.Alternation
)

// Explanation is the result handed to a renderer.
type Explanation struct {
	Pattern  string   `json:"pattern"`
	Flags    string   `json:"flags"`
	Tokens   []Token  `json:"tokens"`
	Tips     []string `json:"tips"`
	Analysis *Report  `json:"analysis,omitempty"`
}

// Reconstruct joins the token values. It always equals Pattern.
func (e *Explanation) Reconstruct() string {
	var b strings.Builder
	b.Grow(len(e.Pattern))
	for _, t := range e.Tokens {
		b.WriteString(t.Value)
	}
	return b.String()
}

// Counts returns the number of tokens of each kind.
func (e *Explanation) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, t := range e.Tokens {
		counts[t.Kind]++
	}
	return counts
}

// Tokenize classifies every part of pattern. See lexer.Tokenize.
func Tokenize(pattern string) []Token {
	return lexer.Tokenize(pattern)
}

// Tips returns the usage tips that apply to pattern and flags.
func Tips(pattern, flags string) []string {
	return tips.Generate(pattern, flags)
}

// Explain tokenizes pattern and generates its tips.
//
// Example:
//
//	exp := regexplain.Explain(`(\d+)-\w*`, "g")
//	for _, tok := range exp.Tokens {
//	    fmt.Println(tok.Value, tok.Kind, tok.Description)
//	}
func Explain(pattern, flags string) *Explanation {
	return defaultExplainer.Explain(pattern, flags)
}

var defaultExplainer = New()

// Option configures an Explainer.
type Option func(*Explainer)

// WithAnalysis attaches a structural analysis report to every explanation.
func WithAnalysis(enabled bool) Option {
	return func(e *Explainer) {
		e.analyze = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Explainer) {
		if l != nil {
			e.logger = l
		}
	}
}

// Explainer produces explanations. It holds no mutable state and is safe for
// concurrent use.
type Explainer struct {
	analyze bool
	logger  *zap.Logger
}

// New creates an Explainer.
func New(opts ...Option) *Explainer {
	e := &Explainer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Explain tokenizes pattern and generates its tips.
func (e *Explainer) Explain(pattern, flags string) *Explanation {
	exp := &Explanation{
		Pattern: pattern,
		Flags:   flags,
		Tokens:  lexer.Tokenize(pattern),
		Tips:    tips.Generate(pattern, flags),
	}
	if e.analyze {
		exp.Analysis = analysis.Analyze(pattern, flags)
	}

	e.logger.Debug("explained pattern",
		zap.String("pattern", pattern),
		zap.String("flags", flags),
		zap.Int("tokens", len(exp.Tokens)),
		zap.Int("tips", len(exp.Tips)),
	)

	return exp
}

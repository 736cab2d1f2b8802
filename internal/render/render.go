// Package render prints explanations to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/KromDaniel/regexplain/internal/lexer"
	"github.com/KromDaniel/regexplain/pkg/regexplain"
)

// ColorMode controls when ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a config or flag value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

// tagColors maps each color tag to an ANSI 256 color.
var tagColors = map[lexer.ColorTag]string{
	lexer.TagLiteral:     "252",
	lexer.TagClass:       "39",
	lexer.TagGroup:       "170",
	lexer.TagLookaround:  "141",
	lexer.TagQuantifier:  "214",
	lexer.TagAnchor:      "196",
	lexer.TagEscape:      "42",
	lexer.TagWildcard:    "226",
	lexer.TagAlternation: "208",
}

// Renderer writes styled explanations to an output.
type Renderer struct {
	out    io.Writer
	lg     *lipgloss.Renderer
	styles map[lexer.ColorTag]lipgloss.Style

	heading lipgloss.Style
	muted   lipgloss.Style
}

// New creates a renderer for out. ColorAuto defers to terminal detection.
func New(out io.Writer, mode ColorMode) *Renderer {
	lg := lipgloss.NewRenderer(out)
	switch mode {
	case ColorAlways:
		lg.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		lg.SetColorProfile(termenv.Ascii)
	}

	r := &Renderer{
		out:     out,
		lg:      lg,
		styles:  make(map[lexer.ColorTag]lipgloss.Style, len(tagColors)),
		heading: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		muted:   lg.NewStyle().Foreground(lipgloss.Color("243")),
	}
	for tag, color := range tagColors {
		r.styles[tag] = lg.NewStyle().Foreground(lipgloss.Color(color))
	}
	return r
}

func (r *Renderer) style(tag lexer.ColorTag) lipgloss.Style {
	if s, ok := r.styles[tag]; ok {
		return s
	}
	return r.lg.NewStyle()
}

// Highlight returns the pattern with each token colored by its tag.
func (r *Renderer) Highlight(tokens []regexplain.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(r.style(t.Tag).Render(t.Value))
	}
	return b.String()
}

// Explain writes the highlighted pattern, a token table and the tips.
func (r *Renderer) Explain(exp *regexplain.Explanation) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", r.heading.Render("Pattern:"), r.Highlight(exp.Tokens))
	if exp.Flags != "" {
		fmt.Fprintf(&b, "%s %s\n", r.heading.Render("Flags:"), exp.Flags)
	}

	b.WriteString("\n" + r.heading.Render("Tokens") + "\n")
	if len(exp.Tokens) == 0 {
		b.WriteString("  " + r.muted.Render("(empty pattern)") + "\n")
	}

	width := 0
	for _, t := range exp.Tokens {
		width = max(width, lipgloss.Width(t.Value))
	}
	for _, t := range exp.Tokens {
		pad := strings.Repeat(" ", width-lipgloss.Width(t.Value))
		fmt.Fprintf(&b, "  %s%s  %s\n", r.style(t.Tag).Render(t.Value), pad, t.Description)
	}

	if len(exp.Tips) > 0 {
		b.WriteString("\n" + r.heading.Render("Tips") + "\n")
		r.writeTips(&b, exp.Tips)
	}

	if exp.Analysis != nil {
		b.WriteString("\n" + r.heading.Render("Analysis") + "\n")
		r.writeAnalysis(&b, exp.Analysis)
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Tips writes only the tips section.
func (r *Renderer) Tips(tips []string) error {
	var b strings.Builder
	if len(tips) == 0 {
		b.WriteString(r.muted.Render("No tips for this pattern.") + "\n")
	} else {
		r.writeTips(&b, tips)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) writeTips(b *strings.Builder, tips []string) {
	for _, tip := range tips {
		fmt.Fprintf(b, "  - %s\n", tip)
	}
}

func (r *Renderer) writeAnalysis(b *strings.Builder, rep *regexplain.Report) {
	if !rep.GoCompatible {
		fmt.Fprintf(b, "  Go regexp: %s\n", r.muted.Render("unsupported ("+rep.ParseError+")"))
		return
	}
	fmt.Fprintf(b, "  Go regexp: supported\n")
	fmt.Fprintf(b, "  Features: %s\n", strings.Join(rep.FeatureLabels, ", "))
	fmt.Fprintf(b, "  Captures: %d\n", rep.CaptureCount)
	if len(rep.CaptureNames) > 0 {
		fmt.Fprintf(b, "  Named captures: %s\n", strings.Join(rep.CaptureNames, ", "))
	}
	if rep.NestedQuantifiers {
		fmt.Fprintf(b, "  %s\n", r.style(lexer.TagAnchor).Render("Nested quantifiers may cause exponential backtracking in other engines"))
	}
}

package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/regexplain/internal/catalog"
	"github.com/KromDaniel/regexplain/internal/lexer"
	"github.com/KromDaniel/regexplain/internal/logger"
	"github.com/KromDaniel/regexplain/internal/tips"
)

// HeaderComment marks generated files.
const HeaderComment = "Code generated by regexplain. DO NOT EDIT."

// Options configures code generation.
type Options struct {
	// Package is the Go package name for the generated code
	Package string

	// Patterns are the catalog entries to embed
	Patterns []catalog.Entry

	// Logger receives verbose output; nil disables it
	Logger *logger.Logger
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", o.Package)
	}
	if len(o.Patterns) == 0 {
		return fmt.Errorf("at least one pattern is required")
	}
	return nil
}

// Generator builds a Go file holding one Explained value per pattern.
type Generator struct {
	opts   Options
	file   *jen.File
	logger *logger.Logger
	ids    []string
}

// New creates a generator. Options are validated by Generate.
func New(opts Options) *Generator {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Generator{
		opts:   opts,
		file:   jen.NewFile(opts.Package),
		logger: l,
	}
}

// Generate builds the file contents. It must be called before Render or Save.
func (g *Generator) Generate() error {
	if err := g.opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	g.logger.Section("Code Generation")
	g.logger.Log("Package: %s", g.opts.Package)

	seen := make(map[string]string)
	for _, e := range g.opts.Patterns {
		id, err := Identifier(e.Name)
		if err != nil {
			return err
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("patterns %q and %q both map to identifier %s", prev, e.Name, id)
		}
		seen[id] = e.Name
		g.ids = append(g.ids, id)
	}

	g.file.HeaderComment(HeaderComment)
	g.generateTypes()
	for i, e := range g.opts.Patterns {
		g.generatePattern(g.ids[i], e)
	}
	g.generateCatalog()

	return nil
}

func (g *Generator) generateTypes() {
	g.file.Comment(TokenTypeName + " is one classified slice of a pattern.")
	g.file.Type().Id(TokenTypeName).Struct(
		jen.Id("Value").String().Tag(map[string]string{"json": "value"}),
		jen.Id("Kind").String().Tag(map[string]string{"json": "kind"}),
		jen.Id("Description").String().Tag(map[string]string{"json": "description"}),
		jen.Id("Tag").String().Tag(map[string]string{"json": "tag"}),
	)

	g.file.Comment(ExplainedName + " is a pattern together with its pre-computed explanation.")
	g.file.Type().Id(ExplainedName).Struct(
		jen.Id("Name").String().Tag(map[string]string{"json": "name"}),
		jen.Id("Pattern").String().Tag(map[string]string{"json": "pattern"}),
		jen.Id("Flags").String().Tag(map[string]string{"json": "flags"}),
		jen.Id("Description").String().Tag(map[string]string{"json": "description,omitempty"}),
		jen.Id("Tokens").Index().Id(TokenTypeName).Tag(map[string]string{"json": "tokens"}),
		jen.Id("Tips").Index().String().Tag(map[string]string{"json": "tips"}),
	)
}

func (g *Generator) generatePattern(id string, e catalog.Entry) {
	toks := lexer.Tokenize(e.Pattern)
	hints := tips.Generate(e.Pattern, e.Flags)
	g.logger.Log("%s: %d tokens, %d tips", id, len(toks), len(hints))

	tokValues := make([]jen.Code, 0, len(toks))
	for _, t := range toks {
		tokValues = append(tokValues, jen.Values(jen.Dict{
			jen.Id("Value"):       jen.Lit(t.Value),
			jen.Id("Kind"):        jen.Lit(t.Kind.String()),
			jen.Id("Description"): jen.Lit(t.Description),
			jen.Id("Tag"):         jen.Lit(string(t.Tag)),
		}))
	}

	tipValues := make([]jen.Code, 0, len(hints))
	for _, h := range hints {
		tipValues = append(tipValues, jen.Lit(h))
	}

	fields := jen.Dict{
		jen.Id("Name"):    jen.Lit(e.Name),
		jen.Id("Pattern"): jen.Lit(e.Pattern),
		jen.Id("Flags"):   jen.Lit(e.Flags),
		jen.Id("Tokens"):  jen.Index().Id(TokenTypeName).Values(tokValues...),
		jen.Id("Tips"):    jen.Index().String().Values(tipValues...),
	}
	if e.Description != "" {
		fields[jen.Id("Description")] = jen.Lit(e.Description)
	}

	doc := fmt.Sprintf("%s explains the %s pattern.", VarName(id), e.Name)
	if e.Description != "" {
		doc = fmt.Sprintf("%s explains the %s pattern: %s", VarName(id), e.Name, e.Description)
	}
	g.file.Comment(doc)
	g.file.Var().Id(VarName(id)).Op("=").Id(ExplainedName).Values(fields)
}

func (g *Generator) generateCatalog() {
	entries := jen.Dict{}
	for i, e := range g.opts.Patterns {
		entries[jen.Lit(e.Name)] = jen.Op("&").Id(VarName(g.ids[i]))
	}

	g.file.Comment(CatalogVarName + " indexes every explained pattern by its catalog name.")
	g.file.Var().Id(CatalogVarName).Op("=").Map(jen.String()).Op("*").Id(ExplainedName).Values(entries)
}

// Render writes the formatted file to w.
func (g *Generator) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := g.file.Render(&buf); err != nil {
		return fmt.Errorf("failed to render file: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	_, err = w.Write(formatted)
	return err
}

// Save writes the formatted file to path.
func (g *Generator) Save(path string) error {
	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	g.logger.Log("Wrote %s", path)
	return nil
}

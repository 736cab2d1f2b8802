package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/KromDaniel/regexplain/internal/catalog"
)

func render(t *testing.T, opts Options) string {
	t.Helper()
	g := New(opts)
	if err := g.Generate(); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestGenerate(t *testing.T) {
	src := render(t, Options{
		Package: "patterns",
		Patterns: []catalog.Entry{
			{Name: "iso-date", Pattern: `(\d{4})-(\d{2})`, Flags: "g", Description: "year and month"},
			{Name: "word", Pattern: `\w+`},
		},
	})

	if !strings.HasPrefix(src, "// "+HeaderComment) {
		t.Errorf("missing header comment, got:\n%s", src)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "explained.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	if f.Name.Name != "patterns" {
		t.Errorf("package = %q, want patterns", f.Name.Name)
	}

	var types, vars []string
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				types = append(types, s.Name.Name)
			case *ast.ValueSpec:
				for _, n := range s.Names {
					vars = append(vars, n.Name)
				}
			}
		}
	}
	sort.Strings(vars)

	if diff := cmp.Diff([]string{"ExplainedToken", "Explained"}, types); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Catalog", "IsoDateExplained", "WordExplained"}, vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}

	for _, want := range []string{
		`"CapturingGroup"`,
		`"Escape: matches any digit (0-9)"`,
		`"year and month"`,
		`"iso-date": &IsoDateExplained`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %s", want)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no package", Options{Patterns: []catalog.Entry{{Name: "a", Pattern: "a"}}}},
		{"bad package", Options{Package: "my-pkg", Patterns: []catalog.Entry{{Name: "a", Pattern: "a"}}}},
		{"no patterns", Options{Package: "p"}},
		{"bad name", Options{Package: "p", Patterns: []catalog.Entry{{Name: "9lives", Pattern: "a"}}}},
		{"colliding names", Options{Package: "p", Patterns: []catalog.Entry{
			{Name: "user-id", Pattern: "a"},
			{Name: "user_id", Pattern: "b"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := New(tt.opts).Generate(); err == nil {
				t.Error("Generate() succeeded, want error")
			}
		})
	}
}

func TestSave(t *testing.T) {
	g := New(Options{
		Package:  "out",
		Patterns: []catalog.Entry{{Name: "Dot", Pattern: "."}},
	})
	if err := g.Generate(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "explained.go")
	if err := g.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "var DotExplained = Explained{") {
		t.Errorf("saved file missing DotExplained:\n%s", data)
	}
}

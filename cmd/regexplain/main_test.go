package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/regexplain/internal/matcher"
	"github.com/KromDaniel/regexplain/pkg/regexplain"
)

// run executes the CLI in a fresh temporary working directory.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	return runHere(t, stdin, args...)
}

func runHere(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExplainText(t *testing.T) {
	out, _, err := run(t, "", "explain", "--color", "never", `^\d+$`)
	require.NoError(t, err)

	assert.Contains(t, out, `Pattern: ^\d+$`)
	assert.Contains(t, out, "Anchor: matches the start")
	assert.Contains(t, out, "Escape: matches any digit (0-9)")
	assert.Contains(t, out, "Tips")
}

func TestExplainJSON(t *testing.T) {
	out, _, err := run(t, "", "explain", "--json", "-f", "g", "(a|b)+")
	require.NoError(t, err)

	var exp regexplain.Explanation
	require.NoError(t, json.Unmarshal([]byte(out), &exp))
	assert.Equal(t, "(a|b)+", exp.Pattern)
	assert.Equal(t, "g", exp.Flags)
	require.Len(t, exp.Tokens, 2)
	assert.Equal(t, regexplain.CapturingGroup, exp.Tokens[0].Kind)
	assert.Equal(t, regexplain.Quantifier, exp.Tokens[1].Kind)
	assert.Nil(t, exp.Analysis)
}

func TestExplainAnalyzeFromConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".config", "regexplain.yaml"), []byte("analyze: true\nflags: s\n"), 0644))

	out, _, err := runHere(t, "", "explain", "--json", "a.b")
	require.NoError(t, err)

	var exp regexplain.Explanation
	require.NoError(t, json.Unmarshal([]byte(out), &exp))
	assert.Equal(t, "s", exp.Flags)
	require.NotNil(t, exp.Analysis)
	assert.True(t, exp.Analysis.GoCompatible)
}

func TestExplainEmptyPattern(t *testing.T) {
	out, _, err := run(t, "", "explain", "--json", "")
	require.NoError(t, err)
	assert.Contains(t, out, `"tokens": []`)
	assert.Contains(t, out, `"tips": []`)
}

func TestExplainWarnsOnUnknownFlags(t *testing.T) {
	_, stderr, err := run(t, "", "explain", "-f", "gx", "a")
	require.NoError(t, err)
	assert.Contains(t, stderr, "unrecognized regex flags")
}

func TestTips(t *testing.T) {
	out, _, err := run(t, "", "tips", "--json", ".*")
	require.NoError(t, err)

	var tips []string
	require.NoError(t, json.Unmarshal([]byte(out), &tips))
	assert.Len(t, tips, 3)

	out, _, err = run(t, "", "tips", "--color", "never", "abc")
	require.NoError(t, err)
	assert.Equal(t, "No tips for this pattern.\n", out)
}

func TestMatch(t *testing.T) {
	out, _, err := run(t, "", "match", "--json", "-f", "g", `(\d)(?=x)`, "1x2y3x")
	require.NoError(t, err)

	var res matcher.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "1", res.Matches[0].Value)
	assert.Equal(t, 4, res.Matches[1].Index)
}

func TestMatchStdinText(t *testing.T) {
	out, _, err := run(t, "hello world", "match", `(?<w>o)`, "-")
	require.NoError(t, err)
	assert.Contains(t, out, `Match 1 at 4 (length 1): "o"`)
	assert.Contains(t, out, `group w at 4: "o"`)
}

func TestMatchNoMatch(t *testing.T) {
	out, _, err := run(t, "", "match", "z", "abc")
	require.NoError(t, err)
	assert.Equal(t, "No match.\n", out)
}

func TestMatchErrors(t *testing.T) {
	_, _, err := run(t, "", "match", "-f", "q", "a", "a")
	assert.Error(t, err)

	_, _, err = run(t, "", "match", "(", "a")
	assert.Error(t, err)
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "patterns"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patterns", "common.yaml"), []byte(`
package: patterns
patterns:
  - name: iso-date
    pattern: '\d{4}-\d{2}-\d{2}'
  - name: word
    pattern: '\w+'
    flags: g
`), 0644))

	out, _, err := runHere(t, "", "gen", "--catalog", "patterns/*.yaml", "-o", "gen.go")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 2 explanations")

	data, err := os.ReadFile(filepath.Join(dir, "gen.go"))
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "package patterns")
	assert.Contains(t, src, "IsoDateExplained")
	assert.Contains(t, src, "WordExplained")
}

func TestGenPackageOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte(`{"patterns": [{"name": "a", "pattern": "a"}]}`), 0644))

	_, _, err := runHere(t, "", "gen", "--catalog", "c.json", "--package", "custom")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "explained.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package custom")
}

func TestGenErrors(t *testing.T) {
	_, _, err := run(t, "", "gen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalogs")

	_, _, err = run(t, "", "gen", "--catalog", "*.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no patterns found")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "regexplain "))

	out, _, err = run(t, "", "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info["version"])
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "", "explain", "--color", "rainbow", "a")
	require.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := run(t, "", "explain", "-v", "--json", "a+")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Configuration")
	assert.Contains(t, stderr, "explained pattern")
	assert.NotContains(t, out, "Configuration")
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

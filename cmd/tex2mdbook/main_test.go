// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tex2mdbook/internal/index"
	"github.com/pdiddy/tex2mdbook/pkg/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_BuildIndexSearch(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("book.md", []byte("# Alpha\nfirst topic\n## Beta\nsecond topic\n# Gamma\nthird"), 0o644))

	out, err := execute(t, "book.md", "--skip-pandoc", "-o", "out")
	require.NoError(t, err)
	assert.Contains(t, out, "Done: 3 sections written to out")

	summary, err := os.ReadFile(filepath.Join(dir, "out", "SUMMARY.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Summary\n\n- [Alpha](1-alpha.md)\n  - [Beta](1.1-beta.md)\n- [Gamma](2-gamma.md)", string(summary))

	out, err = execute(t, "search", "-o", "out", "topic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), index.ErrNoIndex.Error())

	out, err = execute(t, "index", "-o", "out")
	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 3 sections")

	out, err = execute(t, "search", "-o", "out", "--json", "second")
	require.NoError(t, err)
	var results []index.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "1.1-beta.md", results[0].File)
}

func TestCLI_RequiresOneInput(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)

	_, err = execute(t, "a.tex", "b.tex")
	require.Error(t, err)
}

func TestCLI_Version(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tex2mdbook dev\n", out)
}

func TestFormatSearchOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatSearchOutput(&buf, nil, false))
	assert.Equal(t, "No results found.\n", buf.String())

	buf.Reset()
	results := []index.Result{
		{Position: 2, ID: "1.1", Level: 2, Title: "A rather long section title that overflows", File: "1.1-a.md", Snippet: "the [match]\nspans lines"},
	}
	require.NoError(t, formatSearchOutput(&buf, results, false))
	assert.Contains(t, buf.String(), "A rather long section title...")
	assert.Contains(t, buf.String(), "the [match] spans lines")
	assert.Contains(t, buf.String(), "1 results")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 30))
	assert.Equal(t, "Théorème", truncate("Théorème", 8))

	got := truncate("Théorème de l'éléphant", 10)
	assert.Equal(t, "Théorèm...", got)
	assert.True(t, utf8.ValidString(got))

	got = truncate("ééééééééééééé", 6)
	assert.Equal(t, "ééé...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestCLI_InputNamedLikeSubcommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("index", []byte("# Only\nbody"), 0o644))

	out, err := execute(t, "./index", "--skip-pandoc", "-o", "book")
	require.NoError(t, err)
	assert.Contains(t, out, "Done: 1 sections written to book")

	_, err = os.Stat(filepath.Join(dir, "book", "1-only.md"))
	assert.NoError(t, err)

	t.Cleanup(func() { _ = rootCmd.Flags().Set("help", "false") })
	help, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, help, "./index")
}

func TestBookConfig_Defaults(t *testing.T) {
	cfg := bookConfig("thesis.tex")

	assert.Equal(t, "thesis.tex", cfg.Input)
	assert.Equal(t, types.BackendPandoc, cfg.Conversion.Backend)
	assert.Equal(t, "pandoc", cfg.Conversion.PandocPath)
	assert.Equal(t, "pandoc/core:latest", cfg.Conversion.Image)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

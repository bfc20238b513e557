// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build runs one tex2mdbook invocation end to end: convert the
// input to Markdown, split it into sections, write the book and optionally
// index it.
package build

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/tex2mdbook/internal/book"
	"github.com/pdiddy/tex2mdbook/internal/convert"
	"github.com/pdiddy/tex2mdbook/internal/index"
	"github.com/pdiddy/tex2mdbook/internal/segment"
	"github.com/pdiddy/tex2mdbook/pkg/types"
)

// TempFile is the intermediate Markdown file written to the working
// directory while converting.
const TempFile = ".tex2mdbook.md"

// DefaultOutputDir is used when the configuration leaves the output empty.
const DefaultOutputDir = "src"

// Result summarizes a completed build.
type Result struct {
	Dir      string
	Sections int
	Indexed  int
}

// Run builds the book described by cfg, printing progress to w. conv may be
// nil when cfg.Conversion.Skip is set.
//
// A conversion failure aborts the run and leaves TempFile in place for
// inspection. Once conversion has succeeded the temporary file is removed
// whether or not the remaining steps succeed.
func Run(ctx context.Context, cfg types.BookConfig, conv convert.Converter, w io.Writer) (Result, error) {
	dir := cfg.Output.Dir
	if dir == "" {
		dir = DefaultOutputDir
	}

	markdown, err := loadMarkdown(ctx, cfg, conv, w)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintln(w, "Splitting into sections...")
	b := segment.Split(markdown)

	opts := book.Options{Frontmatter: cfg.Output.Frontmatter, Manifest: cfg.Output.Manifest}
	if err := book.Write(dir, b, opts, w); err != nil {
		return Result{}, err
	}

	res := Result{Dir: dir, Sections: len(b.Sections)}

	if cfg.Output.Index {
		store, err := index.Open(dir)
		if err != nil {
			return res, err
		}
		defer store.Close()

		n, err := store.Ingest(ctx, b.Sections)
		if err != nil {
			return res, err
		}
		res.Indexed = n
		fmt.Fprintf(w, "Indexed %d sections into %s\n", n, index.Path(dir))
	}

	fmt.Fprintf(w, "Done: %d sections written to %s\n", res.Sections, dir)
	return res, nil
}

// loadMarkdown returns the Markdown text to split: the input itself when
// conversion is skipped, otherwise the converter's output.
func loadMarkdown(ctx context.Context, cfg types.BookConfig, conv convert.Converter, w io.Writer) (string, error) {
	if cfg.Conversion.Skip {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}

	if conv == nil {
		return "", fmt.Errorf("no converter configured for %s", cfg.Input)
	}

	fmt.Fprintf(w, "Converting %s...\n", cfg.Input)
	if err := conv.Convert(ctx, cfg.Input, TempFile); err != nil {
		return "", err
	}
	defer os.Remove(TempFile)

	data, err := os.ReadFile(TempFile)
	if err != nil {
		return "", fmt.Errorf("reading converted markdown: %w", err)
	}
	return string(data), nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package book writes a segmented document to disk in mdBook layout (one
// Markdown file per section plus SUMMARY.md) and reads such a directory
// back.
package book

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tex2mdbook/pkg/types"
)

const (
	// SummaryFile is the navigation manifest read by the site generator.
	SummaryFile = "SUMMARY.md"
	// ManifestFile is the optional machine-readable table of contents.
	ManifestFile = "book.yaml"

	summaryHeader = "# Summary\n\n"
)

// Options controls optional output of Write.
type Options struct {
	// Frontmatter prefixes each section file with YAML id/level/title.
	Frontmatter bool

	// Manifest also writes book.yaml.
	Manifest bool
}

// frontmatter is the YAML block written at the top of section files.
type frontmatter struct {
	ID    string `yaml:"id"`
	Level int    `yaml:"level"`
	Title string `yaml:"title"`
}

// Write materializes b in dir: every section to its own file, then
// SUMMARY.md. The directory is created if needed and existing files of the
// same name are overwritten. Each written path is reported to w.
func Write(dir string, b types.Book, opts Options, w io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	for _, s := range b.Sections {
		content := s.Body()
		if opts.Frontmatter {
			fm, err := renderFrontmatter(s)
			if err != nil {
				return err
			}
			content = fm + content
		}
		if err := writeFile(dir, s.Filename, content, w); err != nil {
			return err
		}
	}

	if err := writeFile(dir, SummaryFile, Summary(b), w); err != nil {
		return err
	}

	if opts.Manifest {
		data, err := yaml.Marshal(&b)
		if err != nil {
			return fmt.Errorf("encoding manifest: %w", err)
		}
		if err := writeFile(dir, ManifestFile, string(data), w); err != nil {
			return err
		}
	}

	return nil
}

// Summary renders the SUMMARY.md content for b.
func Summary(b types.Book) string {
	return summaryHeader + strings.Join(b.Structure, "\n")
}

func renderFrontmatter(s types.Section) (string, error) {
	data, err := yaml.Marshal(frontmatter{ID: s.ID, Level: s.Level, Title: s.Title})
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter for %s: %w", s.Filename, err)
	}
	return fmDelim + "\n" + string(data) + fmDelim + "\n", nil
}

func writeFile(dir, name, content string, w io.Writer) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

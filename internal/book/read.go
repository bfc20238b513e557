// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package book

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tex2mdbook/internal/segment"
	"github.com/pdiddy/tex2mdbook/pkg/types"
)

const fmDelim = "---"

var (
	// summaryLink captures the link target at the end of a SUMMARY.md entry.
	summaryLink = regexp.MustCompile(`^\s*- \[.*\]\(([^()]+)\)\s*$`)

	// sectionFilePattern matches numbered section files: 1.2-slug.md.
	sectionFilePattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)-[a-z0-9-]*\.md$`)
)

// SectionFiles returns the section file paths of a written book in the
// order SUMMARY.md lists them. Entries that are not section files are
// skipped.
func SectionFiles(dir string) ([]string, error) {
	f, err := os.Open(filepath.Join(dir, SummaryFile))
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	defer f.Close()

	var files []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m := summaryLink.FindStringSubmatch(sc.Text())
		if m == nil || !sectionFilePattern.MatchString(m[1]) {
			continue
		}
		files = append(files, filepath.Join(dir, m[1]))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning summary: %w", err)
	}
	return files, nil
}

// ReadSection loads a section file written by Write. Metadata comes from
// the YAML frontmatter when present; otherwise the id is taken from the
// filename and the level and title from the leading heading line (a file
// without one is the preamble).
func ReadSection(path string) (types.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Section{}, fmt.Errorf("reading section: %w", err)
	}

	name := filepath.Base(path)
	m := sectionFilePattern.FindStringSubmatch(name)
	if m == nil {
		return types.Section{}, fmt.Errorf("%s is not a section file", name)
	}

	body := string(data)
	s := types.Section{ID: m[1], Filename: name}

	if fm, rest, ok := splitFrontmatter(body); ok {
		var meta frontmatter
		if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
			return types.Section{}, fmt.Errorf("parsing frontmatter of %s: %w", name, err)
		}
		s.ID, s.Level, s.Title = meta.ID, meta.Level, meta.Title
		s.Lines = strings.Split(rest, "\n")
		return s, nil
	}

	s.Lines = strings.Split(body, "\n")
	if h, ok := segment.ParseHeading(s.Lines[0]); ok {
		s.Level, s.Title = h.Level, h.Title
	} else {
		s.Title = types.PreambleTitle
	}
	return s, nil
}

// splitFrontmatter separates a leading "---" delimited block from the rest
// of content.
func splitFrontmatter(content string) (fm, rest string, ok bool) {
	if !strings.HasPrefix(content, fmDelim+"\n") {
		return "", content, false
	}
	after := content[len(fmDelim)+1:]
	end := strings.Index(after, "\n"+fmDelim+"\n")
	if end < 0 {
		return "", content, false
	}
	return after[:end+1], after[end+len(fmDelim)+2:], true
}

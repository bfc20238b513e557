// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits a Markdown document into sections at heading
// boundaries (levels 1-3), numbers them hierarchically and builds the
// table of contents that links them.
package segment

import (
	"strings"

	"github.com/pdiddy/tex2mdbook/pkg/types"
)

// splitter holds the state of one pass over a document.
type splitter struct {
	counters Counters
	level    int
	title    string
	lines    []string
	book     types.Book
}

// Split walks markdown line by line and returns its sections and
// table-of-contents lines. Content before the first heading becomes the
// level-0 section titled "index". Split cannot fail.
func Split(markdown string) types.Book {
	s := &splitter{title: types.PreambleTitle}

	for _, line := range strings.Split(markdown, "\n") {
		h, ok := ParseHeading(line)
		if !ok {
			s.lines = append(s.lines, line)
			continue
		}
		if len(s.lines) > 0 {
			s.close()
		}
		s.lines = []string{line}
		s.level = h.Level
		s.title = h.Title
	}
	if len(s.lines) > 0 {
		s.close()
	}

	return s.book
}

// close emits the in-progress section using the current level and title.
func (s *splitter) close() {
	id := s.counters.Next(s.level)
	name := Filename(id, s.title)

	s.book.Sections = append(s.book.Sections, types.Section{
		ID:       id,
		Level:    s.level,
		Title:    s.title,
		Filename: name,
		Lines:    s.lines,
	})
	s.book.Structure = append(s.book.Structure, StructureLine(s.level, s.title, name))
	s.lines = nil
}

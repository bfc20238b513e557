// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tex2mdbook pipeline:
// headings and sections produced by segmentation, the book handed to the
// writer, and the configuration that drives a build.
package types

import "strings"

// MaxHeadingLevel is the deepest heading level that starts a new section.
// Deeper markers are treated as body text.
const MaxHeadingLevel = 3

// PreambleTitle is the title given to content that precedes the first heading.
const PreambleTitle = "index"

// Heading is a recognized Markdown heading line.
type Heading struct {
	// Level is the number of leading markers (1-3).
	Level int `json:"level" yaml:"level"`

	// Title is the heading text with markers and surrounding whitespace removed.
	Title string `json:"title" yaml:"title"`
}

// Section is a contiguous run of lines from one heading up to the next
// heading at any level, or the end of the document.
type Section struct {
	// ID is the hierarchical section number (e.g. "2.1"). The preamble
	// carries the level-0 counter on its own.
	ID string `json:"id" yaml:"id"`

	// Level is the heading level (1-3), or 0 for the preamble.
	Level int `json:"level" yaml:"level"`

	// Title is the heading title, or PreambleTitle for the preamble.
	Title string `json:"title" yaml:"title"`

	// Filename is the output file name, "{id}-{slug}.md".
	Filename string `json:"file" yaml:"file"`

	// Lines holds the section body in order. For headed sections the
	// heading line itself comes first.
	Lines []string `json:"-" yaml:"-"`
}

// Body returns the section lines joined with newlines.
func (s Section) Body() string {
	return strings.Join(s.Lines, "\n")
}

// IsPreamble reports whether the section holds content before the first heading.
func (s Section) IsPreamble() bool {
	return s.Level == 0
}

// Book is the result of segmenting one Markdown document: sections in
// document order and the matching table-of-contents lines.
type Book struct {
	Sections  []Section `json:"sections" yaml:"sections"`
	Structure []string  `json:"-" yaml:"-"`
}

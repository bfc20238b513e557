// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"regexp"
	"strings"
)

var (
	// slugStrip removes everything but ASCII letters, digits, whitespace and hyphens.
	slugStrip = regexp.MustCompile(`[^a-z0-9\s-]`)
	// slugSpace collapses whitespace runs into a single hyphen.
	slugSpace = regexp.MustCompile(`\s+`)
)

// Slug turns a heading title into a filename fragment: lowercased, stripped
// of punctuation, with whitespace runs replaced by single hyphens.
func Slug(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "")
	return slugSpace.ReplaceAllString(s, "-")
}

// Filename builds the output file name for a section.
func Filename(id, title string) string {
	return id + "-" + Slug(title) + ".md"
}

// StructureLine renders one table-of-contents entry, indented two spaces
// per level below the top.
func StructureLine(level int, title, filename string) string {
	indent := level - 1
	if indent < 0 {
		indent = 0
	}
	return strings.Repeat("  ", indent) + "- [" + title + "](" + filename + ")"
}

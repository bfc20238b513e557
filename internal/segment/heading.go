// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"regexp"
	"strings"

	"github.com/pdiddy/tex2mdbook/pkg/types"
)

// headingPattern matches ATX headings of level 1 to 3. A fourth marker
// fails the whitespace requirement, so "#### x" is body text.
var headingPattern = regexp.MustCompile(`^(#{1,3})\s+(.+)$`)

// ParseHeading reports whether line is a heading of level 1-3 and, if so,
// returns its level and trimmed title.
func ParseHeading(line string) (types.Heading, bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return types.Heading{}, false
	}
	return types.Heading{
		Level: len(m[1]),
		Title: strings.TrimSpace(m[2]),
	}, true
}

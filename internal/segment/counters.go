// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"strconv"
	"strings"

	"github.com/pdiddy/tex2mdbook/pkg/types"
)

// counterSlots covers the preamble slot (0), the section levels and one
// spare level below the deepest recognized heading.
const counterSlots = types.MaxHeadingLevel + 2

// Counters tracks per-level section numbers during a split. The zero
// value is ready to use.
type Counters struct {
	n [counterSlots]int
}

// Next closes a section at level: it increments that level's counter,
// zeroes every deeper counter and returns the hierarchical id.
//
// Headed sections get "c1.c2...cL". The preamble (level 0) is numbered
// from its own slot, so a document's preamble is always "1".
func (c *Counters) Next(level int) string {
	level = clampLevel(level)

	c.n[level]++
	for l := level + 1; l < counterSlots; l++ {
		c.n[l] = 0
	}

	if level == 0 {
		return strconv.Itoa(c.n[0])
	}

	var b strings.Builder
	for l := 1; l <= level; l++ {
		b.WriteString(strconv.Itoa(c.n[l]))
		b.WriteByte('.')
	}
	return strings.TrimSuffix(b.String(), ".")
}

// Get returns the current counter for level.
func (c *Counters) Get(level int) int {
	return c.n[clampLevel(level)]
}

func clampLevel(level int) int {
	switch {
	case level < 0:
		return 0
	case level >= counterSlots:
		return counterSlots - 1
	}
	return level
}

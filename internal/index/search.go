// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"
	"strings"
)

const defaultLimit = 20

// Query holds parameters for a section search.
type Query struct {
	// Text is the full-text MATCH expression. Empty lists sections in
	// document order.
	Text string

	// MaxLevel keeps only sections at or above this heading level. Zero
	// disables the filter; the preamble (level 0) always passes.
	MaxLevel int

	// Limit caps the number of results. Zero uses the default of 20.
	Limit int
}

// Result is one matching section.
type Result struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Level    int    `json:"level"`
	Title    string `json:"title"`
	File     string `json:"file"`
	Snippet  string `json:"snippet,omitempty"`
}

// Search runs q against the index. Results are returned in document order.
func (s *Store) Search(ctx context.Context, q Query) ([]Result, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = strings.TrimSpace(q.Text) != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT s.position, s.section_id, s.level, s.title, s.file,
				snippet(sections_fts, '[', ']', '...', -1, 12)
			FROM sections_fts
			JOIN sections s ON s.position = sections_fts.docid
			WHERE sections_fts MATCH ?`)
		args = append(args, q.Text)
	} else {
		qb.WriteString(
			`SELECT s.position, s.section_id, s.level, s.title, s.file, ''
			FROM sections s
			WHERE 1=1`)
	}

	if q.MaxLevel > 0 {
		qb.WriteString(` AND s.level <= ?`)
		args = append(args, q.MaxLevel)
	}

	qb.WriteString(` ORDER BY s.position LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying section index: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Position, &r.ID, &r.Level, &r.Title, &r.File, &r.Snippet); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	return results, nil
}

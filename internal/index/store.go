// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index keeps a SQLite full-text index of a written book so its
// sections can be searched from the command line.
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tex2mdbook/internal/book"
	"github.com/pdiddy/tex2mdbook/pkg/types"
)

const (
	indexDir = ".index"
	dbFile   = "sections.db"
)

// ErrNoIndex is returned by OpenExisting when the book has not been indexed.
var ErrNoIndex = errors.New("section index not found (run the index command first)")

// Store manages the section index database of one book directory.
type Store struct {
	db   *sql.DB
	path string
}

// Path returns the database file location for the book in bookDir.
func Path(bookDir string) string {
	return filepath.Join(bookDir, indexDir, dbFile)
}

// Open opens or creates the index at bookDir/.index/sections.db and
// creates the schema if it does not exist.
func Open(bookDir string) (*Store, error) {
	dbPath := Path(bookDir)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// OpenExisting opens the index for bookDir, returning ErrNoIndex when no
// index has been built yet.
func OpenExisting(bookDir string) (*Store, error) {
	if _, err := os.Stat(Path(bookDir)); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoIndex
		}
		return nil, fmt.Errorf("checking index: %w", err)
	}
	return Open(bookDir)
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sections (
			position INTEGER PRIMARY KEY,
			file TEXT NOT NULL UNIQUE,
			section_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_level ON sections(level)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS sections_fts USING fts4(title, body)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest replaces the indexed sections with sections, in document order,
// inside one transaction. It returns the number of sections stored.
func (s *Store) Ingest(ctx context.Context, sections []types.Section) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM sections`, `DELETE FROM sections_fts`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("clearing index: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO sections (position, file, section_id, level, title, body)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	insertFTS, err := tx.PrepareContext(ctx,
		`INSERT INTO sections_fts (docid, title, body) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing FTS insert: %w", err)
	}
	defer insertFTS.Close()

	for i, sec := range sections {
		pos := i + 1
		body := sec.Body()
		if _, err := insert.ExecContext(ctx, pos, sec.Filename, sec.ID, sec.Level, sec.Title, body); err != nil {
			return 0, fmt.Errorf("inserting section %s: %w", sec.Filename, err)
		}
		if _, err := insertFTS.ExecContext(ctx, pos, sec.Title, body); err != nil {
			return 0, fmt.Errorf("indexing section %s: %w", sec.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	return len(sections), nil
}

// IngestDir reads every section listed in bookDir's SUMMARY.md and
// replaces the index with them. Progress is reported to w.
func (s *Store) IngestDir(ctx context.Context, bookDir string, w io.Writer) (int, error) {
	files, err := book.SectionFiles(bookDir)
	if err != nil {
		return 0, err
	}

	sections := make([]types.Section, 0, len(files))
	for _, f := range files {
		sec, err := book.ReadSection(f)
		if err != nil {
			return 0, err
		}
		sections = append(sections, sec)
	}

	n, err := s.Ingest(ctx, sections)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(w, "Indexed %d sections into %s\n", n, s.path)
	return n, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library keeps resolved references in a local SQLite database so
// repeated lookups can skip the network.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/refkit/internal/metadata"
	"github.com/pdiddy/refkit/pkg/types"
)

const (
	defaultPath       = "refkit.db"
	defaultMaxResults = 20

	// Fixed-width so saved_at sorts as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// ErrNotFound is returned by Get when no entry exists for a lookup.
var ErrNotFound = errors.New("lookup not in library")

// Entry is one saved lookup and the records it resolved to.
type Entry struct {
	Lookup  string            `json:"lookup" yaml:"lookup"`
	Records []metadata.Record `json:"records" yaml:"records"`
	SavedAt time.Time         `json:"saved_at" yaml:"saved_at"`
}

// Store manages the library database.
type Store struct {
	db         *sql.DB
	maxResults int
	now        func() time.Time
}

// Open opens or creates the library database at cfg.Path and creates the
// schema if it does not exist.
func Open(cfg types.LibraryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS refs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lookup TEXT NOT NULL UNIQUE,
			records TEXT NOT NULL,
			searchable TEXT NOT NULL,
			saved_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refs_saved_at ON refs(saved_at)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Save stores the records a lookup resolved to, replacing any previous
// entry for the same lookup. Lookups are keyed with whitespace collapsed.
func (s *Store) Save(ctx context.Context, lookup string, records []metadata.Record) error {
	key := lookupKey(lookup)
	if key == "" {
		return errors.New("saving reference: empty lookup")
	}
	if records == nil {
		records = []metadata.Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	searchable := make([]string, 0, len(records)+1)
	searchable = append(searchable, key)
	for _, r := range records {
		searchable = append(searchable, r.SearchableString())
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO refs (lookup, records, searchable, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(lookup) DO UPDATE SET
			records=excluded.records, searchable=excluded.searchable, saved_at=excluded.saved_at`,
		key, string(data), strings.ToLower(strings.Join(searchable, "\n")),
		s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}

// Get returns the records saved for lookup. It returns ErrNotFound when
// the lookup was never saved.
func (s *Store) Get(ctx context.Context, lookup string) ([]metadata.Record, error) {
	key := lookupKey(lookup)
	row := s.db.QueryRowContext(ctx,
		`SELECT lookup, records, saved_at FROM refs WHERE lookup = ?`, key)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e.Records, nil
}

// List returns saved entries, most recent first. A limit of zero or less
// uses the configured maximum.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	return s.query(ctx,
		`SELECT lookup, records, saved_at FROM refs ORDER BY saved_at DESC, id DESC LIMIT ?`,
		s.limit(limit))
}

// Search returns entries whose lookup or record text contains every word
// of text, case-insensitively, most recent first.
func (s *Store) Search(ctx context.Context, text string, limit int) ([]Entry, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return s.List(ctx, limit)
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT lookup, records, saved_at FROM refs WHERE 1=1`)
	for _, w := range words {
		qb.WriteString(` AND searchable LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(w)+"%")
	}
	qb.WriteString(` ORDER BY saved_at DESC, id DESC LIMIT ?`)
	args = append(args, s.limit(limit))

	return s.query(ctx, qb.String(), args...)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) limit(n int) int {
	if n <= 0 {
		return s.maxResults
	}
	return n
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e       Entry
		records string
		savedAt string
	)
	if err := sc.Scan(&e.Lookup, &records, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scanning row: %w", err)
	}
	if err := json.Unmarshal([]byte(records), &e.Records); err != nil {
		return e, fmt.Errorf("decoding records for %q: %w", e.Lookup, err)
	}
	if t, err := time.Parse(timeLayout, savedAt); err == nil {
		e.SavedAt = t
	}
	return e, nil
}

func lookupKey(lookup string) string {
	return strings.Join(strings.Fields(lookup), " ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

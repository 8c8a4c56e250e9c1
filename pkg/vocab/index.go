package vocab

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hazyhaar/wordfam-registry/pkg/normalize"
)

// Index answers forward (headword) and reverse (derivative) lookups
// against a point-in-time vocabulary snapshot. Query words are reduced
// to their canonical lookup key (normalize.Fold) before matching, the
// same fold the vocabulary importer applies when loading the snapshot.
// A nil entry with a nil error means no match; errors mean the snapshot
// was unreachable and are never treated as "no match".
type Index interface {
	// Forward finds the entry whose headword equals word,
	// case-insensitively. At most one is expected; the first wins.
	Forward(ctx context.Context, word string) (*Entry, error)
	// Reverse finds the first entry whose derivative list contains word
	// as a whole delimited item.
	Reverse(ctx context.Context, word string) (*Entry, error)
	// ReverseAll returns every entry whose derivative list contains word
	// as a whole delimited item.
	ReverseAll(ctx context.Context, word string) ([]*Entry, error)
}

// SQLIndex is the SQLite-backed Index.
type SQLIndex struct {
	db *sql.DB
}

// NewSQLIndex wraps an open database. The vocabulary table is managed by
// the store package; this view never writes.
func NewSQLIndex(db *sql.DB) *SQLIndex {
	return &SQLIndex{db: db}
}

const entryCols = `id, headword, IFNULL(derivative, ''), IFNULL(definition, ''),
	IFNULL(pronunciation, ''), IFNULL(partofspeech, '')`

func scanEntry(row interface{ Scan(...any) error }) (*Entry, error) {
	var e Entry
	if err := row.Scan(&e.ID, &e.Headword, &e.Derivative, &e.Definition,
		&e.Pronunciation, &e.PartOfSpeech); err != nil {
		return nil, err
	}
	return &e, nil
}

func (ix *SQLIndex) Forward(ctx context.Context, word string) (*Entry, error) {
	word = normalize.Fold(strings.TrimSpace(word))
	e, err := scanEntry(ix.db.QueryRowContext(ctx,
		`SELECT `+entryCols+` FROM vocabulary WHERE LOWER(headword) = ? LIMIT 1`, word))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("forward lookup %q: %w", word, err)
	}
	return e, nil
}

func (ix *SQLIndex) Reverse(ctx context.Context, word string) (*Entry, error) {
	entries, err := ix.reverse(ctx, word, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

func (ix *SQLIndex) ReverseAll(ctx context.Context, word string) ([]*Entry, error) {
	return ix.reverse(ctx, word, 0)
}

// reverse runs the bounded whole-item derivative match. SQL does a cheap
// case-insensitive substring prefilter; the bounded pattern decides in Go.
// limit 0 means unbounded.
func (ix *SQLIndex) reverse(ctx context.Context, word string, limit int) ([]*Entry, error) {
	word = normalize.Fold(strings.TrimSpace(word))
	rows, err := ix.db.QueryContext(ctx,
		`SELECT `+entryCols+` FROM vocabulary
		 WHERE derivative IS NOT NULL AND LOWER(derivative) LIKE '%' || ? || '%'
		 ORDER BY id`, word)
	if err != nil {
		return nil, fmt.Errorf("reverse lookup %q: %w", word, err)
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("reverse lookup %q: %w", word, err)
		}
		if !containsWholeItem(e.Derivative, word) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reverse lookup %q: %w", word, err)
	}
	return out, nil
}

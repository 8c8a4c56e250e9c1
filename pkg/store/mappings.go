package store

import (
	"context"
	"fmt"
	"time"
)

// Mapping is an explicit word -> headword reassignment curated by the
// user. It takes precedence over the vocabulary index when grouping
// statistics.
type Mapping struct {
	ID        int64  `json:"id"`
	Word      string `json:"word"`
	Headword  string `json:"headword"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// UpsertMapping inserts or overwrites the mapping for word.
func (s *Store) UpsertMapping(ctx context.Context, word, headword string) error {
	now := time.Now().Unix()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO word_family_mappings (word, headword, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET headword = excluded.headword, updated_at = excluded.updated_at`,
		word, headword, now, now)
	if err != nil {
		return fmt.Errorf("upsert mapping %q: %w", word, err)
	}
	return nil
}

// BulkUpsertMappings points every word in words at headword.
func (s *Store) BulkUpsertMappings(ctx context.Context, words []string, headword string) error {
	for _, w := range words {
		if err := s.UpsertMapping(ctx, w, headword); err != nil {
			return err
		}
	}
	return nil
}

// ListMappings returns all mappings ordered by headword then word.
func (s *Store) ListMappings(ctx context.Context) ([]Mapping, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word, headword, created_at, updated_at
		 FROM word_family_mappings ORDER BY headword ASC, word ASC`)
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	defer rows.Close()

	var out []Mapping
	for rows.Next() {
		var m Mapping
		if err := rows.Scan(&m.ID, &m.Word, &m.Headword, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

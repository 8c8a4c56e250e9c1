package store

import (
	"context"
	"fmt"

	"github.com/hazyhaar/wordfam-registry/pkg/vocab"
)

// InsertVocabEntry adds one vocabulary row. The snapshot is reference
// data: the engine only ever reads it back through the vocab index.
func (s *Store) InsertVocabEntry(ctx context.Context, e vocab.Entry) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO vocabulary (headword, derivative, definition, pronunciation, partofspeech)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Headword, nullable(e.Derivative), nullable(e.Definition),
		nullable(e.Pronunciation), nullable(e.PartOfSpeech))
	if err != nil {
		return 0, fmt.Errorf("insert vocabulary entry %q: %w", e.Headword, err)
	}
	return res.LastInsertId()
}

// VocabularyCount returns the number of vocabulary entries loaded.
func (s *Store) VocabularyCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocabulary`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count vocabulary: %w", err)
	}
	return n, nil
}

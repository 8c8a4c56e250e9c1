package importer

import (
	"context"
	"fmt"

	"github.com/hazyhaar/wordfam-registry/pkg/normalize"
	"github.com/hazyhaar/wordfam-registry/pkg/store"
	"github.com/hazyhaar/wordfam-registry/pkg/vocab"
)

// ImportVocabulary loads vocabulary reference rows into the store.
// Rows use named columns (headword, derivative, definition,
// pronunciation, partofspeech) or positional columns 0-4 when the CSV
// had no header. Rows without a headword are skipped. Headwords and
// derivative lists are folded to their canonical lookup key on the way
// in, so index queries and stored rows always agree.
func ImportVocabulary(ctx context.Context, s *store.Store, rows []Row) (int, error) {
	inserted := 0
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		headword := field(row, "headword", "Headword", "0")
		if headword == "" {
			continue
		}
		entry := vocab.Entry{
			Headword:      normalize.Fold(headword),
			Derivative:    normalize.Fold(field(row, "derivative", "Derivative", "1")),
			Definition:    field(row, "definition", "Definition", "2"),
			Pronunciation: field(row, "pronunciation", "Pronunciation", "3"),
			PartOfSpeech:  field(row, "partofspeech", "PartOfSpeech", "4"),
		}
		if _, err := s.InsertVocabEntry(ctx, entry); err != nil {
			return inserted, fmt.Errorf("row %d: %w", i, err)
		}
		inserted++
	}
	return inserted, nil
}

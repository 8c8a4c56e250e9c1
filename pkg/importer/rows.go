// Package importer feeds externally parsed rows into the record store:
// one word record per normalized token of each row's source text.
package importer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hazyhaar/wordfam-registry/pkg/normalize"
	"github.com/hazyhaar/wordfam-registry/pkg/store"
)

// Row is one spreadsheet row, column name to value. Upstream parsing
// (upload handling, sheet formats) stays outside this engine.
type Row map[string]string

// SourceText picks the row's sentence field: Reference, reference,
// Sentence, sentence, first present wins.
func SourceText(row Row) string {
	for _, key := range []string{"Reference", "reference", "Sentence", "sentence"} {
		if v := strings.TrimSpace(row[key]); v != "" {
			return v
		}
	}
	return ""
}

func field(row Row, names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(row[n]); v != "" {
			return v
		}
	}
	return ""
}

// Summary reports one import pass.
type Summary struct {
	Inserted    int `json:"inserted"`
	SkippedRows int `json:"skippedRows"`
	Failed      int `json:"failed"`
}

// RecordImporter turns rows into word records.
type RecordImporter struct {
	Store      *store.Store
	Normalizer *normalize.Normalizer
	Logger     *slog.Logger
}

func NewRecordImporter(s *store.Store, n *normalize.Normalizer, logger *slog.Logger) *RecordImporter {
	if n == nil {
		n = normalize.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordImporter{Store: s, Normalizer: n, Logger: logger}
}

// ImportRows inserts one record per token of each row's source text,
// sequentially so insert order follows row order. Rows without a source
// text field are skipped, not erred; a failed insert is counted and
// logged without aborting sibling rows. Cancellation is checked between
// rows.
func (im *RecordImporter) ImportRows(ctx context.Context, rows []Row) (Summary, error) {
	var sum Summary
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		text := SourceText(row)
		if text == "" {
			sum.SkippedRows++
			continue
		}

		rec := store.Record{
			Reference:   text,
			Unit:        field(row, "Unit", "unit"),
			Section:     field(row, "Section", "section"),
			TestPoint:   field(row, "test_point"),
			Collocation: field(row, "collocation"),
			Book:        field(row, "Book", "book"),
			Grade:       field(row, "Grade", "grade"),
			Chinese:     field(row, "Chinese", "chinese"),
		}
		for _, token := range im.Normalizer.Tokenize(text) {
			rec.Word = token
			if _, err := im.Store.InsertRecord(ctx, rec); err != nil {
				sum.Failed++
				im.Logger.Warn("insert record failed", "word", token, "error", err)
				continue
			}
			sum.Inserted++
		}
	}
	im.Logger.Info("row import complete",
		"inserted", sum.Inserted, "skipped_rows", sum.SkippedRows, "failed", sum.Failed)
	return sum, nil
}

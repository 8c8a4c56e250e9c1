package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an update or delete targets a record
// id that does not exist.
var ErrNotFound = errors.New("record not found")

// Record is one imported word occurrence with its source text and
// metadata. WordFamily is empty until batch resolution labels it.
type Record struct {
	ID          int64  `json:"id"`
	Word        string `json:"word"`
	Reference   string `json:"reference"`
	Unit        string `json:"unit,omitempty"`
	Section     string `json:"section,omitempty"`
	TestPoint   string `json:"test_point,omitempty"`
	Collocation string `json:"collocation,omitempty"`
	WordFamily  string `json:"word_family,omitempty"`
	Book        string `json:"book,omitempty"`
	Grade       string `json:"grade,omitempty"`
	Chinese     string `json:"chinese,omitempty"`
}

// WordCount is one word (or derivative) with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// GradeCount is the number of distinct words seen for one grade.
type GradeCount struct {
	Grade       string `json:"grade"`
	UniqueWords int    `json:"uniqueWords"`
}

const recordCols = `id, word, reference, IFNULL(unit, ''), IFNULL(section, ''),
	IFNULL(test_point, ''), IFNULL(collocation, ''), IFNULL(word_family, ''),
	IFNULL(book, ''), IFNULL(grade, ''), IFNULL(chinese, '')`

func scanRecord(row interface{ Scan(...any) error }) (Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.Word, &r.Reference, &r.Unit, &r.Section,
		&r.TestPoint, &r.Collocation, &r.WordFamily, &r.Book, &r.Grade, &r.Chinese)
	return r, err
}

// nullable maps "" to NULL so that optional metadata stays NULL in the
// table instead of accumulating empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// InsertRecord inserts rec and returns its id.
func (s *Store) InsertRecord(ctx context.Context, rec Record) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO word_records
		 (word, reference, unit, section, test_point, collocation, word_family, book, grade, chinese)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Word, rec.Reference, nullable(rec.Unit), nullable(rec.Section),
		nullable(rec.TestPoint), nullable(rec.Collocation), nullable(rec.WordFamily),
		nullable(rec.Book), nullable(rec.Grade), nullable(rec.Chinese))
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	return res.LastInsertId()
}

// ListRecords returns every record, newest first.
func (s *Store) ListRecords(ctx context.Context) ([]Record, error) {
	return s.queryRecords(ctx,
		`SELECT `+recordCols+` FROM word_records ORDER BY id DESC`)
}

// UpdateRecord rewrites every mutable column of the record with rec.ID.
func (s *Store) UpdateRecord(ctx context.Context, rec Record) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE word_records SET word = ?, reference = ?, unit = ?, section = ?,
		 test_point = ?, collocation = ?, word_family = ?, book = ?, grade = ?, chinese = ?
		 WHERE id = ?`,
		rec.Word, rec.Reference, nullable(rec.Unit), nullable(rec.Section),
		nullable(rec.TestPoint), nullable(rec.Collocation), nullable(rec.WordFamily),
		nullable(rec.Book), nullable(rec.Grade), nullable(rec.Chinese), rec.ID)
	if err != nil {
		return fmt.Errorf("update record %d: %w", rec.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("record %d: %w", rec.ID, ErrNotFound)
	}
	return nil
}

// DeleteRecord removes the record with the given id.
func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM word_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("record %d: %w", id, ErrNotFound)
	}
	return nil
}

// BulkDeleteRecords removes every record whose id is in ids and returns
// the number deleted.
func (s *Store) BulkDeleteRecords(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM word_records WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk delete: %w", err)
	}
	return res.RowsAffected()
}

// UnlabeledRecords returns records still lacking a family label, the
// population scan set.
func (s *Store) UnlabeledRecords(ctx context.Context) ([]Record, error) {
	return s.queryRecords(ctx,
		`SELECT `+recordCols+` FROM word_records
		 WHERE word_family IS NULL OR word_family = '' ORDER BY id`)
}

// LabeledRecords returns records carrying a family label, the statistics
// input set.
func (s *Store) LabeledRecords(ctx context.Context) ([]Record, error) {
	return s.queryRecords(ctx,
		`SELECT `+recordCols+` FROM word_records
		 WHERE word_family IS NOT NULL AND word_family != '' ORDER BY id`)
}

// SetFamilyLabel writes the resolved family label on one record.
func (s *Store) SetFamilyLabel(ctx context.Context, id int64, label string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE word_records SET word_family = ? WHERE id = ?`, label, id)
	if err != nil {
		return fmt.Errorf("set family label on record %d: %w", id, err)
	}
	return nil
}

// RecordsByFamily returns records labeled with exactly label, word order.
func (s *Store) RecordsByFamily(ctx context.Context, label string) ([]Record, error) {
	return s.queryRecords(ctx,
		`SELECT `+recordCols+` FROM word_records WHERE word_family = ? ORDER BY word ASC`, label)
}

// RecordsByWord returns records for one surface word, oldest first.
func (s *Store) RecordsByWord(ctx context.Context, word string) ([]Record, error) {
	return s.queryRecords(ctx,
		`SELECT `+recordCols+` FROM word_records WHERE word = ? ORDER BY id ASC`, word)
}

// WordCounts returns per-word occurrence counts, count desc then word asc.
func (s *Store) WordCounts(ctx context.Context) ([]WordCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, COUNT(*) AS count FROM word_records
		 GROUP BY word ORDER BY count DESC, word ASC`)
	if err != nil {
		return nil, fmt.Errorf("word counts: %w", err)
	}
	defer rows.Close()

	var out []WordCount
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("scan word count: %w", err)
		}
		out = append(out, wc)
	}
	return out, rows.Err()
}

// GradeCounts returns the distinct word count per non-empty grade.
func (s *Store) GradeCounts(ctx context.Context) ([]GradeCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT grade, COUNT(DISTINCT word) AS unique_words FROM word_records
		 WHERE grade IS NOT NULL AND grade != '' GROUP BY grade ORDER BY grade ASC`)
	if err != nil {
		return nil, fmt.Errorf("grade counts: %w", err)
	}
	defer rows.Close()

	var out []GradeCount
	for rows.Next() {
		var gc GradeCount
		if err := rows.Scan(&gc.Grade, &gc.UniqueWords); err != nil {
			return nil, fmt.Errorf("scan grade count: %w", err)
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}

// RecordCount returns the total number of word records.
func (s *Store) RecordCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

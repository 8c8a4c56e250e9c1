package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Format describes a CSV file's layout.
type Format struct {
	Delimiter string // default ","
	Encoding  string // IANA name; empty or utf-8 means no transcoding
	HasHeader bool
}

// ReadRows parses CSV into Rows keyed by header name. Without a header
// the keys are the zero-based column positions ("0", "1", ...).
func ReadRows(r io.Reader, format Format) ([]Row, error) {
	if enc := format.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		r = transform.NewReader(r, e.NewDecoder())
	}

	cr := csv.NewReader(r)
	if format.Delimiter != "" {
		cr.Comma = []rune(format.Delimiter)[0]
	}
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var header []string
	if format.HasHeader {
		h, err := cr.Read()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		header = h
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := make(Row, len(record))
		for i, v := range record {
			key := fmt.Sprintf("%d", i)
			if header != nil && i < len(header) {
				key = header[i]
			}
			row[key] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}

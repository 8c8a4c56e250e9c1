package family

import (
	"context"
	"errors"
	"testing"

	"github.com/hazyhaar/wordfam-registry/pkg/store"
)

type fakePopStore struct {
	records  []store.Record
	labels   map[int64]string
	writeErr error
}

func (f *fakePopStore) UnlabeledRecords(context.Context) ([]store.Record, error) {
	var out []store.Record
	for _, r := range f.records {
		if f.labels[r.ID] == "" {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePopStore) SetFamilyLabel(_ context.Context, id int64, label string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if f.labels == nil {
		f.labels = make(map[int64]string)
	}
	f.labels[id] = label
	return nil
}

type mapResolver struct {
	families map[string]string
	err      error
}

func (m *mapResolver) Resolve(_ context.Context, token string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.families[token], nil
}

func tenRecords() []store.Record {
	words := []string{"acts", "acted", "acting", "act", "acts", "acted",
		"zebra", "qux", "blorp", "mystery"}
	out := make([]store.Record, len(words))
	for i, w := range words {
		out[i] = store.Record{ID: int64(i + 1), Word: w, Reference: "r"}
	}
	return out
}

func actResolver() *mapResolver {
	label := " act | acts | acted | acting "
	return &mapResolver{families: map[string]string{
		"act": label, "acts": label, "acted": label, "acting": label,
	}}
}

func TestPopulateCounts(t *testing.T) {
	fs := &fakePopStore{records: tenRecords(), labels: map[int64]string{}}
	p := NewPopulator(fs, actResolver(), nil)

	res, err := p.Populate(context.Background())
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if res != (Result{Updated: 6, NotFound: 4, Total: 10}) {
		t.Errorf("Populate = %+v, want {6 4 10}", res)
	}

	// Re-running scans only still-unlabeled records and resolves none of
	// them, so nothing changes.
	res, err = p.Populate(context.Background())
	if err != nil {
		t.Fatalf("Populate rerun: %v", err)
	}
	if res != (Result{Updated: 0, NotFound: 4, Total: 4}) {
		t.Errorf("Populate rerun = %+v, want {0 4 4}", res)
	}
}

// A resolver failure is a resolution-unavailable condition: the batch
// aborts instead of misrecording the tail as not-found.
func TestPopulateAbortsOnResolverError(t *testing.T) {
	fs := &fakePopStore{records: tenRecords(), labels: map[int64]string{}}
	wantErr := errors.New("index unreachable")
	p := NewPopulator(fs, &mapResolver{err: wantErr}, nil)

	res, err := p.Populate(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Populate error = %v, want %v", err, wantErr)
	}
	if res.Updated != 0 || res.NotFound != 0 {
		t.Errorf("partial result = %+v, want no counted records", res)
	}
}

func TestPopulateAbortsOnWriteError(t *testing.T) {
	fs := &fakePopStore{records: tenRecords(), labels: map[int64]string{},
		writeErr: errors.New("disk full")}
	p := NewPopulator(fs, actResolver(), nil)

	_, err := p.Populate(context.Background())
	if err == nil {
		t.Fatal("Populate succeeded despite write failure")
	}
}

func TestPopulateCancellation(t *testing.T) {
	fs := &fakePopStore{records: tenRecords(), labels: map[int64]string{}}
	p := NewPopulator(fs, actResolver(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Populate(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Populate error = %v, want context.Canceled", err)
	}
	if res.Updated != 0 {
		t.Errorf("canceled run updated %d records, want 0", res.Updated)
	}
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hazyhaar/wordfam-registry/pkg/family"
	"github.com/hazyhaar/wordfam-registry/pkg/store"
	"github.com/hazyhaar/wordfam-registry/pkg/vocab"
)

// newTestDeps seeds an in-memory store with a small vocabulary and four
// word records (three resolvable, one not) and wires the full
// dependency graph over it.
func newTestDeps(t *testing.T) (Deps, *store.Store) {
	t.Helper()
	s, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	for _, e := range []vocab.Entry{
		{Headword: "act", Derivative: "acts|acted|acting"},
		{Headword: "adapt", Derivative: "adapts|adapted|adapting"},
		{Headword: "react", Derivative: "reaction"},
	} {
		if _, err := s.InsertVocabEntry(ctx, e); err != nil {
			t.Fatalf("InsertVocabEntry: %v", err)
		}
	}
	for _, r := range []store.Record{
		{Word: "acting", Reference: "He is acting strangely.", Grade: "7"},
		{Word: "acts", Reference: "She acts well.", Grade: "7"},
		{Word: "adapting", Reference: "I do not think she is adapting well.", Grade: "8"},
		{Word: "zebra", Reference: "A zebra has stripes."},
	} {
		if _, err := s.InsertRecord(ctx, r); err != nil {
			t.Fatalf("InsertRecord: %v", err)
		}
	}

	idx := vocab.NewSQLIndex(s.DB())
	return Deps{
		Index:      idx,
		Store:      s,
		Aggregator: family.NewAggregator(s, time.Minute),
		Populator:  family.NewPopulator(s, vocab.NewResolver(idx), nil),
	}, s
}

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	deps, s := newTestDeps(t)
	srv := httptest.NewServer(NewRouter(deps))
	t.Cleanup(srv.Close)
	return srv, s
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
}

func doJSON(t *testing.T, method, url string, body any, wantStatus int, v any) {
	t.Helper()
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s status = %d, want %d", method, url, resp.StatusCode, wantStatus)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
}

func TestSearchForward(t *testing.T) {
	srv, _ := newTestServer(t)

	var resp forwardResponse
	getJSON(t, srv.URL+"/v1/vocabulary/search?word=act&type=forward", http.StatusOK, &resp)
	if resp.Headword != "act" || len(resp.Derivatives) != 3 {
		t.Errorf("forward response = %+v", resp)
	}
}

func TestSearchReverse(t *testing.T) {
	srv, _ := newTestServer(t)

	var resp reverseResponse
	getJSON(t, srv.URL+"/v1/vocabulary/search?word=acting&type=reverse", http.StatusOK, &resp)
	if len(resp.Results) != 1 || resp.Results[0].Headword != "act" {
		t.Errorf("reverse response = %+v", resp)
	}

	// Substring of "reaction" only: bounded match finds nothing.
	getJSON(t, srv.URL+"/v1/vocabulary/search?word=act&type=reverse", http.StatusNotFound, nil)
}

func TestSearchValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	getJSON(t, srv.URL+"/v1/vocabulary/search?word=dr0p+table&type=forward", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/v1/vocabulary/search?word=act&type=sideways", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/v1/vocabulary/search?word=zzz&type=forward", http.StatusNotFound, nil)
	getJSON(t, srv.URL+"/v1/vocabulary/search", http.StatusBadRequest, nil)
	// Hyphenated queries pass validation.
	getJSON(t, srv.URL+"/v1/vocabulary/search?word=well-known&type=forward", http.StatusNotFound, nil)
}

func TestPopulateAndFamilyStats(t *testing.T) {
	srv, _ := newTestServer(t)

	var res family.Result
	doJSON(t, http.MethodPost, srv.URL+"/v1/populate", nil, http.StatusOK, &res)
	if res != (family.Result{Updated: 3, NotFound: 1, Total: 4}) {
		t.Fatalf("populate = %+v, want {3 1 4}", res)
	}

	// Idempotent: a re-run finds only the zebra record, still unresolved.
	doJSON(t, http.MethodPost, srv.URL+"/v1/populate", nil, http.StatusOK, &res)
	if res != (family.Result{Updated: 0, NotFound: 1, Total: 1}) {
		t.Fatalf("populate rerun = %+v, want {0 1 1}", res)
	}

	var stats []family.Stat
	getJSON(t, srv.URL+"/v1/stats/families", http.StatusOK, &stats)
	if len(stats) != 2 {
		t.Fatalf("family stats = %+v, want 2 families", stats)
	}
	if stats[0].Headword != "act" || stats[0].Total != 2 {
		t.Errorf("stats[0] = %+v, want act with 2", stats[0])
	}
	if stats[1].Headword != "adapt" || stats[1].Total != 1 {
		t.Errorf("stats[1] = %+v, want adapt with 1", stats[1])
	}

	var records []store.Record
	getJSON(t, srv.URL+"/v1/stats/families?family="+
		"+act+%7C+acts+%7C+acted+%7C+acting+", http.StatusOK, &records)
	if len(records) != 2 {
		t.Errorf("family drill-down = %+v, want 2 records", records)
	}
}

func TestWordStats(t *testing.T) {
	srv, _ := newTestServer(t)

	var counts []store.WordCount
	getJSON(t, srv.URL+"/v1/stats/words", http.StatusOK, &counts)
	if len(counts) != 4 {
		t.Fatalf("word stats = %+v, want 4 words", counts)
	}

	var records []store.Record
	getJSON(t, srv.URL+"/v1/stats/words?word=acting", http.StatusOK, &records)
	if len(records) != 1 || records[0].Word != "acting" {
		t.Errorf("word drill-down = %+v", records)
	}

	var grades []store.GradeCount
	getJSON(t, srv.URL+"/v1/stats/words-by-grade", http.StatusOK, &grades)
	if len(grades) != 2 || grades[0].Grade != "7" || grades[0].UniqueWords != 2 {
		t.Errorf("grade stats = %+v", grades)
	}
}

func TestMappingRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPut, srv.URL+"/v1/word-families",
		upsertMappingReq{Word: "acting", Headword: "action"}, http.StatusOK, nil)
	doJSON(t, http.MethodPost, srv.URL+"/v1/word-families",
		bulkMappingReq{Words: []string{"acts", "acted"}, Headword: "act"}, http.StatusOK, nil)
	doJSON(t, http.MethodPut, srv.URL+"/v1/word-families",
		upsertMappingReq{Word: "", Headword: ""}, http.StatusBadRequest, nil)

	var mappings []store.Mapping
	getJSON(t, srv.URL+"/v1/word-families", http.StatusOK, &mappings)
	if len(mappings) != 3 {
		t.Errorf("mappings = %+v, want 3", mappings)
	}
}

func TestRecordRoutes(t *testing.T) {
	srv, s := newTestServer(t)

	var records []store.Record
	getJSON(t, srv.URL+"/v1/records", http.StatusOK, &records)
	if len(records) != 4 {
		t.Fatalf("records = %d, want 4", len(records))
	}

	rec := records[0]
	rec.Grade = "9"
	doJSON(t, http.MethodPut, fmt.Sprintf("%s/v1/records/%d", srv.URL, rec.ID),
		rec, http.StatusOK, nil)

	doJSON(t, http.MethodDelete, fmt.Sprintf("%s/v1/records/%d", srv.URL, rec.ID),
		nil, http.StatusOK, nil)
	doJSON(t, http.MethodDelete, fmt.Sprintf("%s/v1/records/%d", srv.URL, rec.ID),
		nil, http.StatusNotFound, nil)

	doJSON(t, http.MethodPost, srv.URL+"/v1/records/bulk-delete",
		bulkDeleteReq{IDs: []int64{records[1].ID, records[2].ID}}, http.StatusOK, nil)
	doJSON(t, http.MethodPost, srv.URL+"/v1/records/bulk-delete",
		bulkDeleteReq{}, http.StatusBadRequest, nil)

	left, err := s.RecordCount(context.Background())
	if err != nil || left != 1 {
		t.Errorf("remaining records = (%d, %v), want 1", left, err)
	}

	var health healthResponse
	getJSON(t, srv.URL+"/v1/health", http.StatusOK, &health)
	if health.Status != "ok" || health.Vocabulary != 3 || health.Records != 1 {
		t.Errorf("health = %+v", health)
	}
}

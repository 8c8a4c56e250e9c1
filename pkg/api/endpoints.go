// Package api exposes the resolution engine over HTTP and MCP. Both
// transports dispatch to the same kit.Endpoints.
package api

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/hazyhaar/wordfam-registry/pkg/family"
	"github.com/hazyhaar/wordfam-registry/pkg/kit"
	"github.com/hazyhaar/wordfam-registry/pkg/store"
	"github.com/hazyhaar/wordfam-registry/pkg/vocab"
)

// ErrNotFound marks a well-formed query with no matching data, kept
// distinct from transport and store failures.
var ErrNotFound = errors.New("not found")

// ErrInvalid marks a malformed request; transports map it to 400.
var ErrInvalid = errors.New("invalid request")

// reQueryWord validates free word-spotting input. Hyphens are allowed
// so hyphenated vocabulary items stay queryable.
var reQueryWord = regexp.MustCompile(`^[a-zA-Z-]+$`)

// --- vocabulary search ---

type searchReq struct {
	Word string
	Type string // "forward" or "reverse"
}

type forwardResponse struct {
	Type          string   `json:"type"`
	Headword      string   `json:"headword"`
	Derivatives   []string `json:"derivatives"`
	Definition    string   `json:"definition,omitempty"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	PartOfSpeech  string   `json:"partofspeech,omitempty"`
}

type reverseResult struct {
	Headword      string   `json:"headword"`
	Derivatives   []string `json:"derivatives"`
	Definition    string   `json:"definition,omitempty"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	PartOfSpeech  string   `json:"partofspeech,omitempty"`
}

type reverseResponse struct {
	Type       string          `json:"type"`
	SearchWord string          `json:"searchWord"`
	Results    []reverseResult `json:"results"`
}

func searchEndpoint(idx vocab.Index) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*searchReq)
		if !reQueryWord.MatchString(req.Word) {
			return nil, fmt.Errorf("%w: word %q must be letters and hyphens only", ErrInvalid, req.Word)
		}

		switch req.Type {
		case "forward":
			entry, err := idx.Forward(ctx, req.Word)
			if err != nil {
				return nil, err
			}
			if entry == nil {
				return nil, fmt.Errorf("headword %q: %w", req.Word, ErrNotFound)
			}
			derivs := vocab.SplitDerivatives(entry.Derivative)
			if derivs == nil {
				derivs = []string{}
			}
			return forwardResponse{
				Type:          "forward",
				Headword:      entry.Headword,
				Derivatives:   derivs,
				Definition:    entry.Definition,
				Pronunciation: entry.Pronunciation,
				PartOfSpeech:  entry.PartOfSpeech,
			}, nil

		case "reverse":
			entries, err := idx.ReverseAll(ctx, req.Word)
			if err != nil {
				return nil, err
			}
			if len(entries) == 0 {
				return nil, fmt.Errorf("derivative %q: %w", req.Word, ErrNotFound)
			}
			resp := reverseResponse{Type: "reverse", SearchWord: req.Word}
			for _, e := range entries {
				derivs := vocab.SplitDerivatives(e.Derivative)
				if derivs == nil {
					derivs = []string{}
				}
				resp.Results = append(resp.Results, reverseResult{
					Headword:      e.Headword,
					Derivatives:   derivs,
					Definition:    e.Definition,
					Pronunciation: e.Pronunciation,
					PartOfSpeech:  e.PartOfSpeech,
				})
			}
			return resp, nil

		default:
			return nil, fmt.Errorf("%w: type %q must be forward or reverse", ErrInvalid, req.Type)
		}
	}
}

// --- family statistics ---

type familyStatsReq struct {
	Family string // optional drill-down to one family label
}

func familyStatsEndpoint(agg *family.Aggregator) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*familyStatsReq)
		if req.Family != "" {
			return agg.Family(ctx, req.Family)
		}
		return agg.Stats(ctx)
	}
}

// --- word statistics ---

type wordStatsReq struct {
	Word string // optional drill-down to one word's records
}

func wordStatsEndpoint(agg *family.Aggregator, s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*wordStatsReq)
		if req.Word != "" {
			return agg.Word(ctx, req.Word)
		}
		return s.WordCounts(ctx)
	}
}

func gradeStatsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.GradeCounts(ctx)
	}
}

// --- population ---

func populateEndpoint(p *family.Populator, agg *family.Aggregator) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		res, err := p.Populate(ctx)
		if err != nil {
			return nil, err
		}
		// Fresh labels should be visible on the next stats read.
		agg.Invalidate()
		return res, nil
	}
}

// --- family mappings ---

type upsertMappingReq struct {
	Word     string `json:"word"`
	Headword string `json:"headword"`
}

type bulkMappingReq struct {
	Words    []string `json:"words"`
	Headword string   `json:"headword"`
}

func listMappingsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.ListMappings(ctx)
	}
}

func upsertMappingEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*upsertMappingReq)
		if req.Word == "" || req.Headword == "" {
			return nil, fmt.Errorf("%w: word and headword are required", ErrInvalid)
		}
		if err := s.UpsertMapping(ctx, req.Word, req.Headword); err != nil {
			return nil, err
		}
		return map[string]bool{"success": true}, nil
	}
}

func bulkMappingEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*bulkMappingReq)
		if len(req.Words) == 0 || req.Headword == "" {
			return nil, fmt.Errorf("%w: words and headword are required", ErrInvalid)
		}
		if err := s.BulkUpsertMappings(ctx, req.Words, req.Headword); err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "updated": len(req.Words)}, nil
	}
}

// --- records ---

func listRecordsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.ListRecords(ctx)
	}
}

func updateRecordEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		rec := request.(*store.Record)
		if err := s.UpdateRecord(ctx, *rec); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
			}
			return nil, err
		}
		return map[string]string{"message": "record updated"}, nil
	}
}

type deleteRecordReq struct {
	ID int64
}

func deleteRecordEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*deleteRecordReq)
		if err := s.DeleteRecord(ctx, req.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
			}
			return nil, err
		}
		return map[string]string{"message": "record deleted"}, nil
	}
}

type bulkDeleteReq struct {
	IDs []int64 `json:"ids"`
}

func bulkDeleteEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*bulkDeleteReq)
		if len(req.IDs) == 0 {
			return nil, fmt.Errorf("%w: ids array is empty", ErrInvalid)
		}
		n, err := s.BulkDeleteRecords(ctx, req.IDs)
		if err != nil {
			return nil, err
		}
		return map[string]any{"message": "records deleted", "count": n}, nil
	}
}

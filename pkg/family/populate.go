package family

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hazyhaar/wordfam-registry/pkg/store"
)

// PopulateStore is the slice of the record store the population pass
// touches: the unlabeled scan plus the single-record label write.
type PopulateStore interface {
	UnlabeledRecords(ctx context.Context) ([]store.Record, error)
	SetFamilyLabel(ctx context.Context, id int64, label string) error
}

// TokenResolver resolves one token to its family label ("" = no match).
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// Result summarizes one population pass.
type Result struct {
	Updated  int `json:"updated"`
	NotFound int `json:"notFound"`
	Total    int `json:"total"`
}

// Populator assigns family labels to records that lack one.
type Populator struct {
	Store    PopulateStore
	Resolver TokenResolver
	Logger   *slog.Logger
}

func NewPopulator(s PopulateStore, r TokenResolver, logger *slog.Logger) *Populator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Populator{Store: s, Resolver: r, Logger: logger}
}

// Populate scans every record without a family label and resolves each
// one independently. A token with no match increments the not-found
// counter and the pass continues; a store or index failure aborts the
// remaining batch, since recording every remaining item as "not found"
// would corrupt the statistics. Cancellation is checked between records
// and never leaves a partially written record.
//
// Re-running is safe: already-labeled records are outside the scan.
func (p *Populator) Populate(ctx context.Context) (Result, error) {
	records, err := p.Store.UnlabeledRecords(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("scan unlabeled records: %w", err)
	}

	res := Result{Total: len(records)}
	p.Logger.Info("family population started", "records", res.Total)

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		label, err := p.Resolver.Resolve(ctx, rec.Word)
		if err != nil {
			return res, fmt.Errorf("resolve %q (record %d): %w", rec.Word, rec.ID, err)
		}
		if label == "" {
			res.NotFound++
			continue
		}
		if err := p.Store.SetFamilyLabel(ctx, rec.ID, label); err != nil {
			return res, err
		}
		res.Updated++
		if res.Updated%50 == 0 {
			p.Logger.Info("family population progress", "updated", res.Updated, "total", res.Total)
		}
	}

	p.Logger.Info("family population complete",
		"updated", res.Updated, "not_found", res.NotFound, "total", res.Total)
	return res, nil
}

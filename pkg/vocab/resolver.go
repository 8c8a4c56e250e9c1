package vocab

import (
	"context"
	"strings"

	"github.com/hazyhaar/wordfam-registry/pkg/normalize"
)

// Resolver maps a token to its family label by querying the index in
// both directions and applying the derivative-count tie-break.
type Resolver struct {
	idx Index
}

func NewResolver(idx Index) *Resolver {
	return &Resolver{idx: idx}
}

// Resolve returns the family label for token, or "" when the token has
// no match in the snapshot. The token is folded to its canonical lookup
// key (lowercase, accents stripped) first. Index errors propagate so
// that an unreachable snapshot is never mistaken for "no match".
//
// When the token is both a headword and listed as another entry's
// derivative, the entry with more derivatives wins; on an exact count tie
// the reverse match wins (the comparison is >=, deliberately).
func (r *Resolver) Resolve(ctx context.Context, token string) (string, error) {
	word := normalize.Fold(strings.TrimSpace(token))
	if word == "" {
		return "", nil
	}

	forward, err := r.idx.Forward(ctx, word)
	if err != nil {
		return "", err
	}
	reverse, err := r.idx.Reverse(ctx, word)
	if err != nil {
		return "", err
	}

	var winner *Entry
	switch {
	case reverse != nil && CountDerivatives(reverse) >= CountDerivatives(forward):
		winner = reverse
	case forward != nil:
		winner = forward
	default:
		return "", nil
	}
	return winner.FamilyLabel(), nil
}

package kit

import (
	"context"
	"log/slog"
	"time"
)

// Logging returns a Middleware that records each endpoint call's name,
// duration and outcome.
func Logging(logger *slog.Logger, name string) Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)
			if err != nil {
				logger.Warn("endpoint failed", "endpoint", name,
					"duration", time.Since(start), "error", err)
			} else {
				logger.Debug("endpoint ok", "endpoint", name,
					"duration", time.Since(start))
			}
			return resp, err
		}
	}
}

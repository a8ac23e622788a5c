// Package besteffort formalizes the swallow-and-log contract for side effects.
// Notification, geocoding, audit, and order-status synchronization must never
// fail the primary state mutation: their errors (and panics) are logged and
// absorbed at the call site.
package besteffort

import (
	"context"
	"log/slog"
)

// Run executes fn and guarantees no error or panic escapes the call.
// Failures are logged against the given operation name. The primary write of
// the calling use case is committed (or attempted) regardless of the outcome.
func Run(ctx context.Context, logger *slog.Logger, operation string, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "best-effort operation panicked",
				"operation", operation, "panic", r)
		}
	}()

	if err := fn(ctx); err != nil {
		logger.WarnContext(ctx, "best-effort operation failed",
			"operation", operation, "error", err)
	}
}

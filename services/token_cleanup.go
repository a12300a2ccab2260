package services

import (
	"context"
	"log/slog"
	"time"
)

// TokenCleanupMetrics is the subset of metrics.Registry the cleanup job reports to.
type TokenCleanupMetrics interface {
	ObserveTokensPurged(n int64)
}

// RunTokenCleanup deletes expired refresh tokens every interval until ctx is done.
func RunTokenCleanup(ctx context.Context, auth AuthService, interval time.Duration, m TokenCleanupMetrics, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("refresh token cleanup started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("refresh token cleanup stopped")
			return
		case <-ticker.C:
			purgeExpiredTokens(ctx, auth, m, logger)
		}
	}
}

func purgeExpiredTokens(ctx context.Context, auth AuthService, m TokenCleanupMetrics, logger *slog.Logger) {
	n, err := auth.PurgeExpiredTokens(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "refresh token cleanup failed", slog.Any("error", err))
		return
	}
	if m != nil {
		m.ObserveTokensPurged(n)
	}
	if n > 0 {
		logger.InfoContext(ctx, "expired refresh tokens purged", slog.Int64("count", n))
	}
}

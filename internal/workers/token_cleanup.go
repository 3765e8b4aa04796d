// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/store"
)

const (
	cleanupMaxRetries   = 3
	cleanupRetryBackoff = 100 * time.Millisecond
)

// TokenCleanupWorker periodically deletes session tokens that can no longer
// pass verification.
type TokenCleanupWorker struct {
	tokens   service.TokenService
	interval time.Duration
	backoff  func() retry.Backoff

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewTokenCleanupWorker(tokens service.TokenService, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		tokens:   tokens,
		interval: interval,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(cleanupMaxRetries, retry.NewExponential(cleanupRetryBackoff))
		},
		metrics: m,
		logger:  logger.GetChildLogger(),
	}
}

func (w *TokenCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("token cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("token cleanup worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

// purge runs one cleanup pass. Transient storage failures are retried with
// exponential backoff, anything else waits for the next tick.
func (w *TokenCleanupWorker) purge(ctx context.Context) {
	var deleted int64

	err := retry.Do(ctx, w.backoff(), func(ctx context.Context) error {
		n, err := w.tokens.DeleteExpired(ctx)
		if err != nil {
			if errors.Is(err, store.ErrRetryable) {
				w.logger.Warn().Err(err).Msg("expired tokens purge failed, retrying")
				return retry.RetryableError(err)
			}
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			w.logger.Err(err).Msg("expired tokens purge failed")
		}
		return
	}

	if w.metrics != nil {
		w.metrics.ExpiredSessionsPurge.Add(float64(deleted))
	}
	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Msg("expired tokens purged")
	}
}

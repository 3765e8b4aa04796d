package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. A negative
// cleanup interval disables the token cleanup worker.
func NewWorkers(services *service.Services, cfg config.Workers, m *metrics.Metrics, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.TokenCleanupInterval > 0 {
		ws.workers = append(ws.workers, NewTokenCleanupWorker(services.TokenService, cfg.TokenCleanupInterval, m, logger))
	} else {
		logger.Info().Msg("token cleanup worker disabled")
	}

	return ws
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: log}
}

// Add registers w. It must be called before Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. The first worker error
// cancels the context passed to the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			w.logger.Debug().Str("worker", worker.Name()).Msg("worker started")

			if err := worker.Run(gctx); err != nil {
				w.logger.Err(err).Str("worker", worker.Name()).Msg("worker failed")
				return fmt.Errorf("worker %s: %w", worker.Name(), err)
			}

			w.logger.Debug().Str("worker", worker.Name()).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}

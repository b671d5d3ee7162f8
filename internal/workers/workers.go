package workers

import (
	"github.com/sgalab/sga-server/internal/config"
	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/storage"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers: currently only the
// temp-directory cleanup worker.
func NewWorkers(layout *storage.Layout, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newTempCleanupWorker(layout, cfg.TempCleanupInterval, cfg.TempMaxAge, log),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

package workers

import (
	"time"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/storage"
)

// tempCleanupWorker periodically removes stale files from the temp
// directory. Multipart uploads spill to temp files; anything older than
// maxAge is leftover from a crashed or abandoned request.
type tempCleanupWorker struct {
	layout   *storage.Layout
	interval time.Duration
	maxAge   time.Duration
	logger   *logger.Logger
}

func newTempCleanupWorker(layout *storage.Layout, interval, maxAge time.Duration, logger *logger.Logger) *tempCleanupWorker {
	return &tempCleanupWorker{
		layout:   layout,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Run starts the cleanup loop in its own goroutine. One sweep runs
// immediately so a restart does not wait a full interval to clear backlog.
func (w *tempCleanupWorker) Run() {
	go func() {
		w.sweep()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.sweep()
		}
	}()
}

func (w *tempCleanupWorker) sweep() {
	removed, err := w.layout.CleanupTemp(w.maxAge)
	if err != nil {
		w.logger.Err(err).Msg("temp cleanup sweep failed")
		return
	}
	if removed > 0 {
		w.logger.Info().Int("removed", removed).Msg("temp cleanup sweep finished")
	}
}

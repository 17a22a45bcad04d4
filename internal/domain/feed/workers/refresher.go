package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Conte777/tweetfeed/config"
)

// Refresher runs one refresh cycle
type Refresher interface {
	Refresh(ctx context.Context)
}

// RefreshWorker triggers a refresh immediately on start and then once per interval.
// Each trigger runs in its own goroutine, so a slow cycle does not delay the
// next one and cycles may overlap.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	logger    zerolog.Logger

	wg     sync.WaitGroup
	ctx    context.Context
	cancel  context.CancelFunc
	once    sync.Once
	stopped chan struct{}
}

// NewRefreshWorker creates a new feed refresh worker
func NewRefreshWorker(refresher Refresher, interval time.Duration, logger zerolog.Logger) *RefreshWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &RefreshWorker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		stopped:   make(chan struct{}),
	}
}

// NewRefreshWorkerFromConfig creates a worker using the configured refresh interval
func NewRefreshWorkerFromConfig(refresher Refresher, cfg *config.FeedConfig, logger zerolog.Logger) *RefreshWorker {
	return NewRefreshWorker(refresher, cfg.RefreshInterval, logger)
}

// Start dispatches the first refresh and starts the ticker loop
func (w *RefreshWorker) Start() {
	w.logger.Info().
		Dur("interval", w.interval).
		Msg("Starting feed refresh worker")

	w.dispatch()

	w.wg.Add(1)
	go w.run()
}

// Stop cancels the schedule and waits for in-flight cycles
func (w *RefreshWorker) Stop() {
	_ = w.StopContext(context.Background())
}

// StopContext cancels the schedule and waits for in-flight cycles until ctx
// is done. Cycles still running at that point are abandoned.
func (w *RefreshWorker) StopContext(ctx context.Context) error {
	w.once.Do(func() {
		w.logger.Info().Msg("Stopping feed refresh worker")

		w.cancel()
		go func() {
			w.wg.Wait()
			w.logger.Info().Msg("Feed refresh worker stopped")
			close(w.stopped)
		}()
	})

	select {
	case <-w.stopped:
		return nil
	case <-ctx.Done():
		w.logger.Warn().Err(ctx.Err()).Msg("Feed refresh worker did not stop in time")
		return fmt.Errorf("stop feed refresh worker: %w", ctx.Err())
	}
}

func (w *RefreshWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.dispatch()
		}
	}
}

func (w *RefreshWorker) dispatch() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				w.logger.Error().Interface("panic", r).Msg("Feed refresh panicked")
			}
		}()

		w.refresher.Refresh(w.ctx)
	}()
}

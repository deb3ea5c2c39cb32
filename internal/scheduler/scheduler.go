package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
)

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=scheduler

// Refresher re-reads in-flight transactions.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler runs the history refresh on a cron schedule. A run still in
// progress when the next one is due causes that next run to be skipped.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	schedule  string
	timeout   time.Duration
}

// New creates a scheduler. Each run is bounded by timeout.
func New(refresher Refresher, schedule string, timeout time.Duration) *Scheduler {
	l := cronLogger{}
	c := cron.New(cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)), cron.WithLogger(l))

	return &Scheduler{
		cron:      c,
		refresher: refresher,
		schedule:  schedule,
		timeout:   timeout,
	}
}

// Start registers the refresh job and starts the cron scheduler. Runs use
// ctx as their parent.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.run(ctx) }); err != nil {
		logger.Log.Errorw("failed to schedule history refresh job", "schedule", s.schedule, "error", err)
		return err
	}
	logger.Log.Infow("scheduled history refresh job", "schedule", s.schedule)

	s.cron.Start()
	return nil
}

// Stop stops the scheduler. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) run(parent context.Context) {
	ctx := parent
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		logger.Log.Errorw("history refresh failed", "error", err, "duration", time.Since(start))
		return
	}
	logger.Log.Debugw("history refresh done", "duration", time.Since(start))
}

// cronLogger routes cron's own messages to the global zap logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Log.Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Log.Errorw(msg, append(keysAndValues, "error", err)...)
}

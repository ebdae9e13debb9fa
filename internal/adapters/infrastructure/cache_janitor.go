package infrastructure

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

const sweepTimeout = 5 * time.Minute

// CacheJanitor periodically drops stream cache entries older than a maximum age
type CacheJanitor struct {
	scheduler *gocron.Scheduler
	sweeper   ports.CacheSweeper
	logger    ports.Logger
	maxAge    time.Duration
	interval  time.Duration
	now       func() time.Time
}

// CacheJanitorConfig holds the configuration for creating a cache janitor
type CacheJanitorConfig struct {
	Sweeper  ports.CacheSweeper
	Logger   ports.Logger
	MaxAge   time.Duration
	Interval time.Duration
}

// NewCacheJanitor creates a janitor. It does nothing until Start is called.
func NewCacheJanitor(config CacheJanitorConfig) (*CacheJanitor, error) {
	if config.Sweeper == nil {
		return nil, errors.NewConfigurationError("cache sweeper is required", nil)
	}
	if config.Logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}
	if config.MaxAge <= 0 {
		return nil, errors.NewConfigurationError("cache max age must be positive", nil)
	}
	if config.Interval < time.Minute {
		return nil, errors.NewConfigurationError("cache sweep interval must be at least one minute", nil)
	}

	return &CacheJanitor{
		scheduler: gocron.NewScheduler(time.UTC),
		sweeper:   config.Sweeper,
		logger:    config.Logger,
		maxAge:    config.MaxAge,
		interval:  config.Interval,
		now:       time.Now,
	}, nil
}

// Start schedules the sweep job and starts the underlying scheduler
func (j *CacheJanitor) Start() error {
	minutes := int(j.interval.Minutes())

	_, err := j.scheduler.Every(minutes).Minutes().SingletonMode().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		_, _ = j.SweepOnce(ctx)
	})
	if err != nil {
		return errors.NewConfigurationError("schedule cache sweep", err)
	}

	j.scheduler.StartAsync()
	j.logger.Info("Cache janitor started",
		ports.F("max_age", j.maxAge.String()),
		ports.F("interval", j.interval.String()))
	return nil
}

// SweepOnce removes entries older than the maximum age
func (j *CacheJanitor) SweepOnce(ctx context.Context) (int, error) {
	cutoff := j.now().Add(-j.maxAge)

	removed, err := j.sweeper.Sweep(ctx, cutoff)
	if err != nil {
		j.logger.Error("Cache sweep failed", ports.F("removed", removed), ports.F("error", err))
		return removed, err
	}

	j.logger.Info("Cache sweep completed", ports.F("removed", removed), ports.F("cutoff", cutoff))
	return removed, nil
}

// Stop stops the scheduler and cancels any future sweeps
func (j *CacheJanitor) Stop() {
	if j.scheduler != nil {
		j.scheduler.Stop()
	}
}

package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dronefleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSampleInterval applies when no positive interval is configured.
const DefaultSampleInterval = 10 * time.Minute

// BatterySampler is the command handler the job drives.
type BatterySampler interface {
	Handle(ctx context.Context, cmd commands.SampleBatteriesCommand) (int, error)
}

// BatterySamplerJob snapshots every drone's battery into the battery log on a
// fixed interval.
type BatterySamplerJob struct {
	sampler  BatterySampler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewBatterySamplerJob creates the job. Runs share a context that Stop cancels.
func NewBatterySamplerJob(sampler BatterySampler, interval time.Duration, logger *slog.Logger) *BatterySamplerJob {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "battery_sampler_job")

	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	ctx, cancel := context.WithCancel(context.Background())

	return &BatterySamplerJob{
		sampler:  sampler,
		interval: interval,
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		)),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start schedules the sampler.
func (j *BatterySamplerJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.RunOnce(j.ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Battery sampler job started", "interval", j.interval.String())
	return nil
}

// RunOnce takes one sample. Errors are logged, never returned.
func (j *BatterySamplerJob) RunOnce(ctx context.Context) {
	n, err := j.sampler.Handle(ctx, commands.NewSampleBatteriesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Battery sampler job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, fmt.Sprintf("Battery check logged for %d drones", n), "drones", n)
}

// Stop unschedules the sampler and waits for a running sample to finish.
func (j *BatterySamplerJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Battery sampler job stopped")
}

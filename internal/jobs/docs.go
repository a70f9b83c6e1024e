// Package jobs provides scheduled background tasks for the drone fleet service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. BatterySamplerJob - Appends one battery log entry per registered drone
// on a fixed interval (BATTERY_SAMPLE_INTERVAL, ten minutes by default)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sampleBatteriesHandler, interval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sampler is registered with the "@every <interval>" descriptor. A run
// that is still going when the next tick fires causes that tick to be skipped.
//
// # Error Handling
//
// Sampling is best-effort telemetry. Failures and panics are logged and never
// propagate; the next tick retries independently. StopAll cancels the context
// of a running sample and waits for it to return.
package jobs

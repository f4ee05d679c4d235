package cron

import (
	"context"
	"time"
)

// Sweeper evicts idle sessions.
type Sweeper interface {
	Sweep(ctx context.Context) error
	Len() int
}

type SessionJobs struct {
	sessions Sweeper
	interval time.Duration
}

func NewSessionJobs(sessions Sweeper, interval time.Duration) *SessionJobs {
	return &SessionJobs{
		sessions: sessions,
		interval: interval,
	}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_idle_sessions", j.interval, j.SweepIdleSessions)
}

func (j *SessionJobs) SweepIdleSessions(ctx context.Context) error {
	return j.sessions.Sweep(ctx)
}

package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSweeper struct {
	sweeps atomic.Int32
}

func (f *fakeSweeper) Sweep(ctx context.Context) error {
	f.sweeps.Add(1)
	return nil
}

func (f *fakeSweeper) Len() int { return 0 }

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler(nil)
	sweeper := &fakeSweeper{}
	NewSessionJobs(sweeper, time.Hour).RegisterJobs(s)
	s.AddJob("failing", time.Hour, func(ctx context.Context) error { return errors.New("boom") })

	s.RunOnce(context.Background())
	assert.Equal(t, int32(1), sweeper.sweeps.Load())
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(nil)
	sweeper := &fakeSweeper{}
	NewSessionJobs(sweeper, 5*time.Millisecond).RegisterJobs(s)

	s.Start()
	assert.Eventually(t, func() bool { return sweeper.sweeps.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := sweeper.sweeps.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, sweeper.sweeps.Load())
}

package pacer

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPacer(t *testing.T, delay time.Duration) (*Pacer, *quartz.Mock) {
	clock := quartz.NewMock(t)
	return New(clock, delay, log.NewWithOptions(io.Discard, log.Options{})), clock
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not run")
	}
}

func TestScheduleRunsAfterDelay(t *testing.T) {
	p, clock := newTestPacer(t, 1500*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ran := make(chan struct{})
	p.Schedule(func() { close(ran) })
	assert.True(t, p.Pending())

	clock.Advance(time.Second).MustWait(ctx)
	select {
	case <-ran:
		t.Fatal("ran before the delay elapsed")
	default:
	}

	clock.Advance(500 * time.Millisecond).MustWait(ctx)
	waitFor(t, ran)
	assert.False(t, p.Pending())
}

func TestScheduleReplacesPending(t *testing.T) {
	p, clock := newTestPacer(t, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var first atomic.Int32
	second := make(chan struct{})
	p.Schedule(func() { first.Add(1) })
	p.Schedule(func() { close(second) })

	clock.Advance(time.Second).MustWait(ctx)
	waitFor(t, second)
	assert.Equal(t, int32(0), first.Load())
}

func TestCancel(t *testing.T) {
	p, clock := newTestPacer(t, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls atomic.Int32
	p.Schedule(func() { calls.Add(1) })
	require.True(t, p.Cancel())
	assert.False(t, p.Cancel())
	assert.False(t, p.Pending())

	clock.Advance(2 * time.Second).MustWait(ctx)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, time.Second, p.Delay())
}

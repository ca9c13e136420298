package utils

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Countdown decrements once per tick interval from a starting number of
// seconds, never going below zero. The owning flow receives each tick through
// the callbacks and decides what reaching zero means (disable a confirm
// button, close a grab window, and so on). A Countdown must be stopped when
// its owning flow is torn down so the tick goroutine does not outlive it.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	interval  time.Duration
	onTick    func(remaining int)
	onZero    func()
	cancel    context.CancelFunc
	done      chan struct{}
	started   bool
}

// NewCountdown creates a countdown from the given number of seconds.
// Either callback may be nil. The tick interval defaults to one second.
func NewCountdown(seconds int, onTick func(remaining int), onZero func()) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{
		remaining: seconds,
		interval:  time.Second,
		onTick:    onTick,
		onZero:    onZero,
	}
}

// SetInterval overrides the tick interval. Must be called before Start.
func (c *Countdown) SetInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started && d > 0 {
		c.interval = d
	}
}

// Start launches the tick loop. The loop exits when the countdown reaches
// zero, Stop is called, or the context is cancelled.
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})
	interval := c.interval
	c.mu.Unlock()

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.tick() {
					return
				}
			}
		}
	}()
}

// tick decrements once and reports whether the countdown has finished.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	if c.remaining > 0 {
		c.remaining--
	}
	remaining := c.remaining
	onTick := c.onTick
	onZero := c.onZero
	c.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
	if remaining == 0 {
		if onZero != nil {
			onZero()
		}
		return true
	}
	return false
}

// Stop terminates the tick loop and waits for the goroutine to exit.
// Safe to call more than once and on a countdown that was never started.
func (c *Countdown) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	done := c.done
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Remaining returns the current number of seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// FormatMMSS renders a number of seconds as a zero-padded "mm:ss" string.
func FormatMMSS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

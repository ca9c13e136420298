package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestCountdownReachesZero(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ticks []int
	zero := make(chan struct{})
	cd := NewCountdown(3, func(remaining int) {
		ticks = append(ticks, remaining)
	}, func() {
		close(zero)
	})
	cd.SetInterval(time.Millisecond)
	cd.Start(context.Background())

	select {
	case <-zero:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown never reached zero")
	}
	cd.Stop()

	assert.Equal(t, []int{2, 1, 0}, ticks)
	assert.Equal(t, 0, cd.Remaining())
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	cd := NewCountdown(1000, nil, nil)
	cd.SetInterval(time.Millisecond)
	cd.Start(context.Background())

	time.Sleep(10 * time.Millisecond)
	cd.Stop()
	cd.Stop()

	assert.Greater(t, cd.Remaining(), 0)
}

func TestCountdownNeverGoesNegative(t *testing.T) {
	defer goleak.VerifyNone(t)

	zero := make(chan struct{})
	cd := NewCountdown(0, nil, func() {
		close(zero)
	})
	cd.SetInterval(time.Millisecond)
	cd.Start(context.Background())

	select {
	case <-zero:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown never fired onZero")
	}
	cd.Stop()

	assert.Equal(t, 0, cd.Remaining())
}

func TestCountdownStopBeforeStart(t *testing.T) {
	cd := NewCountdown(5, nil, nil)
	cd.Stop()
	assert.Equal(t, 5, cd.Remaining())
}

func TestCountdownContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cd := NewCountdown(1000, nil, nil)
	cd.SetInterval(time.Millisecond)
	cd.Start(ctx)

	cancel()
	cd.Stop()
}

func TestFormatMMSS(t *testing.T) {
	require.Equal(t, "15:00", FormatMMSS(900))
	require.Equal(t, "00:59", FormatMMSS(59))
	require.Equal(t, "03:05", FormatMMSS(185))
	require.Equal(t, "00:00", FormatMMSS(0))
	require.Equal(t, "00:00", FormatMMSS(-5))
}

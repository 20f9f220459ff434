package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwatch/route-risk/internal/store"
)

func TestChecker_ImmediateCheckOnStart(t *testing.T) {
	ms := &mockStore{stats: &store.Stats{Total: 10, FallbackCount: 2, AvgRiskScore: 4.5, MaxRiskScore: 7}}
	collector := NewCollector(ms, nil)
	alerter := NewAlerter(AlerterConfig{FallbackRateThreshold: 0.90})
	clock := clockwork.NewFakeClock()
	checker := NewCheckerWithClock(collector, alerter, CheckerConfig{
		CheckIntervalSecs:   60,
		LookbackWindowHours: 24,
	}, clock)

	assert.Nil(t, checker.LastSnapshot())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		checker.Run(ctx)
		close(done)
	}()

	// The startup check runs before the first tick.
	assert.Eventually(t, func() bool {
		return checker.LastSnapshot() != nil
	}, 2*time.Second, 10*time.Millisecond)

	snap := checker.LastSnapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 10, snap.AssessmentTotal)
	assert.InDelta(t, 0.2, snap.FallbackRate, 0.001)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Checker.Run did not stop after context cancellation")
	}
}

func TestChecker_RunStopsOnCancel(t *testing.T) {
	collector := NewCollector(&mockStore{}, nil)
	alerter := NewAlerter(AlerterConfig{FallbackRateThreshold: 0.10})
	checker := NewChecker(collector, alerter, CheckerConfig{
		CheckIntervalSecs:   1,
		LookbackWindowHours: 24,
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		checker.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Checker.Run did not stop after context cancellation")
	}
}

func TestChecker_Defaults(t *testing.T) {
	collector := NewCollector(&mockStore{}, nil)
	alerter := NewAlerter(AlerterConfig{})

	checker := NewChecker(collector, alerter, CheckerConfig{CheckIntervalSecs: 0})
	assert.NotNil(t, checker)
	assert.Equal(t, 24, checker.cfg.LookbackWindowHours)

	// A pre-cancelled context returns without ticking.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	checker.Run(ctx)
	assert.Nil(t, checker.LastSnapshot())
}

package dashboard

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newCountingController(interval time.Duration, notify func()) (*Controller, *stubHandler) {
	h := &stubHandler{name: "counter"}
	orch := NewOrchestrator([]Handler{h}, NewRegions(), zap.NewNop())
	return NewController(orch, interval, notify, zap.NewNop()), h
}

func waitForCalls(t *testing.T, h *stubHandler, n int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.calls.Load() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected at least %d refreshes, got %d", n, h.calls.Load())
}

func TestController_StartRefreshesImmediatelyThenTicks(t *testing.T) {
	ctrl, h := newCountingController(25*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl.Start(ctx)
	defer ctrl.Stop()

	waitForCalls(t, h, 3)
}

func TestController_DoubleStartKeepsSingleSchedule(t *testing.T) {
	ctrl, h := newCountingController(15*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The second Start must cancel the first schedule. A single Stop
	// then halts everything; a leaked first schedule would keep ticking.
	ctrl.Start(ctx)
	ctrl.Start(ctx)
	waitForCalls(t, h, 3)
	ctrl.Stop()

	time.Sleep(30 * time.Millisecond)
	settled := h.calls.Load()
	time.Sleep(90 * time.Millisecond)
	assert.Equal(t, settled, h.calls.Load())
}

func TestController_StopHaltsSchedule(t *testing.T) {
	ctrl, h := newCountingController(15*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl.Start(ctx)
	waitForCalls(t, h, 2)
	ctrl.Stop()

	settled := h.calls.Load()
	time.Sleep(80 * time.Millisecond)
	assert.LessOrEqual(t, h.calls.Load(), settled+1)
}

func TestController_NotifyRunsAfterEachCycle(t *testing.T) {
	var notified atomic.Int64
	ctrl, h := newCountingController(20*time.Millisecond, func() { notified.Add(1) })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl.Start(ctx)
	defer ctrl.Stop()

	waitForCalls(t, h, 2)
	deadline := time.Now().Add(time.Second)
	for notified.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, notified.Load(), int64(2))
}

func TestController_RefreshNowDoesNotNeedSchedule(t *testing.T) {
	ctrl, h := newCountingController(time.Hour, nil)

	ctrl.RefreshNow(context.Background())
	waitForCalls(t, h, 1)
}

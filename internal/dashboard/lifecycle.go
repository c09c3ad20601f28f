package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Controller owns the refresh schedule: one immediate refresh on start,
// then a recurring tick. Re-starting cancels the previous schedule
// first so at most one is ever live. In-flight refreshes are not
// cancelled on stop; an overlapping cycle simply finishes and its
// writes land last-writer-wins.
type Controller struct {
	orch     *Orchestrator
	interval time.Duration
	logger   *zap.Logger
	notify   func()

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewController creates a controller over the orchestrator. notify, if
// non-nil, is called after every completed refresh cycle (the UI uses
// it to repaint).
func NewController(orch *Orchestrator, interval time.Duration, notify func(), logger *zap.Logger) *Controller {
	return &Controller{
		orch:     orch,
		interval: interval,
		logger:   logger.Named("lifecycle"),
		notify:   notify,
	}
}

// Start performs one immediate refresh and arms the recurring timer.
// Any previously armed schedule is cancelled first.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	tickCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	c.logger.Info("refresh schedule armed", zap.Duration("interval", c.interval))
	go c.run(tickCtx)
}

// Stop halts the recurring schedule.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// RefreshNow triggers an off-schedule refresh cycle, used by the manual
// refresh key. It shares the scheduled path and does not reset the
// timer.
func (c *Controller) RefreshNow(ctx context.Context) {
	go c.refresh(ctx)
}

func (c *Controller) run(ctx context.Context) {
	c.refresh(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.refresh(ctx)
		}
	}
}

func (c *Controller) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	c.orch.RefreshAll(ctx)
	if c.notify != nil {
		c.notify()
	}
}

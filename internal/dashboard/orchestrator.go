package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Health is the recorded outcome of one source's last refresh. Handlers
// never surface errors to the UI; the orchestrator keeps this record so
// the header and tests can observe per-source state.
type Health struct {
	Source    string
	OK        bool
	Err       string
	CheckedAt time.Time
}

// Orchestrator fans all handlers out concurrently and stamps the
// last-updated slot once after every handler has settled. A failing
// source never blocks or blanks the others.
type Orchestrator struct {
	handlers []Handler
	regions  *Regions
	logger   *zap.Logger
	now      func() time.Time

	mu     sync.RWMutex
	health map[string]Health
}

// NewOrchestrator creates an orchestrator over the given handlers.
func NewOrchestrator(handlers []Handler, regions *Regions, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		handlers: handlers,
		regions:  regions,
		logger:   logger.Named("orchestrator"),
		now:      time.Now,
		health:   make(map[string]Health),
	}
}

// RefreshAll runs every handler concurrently, waits for all of them to
// settle, then updates the last-updated display exactly once. Total
// refresh latency is bounded by the slowest source, not the sum.
func (o *Orchestrator) RefreshAll(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	for _, h := range o.handlers {
		h := h
		g.Go(func() error {
			o.runOne(ctx, h)
			return nil
		})
	}
	// Handlers swallow their own failures, so the join cannot fail.
	_ = g.Wait()

	o.regions.SetLastUpdated(o.now())
}

// runOne executes a single handler, converting any error into a health
// record and a log line.
func (o *Orchestrator) runOne(ctx context.Context, h Handler) {
	err := h.Refresh(ctx)

	record := Health{Source: h.Name(), OK: err == nil, CheckedAt: o.now()}
	if err != nil {
		record.Err = err.Error()
		o.logger.Warn("source refresh failed",
			zap.String("source", h.Name()),
			zap.Error(err))
	}

	o.mu.Lock()
	o.health[h.Name()] = record
	o.mu.Unlock()
}

// Health returns a copy of the per-source health records.
func (o *Orchestrator) Health() map[string]Health {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(map[string]Health, len(o.health))
	for k, v := range o.health {
		out[k] = v
	}
	return out
}

// FailingSources returns the names of sources whose last refresh
// failed, for the status header.
func (o *Orchestrator) FailingSources() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var out []string
	for name, h := range o.health {
		if !h.OK {
			out = append(out, name)
		}
	}
	return out
}

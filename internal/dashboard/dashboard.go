package dashboard

import (
	"time"

	"go.uber.org/zap"

	"funding-monitor/internal/api"
)

// Default layout and schedule constants.
const (
	DefaultRefreshInterval = 30 * time.Second
	DefaultHistoryDays     = 30

	equityChartWidth      = 60
	fundingChartLabelCols = 8
	fundingChartBarCols   = 30
)

// Options configure a Dashboard.
type Options struct {
	RefreshInterval time.Duration
	HistoryDays     int
	Notify          func() // called after each completed refresh cycle
}

// Dashboard is the context object owning all refresh-pipeline state:
// the region store, both chart instances (created exactly once, here),
// the orchestrator, and the lifecycle controller. Tests construct
// isolated instances instead of sharing globals.
type Dashboard struct {
	Regions *Regions
	Equity  *EquityChart
	Funding *FundingChart
	Orch    *Orchestrator
	Control *Controller
}

// New wires the full pipeline over the given API client.
func New(client *api.Client, opts Options, logger *zap.Logger) *Dashboard {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = DefaultHistoryDays
	}

	regions := NewRegions()
	equity := NewEquityChart(equityChartWidth)
	funding := NewFundingChart(fundingChartLabelCols, fundingChartBarCols)

	handlers := []Handler{
		&overviewHandler{api: client, regions: regions},
		&positionsHandler{api: client, regions: regions},
		&riskHandler{api: client, regions: regions},
		&fundingHandler{api: client, regions: regions, chart: funding},
		&performanceHandler{api: client, regions: regions},
		&equityHandler{api: client, chart: equity, days: opts.HistoryDays},
		&configHandler{api: client, regions: regions},
		&paperHandler{api: client, regions: regions},
		&statusHandler{api: client, regions: regions},
	}

	orch := NewOrchestrator(handlers, regions, logger)
	control := NewController(orch, opts.RefreshInterval, opts.Notify, logger)

	return &Dashboard{
		Regions: regions,
		Equity:  equity,
		Funding: funding,
		Orch:    orch,
		Control: control,
	}
}

package dashboard

import (
	"context"
	"fmt"
	"math"

	"funding-monitor/internal/api"
	"funding-monitor/internal/format"
)

// fundingTableRows caps the leaderboard table; the chart takes fewer.
const fundingTableRows = 20

// Handler is one fetch-and-render unit. Refresh errors are recorded by
// the orchestrator, never propagated further; whatever the handler
// rendered before stays on screen unless the handler itself resets.
type Handler interface {
	Name() string
	Refresh(ctx context.Context) error
}

// overviewHandler renders the account overview scalars.
type overviewHandler struct {
	api     *api.Client
	regions *Regions
}

func (h *overviewHandler) Name() string { return "overview" }

func (h *overviewHandler) Refresh(ctx context.Context) error {
	ov, err := h.api.Overview(ctx)
	if err != nil {
		return err
	}

	pnl := api.Float(ov.TotalPnL)
	h.regions.SetOverview(OverviewRegion{
		TotalEquity:   text(format.Currency(api.Float(ov.TotalEquity))),
		TotalPnL:      toned(format.Currency(pnl), signTone(pnl)),
		TotalPnLPct:   toned(format.Percent(api.Float(ov.TotalPnLPct)), signTone(pnl)),
		DailyAPR:      text(format.Percent(api.Float(ov.DailyAPR))),
		MonthlyAPR:    text(format.Percent(api.Float(ov.MonthlyAPR))),
		AnnualizedAPR: text(format.Percent(api.Float(ov.AnnualizedAPR))),
		OpenPositions: text(fmt.Sprintf("%d", api.Int(ov.OpenPositionsCount))),
		TotalFunding:  toned(format.Currency(api.Float(ov.TotalFunding)), signTone(api.Float(ov.TotalFunding))),
		TotalFees:     text(format.Currency(api.Float(ov.TotalFees))),
	})
	return nil
}

// positionsHandler renders the open positions table.
type positionsHandler struct {
	api     *api.Client
	regions *Regions
}

func (h *positionsHandler) Name() string { return "positions" }

func (h *positionsHandler) Refresh(ctx context.Context) error {
	positions, err := h.api.OpenPositions(ctx)
	if err != nil {
		return err
	}

	table := TableRegion{Empty: "No open positions"}
	for _, p := range positions {
		netPnL := api.Float(p.NetPnL)
		funding := api.Float(p.AccumulatedFunding)
		table.Rows = append(table.Rows, []Cell{
			text(p.Symbol),
			text(format.SideLabel(p.Side)),
			text(format.Currency(api.Float(p.PositionValue))),
			text(format.FundingRate(api.Float(p.EntryFundingRate))),
			text(format.FundingRate(api.Float(p.CurrentFundingRate))),
			toned(format.Currency(funding), signTone(funding)),
			toned(format.Currency(netPnL), signTone(netPnL)),
			text(format.Duration(api.Float(p.DurationHours))),
		})
	}
	h.regions.SetPositions(table)
	return nil
}

// riskHandler renders the risk panel. Unlike the other handlers it has
// an explicit failure fallback: a failed fetch resets the panel to the
// safe default state instead of leaving stale alarming values.
type riskHandler struct {
	api     *api.Client
	regions *Regions
}

func (h *riskHandler) Name() string { return "risk" }

func (h *riskHandler) Refresh(ctx context.Context) error {
	metrics, err := h.api.RiskMetrics(ctx)
	if err != nil {
		h.regions.ResetRisk()
		return err
	}

	level := metrics.RiskLevel
	if level == "" {
		level = "low"
	}

	region := RiskRegion{
		Level:               format.Capitalize(level),
		LevelRaw:            level,
		MarginRatio:         format.Percent(api.Float(metrics.MarginRatio) * 100),
		LiquidationDistance: liquidationDistance(api.Float(metrics.MinLiquidationDistance)),
		Drawdown:            drawdown(api.Float(metrics.CurrentDrawdown)),
	}
	for _, a := range metrics.Alerts {
		region.Alerts = append(region.Alerts, AlertView{
			Level:   a.Level,
			Title:   format.AlertTitle(a.Type),
			Message: a.Message,
		})
	}
	h.regions.SetRisk(region)
	return nil
}

// liquidationDistance suppresses fractions >= 1: with no leveraged
// exposure the risk engine reports a meaningless bound.
func liquidationDistance(frac float64) string {
	if math.IsNaN(frac) || frac >= 1 {
		return "N/A"
	}
	return format.Percent(frac * 100)
}

// drawdown treats an absent value as zero, matching the risk engine's
// default.
func drawdown(frac float64) string {
	if math.IsNaN(frac) {
		frac = 0
	}
	return format.Percent(frac * 100)
}

// fundingHandler renders the leaderboard table and forwards the top
// entries to the bar chart.
type fundingHandler struct {
	api     *api.Client
	regions *Regions
	chart   *FundingChart
}

func (h *fundingHandler) Name() string { return "funding" }

func (h *fundingHandler) Refresh(ctx context.Context) error {
	rates, err := h.api.FundingRates(ctx)
	if err != nil {
		return err
	}

	table := TableRegion{Empty: "No funding data available"}
	rows := rates
	if len(rows) > fundingTableRows {
		rows = rows[:fundingTableRows]
	}
	for _, r := range rows {
		rate := api.Float(r.FundingRate)
		apr := api.Float(r.APR)
		table.Rows = append(table.Rows, []Cell{
			text(r.Symbol),
			toned(format.FundingRate(rate), signTone(rate)),
			toned(format.Percent(apr), signTone(apr)),
			text(format.Price(api.Float(r.MarkPrice))),
			text(format.Volume(api.Float(r.Volume24h))),
			text(format.ClockTime(api.Str(r.NextFundingTime))),
		})
	}
	h.regions.SetFunding(table)

	top := rates
	if len(top) > maxFundingBars {
		top = top[:maxFundingBars]
	}
	h.chart.Update(top)
	return nil
}

// performanceHandler renders the per-symbol performance table.
type performanceHandler struct {
	api     *api.Client
	regions *Regions
}

func (h *performanceHandler) Name() string { return "performance" }

func (h *performanceHandler) Refresh(ctx context.Context) error {
	rows, err := h.api.Performance(ctx)
	if err != nil {
		return err
	}

	table := TableRegion{Empty: "No performance data available"}
	for _, p := range rows {
		pnl := api.Float(p.TotalPnL)
		funding := api.Float(p.TotalFunding)
		table.Rows = append(table.Rows, []Cell{
			text(p.Symbol),
			text(fmt.Sprintf("%d", api.Int(p.TotalTrades))),
			text(format.Percent(api.Float(p.WinRate))),
			toned(format.Currency(pnl), signTone(pnl)),
			toned(format.Currency(funding), signTone(funding)),
			text(format.Currency(api.Float(p.TotalFees))),
		})
	}
	h.regions.SetPerformance(table)
	return nil
}

// equityHandler forwards the equity curve to the chart. An empty
// history keeps the previous chart state.
type equityHandler struct {
	api   *api.Client
	chart *EquityChart
	days  int
}

func (h *equityHandler) Name() string { return "equity" }

func (h *equityHandler) Refresh(ctx context.Context) error {
	points, err := h.api.EquityHistory(ctx, h.days)
	if err != nil {
		return err
	}
	if len(points) > 0 {
		h.chart.Update(points)
	}
	return nil
}

// configHandler renders the bot's strategy and risk thresholds.
type configHandler struct {
	api     *api.Client
	regions *Regions
}

func (h *configHandler) Name() string { return "config" }

func (h *configHandler) Refresh(ctx context.Context) error {
	cfg, err := h.api.Config(ctx)
	if err != nil {
		return err
	}

	h.regions.SetConfig(ConfigRegion{
		MinFundingRate:    format.FundingRate(api.Float(cfg.Strategy.MinFundingRate)),
		MaxSpread:         format.Percent(api.Float(cfg.Strategy.MaxSpread) * 100),
		PositionSize:      format.Percent(api.Float(cfg.Strategy.PositionSizePct) * 100),
		MaxPositions:      fmt.Sprintf("%d", api.Int(cfg.Strategy.MaxPositions)),
		MaxCoinAllocation: format.Percent(api.Float(cfg.Risk.MaxCoinAllocation) * 100),
		MarginWarning:     format.Percent(api.Float(cfg.Risk.MarginRatioWarning) * 100),
		MarginCritical:    format.Percent(api.Float(cfg.Risk.MarginRatioCritical) * 100),
		MaxDrawdown:       format.Percent(api.Float(cfg.Risk.MaxDrawdown) * 100),
	})
	return nil
}

// paperHandler toggles the paper-trading badge.
type paperHandler struct {
	api     *api.Client
	regions *Regions
}

func (h *paperHandler) Name() string { return "paper" }

func (h *paperHandler) Refresh(ctx context.Context) error {
	status, err := h.api.PaperStatus(ctx)
	if err != nil {
		return err
	}

	badge := BadgeRegion{Visible: status.PaperTrading}
	if status.PaperTrading {
		badge.Label = "PAPER TRADING"
		badge.Tooltip = "Virtual balance: " + format.Currency(api.Float(status.InitialBalance))
	}
	h.regions.SetBadge(badge)
	return nil
}

// statusHandler tracks the bot liveness flag for the header.
type statusHandler struct {
	api     *api.Client
	regions *Regions
}

func (h *statusHandler) Name() string { return "status" }

func (h *statusHandler) Refresh(ctx context.Context) error {
	status, err := h.api.Status(ctx)
	if err != nil {
		return err
	}
	h.regions.SetStatus(StatusRegion{Running: status.Running, Known: true})
	return nil
}

package api

import "math"

// Response schemas for the bot API. Every numeric the server may omit
// or null out is a pointer; Float converts to the NaN sentinel at the
// ingress boundary so the formatters never see raw JSON shape.

// Overview is the account-level snapshot from /api/overview.
type Overview struct {
	TotalEquity        *float64 `json:"total_equity"`
	TotalPnL           *float64 `json:"total_pnl"`
	TotalPnLPct        *float64 `json:"total_pnl_pct"`
	DailyAPR           *float64 `json:"daily_apr"`
	MonthlyAPR         *float64 `json:"monthly_apr"`
	AnnualizedAPR      *float64 `json:"annualized_apr"`
	OpenPositionsCount *int     `json:"open_positions_count"`
	TotalFunding       *float64 `json:"total_funding"`
	TotalFees          *float64 `json:"total_fees"`
}

// Position is one open delta-neutral position.
type Position struct {
	Symbol             string   `json:"symbol"`
	Side               string   `json:"side"`
	PositionValue      *float64 `json:"position_value"`
	EntryFundingRate   *float64 `json:"entry_funding_rate"`
	CurrentFundingRate *float64 `json:"current_funding_rate"`
	AccumulatedFunding *float64 `json:"accumulated_funding"`
	NetPnL             *float64 `json:"net_pnl"`
	DurationHours      *float64 `json:"duration_hours"`
}

type positionsResponse struct {
	Positions []Position `json:"positions"`
}

// Alert is one risk-engine alert.
type Alert struct {
	Level   string `json:"level"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RiskMetrics is the risk-engine snapshot from /api/risk-metrics.
type RiskMetrics struct {
	RiskLevel              string   `json:"risk_level"`
	MarginRatio            *float64 `json:"margin_ratio"`
	MinLiquidationDistance *float64 `json:"min_liquidation_distance"`
	CurrentDrawdown        *float64 `json:"current_drawdown"`
	Alerts                 []Alert  `json:"alerts"`
}

// FundingRate is one row of the funding-rate leaderboard.
type FundingRate struct {
	Symbol          string   `json:"symbol"`
	FundingRate     *float64 `json:"funding_rate"`
	APR             *float64 `json:"apr"`
	MarkPrice       *float64 `json:"mark_price"`
	Volume24h       *float64 `json:"volume_24h"`
	NextFundingTime *string  `json:"next_funding_time"`
}

type fundingRatesResponse struct {
	FundingRates []FundingRate `json:"funding_rates"`
}

// PerformanceRow is per-symbol lifetime performance.
type PerformanceRow struct {
	Symbol       string   `json:"symbol"`
	TotalTrades  *int     `json:"total_trades"`
	WinRate      *float64 `json:"win_rate"`
	TotalPnL     *float64 `json:"total_pnl"`
	TotalFunding *float64 `json:"total_funding"`
	TotalFees    *float64 `json:"total_fees"`
}

type performanceResponse struct {
	Performance []PerformanceRow `json:"performance"`
}

// EquityPoint is one sample of the equity curve.
type EquityPoint struct {
	Timestamp   string   `json:"timestamp"`
	TotalEquity *float64 `json:"total_equity"`
}

type equityHistoryResponse struct {
	EquityHistory []EquityPoint `json:"equity_history"`
}

// BotConfig mirrors the strategy and risk thresholds the bot runs with.
type BotConfig struct {
	Strategy struct {
		MinFundingRate  *float64 `json:"min_funding_rate"`
		MaxSpread       *float64 `json:"max_spread"`
		PositionSizePct *float64 `json:"position_size_pct"`
		MaxPositions    *int     `json:"max_positions"`
	} `json:"strategy"`
	Risk struct {
		MaxCoinAllocation   *float64 `json:"max_coin_allocation"`
		MarginRatioWarning  *float64 `json:"margin_ratio_warning"`
		MarginRatioCritical *float64 `json:"margin_ratio_critical"`
		MaxDrawdown         *float64 `json:"max_drawdown"`
	} `json:"risk"`
}

// PaperStatus reports whether the bot trades with virtual balance.
type PaperStatus struct {
	PaperTrading   bool     `json:"paper_trading"`
	InitialBalance *float64 `json:"initial_balance"`
}

// BotStatus is the liveness flag from /api/status.
type BotStatus struct {
	Running   bool   `json:"running"`
	Timestamp string `json:"timestamp"`
}

// Float normalizes an optional JSON numeric: nil becomes NaN.
func Float(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

// Int normalizes an optional JSON integer: nil becomes zero.
func Int(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Str normalizes an optional JSON string: nil becomes empty.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

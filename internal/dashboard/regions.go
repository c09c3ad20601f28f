// Package dashboard contains the refresh pipeline: the region store
// the handlers render into, the source handlers themselves, the
// orchestrator that fans them out, and the lifecycle controller that
// schedules refresh cycles.
package dashboard

import (
	"sync"
	"time"
)

// Tone classifies a rendered value for color coding. The screen maps
// tones onto the palette; handlers stay free of styling concerns.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
	ToneWarn
	ToneMuted
)

// Cell is one pre-formatted value with its display tone.
type Cell struct {
	Text string
	Tone Tone
}

func text(s string) Cell {
	return Cell{Text: s}
}

func toned(s string, tone Tone) Cell {
	return Cell{Text: s, Tone: tone}
}

// signTone picks good/bad by sign, neutral for invalid values.
func signTone(v float64) Tone {
	switch {
	case v > 0:
		return ToneGood
	case v < 0:
		return ToneBad
	default:
		return ToneNeutral
	}
}

// TableRegion holds pre-rendered rows for one table. Empty is shown as
// a single full-width row when Rows is empty.
type TableRegion struct {
	Rows  [][]Cell
	Empty string
}

// OverviewRegion holds the account overview scalars.
type OverviewRegion struct {
	TotalEquity   Cell
	TotalPnL      Cell
	TotalPnLPct   Cell
	DailyAPR      Cell
	MonthlyAPR    Cell
	AnnualizedAPR Cell
	OpenPositions Cell
	TotalFunding  Cell
	TotalFees     Cell
}

// AlertView is one rendered risk alert.
type AlertView struct {
	Level   string
	Title   string
	Message string
}

// RiskRegion holds the risk panel fields.
type RiskRegion struct {
	Level               string // capitalized display text
	LevelRaw            string // lower-case enum, drives styling
	MarginRatio         string
	LiquidationDistance string
	Drawdown            string
	Alerts              []AlertView
}

// safeRiskRegion is the fail-safe reset state: a failed risk fetch must
// not leave stale alarming values on screen.
func safeRiskRegion() RiskRegion {
	return RiskRegion{
		Level:               "Low",
		LevelRaw:            "low",
		MarginRatio:         "0.00%",
		LiquidationDistance: "N/A",
		Drawdown:            "0.00%",
	}
}

// ConfigRegion holds the rendered strategy and risk thresholds.
type ConfigRegion struct {
	MinFundingRate    string
	MaxSpread         string
	PositionSize      string
	MaxPositions      string
	MaxCoinAllocation string
	MarginWarning     string
	MarginCritical    string
	MaxDrawdown       string
}

// BadgeRegion is the paper-trading badge.
type BadgeRegion struct {
	Visible bool
	Label   string
	Tooltip string
}

// StatusRegion is the bot liveness flag. Known is false until the
// first successful status fetch.
type StatusRegion struct {
	Running bool
	Known   bool
}

// Regions is the rendering surface the handlers write into and the
// screen reads from. Writes replace whole regions; the screen takes
// copies. Overlapping refresh cycles are tolerated: last write wins.
type Regions struct {
	mu          sync.RWMutex
	overview    OverviewRegion
	risk        RiskRegion
	positions   TableRegion
	funding     TableRegion
	performance TableRegion
	config      ConfigRegion
	badge       BadgeRegion
	status      StatusRegion
	lastUpdated string
}

// NewRegions creates the region store with loading placeholders and the
// risk panel in its safe default state.
func NewRegions() *Regions {
	return &Regions{
		risk:        safeRiskRegion(),
		positions:   TableRegion{Empty: "Loading..."},
		funding:     TableRegion{Empty: "Loading..."},
		performance: TableRegion{Empty: "Loading..."},
		lastUpdated: "-",
	}
}

func (r *Regions) SetOverview(o OverviewRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overview = o
}

func (r *Regions) SetRisk(rr RiskRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.risk = rr
}

// ResetRisk restores the safe default risk display.
func (r *Regions) ResetRisk() {
	r.SetRisk(safeRiskRegion())
}

func (r *Regions) SetPositions(t TableRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = t
}

func (r *Regions) SetFunding(t TableRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funding = t
}

func (r *Regions) SetPerformance(t TableRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.performance = t
}

func (r *Regions) SetConfig(c ConfigRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = c
}

func (r *Regions) SetBadge(b BadgeRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.badge = b
}

func (r *Regions) SetStatus(s StatusRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
}

// SetLastUpdated stamps the overall refresh completion time.
func (r *Regions) SetLastUpdated(t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastUpdated = t.Local().Format("15:04:05")
}

// Snapshot is an immutable copy of every region for rendering.
type Snapshot struct {
	Overview    OverviewRegion
	Risk        RiskRegion
	Positions   TableRegion
	Funding     TableRegion
	Performance TableRegion
	Config      ConfigRegion
	Badge       BadgeRegion
	Status      StatusRegion
	LastUpdated string
}

// Snapshot returns a copy of the current state. Row and alert slices
// are copied shallowly; handlers always replace, never mutate in
// place, so shared backing arrays are safe to read.
func (r *Regions) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Overview:    r.overview,
		Risk:        r.risk,
		Positions:   r.positions,
		Funding:     r.funding,
		Performance: r.performance,
		Config:      r.config,
		Badge:       r.badge,
		Status:      r.status,
		LastUpdated: r.lastUpdated,
	}
}

// Package format holds the display formatters for the dashboard.
//
// All functions are total: malformed input maps to a fixed sentinel
// string, never a panic. Absent values arrive as NaN (the API layer
// normalizes JSON null/missing fields before they get here).
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"
)

// SideLongSpotShortPerp is the wire value for the standard carry side.
const SideLongSpotShortPerp = "long_spot_short_perp"

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Currency renders a USD amount with thousand grouping and two decimals.
func Currency(v float64) string {
	if !valid(v) {
		return "$0.00"
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Percent renders an already-percent value with two decimals. Fields
// stored as fractions (margin ratio, drawdown) must be scaled by the
// caller before formatting.
func Percent(v float64) string {
	if !valid(v) {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", v)
}

// FundingRate renders a per-interval funding fraction at four decimals.
func FundingRate(v float64) string {
	if !valid(v) {
		return "0.0000%"
	}
	return fmt.Sprintf("%.4f%%", v*100)
}

// Price keeps six decimals below $1 so sub-dollar assets stay readable.
func Price(v float64) string {
	if !valid(v) {
		return "$0.00"
	}
	if v >= 1 {
		return "$" + humanize.FormatFloat("#,###.##", v)
	}
	return fmt.Sprintf("$%.6f", v)
}

// Volume renders 24h volume with K/M/B suffixes. Exact boundary values
// take the larger unit.
func Volume(v float64) string {
	if !valid(v) {
		return "$0"
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// SideLabel maps the position side enum to its display label. The enum
// is a closed two-way mapping: anything that is not the standard carry
// side is the inverse carry.
func SideLabel(side string) string {
	if side == SideLongSpotShortPerp {
		return "Long Spot / Short Perp"
	}
	return "Short Spot / Long Perp"
}

// Duration renders a position age given in hours.
func Duration(hours float64) string {
	if !valid(hours) {
		return "0 min"
	}
	switch {
	case hours < 1:
		return fmt.Sprintf("%d min", int(math.Round(hours*60)))
	case hours < 24:
		return fmt.Sprintf("%.1f hrs", hours)
	default:
		return fmt.Sprintf("%.1f days", hours/24)
	}
}

// ClockTime renders the time-of-day of an ISO timestamp in local time.
func ClockTime(iso string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return "N/A"
	}
	return t.Local().Format("15:04:05")
}

// DateLabel renders the date part of an ISO timestamp, used for the
// equity chart axis.
func DateLabel(iso string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return "N/A"
	}
	return t.Local().Format("Jan 02")
}

// parseTimestamp accepts RFC 3339 as well as the zone-less isoformat
// the bot API emits for UTC instants.
func parseTimestamp(iso string) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", iso); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// Capitalize upper-cases the first rune only. Unknown risk levels still
// render literally.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// AlertTitle turns a snake_case alert type token into a spaced
// upper-case heading, e.g. "margin_ratio" -> "MARGIN RATIO".
func AlertTitle(alertType string) string {
	return strings.ToUpper(strings.ReplaceAll(alertType, "_", " "))
}

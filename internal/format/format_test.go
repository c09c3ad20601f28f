package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", Currency(math.NaN()))
	assert.Equal(t, "$0.00", Currency(math.Inf(1)))
	assert.Equal(t, "$0.00", Currency(0))
	assert.Equal(t, "$1,234.50", Currency(1234.5))
	assert.Equal(t, "$-12.34", Currency(-12.34))
	assert.Equal(t, "$1,000,000.00", Currency(1e6))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.00%", Percent(math.NaN()))
	assert.Equal(t, "12.35%", Percent(12.345))
	assert.Equal(t, "-3.50%", Percent(-3.5))
}

func TestFundingRate(t *testing.T) {
	assert.Equal(t, "0.0000%", FundingRate(math.NaN()))
	assert.Equal(t, "0.0100%", FundingRate(0.0001))
	assert.Equal(t, "-0.0250%", FundingRate(-0.00025))
}

func TestPriceBoundary(t *testing.T) {
	// Exactly 1 takes the two-decimal branch.
	assert.Equal(t, "$1.00", Price(1))
	assert.Equal(t, "$0.999999", Price(0.999999))
	assert.Equal(t, "$0.000123", Price(0.000123))
	assert.Equal(t, "$42,000.12", Price(42000.12))
	assert.Equal(t, "$0.00", Price(math.NaN()))
}

func TestVolumeTiers(t *testing.T) {
	assert.Equal(t, "$0", Volume(math.NaN()))
	assert.Equal(t, "$999.00", Volume(999))
	assert.Equal(t, "$1.00K", Volume(1000))
	assert.Equal(t, "$1.00M", Volume(1e6))
	assert.Equal(t, "$1.00B", Volume(1e9))
	assert.Equal(t, "$2.50B", Volume(2.5e9))
	assert.Equal(t, "$731.42K", Volume(731420))
}

func TestSideLabel(t *testing.T) {
	assert.Equal(t, "Long Spot / Short Perp", SideLabel("long_spot_short_perp"))
	assert.Equal(t, "Short Spot / Long Perp", SideLabel("short_spot_long_perp"))
	// Closed two-way enum: anything unknown maps to the inverse label.
	assert.Equal(t, "Short Spot / Long Perp", SideLabel(""))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "0 min", Duration(math.NaN()))
	assert.Equal(t, "30 min", Duration(0.5))
	assert.Equal(t, "5.0 hrs", Duration(5))
	assert.Equal(t, "2.0 days", Duration(48))
	assert.Equal(t, "23.5 hrs", Duration(23.5))
}

func TestClockTime(t *testing.T) {
	assert.Equal(t, "N/A", ClockTime(""))
	assert.Equal(t, "N/A", ClockTime("not-a-time"))
	assert.NotEqual(t, "N/A", ClockTime("2026-01-15T08:00:00Z"))
	// Zone-less isoformat as emitted by the bot API.
	assert.NotEqual(t, "N/A", ClockTime("2026-01-15T08:00:00.123456"))
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "N/A", DateLabel(""))
	assert.NotEqual(t, "N/A", DateLabel("2026-01-15T08:00:00Z"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Low", Capitalize("low"))
	assert.Equal(t, "Critical", Capitalize("critical"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Weird_level", Capitalize("weird_level"))
}

func TestAlertTitle(t *testing.T) {
	assert.Equal(t, "MARGIN RATIO", AlertTitle("margin_ratio"))
	assert.Equal(t, "LIQUIDATION DISTANCE", AlertTitle("liquidation_distance"))
	assert.Equal(t, "DRAWDOWN", AlertTitle("drawdown"))
}

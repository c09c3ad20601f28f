package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funding-monitor/internal/api"
)

func fp(v float64) *float64 { return &v }

func TestEquityChart_EmptyUpdateKeepsPreviousState(t *testing.T) {
	chart := NewEquityChart(20)
	chart.Update([]api.EquityPoint{
		{Timestamp: "2026-08-01T00:00:00", TotalEquity: fp(10000)},
		{Timestamp: "2026-08-02T00:00:00", TotalEquity: fp(10100)},
	})
	require.Len(t, chart.Labels(), 2)

	chart.Update(nil)
	assert.Len(t, chart.Labels(), 2, "empty history must not blank the chart")
}

func TestEquityChart_NullEquityBecomesZero(t *testing.T) {
	chart := NewEquityChart(20)
	chart.Update([]api.EquityPoint{
		{Timestamp: "2026-08-01T00:00:00", TotalEquity: nil},
		{Timestamp: "2026-08-02T00:00:00", TotalEquity: fp(500)},
	})
	assert.Len(t, chart.Labels(), 2)
	assert.NotEmpty(t, chart.View())
}

func TestFundingChart_StripsUSDTSuffix(t *testing.T) {
	chart := NewFundingChart(8, 30)
	chart.Update([]api.FundingRate{
		{Symbol: "BTCUSDT", APR: fp(12.5)},
		{Symbol: "ETHUSDT", APR: fp(-3.2)},
	})

	bars := chart.Bars()
	require.Len(t, bars, 2)
	assert.Equal(t, "BTC", bars[0].Label)
	assert.Equal(t, "ETH", bars[1].Label)
}

func TestFundingChart_CapsAtTenBars(t *testing.T) {
	rates := make([]api.FundingRate, 15)
	for i := range rates {
		rates[i] = api.FundingRate{Symbol: "BTCUSDT", APR: fp(float64(i))}
	}

	chart := NewFundingChart(8, 30)
	chart.Update(rates)
	assert.Len(t, chart.Bars(), maxFundingBars)
}

func TestFundingChart_EmptyUpdateKeepsPreviousBars(t *testing.T) {
	chart := NewFundingChart(8, 30)
	chart.Update([]api.FundingRate{{Symbol: "SOLUSDT", APR: fp(8.0)}})
	require.Len(t, chart.Bars(), 1)

	chart.Update(nil)
	assert.Len(t, chart.Bars(), 1)
}

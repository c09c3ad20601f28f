package api

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second, zap.NewNop())
}

func TestOverview_NullFieldsNormalizeToNaN(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/overview", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_equity": 1000.5, "total_pnl": null}`))
	})

	ov, err := client.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1000.5, Float(ov.TotalEquity))
	assert.True(t, math.IsNaN(Float(ov.TotalPnL)), "null must become NaN")
	assert.True(t, math.IsNaN(Float(ov.DailyAPR)), "missing must become NaN")
	assert.Equal(t, 0, Int(ov.OpenPositionsCount))
}

func TestOpenPositions_UnwrapsEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"positions": [{"symbol": "BTCUSDT", "side": "long_spot_short_perp"}]}`))
	})

	positions, err := client.OpenPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "BTCUSDT", positions[0].Symbol)
}

func TestGet_NonOKStatusIsError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "risk engine offline"}`, http.StatusServiceUnavailable)
	})

	_, err := client.RiskMetrics(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEquityHistory_PassesDaysParam(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/equity-history", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"equity_history": [{"timestamp": "2026-08-25T00:00:00", "total_equity": 100}]}`))
	})

	points, err := client.EquityHistory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 100.0, Float(points[0].TotalEquity))
}

func TestWaitReady_RecoversAfterFailures(t *testing.T) {
	var hits atomic.Int64
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			http.Error(w, "starting", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"running": true}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, client.WaitReady(ctx))
	assert.GreaterOrEqual(t, hits.Load(), int64(3))
}

func TestWaitReady_GivesUpWhenContextEnds(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "starting", http.StatusServiceUnavailable)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	assert.Error(t, client.WaitReady(ctx))
}

func TestHelpers(t *testing.T) {
	v := 3.14
	s := "x"
	n := 7

	assert.Equal(t, 3.14, Float(&v))
	assert.True(t, math.IsNaN(Float(nil)))
	assert.Equal(t, 7, Int(&n))
	assert.Equal(t, 0, Int(nil))
	assert.Equal(t, "x", Str(&s))
	assert.Equal(t, "", Str(nil))
}

// Package api is the read-only client for the funding bot's HTTP API.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client fetches dashboard snapshots from the bot API. All methods are
// safe for concurrent use; the eight refresh handlers share one client.
type Client struct {
	rest   *resty.Client
	logger *zap.Logger
}

// New creates a client for the given base URL, e.g. "http://127.0.0.1:8000".
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		r.SetTimeout(timeout)
	} else {
		r.SetTimeout(10 * time.Second)
	}
	return &Client{rest: r, logger: logger.Named("api")}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode())
	}
	return nil
}

// Overview fetches the account overview snapshot.
func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	var out Overview
	if err := c.get(ctx, "/api/overview", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenPositions fetches currently open positions, server-ordered.
func (c *Client) OpenPositions(ctx context.Context) ([]Position, error) {
	var out positionsResponse
	if err := c.get(ctx, "/api/positions/open", &out); err != nil {
		return nil, err
	}
	return out.Positions, nil
}

// RiskMetrics fetches the risk-engine snapshot.
func (c *Client) RiskMetrics(ctx context.Context) (*RiskMetrics, error) {
	var out RiskMetrics
	if err := c.get(ctx, "/api/risk-metrics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FundingRates fetches the funding-rate leaderboard, sorted by the
// server (highest absolute rate first).
func (c *Client) FundingRates(ctx context.Context) ([]FundingRate, error) {
	var out fundingRatesResponse
	if err := c.get(ctx, "/api/funding-rates", &out); err != nil {
		return nil, err
	}
	return out.FundingRates, nil
}

// Performance fetches per-symbol lifetime performance.
func (c *Client) Performance(ctx context.Context) ([]PerformanceRow, error) {
	var out performanceResponse
	if err := c.get(ctx, "/api/performance", &out); err != nil {
		return nil, err
	}
	return out.Performance, nil
}

// EquityHistory fetches the equity curve over the given lookback window.
func (c *Client) EquityHistory(ctx context.Context, days int) ([]EquityPoint, error) {
	var out equityHistoryResponse
	path := "/api/equity-history?days=" + strconv.Itoa(days)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.EquityHistory, nil
}

// Config fetches the strategy and risk thresholds.
func (c *Client) Config(ctx context.Context) (*BotConfig, error) {
	var out BotConfig
	if err := c.get(ctx, "/api/config", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaperStatus fetches the paper-trading flag.
func (c *Client) PaperStatus(ctx context.Context) (*PaperStatus, error) {
	var out PaperStatus
	if err := c.get(ctx, "/api/paper-status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status fetches the bot liveness flag.
func (c *Client) Status(ctx context.Context) (*BotStatus, error) {
	var out BotStatus
	if err := c.get(ctx, "/api/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WaitReady pings the API under exponential backoff until it answers
// or ctx ends. Used once at startup so the first paint is not a wall
// of fetch errors when the bot boots slower than the dashboard; the
// periodic refresh never retries, the next tick is the retry.
func (c *Client) WaitReady(ctx context.Context) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second

	notify := func(err error, wait time.Duration) {
		c.logger.Info("API not ready, retrying",
			zap.Duration("backoff", wait),
			zap.Error(err))
	}

	operation := func() (struct{}, error) {
		_, err := c.Status(ctx)
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithNotify(notify))
	if err != nil {
		return fmt.Errorf("waiting for bot API: %w", err)
	}
	return nil
}

// Package client is a typed consumer of the dashboard API: explicit fetch
// calls plus a Resource state machine (see resource.go) and the positional
// time-range filter used by the visitors chart (see timerange.go).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client calls the dashboard API under BaseURL (e.g. "http://localhost:5000/api").
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New builds a client with a sane default timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx response decoded from the server's {error} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Metrics is the /dashboard/metrics response.
type Metrics struct {
	TotalRevenue   string  `json:"totalRevenue"`
	NewCustomers   int64   `json:"newCustomers"`
	ActiveAccounts int64   `json:"activeAccounts"`
	GrowthRate     float64 `json:"growthRate"`
	TrendingUp     Trends  `json:"trendingUp"`
}

type Trends struct {
	Revenue   string `json:"revenue"`
	Customers string `json:"customers"`
	Accounts  string `json:"accounts"`
	Growth    string `json:"growth"`
}

// VisitorPoint is one daily chart bucket; Date is a pre-formatted label.
type VisitorPoint struct {
	Date         string `json:"date"`
	Visitors     int64  `json:"visitors"`
	Transactions int64  `json:"transactions"`
}

type VisitorSeries struct {
	Period string         `json:"period"`
	Data   []VisitorPoint `json:"data"`
}

// HoldingSummary is one valuation row of /dashboard/portfolio-summary.
// Decimal fields travel as strings.
type HoldingSummary struct {
	UserID       uint   `json:"userId"`
	AssetName    string `json:"assetName"`
	AssetSymbol  string `json:"assetSymbol"`
	Quantity     string `json:"quantity"`
	AvgPrice     string `json:"avgPrice"`
	CurrentPrice string `json:"currentPrice"`
	TotalValue   string `json:"totalValue"`
	GainLoss     string `json:"gainLoss"`
}

// UserActivity is one per-user rollup row of /dashboard/user-activity.
type UserActivity struct {
	UserID            uint    `json:"userId"`
	UserName          string  `json:"userName"`
	TotalTransactions int64   `json:"totalTransactions"`
	TotalSpent        string  `json:"totalSpent"`
	TotalDeposited    string  `json:"totalDeposited"`
	LastActive        *string `json:"lastActive"`
}

// Document is one generated row of /documents.
type Document struct {
	ID       int    `json:"id"`
	Header   string `json:"header"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Target   string `json:"target"`
	Limit    string `json:"limit"`
	Reviewer string `json:"reviewer"`
}

// Health is the liveness response of /health.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) Metrics(ctx context.Context) (*Metrics, error) {
	var out Metrics
	if err := c.get(ctx, "/dashboard/metrics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Visitors(ctx context.Context) (*VisitorSeries, error) {
	var out VisitorSeries
	if err := c.get(ctx, "/dashboard/visitors", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PortfolioSummary(ctx context.Context) ([]HoldingSummary, error) {
	var out []HoldingSummary
	if err := c.get(ctx, "/dashboard/portfolio-summary", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UserActivity(ctx context.Context) ([]UserActivity, error) {
	var out []UserActivity
	if err := c.get(ctx, "/dashboard/user-activity", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	var out []Document
	if err := c.get(ctx, "/documents", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.get(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var body struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			msg = body.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

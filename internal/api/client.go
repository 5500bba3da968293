package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/malonaz/spendchat/internal/types"
)

const (
	chatPath    = "/chat"
	summaryPath = "/dashboard/summary"
)

var (
	// ErrUnexpectedStatus is returned when the service answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedResponse is returned when a response body cannot be interpreted.
	ErrMalformedResponse = errors.New("malformed response")
)

// Client for the expense service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient instantiates and returns a new client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base url the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply    *string          `json:"reply"`
	Expenses *[]*types.Expense `json:"expenses"`
}

type summaryResponse struct {
	TodayTotal     *decimal.Decimal  `json:"today_total"`
	MonthTotal     *decimal.Decimal  `json:"month_total"`
	RecentExpenses *[]*types.Expense `json:"recent_expenses"`
}

// SendChatMessage sends the raw text to the chat endpoint.
func (c *Client) SendChatMessage(ctx context.Context, message string) (*types.ChatResponse, error) {
	body, err := json.Marshal(&chatRequest{Message: message})
	if err != nil {
		return nil, errors.Wrap(err, "marshaling chat request")
	}

	response := &chatResponse{}
	if err := c.do(ctx, http.MethodPost, chatPath, body, response); err != nil {
		return nil, err
	}
	if response.Reply == nil || response.Expenses == nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "%s %s: missing reply or expenses", http.MethodPost, chatPath)
	}
	return &types.ChatResponse{
		Reply:    *response.Reply,
		Expenses: *response.Expenses,
	}, nil
}

// FetchDashboardSummary fetches the dashboard summary.
func (c *Client) FetchDashboardSummary(ctx context.Context) (*types.DashboardSummary, error) {
	response := &summaryResponse{}
	if err := c.do(ctx, http.MethodGet, summaryPath, nil, response); err != nil {
		return nil, err
	}
	if response.TodayTotal == nil || response.MonthTotal == nil || response.RecentExpenses == nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "%s %s: missing totals or recent expenses", http.MethodGet, summaryPath)
	}
	return &types.DashboardSummary{
		TodayTotal:     *response.TodayTotal,
		MonthTotal:     *response.MonthTotal,
		RecentExpenses: *response.RecentExpenses,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "creating %s %s request", method, path)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		c.log.Warn("request failed", "method", method, "path", path, "error", err, "duration", time.Since(start))
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer response.Body.Close()
	c.log.Debug("request completed", "method", method, "path", path, "status", response.StatusCode, "duration", time.Since(start))

	if response.StatusCode < 200 || response.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, response.Body)
		return errors.Wrapf(ErrUnexpectedStatus, "%s %s returned %d", method, path, response.StatusCode)
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return errors.Wrapf(ErrMalformedResponse, "%s %s: decoding body: %v", method, path, err)
	}
	return nil
}

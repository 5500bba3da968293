package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", WithHTTPClient(server.Client()))
}

func TestSendChatMessage(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		request := map[string]string{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, map[string]string{"message": "70 at Walmart"}, request)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"reply": "Got it!",
			"expenses": [{"id": 1, "merchant": "Walmart", "amount": 70, "currency": "USD",
				"category": "groceries", "note": null, "expense_date": "2024-01-01",
				"created_at": "2024-01-01T12:00:00"}]
		}`))
	})

	response, err := client.SendChatMessage(context.Background(), "70 at Walmart")
	require.NoError(t, err)
	assert.Equal(t, "Got it!", response.Reply)
	require.Len(t, response.Expenses, 1)
	assert.Equal(t, "Walmart", response.Expenses[0].Merchant)
	assert.True(t, decimal.NewFromInt(70).Equal(response.Expenses[0].Amount))
	assert.Equal(t, "groceries", response.Expenses[0].CategoryOrDefault())
}

func TestSendChatMessageNoExpenses(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reply": "I didn't clearly see any expenses in that message.", "expenses": []}`))
	})

	response, err := client.SendChatMessage(context.Background(), "hello")
	require.NoError(t, err)
	assert.Empty(t, response.Expenses)
	assert.NotNil(t, response.Expenses)
}

func TestFetchDashboardSummary(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/dashboard/summary", r.URL.Path)
		w.Write([]byte(`{
			"today_total": 12.5,
			"month_total": 340.25,
			"recent_expenses": [
				{"id": 2, "merchant": "Apple", "amount": 20, "currency": "USD", "expense_date": "2024-01-02", "created_at": "x"},
				{"id": 1, "merchant": "Walmart", "amount": 70, "currency": "USD", "expense_date": "2024-01-01", "created_at": "y"}
			]
		}`))
	})

	summary, err := client.FetchDashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12.5", summary.TodayTotal.String())
	assert.Equal(t, "340.25", summary.MonthTotal.String())
	require.Len(t, summary.RecentExpenses, 2)
	// Server order is kept.
	assert.Equal(t, "Apple", summary.RecentExpenses[0].Merchant)
	assert.Equal(t, "Walmart", summary.RecentExpenses[1].Merchant)
}

func TestClientFailures(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail": "boom"}`, wantErr: ErrUnexpectedStatus},
		{name: "not found", status: http.StatusNotFound, body: ``, wantErr: ErrUnexpectedStatus},
		{name: "invalid json", status: http.StatusOK, body: `{"reply": `, wantErr: ErrMalformedResponse},
		{name: "missing fields", status: http.StatusOK, body: `{}`, wantErr: ErrMalformedResponse},
		{name: "wrong types", status: http.StatusOK, body: `{"reply": 3, "expenses": "no"}`, wantErr: ErrMalformedResponse},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := client.SendChatMessage(context.Background(), "hi")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)

			_, err = client.FetchDashboardSummary(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(server.URL)
	server.Close()

	_, err := client.SendChatMessage(context.Background(), "hi")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnexpectedStatus))

	_, err = client.FetchDashboardSummary(context.Background())
	require.Error(t, err)
}

func TestClientTrimsBaseURL(t *testing.T) {
	client := NewClient("http://localhost:8000///")
	assert.Equal(t, "http://localhost:8000", client.BaseURL())
}

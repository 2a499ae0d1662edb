package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyTransport fails the first n round trips with a transport error, then
// delegates to the default transport.
type flakyTransport struct {
	failures int
	calls    int
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("connection refused")
	}
	return http.DefaultTransport.RoundTrip(req)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New(server.URL, "secret-token")
	_, err := c.ListTransactions(context.Background(), TransactionFilter{})

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClient_ListTransactionsFilters(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"c6c5c3a2-9f3e-4cf5-8f0f-0a9fdc6a0a01","type":"expense","category":"Food","amount":"25.5","date":"2026-01-10T00:00:00Z","tags":[]}]`))
	}))
	defer server.Close()

	c := New(server.URL, "token")
	transactions, err := c.ListTransactions(context.Background(), TransactionFilter{
		StartDate: "2026-01-01",
		Category:  "Food",
	})

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Food", transactions[0].Category)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromFloat(25.5)))
	assert.Contains(t, gotQuery, "startDate=2026-01-01")
	assert.Contains(t, gotQuery, "category=Food")
}

func TestClient_ErrorResponsesBecomeAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Transaction not found"}`))
	}))
	defer server.Close()

	c := New(server.URL, "token")
	err := c.DeleteTransaction(context.Background(), "c6c5c3a2-9f3e-4cf5-8f0f-0a9fdc6a0a01")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Transaction not found", apiErr.Message)
}

func TestClient_GetBudgetsRetriesNetworkErrors(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"7b6a50f2-53cf-4dd1-9f5e-0a9fdc6a0a02","category":"Food","amount":"500","period":"monthly"}]`))
	}))
	defer server.Close()

	transport := &flakyTransport{failures: 2}
	c := New(server.URL, "token", WithHTTPClient(&http.Client{
		Transport: transport,
		Timeout:   10 * time.Second,
	}))

	start := time.Now()
	budgets, err := c.GetBudgets(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "Food", budgets[0].Category)
	assert.Equal(t, 3, transport.calls)
	assert.Equal(t, 1, requests)

	// Backoff grows with the attempt number: 1s after the first failure,
	// 2s after the second.
	assert.GreaterOrEqual(t, elapsed, 3*time.Second)
}

func TestClient_GetBudgetsGivesUpAfterMaxAttempts(t *testing.T) {
	transport := &flakyTransport{failures: 10}
	c := New("http://127.0.0.1:0", "token", WithHTTPClient(&http.Client{Transport: transport}))

	_, err := c.GetBudgets(context.Background())

	require.Error(t, err)
	assert.Equal(t, 3, transport.calls)
}

func TestClient_GetBudgetsDoesNotRetryServerErrors(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "Internal server error"}`))
	}))
	defer server.Close()

	c := New(server.URL, "token")
	_, err := c.GetBudgets(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, 1, requests)
}

func TestClient_GetBudgetsHonorsContextDuringBackoff(t *testing.T) {
	transport := &flakyTransport{failures: 10}
	c := New("http://127.0.0.1:0", "token", WithHTTPClient(&http.Client{Transport: transport}))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := c.GetBudgets(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, transport.calls)
}

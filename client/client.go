// Package client provides a typed Go client for the Fintrack API, plus the
// dashboard aggregation helpers used to render chart data from transaction
// lists.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the API transaction representation.
type Transaction struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type"`
	Category           string          `json:"category"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Date               time.Time       `json:"date"`
	Tags               []string        `json:"tags"`
	Recurring          bool            `json:"recurring"`
	RecurringFrequency string          `json:"recurringFrequency,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// BudgetNotifications mirrors the budget notification settings.
type BudgetNotifications struct {
	Enabled   bool `json:"enabled"`
	Threshold int  `json:"threshold"`
}

// Budget mirrors the API budget representation.
type Budget struct {
	ID            string              `json:"id"`
	Category      string              `json:"category"`
	Amount        decimal.Decimal     `json:"amount"`
	Period        string              `json:"period"`
	StartDate     time.Time           `json:"startDate"`
	Notifications BudgetNotifications `json:"notifications"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// BudgetOverview mirrors the budget stats overview.
type BudgetOverview struct {
	TotalBudget        decimal.Decimal `json:"totalBudget"`
	ActiveBudgets      int             `json:"activeBudgets"`
	CategoryCounts     map[string]int  `json:"categoryCounts"`
	PeriodDistribution map[string]int  `json:"periodDistribution"`
}

// Category mirrors the API category representation.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TypeStat mirrors one row of the stats aggregation.
type TypeStat struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// Notifications mirrors the profile notification preferences.
type Notifications struct {
	Email        bool `json:"email"`
	Push         bool `json:"push"`
	BudgetAlerts bool `json:"budgetAlerts"`
	WeeklyReport bool `json:"weeklyReport"`
}

// CategoryLists mirrors the per-type category name lists.
type CategoryLists struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// Preferences mirrors the profile preferences.
type Preferences struct {
	Currency      string        `json:"currency"`
	Theme         string        `json:"theme"`
	Notifications Notifications `json:"notifications"`
	Categories    CategoryLists `json:"categories"`
}

// Profile mirrors the API profile representation.
type Profile struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TransactionFilter narrows a transaction listing. Zero values are no-ops.
type TransactionFilter struct {
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
	Category  string
	Type      string
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

const (
	budgetFetchAttempts = 3
	budgetRetryBaseWait = time.Second
)

// Client is a Fintrack API client. The bearer token is attached to every
// request.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new API client for the given base URL and bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ListTransactions fetches transactions matching the filter, newest first.
func (c *Client) ListTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	query := url.Values{}
	if filter.StartDate != "" {
		query.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("endDate", filter.EndDate)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}

	path := "/api/transactions"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var transactions []Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, payload map[string]interface{}) (*Transaction, error) {
	var transaction Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", payload, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to a transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, payload map[string]interface{}) (*Transaction, error) {
	var transaction Transaction
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+id, payload, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+id, nil, nil)
}

// GetStats fetches per-type totals for the trailing window. Period is one of
// week, month, year; empty means week.
func (c *Client) GetStats(ctx context.Context, period string) ([]TypeStat, error) {
	path := "/api/transactions/stats"
	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}

	var stats []TypeStat
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SuggestCategory asks the server for a category suggestion for a description.
func (c *Client) SuggestCategory(ctx context.Context, description string) (string, error) {
	payload := map[string]interface{}{"description": description}
	var result struct {
		Category string `json:"category"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/transactions/suggest-category", payload, &result); err != nil {
		return "", err
	}
	return result.Category, nil
}

// GetBudgets fetches all budgets. Transient network failures are retried with
// a growing backoff; server errors are returned immediately.
func (c *Client) GetBudgets(ctx context.Context) ([]Budget, error) {
	var budgets []Budget
	var lastErr error

	for attempt := 0; attempt < budgetFetchAttempts; attempt++ {
		if attempt > 0 {
			wait := budgetRetryBaseWait * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		lastErr = c.do(ctx, http.MethodGet, "/api/budgets", nil, &budgets)
		if lastErr == nil {
			return budgets, nil
		}
		if !isNetworkError(lastErr) {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

// GetBudget fetches a single budget.
func (c *Client) GetBudget(ctx context.Context, id string) (*Budget, error) {
	var budget Budget
	if err := c.do(ctx, http.MethodGet, "/api/budgets/"+id, nil, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// CreateBudget creates a new budget.
func (c *Client) CreateBudget(ctx context.Context, payload map[string]interface{}) (*Budget, error) {
	var budget Budget
	if err := c.do(ctx, http.MethodPost, "/api/budgets", payload, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// UpdateBudget applies a partial update to a budget.
func (c *Client) UpdateBudget(ctx context.Context, id string, payload map[string]interface{}) (*Budget, error) {
	var budget Budget
	if err := c.do(ctx, http.MethodPut, "/api/budgets/"+id, payload, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// DeleteBudget removes a budget.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/budgets/"+id, nil, nil)
}

// GetBudgetOverview fetches the aggregated budget overview.
func (c *Client) GetBudgetOverview(ctx context.Context) (*BudgetOverview, error) {
	var overview BudgetOverview
	if err := c.do(ctx, http.MethodGet, "/api/budgets/stats/overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// ListCategories fetches all categories, sorted by name.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a new category.
func (c *Client) CreateCategory(ctx context.Context, payload map[string]interface{}) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", payload, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetProfile fetches the caller's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateProfile registers the caller's profile.
func (c *Client) CreateProfile(ctx context.Context, payload map[string]interface{}) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPost, "/api/auth/profile", payload, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (c *Client) UpdateProfile(ctx context.Context, payload map[string]interface{}) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", payload, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteProfile removes the caller's profile and all owned records.
func (c *Client) DeleteProfile(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/profile", nil, nil)
}

// RemoveProfileCategory removes a category name from the given preference
// list (income or expense) and returns the remaining lists.
func (c *Client) RemoveProfileCategory(ctx context.Context, listType, category string) (*CategoryLists, error) {
	path := "/api/auth/profile/categories/" + url.PathEscape(listType) + "/" + url.PathEscape(category)
	var lists CategoryLists
	if err := c.do(ctx, http.MethodDelete, path, nil, &lists); err != nil {
		return nil, err
	}
	return &lists, nil
}

// do performs one HTTP round trip and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiErr.Message,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// isNetworkError reports whether err looks like a transient transport
// failure worth retrying, as opposed to a server-produced error.
func isNetworkError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

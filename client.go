package todoist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultEndpoint is the production sync endpoint. Both protocol
// operations (delta fetch, command batch) POST to this single URL.
const DefaultEndpoint = "https://todoist.com/api/v7/sync"

// Retry and backoff constants. Only Sync requests are retried.
const (
	maxRetries     = 5
	baseBackoff    = 1 * time.Second
	maxBackoff     = 60 * time.Second
	backoffFactor  = 2.0
	jitterFraction = 0.25
	userAgent      = "todoist-go/0.1"
)

// Client performs the two sync-protocol operations. It is stateless beyond
// the auth token: the sync cursor lives in the Cache, not here.
//
// A Client may be shared, but only one Transaction can be open against it
// at a time; Begin blocks until the previous transaction commits or rolls
// back.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger

	// txMu serializes transactions. Held from Begin until Commit/Rollback.
	txMu sync.Mutex

	// sleepFunc is called to wait between retries. Defaults to timeSleep.
	// Tests override this to avoid real delays.
	sleepFunc func(ctx context.Context, d time.Duration) error
}

// NewClient creates a sync API client. An empty endpoint selects
// DefaultEndpoint; nil httpClient and logger select the defaults.
// Returns ErrMissingToken when token is empty — the caller should acquire
// one before constructing a client.
func NewClient(endpoint, token string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
		logger:     logger,
		sleepFunc:  timeSleep,
	}, nil
}

// New creates a client for the production endpoint with default HTTP
// client and logger.
func New(token string) (*Client, error) {
	return NewClient("", token, nil, nil)
}

// SyncResponse is the decoded delta response. Each resource field is nil
// when that kind was not requested, and an empty (non-nil) slice when it
// was requested but nothing changed — the two cases are distinct and the
// cache merge relies on the distinction.
type SyncResponse struct {
	SyncToken         string              `json:"sync_token"`
	FullSync          bool                `json:"full_sync"`
	Items             *[]Item             `json:"items,omitempty"`
	Labels            *[]Label            `json:"labels,omitempty"`
	Projects          *[]Project          `json:"projects,omitempty"`
	Collaborators     *[]Collaborator     `json:"collaborators,omitempty"`
	Notes             *[]Note             `json:"notes,omitempty"`
	Filters           *[]Filter           `json:"filters,omitempty"`
	Reminders         *[]Reminder         `json:"reminders,omitempty"`
	LiveNotifications *[]LiveNotification `json:"live_notifications,omitempty"`
	User              *User               `json:"user,omitempty"`
}

// Sync requests entities of the given kinds that changed since syncToken.
// The sentinel "*" requests a full snapshot. Sync is an idempotent read,
// so transient network and server failures are retried with exponential
// backoff.
func (c *Client) Sync(ctx context.Context, syncToken string, kinds []ResourceType) (*SyncResponse, error) {
	types, err := json.Marshal(kinds)
	if err != nil {
		return nil, fmt.Errorf("todoist: encoding resource types: %w", err)
	}

	form := url.Values{
		"token":          {c.token},
		"sync_token":     {syncToken},
		"resource_types": {string(types)},
	}

	c.logger.Info("fetching delta",
		slog.Bool("full_sync", syncToken == "*"),
		slog.Int("kinds", len(kinds)),
	)

	body, err := c.postRetry(ctx, form)
	if err != nil {
		return nil, err
	}

	var resp SyncResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("todoist: decoding sync response: %w", err)
	}

	c.logger.Debug("fetched delta",
		slog.Bool("full_sync", resp.FullSync),
		slog.Bool("token_advanced", resp.SyncToken != syncToken),
	)

	return &resp, nil
}

// Send submits an ordered batch of commands in one request and decodes the
// per-command statuses. Send never retries: commands are not idempotent,
// and a blind retry would re-execute them as new commands. Send does not
// inspect sync_status — reconciliation is the Transaction's job.
func (c *Client) Send(ctx context.Context, commands []Command) (*CommandResponse, error) {
	encoded, err := json.Marshal(commands)
	if err != nil {
		return nil, fmt.Errorf("todoist: encoding commands: %w", err)
	}

	form := url.Values{
		"token":    {c.token},
		"commands": {string(encoded)},
	}

	c.logger.Info("submitting command batch", slog.Int("commands", len(commands)))

	body, err := c.postOnce(ctx, form)
	if err != nil {
		return nil, err
	}

	var resp CommandResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("todoist: decoding command response: %w", err)
	}

	return &resp, nil
}

// postOnce executes a single form POST against the sync endpoint and
// returns the response body, classifying non-2xx statuses into *APIError.
func (c *Client) postOnce(ctx context.Context, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("todoist: creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("todoist: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if readErr != nil {
			return nil, fmt.Errorf("todoist: reading response: %w", readErr)
		}

		return body, nil
	}

	if readErr != nil {
		body = []byte("(failed to read response body)")
	}

	return nil, &APIError{
		StatusCode: resp.StatusCode,
		Message:    string(body),
		Err:        classifyStatus(resp.StatusCode),
	}
}

// postRetry wraps postOnce with retry on transient failures: network
// errors and retryable HTTP statuses, up to maxRetries attempts with
// exponential backoff and jitter.
func (c *Client) postRetry(ctx context.Context, form url.Values) ([]byte, error) {
	var attempt int
	for {
		body, err := c.postOnce(ctx, form)
		if err == nil {
			return body, nil
		}

		// Context cancellation is not retryable.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("todoist: request canceled: %w", ctx.Err())
		}

		if !retryableError(err) || attempt >= maxRetries {
			return nil, err
		}

		backoff := c.calcBackoff(attempt)
		c.logger.Warn("retrying sync request",
			slog.Int("attempt", attempt+1),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()),
		)

		if sleepErr := c.sleepFunc(ctx, backoff); sleepErr != nil {
			return nil, fmt.Errorf("todoist: request canceled: %w", sleepErr)
		}

		attempt++
	}
}

// retryableError reports whether err is transient: a network failure or a
// retryable HTTP status. Decode errors and 4xx classifications are final.
func retryableError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return isRetryable(apiErr.StatusCode)
	}

	// Non-APIError failures from postOnce are network errors.
	return true
}

// calcBackoff computes exponential backoff with ±25% jitter.
func (c *Client) calcBackoff(attempt int) time.Duration {
	backoff := float64(baseBackoff) * math.Pow(backoffFactor, float64(attempt))
	if backoff > float64(maxBackoff) {
		backoff = float64(maxBackoff)
	}

	jitter := backoff * jitterFraction * (rand.Float64()*2 - 1) //nolint:gosec // jitter does not need crypto rand
	backoff += jitter

	return time.Duration(backoff)
}

// timeSleep waits for the given duration or until the context is canceled.
// It is the default sleepFunc for Client.
func timeSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Package todoist is a client library for the Todoist sync API. It keeps a
// local mirror of a user's projects, items, labels, notes and collaborators,
// refreshes the mirror through the incremental sync endpoint, and submits
// mutations as command batches reconciled against per-command status.
package todoist

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors for API failure classification.
// Use errors.Is(err, todoist.ErrUnauthorized) to check.
var (
	ErrMissingToken    = errors.New("todoist: missing API token")
	ErrTransactionDone = errors.New("todoist: transaction already finished")
	ErrBadRequest      = errors.New("todoist: bad request")
	ErrUnauthorized    = errors.New("todoist: unauthorized")
	ErrForbidden       = errors.New("todoist: forbidden")
	ErrNotFound        = errors.New("todoist: not found")
	ErrThrottled       = errors.New("todoist: throttled")
	ErrServerError     = errors.New("todoist: server error")
)

// APIError wraps a sentinel error with the HTTP status code and the raw
// response body for debugging.
type APIError struct {
	StatusCode int
	Message    string
	Err        error // sentinel, for errors.Is()
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todoist: HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// classifyStatus maps an HTTP status code to a sentinel error.
// Returns nil for 2xx success codes.
func classifyStatus(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrThrottled
	default:
		if code >= http.StatusInternalServerError {
			return ErrServerError
		}

		return nil
	}
}

// isRetryable reports whether the given HTTP status code should be retried.
// Only Sync requests are ever retried; command batches are not idempotent.
func isRetryable(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// CommandError is the structured error the server returns for a single
// command that failed validation.
type CommandError struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"error"`
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("todoist: command failed (error %d): %s", e.ErrorCode, e.Message)
}

// CommandErrors reports the failed subset of a committed batch. The server
// applies commands independently, so partial failure is the normal failure
// mode: commands not listed here succeeded, and temp-ID mappings for them
// are still present in the response.
type CommandErrors struct {
	// Errors maps each failed command's UUID to its structured error.
	Errors map[uuid.UUID]CommandError

	// CommandCount is the total number of commands in the batch.
	CommandCount int
}

func (e *CommandErrors) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "todoist: %d/%d commands failed:", len(e.Errors), e.CommandCount)

	// Sorted for deterministic output.
	ids := make([]string, 0, len(e.Errors))
	for id := range e.Errors {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)

	for _, id := range ids {
		u := uuid.MustParse(id)
		ce := e.Errors[u]
		fmt.Fprintf(&b, "\n - %s: error %d: %s", id, ce.ErrorCode, ce.Message)
	}

	return b.String()
}

// checkResponse inspects per-command statuses and returns a *CommandErrors
// if any command failed, nil otherwise.
func checkResponse(resp *CommandResponse) error {
	errs := make(map[uuid.UUID]CommandError)

	for id, status := range resp.SyncStatus {
		if status.Err != nil {
			errs[id] = *status.Err
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return &CommandErrors{
		Errors:       errs,
		CommandCount: len(resp.SyncStatus),
	}
}

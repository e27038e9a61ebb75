package todoist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopSleep is a sleep function that returns immediately, for fast tests.
func noopSleep(_ context.Context, _ time.Duration) error {
	return nil
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := NewClient(endpoint, "test-token", nil, logger)
	require.NoError(t, err)

	c.sleepFunc = noopSleep

	return c
}

func TestNewClient_MissingToken(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = NewClient("http://example.com", "", nil, nil)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestSync_RequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-token", r.PostFormValue("token"))
		assert.Equal(t, "*", r.PostFormValue("sync_token"))
		assert.JSONEq(t, `["projects","items"]`, r.PostFormValue("resource_types"))

		fmt.Fprint(w, `{"sync_token":"tok-1","full_sync":true,"projects":[],"items":[]}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	resp, err := client.Sync(context.Background(), "*", []ResourceType{ResourceProjects, ResourceItems})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", resp.SyncToken)
	assert.True(t, resp.FullSync)
}

func TestSync_AbsentVersusEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Items requested with no changes (empty list), projects absent.
		fmt.Fprint(w, `{"sync_token":"tok-2","items":[]}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	resp, err := client.Sync(context.Background(), "tok-1", []ResourceType{ResourceItems})
	require.NoError(t, err)

	require.NotNil(t, resp.Items, "requested kind with no changes decodes as empty, not absent")
	assert.Empty(t, *resp.Items)
	assert.Nil(t, resp.Projects, "unrequested kind decodes as absent")
}

func TestSync_DecodesEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{
			"sync_token": "tok-3",
			"projects": [{"id":1,"name":"Inbox","color":0,"indent":1,"item_order":0,"is_favorite":0}],
			"items": [{"id":10,"project_id":1,"content":"buy milk","priority":1,"checked":0,"labels":[5]}],
			"labels": [{"id":5,"name":"errand","color":11}],
			"user": {"id":99,"email":"ada@example.com","full_name":"Ada"}
		}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	resp, err := client.Sync(context.Background(), "*", []ResourceType{ResourceAll})
	require.NoError(t, err)

	require.NotNil(t, resp.Projects)
	assert.Equal(t, "Inbox", (*resp.Projects)[0].Name)

	require.NotNil(t, resp.Items)
	assert.Equal(t, []ID{5}, (*resp.Items)[0].Labels)

	require.NotNil(t, resp.Labels)
	assert.Equal(t, ColorBlue, (*resp.Labels)[0].Color)

	require.NotNil(t, resp.User)
	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestSync_RetriesTransientFailure(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		fmt.Fprint(w, `{"sync_token":"tok-1"}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	resp, err := client.Sync(context.Background(), "*", []ResourceType{ResourceProjects})
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Equal(t, "tok-1", resp.SyncToken)
}

func TestSync_DoesNotRetryClientError(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Sync(context.Background(), "*", []ResourceType{ResourceProjects})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, calls)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSync_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"sync_token": not json`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Sync(context.Background(), "*", []ResourceType{ResourceProjects})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding sync response")
}

func TestSend_NeverRetries(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Send(context.Background(), []Command{NewProject("p").Create()})

	assert.ErrorIs(t, err, ErrServerError)
	assert.Equal(t, 1, calls, "command batches must not be retried")
}

func TestSend_RequestShape(t *testing.T) {
	p := NewProject("my cool project")
	cmd := p.Create()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-token", r.PostFormValue("token"))
		assert.Contains(t, r.PostFormValue("commands"), `"type":"project_add"`)
		assert.Contains(t, r.PostFormValue("commands"), cmd.UUID.String())

		fmt.Fprintf(w, `{"sync_status":{"%s":"ok"},"temp_id_mappings":{"%s":123}}`,
			cmd.UUID, *cmd.TempID)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	resp, err := client.Send(context.Background(), []Command{cmd})
	require.NoError(t, err)

	assert.True(t, resp.SyncStatus[cmd.UUID].OK())
	assert.Equal(t, ID(123), resp.TempIDMappings[*cmd.TempID])
}

func TestSync_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, srv.URL)
	_, err := client.Sync(ctx, "*", []ResourceType{ResourceProjects})

	assert.ErrorIs(t, err, context.Canceled)
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// SessionBackend talks to the remote chat session service over HTTP.
// Transient failures are retried at the transport level; callers treat any
// surviving error as a degraded state, never fatal.
type SessionBackend struct {
	base string
	http *retryablehttp.Client
}

// NewSessionBackend creates a backend client for the given base URL.
func NewSessionBackend(base string) *SessionBackend {
	c := retryablehttp.NewClient()
	c.RetryMax = 2
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = 10 * time.Second
	c.Logger = nil
	return &SessionBackend{base: base, http: c}
}

// ListSessions returns every session the backend knows about.
func (b *SessionBackend) ListSessions(ctx context.Context) ([]types.RemoteSession, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, b.base+"/sessions", nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list sessions: unexpected status %d", resp.StatusCode)
	}
	var body struct {
		Sessions []types.RemoteSession `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return body.Sessions, nil
}

// CreateSession asks the backend to persist a new session and returns its id.
func (b *SessionBackend) CreateSession(ctx context.Context) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, b.base+"/sessions", nil)
	if err != nil {
		return "", err
	}
	resp, err := b.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create session: unexpected status %d", resp.StatusCode)
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	if body.ID == "" {
		return "", fmt.Errorf("create session: backend returned empty id")
	}
	return body.ID, nil
}

// DeleteSession requests remote teardown of a session. Callers invoke this
// fire-and-forget after local removal; the error is for their log sink only.
func (b *SessionBackend) DeleteSession(ctx context.Context, id string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodDelete, b.base+"/sessions/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete session: unexpected status %d", resp.StatusCode)
	}
	return nil
}

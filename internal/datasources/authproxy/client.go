package authproxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hiostage/news-feed-service/internal/datasources"
)

var _ datasources.SessionResolver = (*Client)(nil)

const (
	requestAttempts    = 3
	requestBackoffBase = 200 * time.Millisecond
)

// Client resolves session identifiers against the external auth
// service. This service trusts the resolved user ID and never inspects
// session contents itself.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) ResolveSession(ctx context.Context, sessionID string) (datasources.AuthUserResult, error) {
	var lastErr error

	backoff := requestBackoffBase
	for attempt := 0; attempt < requestAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return datasources.AuthUserResult{}, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		user, retryable, err := c.resolveOnce(ctx, sessionID)
		if err == nil {
			return user, nil
		}
		if !retryable {
			return datasources.AuthUserResult{}, err
		}
		lastErr = err
	}

	return datasources.AuthUserResult{}, fmt.Errorf(
		"resolving session after %d attempts: %w", requestAttempts, lastErr)
}

func (c *Client) resolveOnce(
	ctx context.Context, sessionID string,
) (datasources.AuthUserResult, bool, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/v1/sessions/current",
		nil,
	)
	if err != nil {
		return datasources.AuthUserResult{}, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return datasources.AuthUserResult{}, true, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return datasources.AuthUserResult{}, false, fmt.Errorf("session rejected (status %d)", resp.StatusCode)
	case resp.StatusCode >= 500:
		body, _ := io.ReadAll(resp.Body)
		return datasources.AuthUserResult{}, true, fmt.Errorf(
			"auth service error (status %d): %s", resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return datasources.AuthUserResult{}, false, fmt.Errorf(
			"auth service error (status %d): %s", resp.StatusCode, string(body))
	}

	var user datasources.AuthUserResult
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return datasources.AuthUserResult{}, false, fmt.Errorf("decoding response: %w", err)
	}

	return user, false, nil
}

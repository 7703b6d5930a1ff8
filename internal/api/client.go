// Package api is the HTTP client for the MoneyMong backend. It wraps the base
// verbs with JSON codecs, injects the bearer token from the durable store, and
// performs the one-shot refresh-and-retry dance on 401 responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"moneymong/internal/auth"
	"moneymong/internal/domain"
	"moneymong/internal/domain/models"
)

const (
	defaultTimeout = 30 * time.Second

	refreshPath = "/api/v1/auth/refresh"
)

// Client talks to the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenStore
	logger     *slog.Logger

	// onSessionExpired runs after a failed refresh, once tokens are cleared.
	// The UI uses it to reset to the login view; it is never invoked twice for
	// the same request.
	onSessionExpired func()
}

// New creates a client against baseURL using the given token store.
func New(baseURL string, tokens auth.TokenStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// OnSessionExpired registers the irrecoverable-auth-failure hook.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// HasSession reports whether an access token is persisted. No token means
// unauthenticated.
func (c *Client) HasSession() bool {
	return c.tokens.AccessToken() != ""
}

// LoginURL is the backend's OAuth login redirect endpoint; the terminal client
// shows it for the user to open in a browser.
func (c *Client) LoginURL() string {
	return c.baseURL + "/api/v1/auth/google/login"
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out, false)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out, false)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out, false)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, false)
}

// do executes one request. retried guards the 401 path: each request performs
// at most one refresh attempt, so refresh loops are impossible even when the
// refresh endpoint itself starts returning 401.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, retried bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransientError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		io.Copy(io.Discard, resp.Body)
		if err := c.refreshTokens(ctx); err != nil {
			return err
		}
		c.logger.Debug("retrying request after token refresh", "method", method, "path", path)
		return c.do(ctx, method, path, body, out, true)
	}

	return c.decodeResponse(resp, out)
}

// refreshTokens performs the single refresh attempt. On any failure it clears
// the persisted tokens and fires the session-expired hook.
func (c *Client) refreshTokens(ctx context.Context) error {
	refresh := c.tokens.RefreshToken()
	if refresh == "" {
		return c.expireSession("no refresh token")
	}

	authResp, err := c.refreshAccessToken(ctx, refresh)
	if err != nil {
		return c.expireSession(err.Error())
	}

	if err := c.tokens.SetTokens(authResp.AccessToken, authResp.RefreshToken); err != nil {
		c.logger.Error("failed to persist refreshed tokens", "error", err)
	}
	c.logger.Info("access token refreshed")
	return nil
}

func (c *Client) expireSession(reason string) error {
	c.logger.Warn("session expired", "reason", reason)
	if err := c.tokens.Clear(); err != nil {
		c.logger.Error("failed to clear tokens", "error", err)
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
	return &domain.UnauthorizedError{Message: "session expired, please log in again", Expired: true}
}

// refreshAccessToken calls the refresh endpoint directly, outside the bearer /
// retry path, to avoid an interceptor loop.
func (c *Client) refreshAccessToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	payload, err := json.Marshal(models.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("refresh failed with status %d: %s", resp.StatusCode, string(body))
	}

	var authResp models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return nil, fmt.Errorf("decode refresh response: %w", err)
	}
	return &authResp, nil
}

// errorBody covers the error shapes the backend has been seen to return.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (c *Client) decodeResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	detail := readErrorDetail(resp.Body)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &domain.NotFoundError{Message: detail}
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return &domain.ValidationError{Message: detail}
	case resp.StatusCode == http.StatusUnauthorized:
		return &domain.UnauthorizedError{Message: detail}
	default:
		return &domain.TransientError{Message: detail, Status: resp.StatusCode}
	}
}

func readErrorDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(data))
}

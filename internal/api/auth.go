package api

import (
	"context"

	"moneymong/internal/domain/models"
)

// Me returns the authenticated user, or an UnauthorizedError when the session
// cannot be resolved.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Get(ctx, "/api/v1/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExchangeOAuthCode trades the provider's authorization code for a token pair
// and persists it.
func (c *Client) ExchangeOAuthCode(ctx context.Context, req models.OAuthCallbackRequest) (*models.AuthResponse, error) {
	var authResp models.AuthResponse
	if err := c.Post(ctx, "/api/v1/auth/google/callback", req, &authResp); err != nil {
		return nil, err
	}
	if err := c.tokens.SetTokens(authResp.AccessToken, authResp.RefreshToken); err != nil {
		c.logger.Error("failed to persist tokens after login", "error", err)
	}
	return &authResp, nil
}

// Logout tells the backend to invalidate the session, then clears local
// tokens regardless of the call's outcome.
func (c *Client) Logout(ctx context.Context) error {
	err := c.Post(ctx, "/api/v1/auth/logout", struct{}{}, nil)
	if clearErr := c.tokens.Clear(); clearErr != nil {
		c.logger.Error("failed to clear tokens on logout", "error", clearErr)
	}
	return err
}

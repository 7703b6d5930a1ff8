package models

import "time"

// User is the authenticated account from GET /auth/me. Absence of a resolvable
// user means the client is logged out.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	OAuthProvider   string    `json:"oauth_provider"` // google | naver | kakao
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	LastLoginAt     time.Time `json:"last_login_at,omitempty"`
}

// AuthResponse is returned by the OAuth callback exchange and by token refresh.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	User         *User  `json:"user,omitempty"`
}

// OAuthCallbackRequest exchanges the provider's authorization code for tokens.
type OAuthCallbackRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri,omitempty"`
}

// RefreshTokenRequest asks the backend for a fresh access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

package auth

// TokenStore defines durable persistence for the session's token pair. The
// abstraction keeps the API client agnostic to where tokens live; the default
// implementation is a JSON file under the user config dir so the session
// survives restarts.
type TokenStore interface {
	// AccessToken returns the persisted access token, or "" when logged out.
	AccessToken() string

	// RefreshToken returns the persisted refresh token, or "".
	RefreshToken() string

	// SetTokens persists a new token pair. An empty refresh token keeps the
	// previously stored one.
	SetTokens(access, refresh string) error

	// Clear removes all persisted tokens. Called on logout and on
	// irrecoverable auth failure.
	Clear() error
}

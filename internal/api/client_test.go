package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"moneymong/internal/auth"
	"moneymong/internal/domain"
)

func newTestClient(t *testing.T, serverURL string) (*Client, *auth.FileStore) {
	t.Helper()
	store, err := auth.NewFileStore(filepath.Join(t.TempDir(), "tokens.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(serverURL, store, logger), store
}

func TestBearerHeaderInjected(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.SetTokens("tok-123", "ref-123"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	var out map[string]bool
	if err := client.Get(context.Background(), "/api/v1/auth/me", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestRefreshRetryOn401(t *testing.T) {
	var refreshCalls, dataCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		w.Write([]byte(`{"access_token":"new-access","refresh_token":"new-refresh","token_type":"bearer"}`))
	})
	mux.HandleFunc("/api/v1/documents", func(w http.ResponseWriter, r *http.Request) {
		dataCalls++
		if r.Header.Get("Authorization") != "Bearer new-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"total":0,"items":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.SetTokens("stale-access", "good-refresh"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	var out map[string]interface{}
	if err := client.Get(context.Background(), "/api/v1/documents", &out); err != nil {
		t.Fatalf("Get after refresh: %v", err)
	}

	if refreshCalls != 1 {
		t.Errorf("refresh calls = %d, want exactly 1", refreshCalls)
	}
	if dataCalls != 2 {
		t.Errorf("data calls = %d, want original + one retry", dataCalls)
	}
	if store.AccessToken() != "new-access" || store.RefreshToken() != "new-refresh" {
		t.Error("refreshed token pair was not persisted")
	}
}

func TestRefreshFailureResetsSession(t *testing.T) {
	var dataCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/api/v1/documents", func(w http.ResponseWriter, r *http.Request) {
		dataCalls++
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.SetTokens("stale", "also-stale"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	var expired bool
	client.OnSessionExpired(func() { expired = true })

	err := client.Get(context.Background(), "/api/v1/documents", nil)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("a failed refresh must match the session-expired sentinel, got %v", err)
	}

	if dataCalls != 1 {
		t.Errorf("data calls = %d, want 1 (no retry after failed refresh)", dataCalls)
	}
	if !expired {
		t.Error("session-expired hook was not invoked")
	}
	if store.AccessToken() != "" || store.RefreshToken() != "" {
		t.Error("tokens should be cleared after failed refresh")
	}
}

func TestNoRefreshTokenExpiresImmediately(t *testing.T) {
	var refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
	})
	mux.HandleFunc("/api/v1/documents", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.SetTokens("stale", ""); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	err := client.Get(context.Background(), "/api/v1/documents", nil)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
	if refreshCalls != 0 {
		t.Errorf("refresh calls = %d, want 0 without a refresh token", refreshCalls)
	}
}

func TestMeResolvesUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id":"user-1","email":"mong@example.com","username":"mong","oauth_provider":"google","is_active":true}`))
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.SetTokens("tok", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	user, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.ID != "user-1" || user.Email != "mong@example.com" || user.Username != "mong" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestLogoutClearsTokens(t *testing.T) {
	var logoutCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/logout" && r.Method == http.MethodPost {
			logoutCalls++
			w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.SetTokens("tok", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	if err := client.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if logoutCalls != 1 {
		t.Errorf("logout calls = %d, want 1", logoutCalls)
	}
	if store.AccessToken() != "" || store.RefreshToken() != "" {
		t.Error("tokens should be cleared after logout")
	}
}

func TestLogoutClearsTokensOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.SetTokens("tok", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	if err := client.Logout(context.Background()); err == nil {
		t.Fatal("expected the server error to propagate")
	}
	if store.AccessToken() != "" || store.RefreshToken() != "" {
		t.Error("local tokens must be cleared even when the backend call fails")
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{"not found", http.StatusNotFound, `{"detail":"document not found"}`, domain.ErrNotFound},
		{"validation", http.StatusBadRequest, `{"detail":"bad query"}`, domain.ErrValidation},
		{"server error", http.StatusInternalServerError, `boom`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, _ := newTestClient(t, srv.URL)
			err := client.Get(context.Background(), "/api/v1/anything", nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("err = %v, want sentinel %v", err, tt.sentinel)
			}
			if tt.sentinel == nil {
				var transient *domain.TransientError
				if !errors.As(err, &transient) {
					t.Errorf("err = %T, want TransientError", err)
				}
			}
		})
	}
}

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := corsMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/properties", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rr.Code)
	}
	if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected wildcard origin, got %q", origin)
	}
}

func TestCORSMiddleware_PassThrough(t *testing.T) {
	handler := corsMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS headers on normal responses too")
	}
}

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	handler := correlationIDMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if id := rr.Header().Get("X-Correlation-ID"); len(id) != 8 {
		t.Errorf("expected generated 8-char correlation ID, got %q", id)
	}
}

func TestCorrelationIDMiddleware_PropagatesRequestID(t *testing.T) {
	handler := correlationIDMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if id := rr.Header().Get("X-Correlation-ID"); id != "req-42" {
		t.Errorf("expected propagated ID req-42, got %q", id)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := recoveryMiddleware(common.NewSilentLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", rr.Code)
	}
}

func TestRateLimitMiddleware_Limits(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Server.RateLimit = 1
	cfg.Server.RateBurst = 2

	handler := rateLimitMiddleware(cfg)(okHandler())

	var got429 bool
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			got429 = true
		}
	}
	if !got429 {
		t.Error("expected at least one 429 past the burst")
	}

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected fresh client to pass, got %d", rr.Code)
	}
}

func TestRateLimitMiddleware_DisabledWhenZero(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Server.RateLimit = 0

	handler := rateLimitMiddleware(cfg)(okHandler())

	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200 with limiting disabled, got %d", rr.Code)
		}
	}
}

type staticUserStore struct {
	user *models.User
}

func (s *staticUserStore) GetUser(_ context.Context, userID string) (*models.User, error) {
	if s.user != nil && s.user.UserID == userID {
		return s.user, nil
	}
	return nil, errNotFound
}

func (s *staticUserStore) GetUserByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, errNotFound
}
func (s *staticUserStore) SaveUser(_ context.Context, _ *models.User) error   { return nil }
func (s *staticUserStore) DeleteUser(_ context.Context, _ string) error       { return nil }
func (s *staticUserStore) ListUsers(_ context.Context) ([]string, error)      { return nil, nil }

var errNotFound = &notFoundError{}

type notFoundError struct{}

func (e *notFoundError) Error() string { return "user not found" }

func TestBearerTokenMiddleware(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenExpiry = "1h"

	alice := &models.User{UserID: "alice", Email: "alice@example.com", Role: models.RoleUser, CreatedAt: time.Now()}
	users := &staticUserStore{user: alice}

	var seen *common.UserContext
	handler := bearerTokenMiddleware(cfg, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = common.UserContextFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// No header: passes through without a user context.
	seen = nil
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/properties", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected pass-through without header, got %d", rr.Code)
	}
	if seen != nil {
		t.Error("expected no user context without a token")
	}

	// Valid token: context is populated from the claims.
	token, err := signJWT(alice, &cfg.Auth)
	if err != nil {
		t.Fatalf("signJWT: %v", err)
	}
	seen = nil
	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rr.Code)
	}
	if seen == nil || seen.UserID != "alice" {
		t.Errorf("expected user context for alice, got %+v", seen)
	}

	// Garbage token: 401 with a challenge header.
	req = httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", rr.Code)
	}
	if rr.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Error("expected WWW-Authenticate challenge header")
	}

	// Token for a user that no longer exists: 401.
	ghost := &models.User{UserID: "ghost"}
	token, err = signJWT(ghost, &cfg.Auth)
	if err != nil {
		t.Fatalf("signJWT: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for deleted user, got %d", rr.Code)
	}
}

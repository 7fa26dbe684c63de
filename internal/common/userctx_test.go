package common

import (
	"context"
	"testing"
)

func TestUserContext_RoundTrip(t *testing.T) {
	ctx := context.Background()

	// Absent by default
	if uc := UserContextFromContext(ctx); uc != nil {
		t.Error("Expected nil UserContext from empty context")
	}

	uc := &UserContext{
		UserID: "user-123",
		Email:  "user@example.com",
		Role:   "user",
	}
	ctx = WithUserContext(ctx, uc)

	got := UserContextFromContext(ctx)
	if got == nil {
		t.Fatal("Expected non-nil UserContext")
	}
	if got.UserID != "user-123" {
		t.Errorf("Expected user-123, got %s", got.UserID)
	}
	if got.Email != "user@example.com" {
		t.Errorf("Expected user@example.com, got %s", got.Email)
	}
}

func TestResolveUserID(t *testing.T) {
	if id := ResolveUserID(context.Background()); id != "default" {
		t.Errorf("Expected default for empty context, got %s", id)
	}

	ctx := WithUserContext(context.Background(), &UserContext{UserID: "alice"})
	if id := ResolveUserID(ctx); id != "alice" {
		t.Errorf("Expected alice, got %s", id)
	}

	// Empty UserID still falls back.
	ctx = WithUserContext(context.Background(), &UserContext{})
	if id := ResolveUserID(ctx); id != "default" {
		t.Errorf("Expected default for empty UserID, got %s", id)
	}
}

func TestIsAdmin(t *testing.T) {
	if IsAdmin(context.Background()) {
		t.Error("Expected false for empty context")
	}

	ctx := WithUserContext(context.Background(), &UserContext{UserID: "root", Role: "admin"})
	if !IsAdmin(ctx) {
		t.Error("Expected true for admin role")
	}

	ctx = WithUserContext(context.Background(), &UserContext{UserID: "alice", Role: "user"})
	if IsAdmin(ctx) {
		t.Error("Expected false for user role")
	}
}

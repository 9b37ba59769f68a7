package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTManager_GenerateAndParse(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	id := uuid.New()
	token, err := manager.GenerateToken(id.String(), "user@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Email != "user@example.com" || claims.Role != "user" || claims.Issuer != issuer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	parsedID, err := claims.UserID()
	if err != nil || parsedID != id {
		t.Fatalf("expected subject to round trip, got %v (%v)", parsedID, err)
	}

	if _, err := manager.ParseToken(token + "tampered"); err == nil {
		t.Fatalf("expected parse error for tampered token")
	}

	other := NewJWTManager("other-secret", time.Hour)
	if _, err := other.ParseToken(token); err == nil {
		t.Fatalf("expected parse error for foreign secret")
	}
}

func TestJWTManager_Expired(t *testing.T) {
	manager := NewJWTManager("secret", time.Minute)
	manager.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := manager.GenerateToken(uuid.NewString(), "user@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := manager.ParseToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestJWTManager_Validation(t *testing.T) {
	manager := NewJWTManager("", time.Hour)
	if _, err := manager.GenerateToken("user", "user@example.com", "user"); err == nil {
		t.Fatalf("expected error when secret is empty")
	}

	manager = NewJWTManager("secret", 0)
	if manager.ttl != 24*time.Hour {
		t.Fatalf("expected default ttl, got %s", manager.ttl)
	}
	if _, err := manager.GenerateToken("", "user@example.com", "user"); err == nil {
		t.Fatalf("expected error when subject is empty")
	}
}

func TestJWTManager_IssueExpiry(t *testing.T) {
	manager := NewJWTManager("secret", 2*time.Hour)
	fixed := time.Date(2026, time.May, 1, 9, 30, 0, 0, time.UTC)
	manager.now = func() time.Time { return fixed }

	issued, err := manager.Issue(uuid.NewString(), "user@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !issued.ExpiresAt.Equal(fixed.Add(2 * time.Hour)) {
		t.Fatalf("expected expiry %s, got %s", fixed.Add(2*time.Hour), issued.ExpiresAt)
	}
	if issued.Token == "" {
		t.Fatalf("expected signed token")
	}
}

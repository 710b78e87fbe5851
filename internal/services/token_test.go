package services

import (
	"errors"
	"testing"
	"time"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := tm.Issue("abc123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.UserID != "abc123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "abc123")
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "a@x.com")
	}
}

func TestTokenManager_Expiry(t *testing.T) {
	// A one hour token is valid just before expiry and invalid just after.
	// Issuing with ttl of 59 and -1 minutes stands in for checking the
	// same token at T+59min and T+61min.
	valid := NewTokenManager([]byte("test-secret"), 59*time.Minute)
	token, err := valid.Issue("abc123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := valid.Parse(token); err != nil {
		t.Errorf("Parse() before expiry error = %v", err)
	}

	expired := NewTokenManager([]byte("test-secret"), -time.Minute)
	token, err = expired.Issue("abc123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := expired.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse() after expiry error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_RejectsBadTokens(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)
	other := NewTokenManager([]byte("other-secret"), time.Hour)

	foreign, err := other.Issue("abc123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"wrong signature", foreign},
		{"malformed", "not-a-token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tm.Parse(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}

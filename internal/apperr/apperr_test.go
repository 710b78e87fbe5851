package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantStatus int
	}{
		{"validation", Validation("Validation failed.", nil), http.StatusUnprocessableEntity},
		{"unauthorized", Unauthorized("Not authenticated."), http.StatusUnauthorized},
		{"forbidden", Forbidden("Not authorized!"), http.StatusForbidden},
		{"not found", NotFound("Could not find post."), http.StatusNotFound},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
		{"explicit status", New(http.StatusUnauthorized, "Not authorized!"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.wantStatus)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.err.Message)
			}
		})
	}
}

func TestValidation_FieldData(t *testing.T) {
	fields := []FieldError{{Field: "email", Message: "Invalid email address."}}
	err := Validation("Validation failed.", fields)

	data, ok := err.Data.([]FieldError)
	if !ok {
		t.Fatalf("Data type = %T, want []FieldError", err.Data)
	}
	if len(data) != 1 || data[0].Field != "email" {
		t.Errorf("Data = %v, want the email field error", data)
	}

	// Empty field list must not produce a data payload.
	if err := Validation("Validation failed.", nil); err.Data != nil {
		t.Errorf("Data = %v, want nil", err.Data)
	}
}

func TestFrom(t *testing.T) {
	classified := NotFound("Could not find user.")
	if got := From(classified); got != classified {
		t.Errorf("From(classified) = %v, want identical error", got)
	}

	wrapped := fmt.Errorf("handler: %w", classified)
	if got := From(wrapped); got.Status != http.StatusNotFound {
		t.Errorf("From(wrapped).Status = %d, want 404", got.Status)
	}

	plain := errors.New("connection refused")
	got := From(plain)
	if got.Status != http.StatusInternalServerError {
		t.Errorf("From(plain).Status = %d, want 500", got.Status)
	}
	if got.Message != "Internal server error." {
		t.Errorf("From(plain).Message = %q, leaks cause", got.Message)
	}
	if !errors.Is(got, plain) {
		t.Error("From(plain) should keep the cause for logging")
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"microblog/internal/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantData    bool
	}{
		{
			name:        "not found",
			err:         apperr.NotFound("Could not find post: 42."),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Could not find post: 42.",
		},
		{
			name: "validation with field data",
			err: apperr.Validation("Validation failed.", []apperr.FieldError{
				{Field: "title", Message: "Title must be at least 5 characters."},
			}),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation failed.",
			wantData:    true,
		},
		{
			name:        "forbidden",
			err:         apperr.Forbidden("Not authorized!"),
			wantStatus:  http.StatusForbidden,
			wantMessage: "Not authorized!",
		},
		{
			name:        "unclassified error becomes 500 without leaking the cause",
			err:         errors.New("dial tcp 127.0.0.1:27017: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/test", nil)

			respondError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message = %q, want %q", body["message"], tt.wantMessage)
			}
			if _, hasData := body["data"]; hasData != tt.wantData {
				t.Errorf("data present = %v, want %v", hasData, tt.wantData)
			}
		})
	}
}

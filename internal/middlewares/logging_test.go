package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		incomingID    string
		status        int
		body          string
		expectGenerID bool
	}{
		{
			name:          "generates id",
			status:        http.StatusOK,
			body:          `{"status":"ok"}`,
			expectGenerID: true,
		},
		{
			name:       "keeps caller id",
			incomingID: "front-end-42",
			status:     http.StatusConflict,
			body:       `{"code":"SELECTION_REQUIRED"}`,
		},
		{
			name:          "replaces oversized id",
			incomingID:    strings.Repeat("x", 100),
			status:        http.StatusBadGateway,
			body:          `{"code":"APPROVAL_FAILED"}`,
			expectGenerID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenID string
			router := chi.NewRouter()
			router.Use(LoggingMiddleware)
			router.Post("/api/v1/conversions", func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/conversions", nil)
			if tt.incomingID != "" {
				req.Header.Set(RequestIDHeader, tt.incomingID)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())

			reqID := rr.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, seenID)
			if tt.expectGenerID {
				assert.NotEqual(t, tt.incomingID, reqID)
				assert.Len(t, reqID, 36)
			} else {
				assert.Equal(t, tt.incomingID, reqID)
			}
		})
	}
}

func TestRoutePattern_OutsideRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	assert.Equal(t, "unmatched", routePattern(req))
}

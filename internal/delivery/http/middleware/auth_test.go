package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fedoffice/internal/delivery/http/helpers"
	"fedoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	operator string
	err      error
}

func (f *fakeTokenVerifier) Verify(_ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.operator, nil
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name         string
		authHeader   string
		verifier     domain.TokenVerifier
		wantStatus   int
		wantBodyCode string
		nextCalled   bool
		wantOperator string
	}{
		{
			name:         "valid token sets context and calls next",
			authHeader:   "Bearer valid-token",
			verifier:     &fakeTokenVerifier{operator: "ops@federation.org"},
			wantStatus:   http.StatusOK,
			nextCalled:   true,
			wantOperator: "ops@federation.org",
		},
		{
			name:         "missing authorization header",
			authHeader:   "",
			verifier:     &fakeTokenVerifier{operator: "ops@federation.org"},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
			nextCalled:   false,
		},
		{
			name:         "malformed authorization header",
			authHeader:   "Token abc",
			verifier:     &fakeTokenVerifier{operator: "ops@federation.org"},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
			nextCalled:   false,
		},
		{
			name:         "empty token",
			authHeader:   "Bearer ",
			verifier:     &fakeTokenVerifier{operator: "ops@federation.org"},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
			nextCalled:   false,
		},
		{
			name:         "invalid token",
			authHeader:   "Bearer expired",
			verifier:     &fakeTokenVerifier{err: errors.New("token is expired")},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
			nextCalled:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotOperator string
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotOperator, _ = OperatorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			handler := RequireAuth(tt.verifier, logger)(next)
			req := httptest.NewRequest(http.MethodGet, "/registrations/EVE-100", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.wantOperator != "" {
				assert.Equal(t, tt.wantOperator, gotOperator)
			}
			if tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}

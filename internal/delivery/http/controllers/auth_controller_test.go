package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fedoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		token        string
		err          error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success",
			body:       `{"email":"ops@federation.org","password":"secret"}`,
			token:      "jwt-token",
			wantStatus: http.StatusOK,
		},
		{
			name:         "wrong credentials",
			body:         `{"email":"ops@federation.org","password":"wrong"}`,
			err:          domain.ErrUnauthorized,
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: "unauthorized",
		},
		{
			name:         "missing fields",
			body:         `{"email":""}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: "bad_request",
		},
		{
			name:         "issuer failure",
			body:         `{"email":"ops@federation.org","password":"secret"}`,
			err:          errors.New("sign: broken key"),
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testControllerLogger(), &fakeAuthService{token: tt.token, err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			ctrl.Login(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBodyCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBodyCode)
				return
			}
			assert.Contains(t, rec.Body.String(), "jwt-token")
			assert.Contains(t, rec.Body.String(), "Bearer")
		})
	}
}

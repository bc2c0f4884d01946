package middlewarectx_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/inventtrack/internal/http/middlewarectx"
	"github.com/invtrack/inventtrack/internal/lib/jwt"
	"github.com/invtrack/inventtrack/internal/models"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func testUser(superuser bool) *models.User {
	return &models.User{
		ID:          9,
		Email:       "user@example.com",
		IsActive:    true,
		IsSuperuser: superuser,
	}
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Minute)
	logger := newNoopLogger()

	validToken, err := maker.GenerateToken(testUser(false))
	require.NoError(t, err)

	foreignToken, err := jwt.NewMaker("other-secret", time.Minute).GenerateToken(testUser(false))
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "token signed with another key",
			authHeader:     "Bearer " + foreignToken,
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				claims, ok := middlewarectx.ClaimsFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, int64(9), claims.UserID)
				assert.Equal(t, "user@example.com", claims.Email)
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.JWTMiddleware(maker, logger)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}

func TestRequirePermissions(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Minute)
	logger := newNoopLogger()

	ordinaryToken, err := maker.GenerateToken(testUser(false))
	require.NoError(t, err)
	elevatedToken, err := maker.GenerateToken(testUser(true))
	require.NoError(t, err)

	tests := []struct {
		name           string
		token          string
		required       []string
		wantStatusCode int
	}{
		{
			name:           "ordinary user may view items",
			token:          ordinaryToken,
			required:       []string{"view_item"},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "ordinary user may not create items",
			token:          ordinaryToken,
			required:       []string{"create_item"},
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "superuser may create items",
			token:          elevatedToken,
			required:       []string{"create_item"},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "all required permissions must be present",
			token:          ordinaryToken,
			required:       []string{"view_item", "delete_item"},
			wantStatusCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			chain := middlewarectx.JWTMiddleware(maker, logger)(
				middlewarectx.RequirePermissions(logger, tt.required...)(next))

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			chain.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
		})
	}
}

func TestRequirePermissions_NoClaims(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := middlewarectx.RequirePermissions(newNoopLogger(), "view_item")(next)

	req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type stubVerifier struct {
	claims map[string]*SessionClaims
	err    map[string]error
}

func (s stubVerifier) VerifyToken(_ context.Context, token string) (*SessionClaims, error) {
	if err, ok := s.err[token]; ok {
		return nil, err
	}
	if c, ok := s.claims[token]; ok {
		return c, nil
	}
	return nil, core.ErrTokenInvalid
}

type stubResolver map[string]*Principal

func (s stubResolver) ResolvePrincipal(_ context.Context, userID string) (*Principal, error) {
	if p, ok := s[userID]; ok {
		return p, nil
	}
	return nil, core.ErrNotFound
}

func newGate() func(http.Handler) http.Handler {
	verifier := stubVerifier{
		claims: map[string]*SessionClaims{
			"admin-token":    {UserID: "USR10"},
			"user-token":     {UserID: "USR20"},
			"inactive-token": {UserID: "USR30"},
			"ghost-token":    {UserID: "USR99"},
		},
		err: map[string]error{
			"expired-token": core.ErrTokenExpired,
		},
	}
	resolver := stubResolver{
		"USR10": {ID: "a", UserID: "USR10", Role: RoleAdmin, IsActive: true},
		"USR20": {ID: "b", UserID: "USR20", Role: "user", IsActive: true},
		"USR30": {ID: "c", UserID: "USR30", Role: RoleAdmin, IsActive: false},
	}
	return Authenticator(verifier, resolver, "token")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) core.Envelope {
	t.Helper()
	var env core.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestAuthenticator(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		core.OK(w, GetPrincipal(r.Context()).UserID, nil)
	})
	handler := newGate()(ok)

	tests := []struct {
		name    string
		header  string
		cookie  string
		status  int
		message string
	}{
		{"no token", "", "", http.StatusUnauthorized, msgLoginRequired},
		{"bearer admin", "Bearer admin-token", "", http.StatusOK, "USR10"},
		{"cookie wins over header", "Bearer user-token", "admin-token", http.StatusOK, "USR10"},
		{"expired", "Bearer expired-token", "", http.StatusUnauthorized, "Token has expired"},
		{"garbage", "Bearer nope", "", http.StatusUnauthorized, "Invalid token"},
		{"unknown user", "Bearer ghost-token", "", http.StatusUnauthorized, msgUserNotFound},
		{"inactive user", "", "inactive-token", http.StatusForbidden, msgDeactivated},
		{"wrong scheme", "Basic admin-token", "", http.StatusUnauthorized, msgLoginRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.message, env.Message)
			assert.Equal(t, tt.status == http.StatusOK, env.Success)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		core.OK(w, "in", nil)
	})

	t.Run("without authentication", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, msgLoginFirst, decodeEnvelope(t, rec).Message)
	})

	t.Run("user role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer user-token")
		rec := httptest.NewRecorder()

		newGate()(RequireAdmin(ok)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, msgAdminOnly, decodeEnvelope(t, rec).Message)
	})

	t.Run("admin role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		rec := httptest.NewRecorder()

		newGate()(RequireAdmin(ok)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestResolveSessionStoreFailure(t *testing.T) {
	boom := errors.New("connection refused")
	verifier := stubVerifier{claims: map[string]*SessionClaims{"t": {UserID: "USR1"}}}
	resolver := failingResolver{err: boom}

	_, err := ResolveSession(context.Background(), verifier, resolver, "t")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, core.IsAppError(err))
}

type failingResolver struct{ err error }

func (f failingResolver) ResolvePrincipal(context.Context, string) (*Principal, error) {
	return nil, f.err
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractToken(req, "token"))

	req.Header.Set("Authorization", "bearer  abc ")
	assert.Equal(t, "abc", ExtractToken(req, "token"))

	req.AddCookie(&http.Cookie{Name: "token", Value: "from-cookie"})
	assert.Equal(t, "from-cookie", ExtractToken(req, "token"))
}

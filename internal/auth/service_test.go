// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
	"github.com/carterperez-dev/portfolio-cms/internal/middleware"
)

type fakeUsers struct {
	mu     sync.Mutex
	byID   map[string]*UserInfo
	logins int
	seq    int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*UserInfo{}}
}

func (f *fakeUsers) add(t *testing.T, userID, password, role string, active bool) *UserInfo {
	t.Helper()
	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	u := &UserInfo{
		ID:           "id-" + userID,
		UserID:       userID,
		Name:         "User " + userID,
		Email:        strings.ToLower(userID) + "@example.com",
		Phone:        "91234567" + string(rune('0'+f.seq%10)) + "0",
		PasswordHash: hash,
		Role:         role,
		IsActive:     active,
	}
	f.byID[u.ID] = u
	return u
}

func (f *fakeUsers) GetByUserID(_ context.Context, userID string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.UserID == userID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) Register(_ context.Context, in NewUser) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == in.Email {
			return nil, ErrEmailExists
		}
		if u.Phone == in.Phone {
			return nil, ErrPhoneExists
		}
	}
	f.seq++
	hash, err := core.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &UserInfo{
		ID:           "new-" + in.Email,
		UserID:       "USR9" + string(rune('0'+f.seq%10)),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         in.Role,
		IsActive:     true,
	}
	f.byID[u.ID] = u
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) RecordLogin(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++
	f.byID[id].LastLoginTime = &at
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[id].PasswordHash = hash
	return nil
}

func TestLogin(t *testing.T) {
	users := newFakeUsers()
	users.add(t, "USR10", "secret1", RoleAdmin, true)
	users.add(t, "USR20", "secret2", RoleUser, false)
	tokens := newTestTokens(t)
	svc := NewService(tokens, users, nil)
	ctx := context.Background()

	t.Run("lowercase user code resolves", func(t *testing.T) {
		res, err := svc.Login(ctx, LoginRequest{UserID: "usr10", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "USR10", res.User.UserID)
		assert.NotNil(t, res.User.LastLoginTime)

		claims, err := tokens.VerifyToken(ctx, res.Token.Token)
		require.NoError(t, err)
		assert.Equal(t, "USR10", claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{UserID: "USR10", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{UserID: "USR77", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated with correct password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{UserID: "USR20", Password: "secret2"})
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})

	t.Run("deactivated with wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{UserID: "USR20", Password: "bad"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCheckLogin(t *testing.T) {
	users := newFakeUsers()
	users.add(t, "USR10", "secret1", RoleAdmin, true)
	inactive := users.add(t, "USR20", "secret2", RoleUser, true)
	tokens := newTestTokens(t)
	svc := NewService(tokens, users, nil)
	ctx := context.Background()

	status, msg := svc.CheckLogin(ctx, "")
	assert.False(t, status.IsLoggedIn)
	assert.Equal(t, "Not logged in", msg)

	status, msg = svc.CheckLogin(ctx, "not-a-jwt")
	assert.False(t, status.IsLoggedIn)
	assert.Equal(t, "Session expired or invalid", msg)

	good, err := tokens.Issue(SessionClaims{UserID: "USR10"})
	require.NoError(t, err)
	status, msg = svc.CheckLogin(ctx, good.Token)
	assert.True(t, status.IsLoggedIn)
	assert.Equal(t, "Session valid", msg)
	require.NotNil(t, status.User)
	assert.Equal(t, RoleAdmin, status.User.Role)

	ghost, err := tokens.Issue(SessionClaims{UserID: "USR99"})
	require.NoError(t, err)
	_, msg = svc.CheckLogin(ctx, ghost.Token)
	assert.Equal(t, "Invalid or inactive session", msg)

	deactivated, err := tokens.Issue(SessionClaims{UserID: "USR20"})
	require.NoError(t, err)
	users.byID[inactive.ID].IsActive = false
	status, msg = svc.CheckLogin(ctx, deactivated.Token)
	assert.False(t, status.IsLoggedIn)
	assert.Equal(t, "Invalid or inactive session", msg)
}

func TestChangePassword(t *testing.T) {
	users := newFakeUsers()
	u := users.add(t, "USR10", "secret1", RoleAdmin, true)
	svc := NewService(newTestTokens(t), users, nil)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "secret2",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "secret2",
	}))

	_, err = svc.Login(ctx, LoginRequest{UserID: "USR10", Password: "secret2"})
	assert.NoError(t, err)
}

func newTestRouter(t *testing.T, users *fakeUsers) (http.Handler, *TokenManager) {
	t.Helper()
	tokens := newTestTokens(t)
	svc := NewService(tokens, users, nil)
	h := NewHandler(svc, tokens)

	r := chi.NewRouter()
	h.RegisterRoutes(
		r,
		middleware.Authenticator(tokens, svc, tokens.CookieName()),
		middleware.RequireAdmin,
	)
	return r, tokens
}

func do(
	t *testing.T,
	h http.Handler,
	method, path, body string,
	cookies ...*http.Cookie,
) (*httptest.ResponseRecorder, core.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env core.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandlerLoginSetsCookie(t *testing.T) {
	users := newFakeUsers()
	users.add(t, "USR10", "secret1", RoleAdmin, true)
	router, _ := newTestRouter(t, users)

	rec, env := do(t, router, http.MethodPost, "/auth/login",
		`{"userId":"usr10","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", env.Message)
	require.Len(t, rec.Result().Cookies(), 1)
	session := rec.Result().Cookies()[0]
	assert.Equal(t, "token", session.Name)

	rec, env = do(t, router, http.MethodGet, "/auth/me", "", session)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User retrieved successfully", env.Message)
	assert.NotContains(t, rec.Body.String(), "PasswordHash")

	rec, env = do(t, router, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logout successful", env.Message)
	assert.Empty(t, rec.Result().Cookies()[0].Value)
}

func TestHandlerLoginFailures(t *testing.T) {
	users := newFakeUsers()
	users.add(t, "USR10", "secret1", RoleAdmin, true)
	users.add(t, "USR20", "secret2", RoleUser, false)
	router, _ := newTestRouter(t, users)

	rec, env := do(t, router, http.MethodPost, "/auth/login",
		`{"userId":"USR10","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", env.Message)

	rec, env = do(t, router, http.MethodPost, "/auth/login",
		`{"userId":"USR20","password":"secret2"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Account is deactivated. Please contact support", env.Message)

	rec, env = do(t, router, http.MethodPost, "/auth/login", `{"userId":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Message)
	assert.NotEmpty(t, env.Errors)
}

func TestHandlerRegister(t *testing.T) {
	users := newFakeUsers()
	users.add(t, "USR10", "secret1", RoleAdmin, true)
	users.add(t, "USR20", "secret2", RoleUser, true)
	router, tokens := newTestRouter(t, users)

	admin, err := tokens.Issue(SessionClaims{UserID: "USR10"})
	require.NoError(t, err)
	plain, err := tokens.Issue(SessionClaims{UserID: "USR20"})
	require.NoError(t, err)

	body := `{"name":"Asha","email":"asha@example.com","phone":"9876543210","password":"secret"}`

	rec, _ := do(t, router, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, router, http.MethodPost, "/auth/register", body,
		&http.Cookie{Name: "token", Value: plain.Token})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := do(t, router, http.MethodPost, "/auth/register", body,
		&http.Cookie{Name: "token", Value: admin.Token})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User registered successfully", env.Message)

	rec, env = do(t, router, http.MethodPost, "/auth/register", body,
		&http.Cookie{Name: "token", Value: admin.Token})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", env.Message)

	rec, env = do(t, router, http.MethodPost, "/auth/register",
		`{"name":"Asha","email":"other@example.com","phone":"9876543210","password":"secret"}`,
		&http.Cookie{Name: "token", Value: admin.Token})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone number already registered", env.Message)
}

func TestHandlerCheckLoginNeverFails(t *testing.T) {
	router, _ := newTestRouter(t, newFakeUsers())

	rec, env := do(t, router, http.MethodGet, "/auth/check-login", "",
		&http.Cookie{Name: "token", Value: "garbage"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Session expired or invalid", env.Message)
}

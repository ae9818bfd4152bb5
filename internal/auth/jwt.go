// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
	"github.com/carterperez-dev/portfolio-cms/internal/middleware"
)

const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenManager issues and verifies HS256 session tokens and binds them to
// the session cookie. The signing secret is fixed at construction.
type TokenManager struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	cookieName   string
	secureCookie bool
}

func NewTokenManager(
	cfg config.JWTConfig,
	secureCookie bool,
) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "token"
	}

	return &TokenManager{
		secret:       []byte(cfg.Secret),
		issuer:       cfg.Issuer,
		ttl:          ParseTTL(cfg.Expire),
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}, nil
}

// ParseTTL reads "<n>d", "<n>h" or "<n>m". Any other shape, or a
// non-positive count, yields DefaultTokenTTL.
func ParseTTL(s string) time.Duration {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return DefaultTokenTTL
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return DefaultTokenTTL
	}

	switch s[len(s)-1] {
	case 'd':
		return time.Duration(n) * 24 * time.Hour
	case 'h':
		return time.Duration(n) * time.Hour
	case 'm':
		return time.Duration(n) * time.Minute
	}

	return DefaultTokenTTL
}

type SessionClaims struct {
	UserID string
	Email  string
}

// IssuedToken is a signed session token and its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

func (m *TokenManager) Issue(claims SessionClaims) (*IssuedToken, error) {
	return m.IssueWithTTL(claims, m.ttl)
}

func (m *TokenManager) IssueWithTTL(
	claims SessionClaims,
	ttl time.Duration,
) (*IssuedToken, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	builder := jwt.NewBuilder().
		Subject(claims.UserID).
		IssuedAt(now).
		Expiration(expiresAt).
		Claim("userId", claims.UserID).
		Claim("email", claims.Email)
	if m.issuer != "" {
		builder = builder.Issuer(m.issuer)
	}

	token, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &IssuedToken{Token: string(signed), ExpiresAt: expiresAt}, nil
}

// VerifyToken checks signature, expiry and issuer. Expired tokens wrap
// core.ErrTokenExpired; every other failure wraps core.ErrTokenInvalid.
func (m *TokenManager) VerifyToken(
	_ context.Context,
	tokenString string,
) (*middleware.SessionClaims, error) {
	opts := []jwt.ParseOption{
		jwt.WithKey(jwa.HS256(), m.secret),
		jwt.WithValidate(true),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.Parse([]byte(tokenString), opts...)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var userID string
	if err := token.Get("userId", &userID); err != nil || userID == "" {
		subject, ok := token.Subject()
		if !ok || subject == "" {
			return nil, fmt.Errorf(
				"verify token: missing subject: %w",
				core.ErrTokenInvalid,
			)
		}
		userID = subject
	}

	var email string
	//nolint:errcheck // email is informational
	_ = token.Get("email", &email)

	claims := &middleware.SessionClaims{
		UserID: userID,
		Email:  email,
	}
	if iat, ok := token.IssuedAt(); ok {
		claims.IssuedAt = iat
	}
	if exp, ok := token.Expiration(); ok {
		claims.ExpiresAt = exp
	}

	return claims, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}

func (m *TokenManager) CookieName() string {
	return m.cookieName
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// SetCookie stores token in the HTTP-only, strict same-site session
// cookie. Max-Age follows the configured TTL.
func (m *TokenManager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		Expires:  time.Now().Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

func (m *TokenManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

var _ middleware.TokenVerifier = (*TokenManager)(nil)

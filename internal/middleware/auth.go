// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

const (
	RoleAdmin = "admin"

	msgLoginRequired = "Not authorized to access this route. Please login"
	msgUserNotFound  = "User not found. Token invalid"
	msgDeactivated   = "Account is deactivated. Please contact support"
	msgLoginFirst    = "Not authorized. Please login first"
	msgAdminOnly     = "Access denied. Admin privileges required"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*SessionClaims, error)
}

// SessionClaims are the verified contents of a session token.
type SessionClaims struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the user resolved from a session, attached to the request
// context by Authenticator.
type Principal struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID string) (*Principal, error)
}

// Authenticator rejects requests without a session that resolves to an
// existing active user.
func Authenticator(
	verifier TokenVerifier,
	resolver PrincipalResolver,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r, cookieName)

			if token == "" {
				core.JSONError(w, core.UnauthorizedError(msgLoginRequired))
				return
			}

			principal, err := ResolveSession(r.Context(), verifier, resolver, token)
			if err != nil {
				core.JSONError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// ResolveSession verifies token and loads its user. Failures are returned
// as *core.AppError except for unexpected store errors.
func ResolveSession(
	ctx context.Context,
	verifier TokenVerifier,
	resolver PrincipalResolver,
	token string,
) (*Principal, error) {
	claims, err := verifier.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, core.ErrTokenExpired) {
			return nil, core.TokenExpiredError()
		}
		return nil, core.TokenInvalidError()
	}

	principal, err := resolver.ResolvePrincipal(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.UnauthorizedError(msgUserNotFound)
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	if !principal.IsActive {
		return nil, core.ForbiddenError(msgDeactivated)
	}

	return principal, nil
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := GetPrincipal(r.Context())

			if principal == nil {
				core.JSONError(w, core.UnauthorizedError(msgLoginFirst))
				return
			}

			if _, ok := roleSet[principal.Role]; !ok {
				core.JSONError(w, core.ForbiddenError(msgAdminOnly))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(RoleAdmin)(next)
}

// ExtractToken reads the session cookie, falling back to a Bearer
// Authorization header. It returns "" when neither is present.
func ExtractToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) *Principal {
	if p, ok := ctx.Value(PrincipalKey).(*Principal); ok {
		return p
	}
	return nil
}

// GetUserID returns the store id of the authenticated user, or "".
func GetUserID(ctx context.Context) string {
	if p := GetPrincipal(ctx); p != nil {
		return p.ID
	}
	return ""
}

// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
	"github.com/carterperez-dev/portfolio-cms/internal/middleware"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrEmailExists        = errors.New("email already registered")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type UserInfo struct {
	ID            string
	UserID        string
	Name          string
	Email         string
	Phone         string
	PasswordHash  string
	Role          string
	IsActive      bool
	LastLoginTime *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser is a registration request with the password still in clear
// text; the provider hashes it.
type NewUser struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

// UserProvider is the credential store as seen by authentication.
// GetByUserID expects the normalized (uppercase) user code. Register
// returns ErrEmailExists or ErrPhoneExists on a uniqueness conflict.
type UserProvider interface {
	GetByUserID(ctx context.Context, userID string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Register(ctx context.Context, in NewUser) (*UserInfo, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type Service struct {
	tokens       *TokenManager
	userProvider UserProvider
	logger       *slog.Logger
}

func NewService(
	tokens *TokenManager,
	userProvider UserProvider,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		tokens:       tokens,
		userProvider: userProvider,
		logger:       logger,
	}
}

// LoginResult carries the issued token so the handler can bind it to the
// session cookie.
type LoginResult struct {
	User  UserResponse
	Token *IssuedToken
}

// Login authenticates by user code and password. The password is checked
// before the active flag, so only the account holder learns that an
// account is deactivated.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*LoginResult, error) {
	user, err := s.userProvider.GetByUserID(
		ctx,
		strings.ToUpper(strings.TrimSpace(req.UserID)),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if newHash != "" {
		if err := s.userProvider.UpdatePassword(ctx, user.ID, newHash); err != nil {
			s.logger.Warn("password rehash failed",
				"user_id", user.UserID,
				"error", err,
			)
		}
	}

	now := time.Now().UTC()
	if err := s.userProvider.RecordLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	user.LastLoginTime = &now

	token, err := s.tokens.Issue(SessionClaims{
		UserID: user.UserID,
		Email:  user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{User: toUserResponse(user), Token: token}, nil
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*UserResponse, error) {
	role := req.Role
	if role == "" {
		role = RoleUser
	}

	user, err := s.userProvider.Register(ctx, NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// CheckLogin reports session status without ever failing. The second
// return value is the human-readable status message.
func (s *Service) CheckLogin(
	ctx context.Context,
	token string,
) (CheckLoginResponse, string) {
	if token == "" {
		return CheckLoginResponse{IsLoggedIn: false}, "Not logged in"
	}

	principal, err := middleware.ResolveSession(ctx, s.tokens, s, token)
	if err != nil {
		if errors.Is(err, core.ErrUnauthorized) ||
			errors.Is(err, core.ErrForbidden) {
			return CheckLoginResponse{IsLoggedIn: false},
				"Invalid or inactive session"
		}
		return CheckLoginResponse{IsLoggedIn: false},
			"Session expired or invalid"
	}

	return CheckLoginResponse{
		IsLoggedIn: true,
		User: &SessionUser{
			UserID: principal.UserID,
			Name:   principal.Name,
			Email:  principal.Email,
			Role:   principal.Role,
		},
	}, "Session valid"
}

// ResolvePrincipal loads the user named by a session's userId claim.
func (s *Service) ResolvePrincipal(
	ctx context.Context,
	userID string,
) (*middleware.Principal, error) {
	user, err := s.userProvider.GetByUserID(ctx, strings.ToUpper(userID))
	if err != nil {
		return nil, err
	}

	return &middleware.Principal{
		ID:       user.ID,
		UserID:   user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}, nil
}

func (s *Service) Me(ctx context.Context, id string) (*UserResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("me: %w", core.ErrUnauthorized)
	}

	user, err := s.userProvider.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *Service) ChangePassword(
	ctx context.Context,
	id string,
	req ChangePasswordRequest,
) error {
	user, err := s.userProvider.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return ErrWrongPassword
	}

	newHash, err := core.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userProvider.UpdatePassword(ctx, id, newHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

var _ middleware.PrincipalResolver = (*Service)(nil)

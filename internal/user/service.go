// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/portfolio-cms/internal/auth"
	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var (
	ErrInvalidID  = errors.New("invalid user id")
	ErrSelfToggle = errors.New("cannot change own active status")
	ErrSelfDelete = errors.New("cannot delete own account")
)

const (
	initialCodeWidth = 2
	widenAfter       = 20
)

type Service struct {
	repo        Repository
	newUserCode func(width int) string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:        repo,
		newUserCode: core.NewUserCode,
	}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByUserID(
	ctx context.Context,
	userID string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByUserID(ctx, strings.ToUpper(userID))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// Register creates a user with a freshly allocated user code. Email and
// phone conflicts are reported as auth.ErrEmailExists / auth.ErrPhoneExists.
func (s *Service) Register(
	ctx context.Context,
	in auth.NewUser,
) (*auth.UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)

	if err := s.checkUnique(ctx, email, phone, ""); err != nil {
		return nil, err
	}

	passwordHash, err := core.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = RoleUser
	}

	user := &User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.insertWithUserCode(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// insertWithUserCode retries the insert with new user codes until one is
// free. The code widens by a digit every widenAfter collisions so a
// crowded code space cannot spin forever; ctx bounds the loop.
func (s *Service) insertWithUserCode(ctx context.Context, user *User) error {
	width := initialCodeWidth
	collisions := 0

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("allocate user id: %w", err)
		}

		user.UserID = strings.ToUpper(s.newUserCode(width))

		err := s.repo.Create(ctx, user)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrUserIDTaken) {
			return err
		}

		collisions++
		if collisions%widenAfter == 0 {
			width++
		}
	}
}

func (s *Service) RecordLogin(
	ctx context.Context,
	id string,
	at time.Time,
) error {
	return s.repo.RecordLogin(ctx, id, at)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, id, passwordHash)
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			if err := s.checkUnique(ctx, email, "", user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}

	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone != user.Phone {
			if err := s.checkUnique(ctx, "", phone, user.ID); err != nil {
				return nil, err
			}
			user.Phone = phone
		}
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Role != nil {
		user.Role = *req.Role
	}

	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := core.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ToggleStatus flips the active flag. callerID is the store id of the
// acting admin.
func (s *Service) ToggleStatus(
	ctx context.Context,
	callerID, id string,
) (*User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	if callerID == id {
		return nil, ErrSelfToggle
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, callerID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	if callerID == id {
		return ErrSelfDelete
	}

	return s.repo.Delete(ctx, id)
}

// Bootstrap creates the configured admin when the credential store is
// empty. It returns nil without error when nothing had to be done.
func (s *Service) Bootstrap(
	ctx context.Context,
	cfg config.BootstrapConfig,
) (*auth.UserInfo, error) {
	if cfg.Email == "" {
		return nil, nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, nil
	}

	name := cfg.Name
	if name == "" {
		name = "Administrator"
	}

	return s.Register(ctx, auth.NewUser{
		Name:     name,
		Email:    cfg.Email,
		Phone:    cfg.Phone,
		Password: cfg.Password,
		Role:     RoleAdmin,
	})
}

func (s *Service) checkUnique(
	ctx context.Context,
	email, phone, excludeID string,
) error {
	if email != "" {
		taken, err := s.repo.ExistsByEmail(ctx, email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return auth.ErrEmailExists
		}
	}

	if phone != "" {
		taken, err := s.repo.ExistsByPhone(ctx, phone, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return auth.ErrPhoneExists
		}
	}

	return nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:            u.ID,
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		PasswordHash:  u.PasswordHash,
		Role:          u.Role,
		IsActive:      u.IsActive,
		LastLoginTime: u.LastLoginTime,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)

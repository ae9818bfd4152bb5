// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	UserID   string `json:"userId"   validate:"required,max=20"`
	Password string `json:"password" validate:"required,max=128"`
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,contact_email,max=255"`
	Phone    string `json:"phone"    validate:"required,mobile"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6,max=128"`
}

// UserResponse is the sanitized user record; the password hash never
// leaves the service.
type UserResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"isActive"`
	LastLoginTime *time.Time `json:"lastLoginTime"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type SessionUser struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type CheckLoginResponse struct {
	IsLoggedIn bool         `json:"isLoggedIn"`
	User       *SessionUser `json:"user,omitempty"`
}

func toUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
		ID:            u.ID,
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          u.Role,
		IsActive:      u.IsActive,
		LastLoginTime: u.LastLoginTime,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

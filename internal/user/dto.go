// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// UpdateUserRequest is a partial update; nil fields are left alone. A
// userId in the body is not part of the struct and so is ignored.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email"    validate:"omitempty,contact_email,max=255"`
	Phone    *string `json:"phone"    validate:"omitempty,mobile"`
	Password *string `json:"password" validate:"omitempty,min=6,max=128"`
	Role     *string `json:"role"     validate:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"isActive"`
}

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

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UserListResponse struct {
	Users      []UserResponse  `json:"users"`
	Pagination core.Pagination `json:"pagination"`
}

type ListUsersParams struct {
	core.PageParams
	Search   string
	Role     string
	IsActive *bool
}

func ToUserResponse(u *User) UserResponse {
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

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}

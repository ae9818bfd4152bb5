// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID            string     `db:"id"`
	UserID        string     `db:"user_id"`
	Name          string     `db:"name"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	PasswordHash  string     `db:"password_hash"`
	Role          string     `db:"role"`
	IsActive      bool       `db:"is_active"`
	LastLoginTime *time.Time `db:"last_login_time"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

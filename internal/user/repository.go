// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/auth"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// ErrUserIDTaken reports a collision on the generated user code.
var ErrUserIDTaken = errors.New("user id already taken")

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	RecordLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListUsersParams) ([]User, int, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	ExistsByPhone(ctx context.Context, phone, excludeID string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, user_id, name, email, phone, password_hash, role,
		       is_active, last_login_time, created_at, updated_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, user_id, name, email, phone, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.UserID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.Role,
		user.IsActive,
	)
	if err != nil {
		return mapUniqueViolation("create user", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, core.StoreError("get user", err)
	}

	return &user, nil
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID string,
) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user User
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		return nil, core.StoreError("get user by user id", err)
	}

	return &user, nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, password_hash = $5,
		    role = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &user.UpdatedAt, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.Role,
		user.IsActive,
	)
	if err != nil {
		return mapUniqueViolation("update user", err)
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	return r.execOne(ctx, "update password", query, id, passwordHash)
}

func (r *repository) RecordLogin(
	ctx context.Context,
	id string,
	at time.Time,
) error {
	query := `UPDATE users SET last_login_time = $2 WHERE id = $1`

	return r.execOne(ctx, "record login", query, id, at)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, "delete user", `DELETE FROM users WHERE id = $1`, id)
}

func (r *repository) execOne(
	ctx context.Context,
	op, query string,
	args ...any,
) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}

// searchCondition matches the escaped pattern at argIdx against name,
// email and user id.
func searchCondition(argIdx int) string {
	return fmt.Sprintf(
		`(name ILIKE $%[1]d ESCAPE '\' OR email ILIKE $%[1]d ESCAPE '\' OR user_id ILIKE $%[1]d ESCAPE '\')`,
		argIdx)
}

func (r *repository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Search != "" {
		conditions = append(conditions, searchCondition(argIdx))
		args = append(args, "%"+core.EscapeLike(params.Search)+"%")
		argIdx++
	}

	if params.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, params.Role)
		argIdx++
	}

	if params.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *params.IsActive)
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM users WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s
		ORDER BY created_at DESC`,
		userColumns, whereClause)

	if params.Paginated() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, params.Limit, params.Offset())
	}

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email, excludeID string,
) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *repository) ExistsByPhone(
	ctx context.Context,
	phone, excludeID string,
) (bool, error) {
	return r.exists(ctx, "phone", phone, excludeID)
}

func (r *repository) exists(
	ctx context.Context,
	column, value, excludeID string,
) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM users WHERE %s = $1 AND ($2 = '' OR id::text <> $2))`,
		column,
	)

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, value, excludeID); err != nil {
		return false, fmt.Errorf("check %s exists: %w", column, err)
	}

	return exists, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func mapUniqueViolation(op string, err error) error {
	switch core.DuplicateConstraint(err) {
	case "users_user_id_key":
		return fmt.Errorf("%s: %w", op, ErrUserIDTaken)
	case "users_email_key":
		return fmt.Errorf("%s: %w", op, auth.ErrEmailExists)
	case "users_phone_key":
		return fmt.Errorf("%s: %w", op, auth.ErrPhoneExists)
	}
	return core.StoreError(op, err)
}

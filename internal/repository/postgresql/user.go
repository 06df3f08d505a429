package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/user"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (full_name, user_name, email, password_hash, role, user_group_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, full_name, user_name, email, password_hash, role, user_group_id, is_active,
			created_at, updated_at, deleted_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.FullName, newUser.UserName, newUser.Email,
		newUser.PasswordHash, newUser.Role, newUser.UserGroupID, newUser.IsActive,
	).Scan(
		&created.ID, &created.FullName, &created.UserName, &created.Email,
		&created.PasswordHash, &created.Role, &created.UserGroupID, &created.IsActive,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "users_user_name_key") {
			return user.User{}, user.ErrUserNameExists
		}
		if isUniqueViolation(err, "users_email_key") {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	if !isValidID(id) {
		return user.User{}, user.ErrUserNotFound
	}
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, full_name, user_name, email, password_hash, role, user_group_id, is_active,
			created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	return u.scanUser(q.QueryRow(ctx, query, id))
}

// GetByUserNameOrEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByUserNameOrEmail(ctx context.Context, usernameOrEmail string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, full_name, user_name, email, password_hash, role, user_group_id, is_active,
			created_at, updated_at, deleted_at
		FROM users
		WHERE (user_name = $1 OR email = $1) AND deleted_at IS NULL
	`

	return u.scanUser(q.QueryRow(ctx, query, usernameOrEmail))
}

// List implements user.UserRepository.
func (u *userRepositoryImpl) List(ctx context.Context, filter user.UserFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, full_name, user_name, email, password_hash, role, user_group_id, is_active,
			created_at, updated_at, deleted_at,
			COUNT(*) OVER() AS total
		FROM users
		WHERE deleted_at IS NULL
			AND ($1 = '' OR full_name ILIKE '%' || $1 || '%'
				OR user_name ILIKE '%' || $1 || '%'
				OR email ILIKE '%' || $1 || '%')
			AND ($2 = '' OR user_group_id = $2::uuid)
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, filter.Search, filter.GroupID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	var total int64
	for rows.Next() {
		var found user.User
		if err := rows.Scan(
			&found.ID, &found.FullName, &found.UserName, &found.Email,
			&found.PasswordHash, &found.Role, &found.UserGroupID, &found.IsActive,
			&found.CreatedAt, &found.UpdatedAt, &found.DeletedAt, &total,
		); err != nil {
			return nil, 0, err
		}
		users = append(users, found)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update implements user.UserRepository.
func (u *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	if !isValidID(req.ID) {
		return user.ErrUserNotFound
	}
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET full_name = COALESCE($2, full_name),
			user_name = COALESCE($3, user_name),
			email = COALESCE($4, email),
			password_hash = COALESCE($5, password_hash),
			role = COALESCE($6, role),
			user_group_id = COALESCE($7, user_group_id),
			is_active = COALESCE($8, is_active),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.ID, req.FullName, req.UserName, req.Email,
		req.PasswordHash, req.Role, req.UserGroupID, req.IsActive,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		if isUniqueViolation(err, "users_user_name_key") {
			return user.ErrUserNameExists
		}
		if isUniqueViolation(err, "users_email_key") {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// SetActive implements user.UserRepository.
func (u *userRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, active).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to set user status: %w", err)
	}
	return nil
}

// SoftDelete implements user.UserRepository.
func (u *userRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (u *userRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, passwordHash).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (u *userRepositoryImpl) scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID, &found.FullName, &found.UserName, &found.Email,
		&found.PasswordHash, &found.Role, &found.UserGroupID, &found.IsActive,
		&found.CreatedAt, &found.UpdatedAt, &found.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return found, nil
}

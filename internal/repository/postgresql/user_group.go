package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/usergroup"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userGroupRepositoryImpl struct {
	db *database.DB
}

func NewUserGroupRepository(db *database.DB) usergroup.UserGroupRepository {
	return &userGroupRepositoryImpl{db: db}
}

// Create implements usergroup.UserGroupRepository.
func (g *userGroupRepositoryImpl) Create(ctx context.Context, group usergroup.UserGroup) (usergroup.UserGroup, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		INSERT INTO user_groups (name, description, permissions)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, permissions, created_at, updated_at, deleted_at
	`

	permissions := group.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	var created usergroup.UserGroup
	err := q.QueryRow(ctx, query, group.Name, group.Description, permissions).Scan(
		&created.ID, &created.Name, &created.Description, &created.Permissions,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "user_groups_name_key") {
			return usergroup.UserGroup{}, usergroup.ErrUserGroupNameExists
		}
		return usergroup.UserGroup{}, fmt.Errorf("failed to create user group: %w", err)
	}
	return created, nil
}

// GetByID implements usergroup.UserGroupRepository.
func (g *userGroupRepositoryImpl) GetByID(ctx context.Context, id string) (usergroup.UserGroup, error) {
	if !isValidID(id) {
		return usergroup.UserGroup{}, usergroup.ErrUserGroupNotFound
	}
	q := GetQuerier(ctx, g.db)

	query := `
		SELECT id, name, description, permissions, created_at, updated_at, deleted_at
		FROM user_groups
		WHERE id = $1 AND deleted_at IS NULL
	`

	var group usergroup.UserGroup
	err := q.QueryRow(ctx, query, id).Scan(
		&group.ID, &group.Name, &group.Description, &group.Permissions,
		&group.CreatedAt, &group.UpdatedAt, &group.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usergroup.UserGroup{}, usergroup.ErrUserGroupNotFound
		}
		return usergroup.UserGroup{}, fmt.Errorf("failed to get user group: %w", err)
	}

	if group.UserIDs, err = g.memberIDs(ctx, id); err != nil {
		return usergroup.UserGroup{}, err
	}
	return group, nil
}

// List implements usergroup.UserGroupRepository.
func (g *userGroupRepositoryImpl) List(ctx context.Context) ([]usergroup.UserGroup, int64, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		SELECT ug.id, ug.name, ug.description, ug.permissions,
			ug.created_at, ug.updated_at, ug.deleted_at,
			COALESCE(array_agg(u.id) FILTER (WHERE u.id IS NOT NULL), '{}') AS user_ids,
			COUNT(*) OVER() AS total
		FROM user_groups ug
		LEFT JOIN users u ON u.user_group_id = ug.id AND u.deleted_at IS NULL
		WHERE ug.deleted_at IS NULL
		GROUP BY ug.id
		ORDER BY ug.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list user groups: %w", err)
	}
	defer rows.Close()

	var groups []usergroup.UserGroup
	var total int64
	for rows.Next() {
		var group usergroup.UserGroup
		if err := rows.Scan(
			&group.ID, &group.Name, &group.Description, &group.Permissions,
			&group.CreatedAt, &group.UpdatedAt, &group.DeletedAt,
			&group.UserIDs, &total,
		); err != nil {
			return nil, 0, err
		}
		groups = append(groups, group)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// Update implements usergroup.UserGroupRepository.
func (g *userGroupRepositoryImpl) Update(ctx context.Context, req usergroup.UpdateUserGroupRequest) error {
	if !isValidID(req.ID) {
		return usergroup.ErrUserGroupNotFound
	}
	q := GetQuerier(ctx, g.db)

	query := `
		UPDATE user_groups
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			permissions = COALESCE($4, permissions),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.ID, req.Name, req.Description, req.Permissions).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usergroup.ErrUserGroupNotFound
		}
		if isUniqueViolation(err, "user_groups_name_key") {
			return usergroup.ErrUserGroupNameExists
		}
		return fmt.Errorf("failed to update user group: %w", err)
	}
	return nil
}

// SoftDelete implements usergroup.UserGroupRepository. Members are detached
// so a deleted group never keeps users pointing at it.
func (g *userGroupRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, g.db)

	query := `
		UPDATE user_groups
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usergroup.ErrUserGroupNotFound
		}
		return fmt.Errorf("failed to delete user group: %w", err)
	}

	if _, err := q.Exec(ctx,
		`UPDATE users SET user_group_id = NULL, updated_at = NOW() WHERE user_group_id = $1`, id,
	); err != nil {
		return fmt.Errorf("failed to detach group members: %w", err)
	}
	return nil
}

// AssignUsers implements usergroup.UserGroupRepository.
func (g *userGroupRepositoryImpl) AssignUsers(ctx context.Context, groupID string, userIDs []string) error {
	q := GetQuerier(ctx, g.db)

	query := `
		UPDATE users
		SET user_group_id = $1, updated_at = NOW()
		WHERE id = ANY($2::uuid[]) AND deleted_at IS NULL
	`

	if _, err := q.Exec(ctx, query, groupID, userIDs); err != nil {
		return fmt.Errorf("failed to assign users to group: %w", err)
	}
	return nil
}

// UnassignUsers implements usergroup.UserGroupRepository.
func (g *userGroupRepositoryImpl) UnassignUsers(ctx context.Context, groupID string, userIDs []string) error {
	q := GetQuerier(ctx, g.db)

	query := `
		UPDATE users
		SET user_group_id = NULL, updated_at = NOW()
		WHERE user_group_id = $1 AND id = ANY($2::uuid[]) AND deleted_at IS NULL
	`

	if _, err := q.Exec(ctx, query, groupID, userIDs); err != nil {
		return fmt.Errorf("failed to remove users from group: %w", err)
	}
	return nil
}

// AddPermissions implements usergroup.UserGroupRepository. Duplicates are
// collapsed so repeated grants stay idempotent.
func (g *userGroupRepositoryImpl) AddPermissions(ctx context.Context, groupID string, permissions []string) error {
	q := GetQuerier(ctx, g.db)

	query := `
		UPDATE user_groups
		SET permissions = (
				SELECT COALESCE(array_agg(DISTINCT p ORDER BY p), '{}')
				FROM unnest(permissions || $2::text[]) AS p
			),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, groupID, permissions).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usergroup.ErrUserGroupNotFound
		}
		return fmt.Errorf("failed to add group permissions: %w", err)
	}
	return nil
}

// RemovePermissions implements usergroup.UserGroupRepository.
func (g *userGroupRepositoryImpl) RemovePermissions(ctx context.Context, groupID string, permissions []string) error {
	q := GetQuerier(ctx, g.db)

	query := `
		UPDATE user_groups
		SET permissions = (
				SELECT COALESCE(array_agg(p ORDER BY p), '{}')
				FROM unnest(permissions) AS p
				WHERE p <> ALL($2::text[])
			),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, groupID, permissions).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usergroup.ErrUserGroupNotFound
		}
		return fmt.Errorf("failed to remove group permissions: %w", err)
	}
	return nil
}

func (g *userGroupRepositoryImpl) memberIDs(ctx context.Context, groupID string) ([]string, error) {
	q := GetQuerier(ctx, g.db)

	rows, err := q.Query(ctx,
		`SELECT id FROM users WHERE user_group_id = $1 AND deleted_at IS NULL ORDER BY full_name`, groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

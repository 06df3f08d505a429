package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/permission"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type permissionRepositoryImpl struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepositoryImpl{db: db}
}

// Create implements permission.PermissionRepository.
func (p *permissionRepositoryImpl) Create(ctx context.Context, perm permission.Permission) (permission.Permission, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO permissions (name, resource, action, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, resource, action, description, created_at, updated_at, deleted_at
	`

	var created permission.Permission
	err := q.QueryRow(ctx, query, perm.Name, perm.Resource, perm.Action, perm.Description).Scan(
		&created.ID, &created.Name, &created.Resource, &created.Action,
		&created.Description, &created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "permissions_name_key") {
			return permission.Permission{}, permission.ErrPermissionExists
		}
		return permission.Permission{}, fmt.Errorf("failed to create permission: %w", err)
	}
	return created, nil
}

// GetByID implements permission.PermissionRepository.
func (p *permissionRepositoryImpl) GetByID(ctx context.Context, id string) (permission.Permission, error) {
	if !isValidID(id) {
		return permission.Permission{}, permission.ErrPermissionNotFound
	}
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, resource, action, description, created_at, updated_at, deleted_at
		FROM permissions
		WHERE id = $1 AND deleted_at IS NULL
	`

	var perm permission.Permission
	err := q.QueryRow(ctx, query, id).Scan(
		&perm.ID, &perm.Name, &perm.Resource, &perm.Action,
		&perm.Description, &perm.CreatedAt, &perm.UpdatedAt, &perm.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return permission.Permission{}, permission.ErrPermissionNotFound
		}
		return permission.Permission{}, fmt.Errorf("failed to get permission: %w", err)
	}
	return perm, nil
}

// List implements permission.PermissionRepository.
func (p *permissionRepositoryImpl) List(ctx context.Context, resource string) ([]permission.Permission, int64, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, resource, action, description, created_at, updated_at, deleted_at,
			COUNT(*) OVER() AS total
		FROM permissions
		WHERE deleted_at IS NULL
			AND ($1 = '' OR resource = $1)
		ORDER BY resource, action
	`

	rows, err := q.Query(ctx, query, resource)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var permissions []permission.Permission
	var total int64
	for rows.Next() {
		var perm permission.Permission
		if err := rows.Scan(
			&perm.ID, &perm.Name, &perm.Resource, &perm.Action,
			&perm.Description, &perm.CreatedAt, &perm.UpdatedAt, &perm.DeletedAt, &total,
		); err != nil {
			return nil, 0, err
		}
		permissions = append(permissions, perm)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return permissions, total, nil
}

// Update implements permission.PermissionRepository.
func (p *permissionRepositoryImpl) Update(ctx context.Context, req permission.UpdatePermissionRequest) error {
	if !isValidID(req.ID) {
		return permission.ErrPermissionNotFound
	}
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE permissions
		SET name = COALESCE($2, name),
			resource = COALESCE($3, resource),
			action = COALESCE($4, action),
			description = COALESCE($5, description),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.ID, req.Name, req.Resource, req.Action, req.Description).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return permission.ErrPermissionNotFound
		}
		if isUniqueViolation(err, "permissions_name_key") {
			return permission.ErrPermissionExists
		}
		return fmt.Errorf("failed to update permission: %w", err)
	}
	return nil
}

// SoftDelete implements permission.PermissionRepository.
func (p *permissionRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE permissions
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return permission.ErrPermissionNotFound
		}
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	return nil
}

// Delete implements permission.PermissionRepository.
func (p *permissionRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return permission.ErrPermissionNotFound
	}
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return permission.ErrPermissionNotFound
	}
	return nil
}

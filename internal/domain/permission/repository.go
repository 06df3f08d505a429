package permission

import "context"

type PermissionRepository interface {
	Create(ctx context.Context, p Permission) (Permission, error)
	GetByID(ctx context.Context, id string) (Permission, error)

	// List returns all live permissions; a non-empty resource narrows to it.
	List(ctx context.Context, resource string) ([]Permission, int64, error)

	Update(ctx context.Context, req UpdatePermissionRequest) error
	SoftDelete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

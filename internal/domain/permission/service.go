package permission

import "context"

type PermissionService interface {
	Create(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error)
	Get(ctx context.Context, id string) (PermissionResponse, error)
	List(ctx context.Context, resource string) (ListPermissionResponse, error)
	Update(ctx context.Context, req UpdatePermissionRequest) (PermissionResponse, error)
	SoftDelete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

package user

import "context"

// UserService defines business logic for account administration. Signup and
// login live in the auth domain; this covers the admin-facing operations.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, filter UserFilter) (ListUserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	ToggleStatus(ctx context.Context, id string) (ToggleUserStatusResponse, error)
	SoftDelete(ctx context.Context, id string) error
}

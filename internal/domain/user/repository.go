package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUserNameOrEmail matches either column; login accepts both
	GetByUserNameOrEmail(ctx context.Context, usernameOrEmail string) (User, error)

	List(ctx context.Context, filter UserFilter) ([]User, int64, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	SetActive(ctx context.Context, id string, active bool) error
	SoftDelete(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserNameExists      = errors.New("username already taken")
	ErrEmailExists         = errors.New("email already registered")
	ErrAdminAccessRequired = errors.New("admin access required")
)

package usergroup

import "errors"

var (
	ErrUserGroupNotFound   = errors.New("user group not found")
	ErrUserGroupNameExists = errors.New("user group name already exists")
)

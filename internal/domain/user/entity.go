package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super-Admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

type User struct {
	ID           string
	FullName     string
	UserName     string
	Email        string
	PasswordHash string
	Role         Role
	UserGroupID  *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

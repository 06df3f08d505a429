package usergroup

import "time"

// UserGroup bundles a set of permission names and its member accounts.
// Membership is single-group: a user belongs to at most one group.
type UserGroup struct {
	ID          string
	Name        string
	Description *string
	Permissions []string
	UserIDs     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

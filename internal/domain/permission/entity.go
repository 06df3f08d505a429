package permission

import "time"

// Permission names one allowed action on one resource, e.g. "employee:read".
type Permission struct {
	ID          string
	Name        string
	Resource    string
	Action      string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

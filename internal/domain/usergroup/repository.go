package usergroup

import "context"

type UserGroupRepository interface {
	Create(ctx context.Context, g UserGroup) (UserGroup, error)
	GetByID(ctx context.Context, id string) (UserGroup, error)
	List(ctx context.Context) ([]UserGroup, int64, error)
	Update(ctx context.Context, req UpdateUserGroupRequest) error
	SoftDelete(ctx context.Context, id string) error

	// AssignUsers points the users at the group; UnassignUsers clears the
	// membership for those of the ids currently in it.
	AssignUsers(ctx context.Context, groupID string, userIDs []string) error
	UnassignUsers(ctx context.Context, groupID string, userIDs []string) error

	AddPermissions(ctx context.Context, groupID string, permissions []string) error
	RemovePermissions(ctx context.Context, groupID string, permissions []string) error
}

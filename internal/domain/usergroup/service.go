package usergroup

import "context"

type UserGroupService interface {
	Create(ctx context.Context, req CreateUserGroupRequest) (UserGroupResponse, error)
	Get(ctx context.Context, id string) (UserGroupResponse, error)
	List(ctx context.Context) (ListUserGroupResponse, error)
	Update(ctx context.Context, req UpdateUserGroupRequest) (UserGroupResponse, error)
	SoftDelete(ctx context.Context, id string) error

	AddUsers(ctx context.Context, groupID string, req GroupUsersRequest) (UserGroupResponse, error)
	RemoveUsers(ctx context.Context, groupID string, req GroupUsersRequest) (UserGroupResponse, error)
	AddPermissions(ctx context.Context, groupID string, req GroupPermissionsRequest) (UserGroupResponse, error)
	RemovePermissions(ctx context.Context, groupID string, req GroupPermissionsRequest) (UserGroupResponse, error)
}

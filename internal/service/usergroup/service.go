package usergroup

import (
	"context"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/usergroup"
)

type UserGroupServiceImpl struct {
	userGroupRepo usergroup.UserGroupRepository
}

func NewUserGroupService(userGroupRepo usergroup.UserGroupRepository) usergroup.UserGroupService {
	return &UserGroupServiceImpl{userGroupRepo: userGroupRepo}
}

func (s *UserGroupServiceImpl) Create(ctx context.Context, req usergroup.CreateUserGroupRequest) (usergroup.UserGroupResponse, error) {
	if err := req.Validate(); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	created, err := s.userGroupRepo.Create(ctx, usergroup.UserGroup{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if len(req.UserIDs) > 0 {
		if err := s.userGroupRepo.AssignUsers(ctx, created.ID, req.UserIDs); err != nil {
			return usergroup.UserGroupResponse{}, err
		}
		return s.Get(ctx, created.ID)
	}

	return mapToResponse(created), nil
}

func (s *UserGroupServiceImpl) Get(ctx context.Context, id string) (usergroup.UserGroupResponse, error) {
	g, err := s.userGroupRepo.GetByID(ctx, id)
	if err != nil {
		return usergroup.UserGroupResponse{}, err
	}
	return mapToResponse(g), nil
}

func (s *UserGroupServiceImpl) List(ctx context.Context) (usergroup.ListUserGroupResponse, error) {
	groups, total, err := s.userGroupRepo.List(ctx)
	if err != nil {
		return usergroup.ListUserGroupResponse{}, err
	}

	result := make([]usergroup.UserGroupResponse, 0, len(groups))
	for _, g := range groups {
		result = append(result, mapToResponse(g))
	}

	return usergroup.ListUserGroupResponse{Data: result, Total: total}, nil
}

func (s *UserGroupServiceImpl) Update(ctx context.Context, req usergroup.UpdateUserGroupRequest) (usergroup.UserGroupResponse, error) {
	if err := req.Validate(); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if err := s.userGroupRepo.Update(ctx, req); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *UserGroupServiceImpl) SoftDelete(ctx context.Context, id string) error {
	if _, err := s.userGroupRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userGroupRepo.SoftDelete(ctx, id)
}

func (s *UserGroupServiceImpl) AddUsers(ctx context.Context, groupID string, req usergroup.GroupUsersRequest) (usergroup.UserGroupResponse, error) {
	if err := req.Validate(); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if _, err := s.userGroupRepo.GetByID(ctx, groupID); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if err := s.userGroupRepo.AssignUsers(ctx, groupID, req.UserIDs); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	return s.Get(ctx, groupID)
}

func (s *UserGroupServiceImpl) RemoveUsers(ctx context.Context, groupID string, req usergroup.GroupUsersRequest) (usergroup.UserGroupResponse, error) {
	if err := req.Validate(); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if _, err := s.userGroupRepo.GetByID(ctx, groupID); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if err := s.userGroupRepo.UnassignUsers(ctx, groupID, req.UserIDs); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	return s.Get(ctx, groupID)
}

func (s *UserGroupServiceImpl) AddPermissions(ctx context.Context, groupID string, req usergroup.GroupPermissionsRequest) (usergroup.UserGroupResponse, error) {
	if err := req.Validate(); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if _, err := s.userGroupRepo.GetByID(ctx, groupID); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if err := s.userGroupRepo.AddPermissions(ctx, groupID, req.Permissions); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	return s.Get(ctx, groupID)
}

func (s *UserGroupServiceImpl) RemovePermissions(ctx context.Context, groupID string, req usergroup.GroupPermissionsRequest) (usergroup.UserGroupResponse, error) {
	if err := req.Validate(); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if _, err := s.userGroupRepo.GetByID(ctx, groupID); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	if err := s.userGroupRepo.RemovePermissions(ctx, groupID, req.Permissions); err != nil {
		return usergroup.UserGroupResponse{}, err
	}

	return s.Get(ctx, groupID)
}

func mapToResponse(g usergroup.UserGroup) usergroup.UserGroupResponse {
	permissions := g.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	userIDs := g.UserIDs
	if userIDs == nil {
		userIDs = []string{}
	}

	return usergroup.UserGroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Permissions: permissions,
		UserIDs:     userIDs,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   g.UpdatedAt.Format(time.RFC3339),
	}
}

package usergroup

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/usergroup"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserGroupRepo struct {
	groups map[string]usergroup.UserGroup
	nextID int
}

func newFakeUserGroupRepo() *fakeUserGroupRepo {
	return &fakeUserGroupRepo{groups: map[string]usergroup.UserGroup{}}
}

func (f *fakeUserGroupRepo) Create(_ context.Context, g usergroup.UserGroup) (usergroup.UserGroup, error) {
	for _, existing := range f.groups {
		if existing.Name == g.Name {
			return usergroup.UserGroup{}, usergroup.ErrUserGroupNameExists
		}
	}
	f.nextID++
	g.ID = fmt.Sprintf("group-%d", f.nextID)
	if g.Permissions == nil {
		g.Permissions = []string{}
	}
	f.groups[g.ID] = g
	return g, nil
}

func (f *fakeUserGroupRepo) GetByID(_ context.Context, id string) (usergroup.UserGroup, error) {
	g, ok := f.groups[id]
	if !ok {
		return usergroup.UserGroup{}, usergroup.ErrUserGroupNotFound
	}
	return g, nil
}

func (f *fakeUserGroupRepo) List(_ context.Context) ([]usergroup.UserGroup, int64, error) {
	var result []usergroup.UserGroup
	for _, g := range f.groups {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, int64(len(result)), nil
}

func (f *fakeUserGroupRepo) Update(_ context.Context, req usergroup.UpdateUserGroupRequest) error {
	g, ok := f.groups[req.ID]
	if !ok {
		return usergroup.ErrUserGroupNotFound
	}
	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Description != nil {
		g.Description = req.Description
	}
	if req.Permissions != nil {
		g.Permissions = *req.Permissions
	}
	f.groups[req.ID] = g
	return nil
}

func (f *fakeUserGroupRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := f.groups[id]; !ok {
		return usergroup.ErrUserGroupNotFound
	}
	delete(f.groups, id)
	return nil
}

func (f *fakeUserGroupRepo) AssignUsers(_ context.Context, groupID string, userIDs []string) error {
	g, ok := f.groups[groupID]
	if !ok {
		return usergroup.ErrUserGroupNotFound
	}
	for _, id := range userIDs {
		found := false
		for _, existing := range g.UserIDs {
			if existing == id {
				found = true
				break
			}
		}
		if !found {
			g.UserIDs = append(g.UserIDs, id)
		}
	}
	f.groups[groupID] = g
	return nil
}

func (f *fakeUserGroupRepo) UnassignUsers(_ context.Context, groupID string, userIDs []string) error {
	g, ok := f.groups[groupID]
	if !ok {
		return usergroup.ErrUserGroupNotFound
	}
	remaining := g.UserIDs[:0]
	for _, existing := range g.UserIDs {
		keep := true
		for _, id := range userIDs {
			if existing == id {
				keep = false
				break
			}
		}
		if keep {
			remaining = append(remaining, existing)
		}
	}
	g.UserIDs = remaining
	f.groups[groupID] = g
	return nil
}

func (f *fakeUserGroupRepo) AddPermissions(_ context.Context, groupID string, permissions []string) error {
	g, ok := f.groups[groupID]
	if !ok {
		return usergroup.ErrUserGroupNotFound
	}
	for _, p := range permissions {
		found := false
		for _, existing := range g.Permissions {
			if existing == p {
				found = true
				break
			}
		}
		if !found {
			g.Permissions = append(g.Permissions, p)
		}
	}
	sort.Strings(g.Permissions)
	f.groups[groupID] = g
	return nil
}

func (f *fakeUserGroupRepo) RemovePermissions(_ context.Context, groupID string, permissions []string) error {
	g, ok := f.groups[groupID]
	if !ok {
		return usergroup.ErrUserGroupNotFound
	}
	remaining := g.Permissions[:0]
	for _, existing := range g.Permissions {
		keep := true
		for _, p := range permissions {
			if existing == p {
				keep = false
				break
			}
		}
		if keep {
			remaining = append(remaining, existing)
		}
	}
	g.Permissions = remaining
	f.groups[groupID] = g
	return nil
}

func newTestService() (usergroup.UserGroupService, *fakeUserGroupRepo) {
	repo := newFakeUserGroupRepo()
	return NewUserGroupService(repo), repo
}

func TestCreateAssignsInitialUsers(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(context.Background(), usergroup.CreateUserGroupRequest{
		Name:        "Payroll Admins",
		Permissions: []string{"salary-report:read", "salary-report:generate"},
		UserIDs:     []string{"user-1", "user-2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Payroll Admins", resp.Name)
	assert.ElementsMatch(t, []string{"salary-report:read", "salary-report:generate"}, resp.Permissions)
	assert.ElementsMatch(t, []string{"user-1", "user-2"}, resp.UserIDs)
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), usergroup.CreateUserGroupRequest{})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "name")
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), usergroup.CreateUserGroupRequest{Name: "HR Staff"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), usergroup.CreateUserGroupRequest{Name: "HR Staff"})
	assert.ErrorIs(t, err, usergroup.ErrUserGroupNameExists)
}

func TestAddAndRemoveUsers(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), usergroup.CreateUserGroupRequest{Name: "HR Staff"})
	require.NoError(t, err)

	resp, err := svc.AddUsers(context.Background(), created.ID,
		usergroup.GroupUsersRequest{UserIDs: []string{"user-1", "user-2", "user-3"}})
	require.NoError(t, err)
	assert.Len(t, resp.UserIDs, 3)

	resp, err = svc.RemoveUsers(context.Background(), created.ID,
		usergroup.GroupUsersRequest{UserIDs: []string{"user-2"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-1", "user-3"}, resp.UserIDs)
}

func TestAddPermissionsIsIdempotent(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), usergroup.CreateUserGroupRequest{
		Name:        "Viewers",
		Permissions: []string{"employee:read"},
	})
	require.NoError(t, err)

	resp, err := svc.AddPermissions(context.Background(), created.ID,
		usergroup.GroupPermissionsRequest{Permissions: []string{"employee:read", "attendance:read"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"employee:read", "attendance:read"}, resp.Permissions)

	resp, err = svc.RemovePermissions(context.Background(), created.ID,
		usergroup.GroupPermissionsRequest{Permissions: []string{"employee:read"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"attendance:read"}, resp.Permissions)
}

func TestMemberOpsRejectEmptyPayload(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), usergroup.CreateUserGroupRequest{Name: "HR Staff"})
	require.NoError(t, err)

	_, err = svc.AddUsers(context.Background(), created.ID, usergroup.GroupUsersRequest{})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "userIds")

	_, err = svc.AddPermissions(context.Background(), created.ID, usergroup.GroupPermissionsRequest{})
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "permissions")
}

func TestGroupOpsOnUnknownGroup(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddUsers(context.Background(), "group-404",
		usergroup.GroupUsersRequest{UserIDs: []string{"user-1"}})
	assert.ErrorIs(t, err, usergroup.ErrUserGroupNotFound)

	err = svc.SoftDelete(context.Background(), "group-404")
	assert.ErrorIs(t, err, usergroup.ErrUserGroupNotFound)
}

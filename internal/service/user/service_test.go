package user

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/user"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/usergroup"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	user.UserRepository
	users  map[string]user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.UserName == u.UserName {
			return user.User{}, user.ErrUserNameExists
		}
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context, filter user.UserFilter) ([]user.User, int64, error) {
	var result []user.User
	for _, u := range f.users {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(u.FullName), strings.ToLower(filter.Search)) &&
			!strings.Contains(u.UserName, filter.Search) &&
			!strings.Contains(u.Email, filter.Search) {
			continue
		}
		if filter.GroupID != "" && (u.UserGroupID == nil || *u.UserGroupID != filter.GroupID) {
			continue
		}
		result = append(result, u)
	}
	return result, int64(len(result)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, req user.UpdateUserRequest) error {
	u, ok := f.users[req.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.UserName != nil {
		u.UserName = *req.UserName
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.PasswordHash != nil {
		u.PasswordHash = *req.PasswordHash
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.UserGroupID != nil {
		u.UserGroupID = req.UserGroupID
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	f.users[req.ID] = u
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = active
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeGroupLookup struct {
	usergroup.UserGroupRepository
	groups map[string]usergroup.UserGroup
}

func (f *fakeGroupLookup) GetByID(_ context.Context, id string) (usergroup.UserGroup, error) {
	g, ok := f.groups[id]
	if !ok {
		return usergroup.UserGroup{}, usergroup.ErrUserGroupNotFound
	}
	return g, nil
}

func newTestService() (user.UserService, *fakeUserRepo, *fakeGroupLookup) {
	userRepo := newFakeUserRepo()
	groupRepo := &fakeGroupLookup{groups: map[string]usergroup.UserGroup{
		"group-hr": {ID: "group-hr", Name: "HR Staff"},
	}}
	return NewUserService(userRepo, groupRepo), userRepo, groupRepo
}

func createRequest() user.CreateUserRequest {
	return user.CreateUserRequest{
		FullName: "Mona Adel",
		UserName: "mona.adel",
		Email:    "mona.adel@company.com",
		Password: "Secret@123",
	}
}

func TestCreateHashesPasswordAndDefaultsRole(t *testing.T) {
	svc, userRepo, _ := newTestService()

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, string(user.RoleUser), resp.Role)
	assert.True(t, resp.IsActive)

	stored := userRepo.users[resp.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret@123")))
}

func TestCreateWithRoleAndGroup(t *testing.T) {
	svc, _, _ := newTestService()

	req := createRequest()
	role := string(user.RoleAdmin)
	groupID := "group-hr"
	req.Role = &role
	req.UserGroupID = &groupID

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(user.RoleAdmin), resp.Role)
	require.NotNil(t, resp.UserGroupID)
	assert.Equal(t, "group-hr", *resp.UserGroupID)
}

func TestCreateRejectsUnknownGroup(t *testing.T) {
	svc, _, _ := newTestService()

	req := createRequest()
	groupID := "group-missing"
	req.UserGroupID = &groupID

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, usergroup.ErrUserGroupNotFound)
}

func TestCreateRejectsDuplicateUserName(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.Email = "other@company.com"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrUserNameExists)
}

func TestCreateValidatesRequest(t *testing.T) {
	svc, _, _ := newTestService()

	req := createRequest()
	req.Password = "short"
	badRole := "owner"
	req.Role = &badRole

	_, err := svc.Create(context.Background(), req)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "password")
	assert.Contains(t, details, "role")
}

func TestUpdateAssignsRoleAndGroup(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	role := string(user.RoleAdmin)
	groupID := "group-hr"
	resp, err := svc.Update(context.Background(), user.UpdateUserRequest{
		ID:          created.ID,
		Role:        &role,
		UserGroupID: &groupID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(user.RoleAdmin), resp.Role)
	require.NotNil(t, resp.UserGroupID)
	assert.Equal(t, "group-hr", *resp.UserGroupID)
}

func TestUpdateRehashesPassword(t *testing.T) {
	svc, userRepo, _ := newTestService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	oldHash := userRepo.users[created.ID].PasswordHash

	newPassword := "NewSecret@456"
	_, err = svc.Update(context.Background(), user.UpdateUserRequest{
		ID:       created.ID,
		Password: &newPassword,
	})
	require.NoError(t, err)

	newHash := userRepo.users[created.ID].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(newPassword)))
}

func TestToggleStatusFlips(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, toggled.ID)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleStatus(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestListFiltersBySearchAndGroup(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	other := user.CreateUserRequest{
		FullName: "Khaled Samir",
		UserName: "khaled.samir",
		Email:    "khaled.samir@company.com",
		Password: "Secret@123",
	}
	groupID := "group-hr"
	other.UserGroupID = &groupID
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	bySearch, err := svc.List(context.Background(), user.UserFilter{Search: "mona"})
	require.NoError(t, err)
	require.Len(t, bySearch.Data, 1)
	assert.Equal(t, "mona.adel", bySearch.Data[0].UserName)

	byGroup, err := svc.List(context.Background(), user.UserFilter{GroupID: "group-hr"})
	require.NoError(t, err)
	require.Len(t, byGroup.Data, 1)
	assert.Equal(t, "khaled.samir", byGroup.Data[0].UserName)
	assert.EqualValues(t, 1, byGroup.Total)
}

func TestSoftDeleteUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.SoftDelete(context.Background(), "user-404")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

package permission

import (
	"context"
	"fmt"
	"testing"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/permission"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePermissionRepo struct {
	permission.PermissionRepository
	permissions map[string]permission.Permission
	nextID      int
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{permissions: map[string]permission.Permission{}}
}

func (f *fakePermissionRepo) Create(_ context.Context, p permission.Permission) (permission.Permission, error) {
	for _, existing := range f.permissions {
		if existing.Name == p.Name {
			return permission.Permission{}, permission.ErrPermissionExists
		}
	}
	f.nextID++
	p.ID = fmt.Sprintf("perm-%d", f.nextID)
	f.permissions[p.ID] = p
	return p, nil
}

func (f *fakePermissionRepo) GetByID(_ context.Context, id string) (permission.Permission, error) {
	p, ok := f.permissions[id]
	if !ok {
		return permission.Permission{}, permission.ErrPermissionNotFound
	}
	return p, nil
}

func (f *fakePermissionRepo) List(_ context.Context, resource string) ([]permission.Permission, int64, error) {
	var result []permission.Permission
	for _, p := range f.permissions {
		if resource != "" && p.Resource != resource {
			continue
		}
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

func (f *fakePermissionRepo) Update(_ context.Context, req permission.UpdatePermissionRequest) error {
	p, ok := f.permissions[req.ID]
	if !ok {
		return permission.ErrPermissionNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Resource != nil {
		p.Resource = *req.Resource
	}
	if req.Action != nil {
		p.Action = *req.Action
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	f.permissions[req.ID] = p
	return nil
}

func newTestService() (permission.PermissionService, *fakePermissionRepo) {
	repo := newFakePermissionRepo()
	return NewPermissionService(repo), repo
}

func TestCreateRequiresNameResourceAction(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), permission.CreatePermissionRequest{})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "resource")
	assert.Contains(t, details, "action")
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newTestService()

	req := permission.CreatePermissionRequest{Name: "employee:read", Resource: "employee", Action: "read"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, permission.ErrPermissionExists)
}

func TestListFiltersByResource(t *testing.T) {
	svc, _ := newTestService()

	for _, req := range []permission.CreatePermissionRequest{
		{Name: "employee:read", Resource: "employee", Action: "read"},
		{Name: "employee:write", Resource: "employee", Action: "write"},
		{Name: "attendance:read", Resource: "attendance", Action: "read"},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)

	filtered, err := svc.List(context.Background(), "employee")
	require.NoError(t, err)
	require.Len(t, filtered.Data, 2)
	for _, p := range filtered.Data {
		assert.Equal(t, "employee", p.Resource)
	}
}

func TestUpdateChangesAction(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(),
		permission.CreatePermissionRequest{Name: "report:read", Resource: "report", Action: "read"})
	require.NoError(t, err)

	action := "export"
	resp, err := svc.Update(context.Background(), permission.UpdatePermissionRequest{
		ID:     created.ID,
		Action: &action,
	})
	require.NoError(t, err)
	assert.Equal(t, "export", resp.Action)
}

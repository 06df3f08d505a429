package permission

import (
	"context"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/permission"
)

type PermissionServiceImpl struct {
	permissionRepo permission.PermissionRepository
}

func NewPermissionService(permissionRepo permission.PermissionRepository) permission.PermissionService {
	return &PermissionServiceImpl{permissionRepo: permissionRepo}
}

func (s *PermissionServiceImpl) Create(ctx context.Context, req permission.CreatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	created, err := s.permissionRepo.Create(ctx, permission.Permission{
		Name:        req.Name,
		Resource:    req.Resource,
		Action:      req.Action,
		Description: req.Description,
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *PermissionServiceImpl) Get(ctx context.Context, id string) (permission.PermissionResponse, error) {
	p, err := s.permissionRepo.GetByID(ctx, id)
	if err != nil {
		return permission.PermissionResponse{}, err
	}
	return mapToResponse(p), nil
}

func (s *PermissionServiceImpl) List(ctx context.Context, resource string) (permission.ListPermissionResponse, error) {
	permissions, total, err := s.permissionRepo.List(ctx, resource)
	if err != nil {
		return permission.ListPermissionResponse{}, err
	}

	result := make([]permission.PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		result = append(result, mapToResponse(p))
	}

	return permission.ListPermissionResponse{Data: result, Total: total}, nil
}

func (s *PermissionServiceImpl) Update(ctx context.Context, req permission.UpdatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	if err := s.permissionRepo.Update(ctx, req); err != nil {
		return permission.PermissionResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *PermissionServiceImpl) SoftDelete(ctx context.Context, id string) error {
	return s.permissionRepo.SoftDelete(ctx, id)
}

func (s *PermissionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.permissionRepo.Delete(ctx, id)
}

func mapToResponse(p permission.Permission) permission.PermissionResponse {
	return permission.PermissionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Resource:    p.Resource,
		Action:      p.Action,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

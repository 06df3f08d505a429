package department

import (
	"context"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapToResponse(dept), nil
}

func (s *DepartmentServiceImpl) List(ctx context.Context) (department.ListDepartmentResponse, error) {
	departments, total, err := s.departmentRepo.List(ctx)
	if err != nil {
		return department.ListDepartmentResponse{}, err
	}

	result := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		result = append(result, mapToResponse(dept))
	}

	return department.ListDepartmentResponse{Data: result, Total: total}, nil
}

func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.departmentRepo.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *DepartmentServiceImpl) SoftDelete(ctx context.Context, id string) error {
	return s.departmentRepo.SoftDelete(ctx, id)
}

func mapToResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.Format(time.RFC3339),
	}
}

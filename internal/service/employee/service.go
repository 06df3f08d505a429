package employee

import (
	"context"
	"errors"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/department"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByNationalID(ctx, req.NationalID, nil)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrNationalIDExists
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if errors.Is(err, department.ErrDepartmentNotFound) {
		return employee.EmployeeResponse{}, employee.ErrDepartmentNotFound
	}
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	birthDate, _ := time.Parse("2006-01-02", req.BirthDate)
	contractDate, _ := time.Parse("2006-01-02", req.ContractDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:     req.FullName,
		NationalID:   req.NationalID,
		Phone:        req.Phone,
		Address:      req.Address,
		BirthDate:    birthDate,
		Gender:       employee.Gender(req.Gender),
		Nationality:  req.Nationality,
		ContractDate: contractDate,
		BaseSalary:   req.BaseSalary,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		DepartmentID: dept.ID,
		IsActive:     true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created.DepartmentName = &dept.Name
	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 50
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}

	return employee.ListEmployeeResponse{Data: result, Total: total}, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.NationalID != nil && *req.NationalID != current.NationalID {
		exists, err := s.employeeRepo.ExistsByNationalID(ctx, *req.NationalID, &req.ID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrNationalIDExists
		}
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return employee.EmployeeResponse{}, employee.ErrDepartmentNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	// The schedule must stay a valid window after a partial update
	checkIn, checkOut := current.CheckInTime, current.CheckOutTime
	if req.CheckInTime != nil {
		checkIn = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		checkOut = *req.CheckOutTime
	}
	inMins, _ := validator.MinutesOfDay(checkIn)
	outMins, _ := validator.MinutesOfDay(checkOut)
	if outMins <= inMins {
		return employee.EmployeeResponse{}, validator.ValidationErrors{
			{Field: "checkOutTime", Message: "must be after checkInTime"},
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *EmployeeServiceImpl) ToggleStatus(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.SetActive(ctx, id, !emp.IsActive); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *EmployeeServiceImpl) SoftDelete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.SoftDelete(ctx, id)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
		NationalID:     emp.NationalID,
		Phone:          emp.Phone,
		Address:        emp.Address,
		BirthDate:      emp.BirthDate.Format("2006-01-02"),
		Gender:         string(emp.Gender),
		Nationality:    emp.Nationality,
		ContractDate:   emp.ContractDate.Format("2006-01-02"),
		BaseSalary:     emp.BaseSalary,
		CheckInTime:    emp.CheckInTime,
		CheckOutTime:   emp.CheckOutTime,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		IsActive:       emp.IsActive,
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      emp.UpdatedAt.Format(time.RFC3339),
	}
}

package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/department"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	byID   map[string]employee.Employee
	nextID int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	f.byID[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok || emp.DeletedAt != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ExistsByNationalID(_ context.Context, nationalID string, excludeID *string) (bool, error) {
	for _, emp := range f.byID {
		if excludeID != nil && emp.ID == *excludeID {
			continue
		}
		if emp.NationalID == nationalID && emp.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var result []employee.Employee
	for _, emp := range f.byID {
		if emp.DeletedAt == nil {
			result = append(result, emp)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.byID {
		if emp.DeletedAt == nil && emp.IsActive {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := f.byID[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.NationalID != nil {
		emp.NationalID = *req.NationalID
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.CheckInTime != nil {
		emp.CheckInTime = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		emp.CheckOutTime = *req.CheckOutTime
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = *req.DepartmentID
	}
	emp.UpdatedAt = time.Now()
	f.byID[req.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, id string, isActive bool) error {
	emp, ok := f.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = isActive
	f.byID[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	emp, ok := f.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	now := time.Now()
	emp.DeletedAt = &now
	f.byID[id] = emp
	return nil
}

type fakeDepartmentRepo struct {
	byID map[string]department.Department
}

func (f *fakeDepartmentRepo) Create(_ context.Context, dept department.Department) (department.Department, error) {
	f.byID[dept.ID] = dept
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	dept, ok := f.byID[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]department.Department, int64, error) {
	return nil, 0, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, _ department.UpdateDepartmentRequest) error {
	return nil
}

func (f *fakeDepartmentRepo) SoftDelete(_ context.Context, _ string) error { return nil }

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := &fakeDepartmentRepo{byID: map[string]department.Department{
		"dep-1": {ID: "dep-1", Name: "Engineering"},
	}}
	return NewEmployeeService(empRepo, deptRepo), empRepo
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:     "Ahmed Hassan",
		NationalID:   "29801011234567",
		Phone:        "01012345678",
		Address:      "12 Tahrir St, Cairo",
		BirthDate:    "1998-01-01",
		Gender:       "male",
		Nationality:  "Egyptian",
		ContractDate: "2024-03-01",
		BaseSalary:   decimal.NewFromInt(5000),
		CheckInTime:  "09:00",
		CheckOutTime: "17:00",
		DepartmentID: "dep-1",
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.True(t, got.IsActive, "new employees start active")
	require.NotNil(t, got.DepartmentName)
	assert.Equal(t, "Engineering", *got.DepartmentName)
}

func TestCreateRejectsDuplicateNationalID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.FullName = "Mona Adel"
	_, err = svc.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrNationalIDExists)
}

func TestCreateRejectsUnknownDepartment(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.DepartmentID = "dep-missing"
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)
}

func TestCreateRejectsInvertedSchedule(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.CheckInTime = "17:00"
	req.CheckOutTime = "09:00"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "checkOutTime")
}

func TestUpdateRejectsInvertedScheduleAcrossPartialFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Only the check-out moves, to before the existing check-in.
	badOut := "08:00"
	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID, CheckOutTime: &badOut})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "checkOutTime")
}

func TestToggleStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestSoftDeleteHidesEmployee(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	err = svc.SoftDelete(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

package employee

import "context"

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ToggleStatus flips the active flag and returns the updated employee
	ToggleStatus(ctx context.Context, id string) (EmployeeResponse, error)

	// SoftDelete hides the employee from default queries; attendance and
	// salary reports referencing the employee are kept intact
	SoftDelete(ctx context.Context, id string) error
}

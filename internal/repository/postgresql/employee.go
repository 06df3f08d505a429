package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.full_name, e.national_id, e.phone, e.address, e.birth_date,
	e.gender, e.nationality, e.contract_date, e.base_salary,
	to_char(e.check_in_time, 'HH24:MI'), to_char(e.check_out_time, 'HH24:MI'),
	e.department_id, e.is_active, e.created_at, e.updated_at, e.deleted_at,
	d.name AS department_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.NationalID, &emp.Phone, &emp.Address, &emp.BirthDate,
		&emp.Gender, &emp.Nationality, &emp.ContractDate, &emp.BaseSalary,
		&emp.CheckInTime, &emp.CheckOutTime,
		&emp.DepartmentID, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.DepartmentName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			full_name, national_id, phone, address, birth_date, gender,
			nationality, contract_date, base_salary, check_in_time, check_out_time,
			department_id, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::time, $11::time, $12, $13)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		newEmployee.FullName, newEmployee.NationalID, newEmployee.Phone, newEmployee.Address,
		newEmployee.BirthDate, newEmployee.Gender, newEmployee.Nationality, newEmployee.ContractDate,
		newEmployee.BaseSalary, newEmployee.CheckInTime, newEmployee.CheckOutTime,
		newEmployee.DepartmentID, newEmployee.IsActive,
	).Scan(&createdID)
	if err != nil {
		if isUniqueViolation(err, "employees_national_id_key") {
			return employee.Employee{}, employee.ErrNationalIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e.GetByID(ctx, createdID)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !isValidID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// ExistsByNationalID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByNationalID(ctx context.Context, nationalID string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE national_id = $1 AND deleted_at IS NULL
				AND ($2::uuid IS NULL OR id <> $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, nationalID, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check national ID: %w", err)
	}
	return exists, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"e.deleted_at IS NULL"}
	args := []interface{}{}

	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.national_id ILIKE $%d)", len(args), len(args)))
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		args = append(args, *filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "e.is_active = TRUE")
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE %s
		ORDER BY e.full_name
		LIMIT $%d OFFSET $%d
	`, employeeColumns, strings.Join(conditions, " AND "), len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	var total int64
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.NationalID, &emp.Phone, &emp.Address, &emp.BirthDate,
			&emp.Gender, &emp.Nationality, &emp.ContractDate, &emp.BaseSalary,
			&emp.CheckInTime, &emp.CheckOutTime,
			&emp.DepartmentID, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
			&emp.DepartmentName, &total,
		); err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.deleted_at IS NULL AND e.is_active = TRUE
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.NationalID, &emp.Phone, &emp.Address, &emp.BirthDate,
			&emp.Gender, &emp.Nationality, &emp.ContractDate, &emp.BaseSalary,
			&emp.CheckInTime, &emp.CheckOutTime,
			&emp.DepartmentID, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
			&emp.DepartmentName,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET full_name = COALESCE($2, full_name),
			national_id = COALESCE($3, national_id),
			phone = COALESCE($4, phone),
			address = COALESCE($5, address),
			birth_date = COALESCE($6::date, birth_date),
			gender = COALESCE($7, gender),
			nationality = COALESCE($8, nationality),
			contract_date = COALESCE($9::date, contract_date),
			base_salary = COALESCE($10, base_salary),
			check_in_time = COALESCE($11::time, check_in_time),
			check_out_time = COALESCE($12::time, check_out_time),
			department_id = COALESCE($13::uuid, department_id),
			is_active = COALESCE($14, is_active),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.ID, req.FullName, req.NationalID, req.Phone, req.Address, req.BirthDate,
		req.Gender, req.Nationality, req.ContractDate, req.BaseSalary,
		req.CheckInTime, req.CheckOutTime, req.DepartmentID, req.IsActive,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err, "employees_national_id_key") {
			return employee.ErrNationalIDExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// SetActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetActive(ctx context.Context, id string, isActive bool) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, isActive).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set employee status: %w", err)
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

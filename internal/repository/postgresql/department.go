package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/department"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at, deleted_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, dept.Name, dept.Description).Scan(
		&created.ID, &created.Name, &created.Description,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "departments_name_key") {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	if !isValidID(id) {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, description, created_at, updated_at, deleted_at
		FROM departments
		WHERE id = $1 AND deleted_at IS NULL
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.Description,
		&dept.CreatedAt, &dept.UpdatedAt, &dept.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return dept, nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, description, created_at, updated_at, deleted_at,
			COUNT(*) OVER() AS total
		FROM departments
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	var total int64
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(
			&dept.ID, &dept.Name, &dept.Description,
			&dept.CreatedAt, &dept.UpdatedAt, &dept.DeletedAt, &total,
		); err != nil {
			return nil, 0, err
		}
		departments = append(departments, dept)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// Update implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE departments
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.ID, req.Name, req.Description).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ErrDepartmentNotFound
		}
		if isUniqueViolation(err, "departments_name_key") {
			return department.ErrDepartmentNameExists
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	return nil
}

// SoftDelete implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE departments
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

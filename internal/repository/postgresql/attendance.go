package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	to_char(a.check_in, 'HH24:MI'), to_char(a.check_out, 'HH24:MI'),
	a.status, a.late_hours, a.overtime_hours, a.notes,
	a.created_at, a.updated_at, a.deleted_at,
	e.full_name AS employee_name, e.department_id, d.name AS department_name
`

const attendanceJoins = `
	FROM attendance a
	JOIN employees e ON e.id = a.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanAttendance(row pgx.Row, extra ...interface{}) (attendance.Attendance, error) {
	var att attendance.Attendance
	targets := []interface{}{
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckIn, &att.CheckOut,
		&att.Status, &att.LateHours, &att.OvertimeHours, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt, &att.DeletedAt,
		&att.EmployeeName, &att.DepartmentID, &att.DepartmentName,
	}
	targets = append(targets, extra...)
	return att, row.Scan(targets...)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (
			employee_id, date, check_in, check_out, status,
			late_hours, overtime_hours, notes
		) VALUES ($1, $2, $3::time, $4::time, $5, $6, $7, $8)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.CheckIn, att.CheckOut, att.Status,
		att.LateHours, att.OvertimeHours, att.Notes,
	).Scan(&createdID)
	if err != nil {
		if isUniqueViolation(err, "attendance_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a.GetByID(ctx, createdID)
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	if !isValidID(id) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.id = $1 AND a.deleted_at IS NULL
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET date = $2, check_in = $3::time, check_out = $4::time, status = $5,
			late_hours = $6, overtime_hours = $7, notes = $8, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.ID, att.Date, att.CheckIn, att.CheckOut, att.Status,
		att.LateHours, att.OvertimeHours, att.Notes,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		if isUniqueViolation(err, "attendance_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return a.GetByID(ctx, updatedID)
}

// SoftDelete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"a.deleted_at IS NULL"}
	args := []interface{}{}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		args = append(args, "%"+*filter.EmployeeName+"%")
		conditions = append(conditions, fmt.Sprintf("e.full_name ILIKE $%d", len(args)))
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		args = append(args, *filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d::date", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d::date", len(args)))
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		%s
		WHERE %s
		ORDER BY a.date DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, attendanceJoins, strings.Join(conditions, " AND "), len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	var total int64
	for rows.Next() {
		att, err := scanAttendance(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, att)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetStatistics implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetStatistics(ctx context.Context, employeeID string, from, to time.Time) (attendance.Statistics, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'absent'),
			COUNT(*) FILTER (WHERE status = 'holiday'),
			COUNT(*) FILTER (WHERE status = 'sick_leave'),
			COALESCE(SUM(late_hours), 0),
			COALESCE(SUM(overtime_hours), 0)
		FROM attendance
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND deleted_at IS NULL
	`

	var stats attendance.Statistics
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(
		&stats.TotalDays, &stats.PresentDays, &stats.AbsentDays,
		&stats.Holidays, &stats.SickLeave,
		&stats.TotalLateHours, &stats.TotalOvertimeHours,
	)
	if err != nil {
		return attendance.Statistics{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}
	return stats, nil
}

// EmployeeIDsWithRecord implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) EmployeeIDsWithRecord(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id FROM attendance
		WHERE date = $1 AND deleted_at IS NULL
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list recorded employees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

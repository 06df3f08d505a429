package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a record; a duplicate (employee, date) pair yields
	// ErrAttendanceExists via the unique constraint
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	Update(ctx context.Context, att Attendance) (Attendance, error)

	SoftDelete(ctx context.Context, id string) error

	// List retrieves records with filters and pagination, joined with
	// employee and department names
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetStatistics aggregates non-deleted records for one employee over
	// [from, to] inclusive
	GetStatistics(ctx context.Context, employeeID string, from, to time.Time) (Statistics, error)

	// EmployeeIDsWithRecord returns the employees that already have a
	// record on the given date. Used by the absence-marking job.
	EmployeeIDsWithRecord(ctx context.Context, date time.Time) ([]string, error)
}

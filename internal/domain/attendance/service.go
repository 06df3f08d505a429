package attendance

import (
	"context"
	"io"
)

// AttendanceService defines business logic for attendance records
type AttendanceService interface {
	// Create classifies and persists one employee-day record. Weekend and
	// official-holiday dates classify as holiday regardless of punches.
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// Update applies partial changes and recomputes late/overtime hours
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	SoftDelete(ctx context.Context, id string) error

	Search(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetStatistics aggregates one employee's records for a month
	GetStatistics(ctx context.Context, employeeID string, month, year int) (StatisticsResponse, error)

	// ExportExcel writes the filtered records as an .xlsx workbook
	ExportExcel(ctx context.Context, filter AttendanceFilter, w io.Writer) error

	// ImportExcel reads an .xlsx workbook and creates records row by row,
	// collecting per-row failures instead of aborting
	ImportExcel(ctx context.Context, r io.Reader) (ImportResult, error)
}

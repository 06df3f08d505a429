package salaryreport

import "context"

type SalaryReportRepository interface {
	// Create inserts a report; a duplicate (employee, month, year) triple
	// yields ErrReportAlreadyExists via the unique constraint
	Create(ctx context.Context, report SalaryReport) (SalaryReport, error)

	GetByID(ctx context.Context, id string) (SalaryReport, error)

	List(ctx context.Context, req SearchReportRequest) ([]SalaryReport, int64, error)

	Delete(ctx context.Context, id string) error

	// DeleteByEmployeePeriod removes an existing report for the period if
	// any; used by regeneration inside a transaction
	DeleteByEmployeePeriod(ctx context.Context, employeeID string, month, year int) error

	GetSummary(ctx context.Context, month, year int) (Summary, error)
}

package salaryreport

import "context"

// SalaryReportService defines the payroll report engine
type SalaryReportService interface {
	// Generate computes and stores one report. A report that already
	// exists for the period fails with ErrReportAlreadyExists; use
	// Regenerate to replace it.
	Generate(ctx context.Context, req GenerateReportRequest) (SalaryReportResponse, error)

	// Regenerate deletes any existing report for the period and creates a
	// fresh one in a single transaction.
	Regenerate(ctx context.Context, req GenerateReportRequest) (SalaryReportResponse, error)

	// GenerateAll fans out Generate across all active employees; a single
	// employee's failure lands in the failed list and never aborts the
	// batch.
	GenerateAll(ctx context.Context, req BulkGenerateRequest) (BulkGenerateResponse, error)

	Get(ctx context.Context, id string) (SalaryReportResponse, error)
	Search(ctx context.Context, req SearchReportRequest) (ListReportResponse, error)
	Delete(ctx context.Context, id string) error
	GetSummary(ctx context.Context, month, year int) (SummaryResponse, error)
	GetForPrint(ctx context.Context, id string) (PrintResponse, error)
}

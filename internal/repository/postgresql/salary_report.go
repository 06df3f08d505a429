package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/salaryreport"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryReportRepositoryImpl struct {
	db *database.DB
}

func NewSalaryReportRepository(db *database.DB) salaryreport.SalaryReportRepository {
	return &salaryReportRepositoryImpl{db: db}
}

const salaryReportColumns = `
	r.id, r.employee_id, r.month, r.year, r.base_salary,
	r.days_present, r.days_absent, r.holidays, r.sick_leave,
	r.overtime_hours, r.late_hours, r.overtime_amount, r.deduction_amount,
	r.net_salary, r.created_at, r.updated_at,
	e.full_name AS employee_name, e.national_id, e.department_id, d.name AS department_name
`

const salaryReportJoins = `
	FROM salary_reports r
	JOIN employees e ON e.id = r.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanSalaryReport(row pgx.Row, extra ...interface{}) (salaryreport.SalaryReport, error) {
	var report salaryreport.SalaryReport
	targets := []interface{}{
		&report.ID, &report.EmployeeID, &report.Month, &report.Year, &report.BaseSalary,
		&report.DaysPresent, &report.DaysAbsent, &report.Holidays, &report.SickLeave,
		&report.OvertimeHours, &report.LateHours, &report.OvertimeAmount, &report.DeductionAmount,
		&report.NetSalary, &report.CreatedAt, &report.UpdatedAt,
		&report.EmployeeName, &report.NationalID, &report.DepartmentID, &report.DepartmentName,
	}
	targets = append(targets, extra...)
	return report, row.Scan(targets...)
}

// Create implements salaryreport.SalaryReportRepository.
func (s *salaryReportRepositoryImpl) Create(ctx context.Context, report salaryreport.SalaryReport) (salaryreport.SalaryReport, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salary_reports (
			employee_id, month, year, base_salary,
			days_present, days_absent, holidays, sick_leave,
			overtime_hours, late_hours, overtime_amount, deduction_amount, net_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		report.EmployeeID, report.Month, report.Year, report.BaseSalary,
		report.DaysPresent, report.DaysAbsent, report.Holidays, report.SickLeave,
		report.OvertimeHours, report.LateHours, report.OvertimeAmount, report.DeductionAmount,
		report.NetSalary,
	).Scan(&createdID)
	if err != nil {
		if isUniqueViolation(err, "salary_reports_employee_id_month_year_key") {
			return salaryreport.SalaryReport{}, salaryreport.ErrReportAlreadyExists
		}
		return salaryreport.SalaryReport{}, fmt.Errorf("failed to create salary report: %w", err)
	}

	return s.GetByID(ctx, createdID)
}

// GetByID implements salaryreport.SalaryReportRepository.
func (s *salaryReportRepositoryImpl) GetByID(ctx context.Context, id string) (salaryreport.SalaryReport, error) {
	if !isValidID(id) {
		return salaryreport.SalaryReport{}, salaryreport.ErrReportNotFound
	}
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + salaryReportColumns + salaryReportJoins + `
		WHERE r.id = $1
	`

	report, err := scanSalaryReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salaryreport.SalaryReport{}, salaryreport.ErrReportNotFound
		}
		return salaryreport.SalaryReport{}, fmt.Errorf("failed to get salary report: %w", err)
	}
	return report, nil
}

// List implements salaryreport.SalaryReportRepository.
func (s *salaryReportRepositoryImpl) List(ctx context.Context, req salaryreport.SearchReportRequest) ([]salaryreport.SalaryReport, int64, error) {
	q := GetQuerier(ctx, s.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}

	if req.EmployeeID != nil && *req.EmployeeID != "" {
		args = append(args, *req.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", len(args)))
	}
	if req.Month != nil {
		args = append(args, *req.Month)
		conditions = append(conditions, fmt.Sprintf("r.month = $%d", len(args)))
	}
	if req.Year != nil {
		args = append(args, *req.Year)
		conditions = append(conditions, fmt.Sprintf("r.year = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		%s
		WHERE %s
		ORDER BY r.year DESC, r.month DESC, e.full_name
	`, salaryReportColumns, salaryReportJoins, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary reports: %w", err)
	}
	defer rows.Close()

	var reports []salaryreport.SalaryReport
	var total int64
	for rows.Next() {
		report, err := scanSalaryReport(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, report)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// Delete implements salaryreport.SalaryReportRepository.
func (s *salaryReportRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	query := `DELETE FROM salary_reports WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salaryreport.ErrReportNotFound
		}
		return fmt.Errorf("failed to delete salary report: %w", err)
	}
	return nil
}

// DeleteByEmployeePeriod implements salaryreport.SalaryReportRepository.
// Deleting a period that has no report is not an error; regeneration calls
// this unconditionally.
func (s *salaryReportRepositoryImpl) DeleteByEmployeePeriod(ctx context.Context, employeeID string, month, year int) error {
	q := GetQuerier(ctx, s.db)

	query := `DELETE FROM salary_reports WHERE employee_id = $1 AND month = $2 AND year = $3`

	if _, err := q.Exec(ctx, query, employeeID, month, year); err != nil {
		return fmt.Errorf("failed to delete salary report for period: %w", err)
	}
	return nil
}

// GetSummary implements salaryreport.SalaryReportRepository.
func (s *salaryReportRepositoryImpl) GetSummary(ctx context.Context, month, year int) (salaryreport.Summary, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(base_salary), 0),
			COALESCE(SUM(overtime_amount), 0),
			COALESCE(SUM(deduction_amount), 0),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(overtime_hours), 0),
			COALESCE(SUM(late_hours), 0),
			COALESCE(SUM(days_present), 0),
			COALESCE(SUM(days_absent), 0)
		FROM salary_reports
		WHERE month = $1 AND year = $2
	`

	summary := salaryreport.Summary{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.TotalEmployees, &summary.TotalBaseSalary,
		&summary.TotalOvertimeAmount, &summary.TotalDeductionAmount,
		&summary.TotalNetSalary, &summary.TotalOvertimeHours, &summary.TotalLateHours,
		&summary.TotalDaysPresent, &summary.TotalDaysAbsent,
	)
	if err != nil {
		return salaryreport.Summary{}, fmt.Errorf("failed to aggregate salary reports: %w", err)
	}
	return summary, nil
}

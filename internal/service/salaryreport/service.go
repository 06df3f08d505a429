package salaryreport

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/salaryreport"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"golang.org/x/sync/errgroup"
)

// bulkConcurrency bounds the fan-out of GenerateAll.
const bulkConcurrency = 8

type SalaryReportServiceImpl struct {
	reportRepo     salaryreport.SalaryReportRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	settingService setting.SettingService
	transactor     database.Transactor
}

func NewSalaryReportService(
	reportRepo salaryreport.SalaryReportRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingService setting.SettingService,
	transactor database.Transactor,
) salaryreport.SalaryReportService {
	return &SalaryReportServiceImpl{
		reportRepo:     reportRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingService: settingService,
		transactor:     transactor,
	}
}

func (s *SalaryReportServiceImpl) Generate(ctx context.Context, req salaryreport.GenerateReportRequest) (salaryreport.SalaryReportResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryreport.SalaryReportResponse{}, err
	}
	return s.generate(ctx, req)
}

func (s *SalaryReportServiceImpl) Regenerate(ctx context.Context, req salaryreport.GenerateReportRequest) (salaryreport.SalaryReportResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryreport.SalaryReportResponse{}, err
	}

	var result salaryreport.SalaryReportResponse
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.reportRepo.DeleteByEmployeePeriod(ctx, req.EmployeeID, req.Month, req.Year); err != nil {
			return err
		}
		var err error
		result, err = s.generate(ctx, req)
		return err
	})
	if err != nil {
		return salaryreport.SalaryReportResponse{}, err
	}
	return result, nil
}

func (s *SalaryReportServiceImpl) GenerateAll(ctx context.Context, req salaryreport.BulkGenerateRequest) (salaryreport.BulkGenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryreport.BulkGenerateResponse{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return salaryreport.BulkGenerateResponse{}, fmt.Errorf("failed to load active employees: %w", err)
	}

	result := salaryreport.BulkGenerateResponse{
		Success: []salaryreport.BulkSuccessEntry{},
		Failed:  []salaryreport.BulkFailedEntry{},
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)

	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			report, err := s.Generate(ctx, salaryreport.GenerateReportRequest{
				EmployeeID: emp.ID,
				Month:      req.Month,
				Year:       req.Year,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// Per-employee failures land in the failed list and
				// never abort the batch.
				result.Failed = append(result.Failed, salaryreport.BulkFailedEntry{
					EmployeeID:   emp.ID,
					EmployeeName: emp.FullName,
					Error:        err.Error(),
				})
				return nil
			}
			result.Success = append(result.Success, salaryreport.BulkSuccessEntry{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				Report:       report,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return salaryreport.BulkGenerateResponse{}, err
	}

	sort.Slice(result.Success, func(i, j int) bool {
		return result.Success[i].EmployeeName < result.Success[j].EmployeeName
	})
	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].EmployeeName < result.Failed[j].EmployeeName
	})

	return result, nil
}

func (s *SalaryReportServiceImpl) Get(ctx context.Context, id string) (salaryreport.SalaryReportResponse, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return salaryreport.SalaryReportResponse{}, err
	}
	return mapToResponse(report), nil
}

func (s *SalaryReportServiceImpl) Search(ctx context.Context, req salaryreport.SearchReportRequest) (salaryreport.ListReportResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryreport.ListReportResponse{}, err
	}

	reports, total, err := s.reportRepo.List(ctx, req)
	if err != nil {
		return salaryreport.ListReportResponse{}, err
	}

	result := make([]salaryreport.SalaryReportResponse, 0, len(reports))
	for _, report := range reports {
		result = append(result, mapToResponse(report))
	}

	return salaryreport.ListReportResponse{Data: result, Total: total}, nil
}

func (s *SalaryReportServiceImpl) Delete(ctx context.Context, id string) error {
	return s.reportRepo.Delete(ctx, id)
}

func (s *SalaryReportServiceImpl) GetSummary(ctx context.Context, month, year int) (salaryreport.SummaryResponse, error) {
	if errs := validatePeriodValues(month, year); errs != nil {
		return salaryreport.SummaryResponse{}, errs
	}

	summary, err := s.reportRepo.GetSummary(ctx, month, year)
	if err != nil {
		return salaryreport.SummaryResponse{}, fmt.Errorf("failed to aggregate salary summary: %w", err)
	}

	return salaryreport.SummaryResponse{
		Month:                month,
		Year:                 year,
		TotalEmployees:       summary.TotalEmployees,
		TotalBaseSalary:      summary.TotalBaseSalary,
		TotalOvertimeAmount:  summary.TotalOvertimeAmount,
		TotalDeductionAmount: summary.TotalDeductionAmount,
		TotalNetSalary:       summary.TotalNetSalary,
		TotalOvertimeHours:   summary.TotalOvertimeHours,
		TotalLateHours:       summary.TotalLateHours,
		TotalDaysPresent:     summary.TotalDaysPresent,
		TotalDaysAbsent:      summary.TotalDaysAbsent,
	}, nil
}

func (s *SalaryReportServiceImpl) GetForPrint(ctx context.Context, id string) (salaryreport.PrintResponse, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return salaryreport.PrintResponse{}, err
	}

	return salaryreport.PrintResponse{
		EmployeeName:    derefOr(report.EmployeeName, ""),
		NationalID:      derefOr(report.NationalID, ""),
		Department:      derefOr(report.DepartmentName, ""),
		Month:           report.Month,
		Year:            report.Year,
		BaseSalary:      report.BaseSalary,
		DaysPresent:     report.DaysPresent,
		DaysAbsent:      report.DaysAbsent,
		OvertimeHours:   report.OvertimeHours,
		LateHours:       report.LateHours,
		OvertimeAmount:  report.OvertimeAmount,
		DeductionAmount: report.DeductionAmount,
		NetSalary:       report.NetSalary,
		GeneratedDate:   report.CreatedAt.Format("2006-01-02"),
	}, nil
}

// generate computes and persists one report. Callers validate the request
// first.
func (s *SalaryReportServiceImpl) generate(ctx context.Context, req salaryreport.GenerateReportRequest) (salaryreport.SalaryReportResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return salaryreport.SalaryReportResponse{}, err
	}
	if !emp.IsActive {
		return salaryreport.SalaryReportResponse{}, employee.ErrEmployeeNotActive
	}

	settings, err := s.settingService.Resolve(ctx)
	if err != nil {
		return salaryreport.SalaryReportResponse{}, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	stats, err := s.attendanceRepo.GetStatistics(ctx, emp.ID, from, to)
	if err != nil {
		return salaryreport.SalaryReportResponse{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	overtimeAmount := stats.TotalOvertimeHours.Mul(settings.OvertimeRatePerHour).Round(2)
	deductionAmount := stats.TotalLateHours.Mul(settings.DeductionRatePerHour).Round(2)
	netSalary := emp.BaseSalary.Add(overtimeAmount).Sub(deductionAmount).Round(2)

	created, err := s.reportRepo.Create(ctx, salaryreport.SalaryReport{
		EmployeeID:      emp.ID,
		Month:           req.Month,
		Year:            req.Year,
		BaseSalary:      emp.BaseSalary,
		DaysPresent:     stats.PresentDays,
		DaysAbsent:      stats.AbsentDays,
		Holidays:        stats.Holidays,
		SickLeave:       stats.SickLeave,
		OvertimeHours:   stats.TotalOvertimeHours,
		LateHours:       stats.TotalLateHours,
		OvertimeAmount:  overtimeAmount,
		DeductionAmount: deductionAmount,
		NetSalary:       netSalary,
	})
	if err != nil {
		return salaryreport.SalaryReportResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	created.NationalID = &emp.NationalID
	if emp.DepartmentID != "" {
		created.DepartmentID = &emp.DepartmentID
	}
	created.DepartmentName = emp.DepartmentName

	return mapToResponse(created), nil
}

func validatePeriodValues(month, year int) error {
	req := salaryreport.BulkGenerateRequest{Month: month, Year: year}
	return req.Validate()
}

func mapToResponse(report salaryreport.SalaryReport) salaryreport.SalaryReportResponse {
	emp := salaryreport.ReportEmployee{
		ID:         report.EmployeeID,
		FullName:   derefOr(report.EmployeeName, ""),
		NationalID: derefOr(report.NationalID, ""),
	}
	if report.DepartmentID != nil {
		emp.Department = &salaryreport.ReportDepartment{
			ID:   *report.DepartmentID,
			Name: derefOr(report.DepartmentName, ""),
		}
	}

	return salaryreport.SalaryReportResponse{
		ID:              report.ID,
		Employee:        emp,
		Month:           report.Month,
		Year:            report.Year,
		BaseSalary:      report.BaseSalary,
		DaysPresent:     report.DaysPresent,
		DaysAbsent:      report.DaysAbsent,
		Holidays:        report.Holidays,
		SickLeave:       report.SickLeave,
		OvertimeHours:   report.OvertimeHours,
		LateHours:       report.LateHours,
		OvertimeAmount:  report.OvertimeAmount,
		DeductionAmount: report.DeductionAmount,
		NetSalary:       report.NetSalary,
		CreatedAt:       report.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       report.UpdatedAt.Format(time.RFC3339),
	}
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

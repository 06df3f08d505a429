package salaryreport

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/salaryreport"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	settingsvc "github.com/MohamedSalah50/hr-backend-go/internal/service/setting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string]salaryreport.SalaryReport
	nextID  int
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]salaryreport.SalaryReport)}
}

func (f *fakeReportRepo) Create(_ context.Context, report salaryreport.SalaryReport) (salaryreport.SalaryReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.reports {
		if existing.EmployeeID == report.EmployeeID && existing.Month == report.Month && existing.Year == report.Year {
			return salaryreport.SalaryReport{}, salaryreport.ErrReportAlreadyExists
		}
	}
	f.nextID++
	report.ID = fmt.Sprintf("rep-%d", f.nextID)
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	f.reports[report.ID] = report
	return report, nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id string) (salaryreport.SalaryReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	report, ok := f.reports[id]
	if !ok {
		return salaryreport.SalaryReport{}, salaryreport.ErrReportNotFound
	}
	return report, nil
}

func (f *fakeReportRepo) List(_ context.Context, req salaryreport.SearchReportRequest) ([]salaryreport.SalaryReport, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []salaryreport.SalaryReport
	for _, report := range f.reports {
		if req.EmployeeID != nil && report.EmployeeID != *req.EmployeeID {
			continue
		}
		if req.Month != nil && report.Month != *req.Month {
			continue
		}
		if req.Year != nil && report.Year != *req.Year {
			continue
		}
		result = append(result, report)
	}
	return result, int64(len(result)), nil
}

func (f *fakeReportRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reports[id]; !ok {
		return salaryreport.ErrReportNotFound
	}
	delete(f.reports, id)
	return nil
}

func (f *fakeReportRepo) DeleteByEmployeePeriod(_ context.Context, employeeID string, month, year int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, report := range f.reports {
		if report.EmployeeID == employeeID && report.Month == month && report.Year == year {
			delete(f.reports, id)
		}
	}
	return nil
}

func (f *fakeReportRepo) GetSummary(_ context.Context, month, year int) (salaryreport.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	summary := salaryreport.Summary{
		Month:                month,
		Year:                 year,
		TotalBaseSalary:      decimal.Zero,
		TotalOvertimeAmount:  decimal.Zero,
		TotalDeductionAmount: decimal.Zero,
		TotalNetSalary:       decimal.Zero,
		TotalOvertimeHours:   decimal.Zero,
		TotalLateHours:       decimal.Zero,
	}
	for _, report := range f.reports {
		if report.Month != month || report.Year != year {
			continue
		}
		summary.TotalEmployees++
		summary.TotalBaseSalary = summary.TotalBaseSalary.Add(report.BaseSalary)
		summary.TotalOvertimeAmount = summary.TotalOvertimeAmount.Add(report.OvertimeAmount)
		summary.TotalDeductionAmount = summary.TotalDeductionAmount.Add(report.DeductionAmount)
		summary.TotalNetSalary = summary.TotalNetSalary.Add(report.NetSalary)
		summary.TotalOvertimeHours = summary.TotalOvertimeHours.Add(report.OvertimeHours)
		summary.TotalLateHours = summary.TotalLateHours.Add(report.LateHours)
		summary.TotalDaysPresent += report.DaysPresent
		summary.TotalDaysAbsent += report.DaysAbsent
	}
	return summary, nil
}

type fakeAttendanceStats struct {
	attendance.AttendanceRepository
	byEmployee map[string]attendance.Statistics
}

func (f *fakeAttendanceStats) GetStatistics(_ context.Context, employeeID string, _, _ time.Time) (attendance.Statistics, error) {
	stats, ok := f.byEmployee[employeeID]
	if !ok {
		return attendance.Statistics{
			TotalLateHours:     decimal.Zero,
			TotalOvertimeHours: decimal.Zero,
		}, nil
	}
	return stats, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.byID {
		if emp.IsActive {
			result = append(result, emp)
		}
	}
	return result, nil
}

type fakeSettingRepo struct {
	byKey map[string]setting.Setting
}

func (f *fakeSettingRepo) Upsert(_ context.Context, s setting.Setting) (setting.Setting, error) {
	if f.byKey == nil {
		f.byKey = make(map[string]setting.Setting)
	}
	f.byKey[s.Key] = s
	return s, nil
}

func (f *fakeSettingRepo) GetByKey(_ context.Context, key string) (setting.Setting, error) {
	s, ok := f.byKey[key]
	if !ok {
		return setting.Setting{}, setting.ErrSettingNotFound
	}
	return s, nil
}

func (f *fakeSettingRepo) List(_ context.Context) ([]setting.Setting, int64, error) {
	return nil, 0, nil
}

func (f *fakeSettingRepo) Delete(_ context.Context, _ string) error { return nil }

type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc        salaryreport.SalaryReportService
	reportRepo *fakeReportRepo
	stats      *fakeAttendanceStats
	employees  *fakeEmployeeRepo
}

func newFixture(emps ...employee.Employee) *fixture {
	empRepo := &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
	for _, emp := range emps {
		empRepo.byID[emp.ID] = emp
	}
	reportRepo := newFakeReportRepo()
	stats := &fakeAttendanceStats{byEmployee: make(map[string]attendance.Statistics)}
	svc := NewSalaryReportService(
		reportRepo,
		stats,
		empRepo,
		settingsvc.NewSettingService(&fakeSettingRepo{}),
		passthroughTransactor{},
	)
	return &fixture{svc: svc, reportRepo: reportRepo, stats: stats, employees: empRepo}
}

func activeEmployee(id, name string) employee.Employee {
	return employee.Employee{
		ID:           id,
		FullName:     name,
		NationalID:   "29801011234567",
		BaseSalary:   decimal.NewFromInt(5000),
		CheckInTime:  "09:00",
		CheckOutTime: "17:00",
		DepartmentID: "dep-1",
		IsActive:     true,
	}
}

func TestGenerateComputesNetSalary(t *testing.T) {
	fx := newFixture(activeEmployee("emp-1", "Ahmed Hassan"))
	fx.stats.byEmployee["emp-1"] = attendance.Statistics{
		PresentDays:        20,
		AbsentDays:         2,
		TotalLateHours:     decimal.RequireFromString("2.5"),
		TotalOvertimeHours: decimal.RequireFromString("4"),
	}

	got, err := fx.svc.Generate(context.Background(), salaryreport.GenerateReportRequest{
		EmployeeID: "emp-1", Month: 1, Year: 2026,
	})
	require.NoError(t, err)

	// overtime 4h x 50 = 200, deduction 2.5h x 30 = 75, net 5000 + 200 - 75.
	assert.Equal(t, "200.00", got.OvertimeAmount.StringFixed(2))
	assert.Equal(t, "75.00", got.DeductionAmount.StringFixed(2))
	assert.Equal(t, "5125.00", got.NetSalary.StringFixed(2))
	assert.Equal(t, 20, got.DaysPresent)
	assert.Equal(t, 2, got.DaysAbsent)
	assert.Equal(t, "Ahmed Hassan", got.Employee.FullName)
	require.NotNil(t, got.Employee.Department)
	assert.Equal(t, "dep-1", got.Employee.Department.ID)
}

func TestGenerateUsesStoredRates(t *testing.T) {
	fx := newFixture(activeEmployee("emp-1", "Ahmed Hassan"))
	fx.stats.byEmployee["emp-1"] = attendance.Statistics{
		TotalLateHours:     decimal.NewFromInt(1),
		TotalOvertimeHours: decimal.NewFromInt(1),
	}

	settingService := settingsvc.NewSettingService(&fakeSettingRepo{})
	_, err := settingService.SaveOvertimeDeduction(context.Background(), setting.OvertimeDeductionSettings{
		OvertimeRatePerHour:  decimal.NewFromInt(100),
		DeductionRatePerHour: decimal.NewFromInt(20),
		WorkingHoursPerDay:   8,
	})
	require.NoError(t, err)

	svc := NewSalaryReportService(fx.reportRepo, fx.stats, fx.employees, settingService, passthroughTransactor{})
	got, err := svc.Generate(context.Background(), salaryreport.GenerateReportRequest{
		EmployeeID: "emp-1", Month: 1, Year: 2026,
	})
	require.NoError(t, err)

	assert.Equal(t, "100.00", got.OvertimeAmount.StringFixed(2))
	assert.Equal(t, "20.00", got.DeductionAmount.StringFixed(2))
	assert.Equal(t, "5080.00", got.NetSalary.StringFixed(2))
}

func TestGenerateRejectsDuplicatePeriod(t *testing.T) {
	fx := newFixture(activeEmployee("emp-1", "Ahmed Hassan"))
	ctx := context.Background()
	req := salaryreport.GenerateReportRequest{EmployeeID: "emp-1", Month: 1, Year: 2026}

	_, err := fx.svc.Generate(ctx, req)
	require.NoError(t, err)

	_, err = fx.svc.Generate(ctx, req)
	assert.ErrorIs(t, err, salaryreport.ErrReportAlreadyExists)
}

func TestGenerateRejectsInactiveEmployee(t *testing.T) {
	emp := activeEmployee("emp-1", "Ahmed Hassan")
	emp.IsActive = false
	fx := newFixture(emp)

	_, err := fx.svc.Generate(context.Background(), salaryreport.GenerateReportRequest{
		EmployeeID: "emp-1", Month: 1, Year: 2026,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotActive)
}

func TestGenerateRejectsYearBefore2008(t *testing.T) {
	fx := newFixture(activeEmployee("emp-1", "Ahmed Hassan"))

	_, err := fx.svc.Generate(context.Background(), salaryreport.GenerateReportRequest{
		EmployeeID: "emp-1", Month: 1, Year: 2007,
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "year")
}

func TestRegenerateReplacesExistingReport(t *testing.T) {
	fx := newFixture(activeEmployee("emp-1", "Ahmed Hassan"))
	ctx := context.Background()
	req := salaryreport.GenerateReportRequest{EmployeeID: "emp-1", Month: 1, Year: 2026}

	first, err := fx.svc.Generate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "5000.00", first.NetSalary.StringFixed(2))

	// Attendance changed since the first run.
	fx.stats.byEmployee["emp-1"] = attendance.Statistics{
		TotalOvertimeHours: decimal.NewFromInt(2),
		TotalLateHours:     decimal.Zero,
	}

	second, err := fx.svc.Regenerate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "5100.00", second.NetSalary.StringFixed(2))
	assert.NotEqual(t, first.ID, second.ID)

	_, err = fx.svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, salaryreport.ErrReportNotFound)
}

func TestGenerateAllSplitsSuccessAndFailed(t *testing.T) {
	fx := newFixture(
		activeEmployee("emp-1", "Ahmed Hassan"),
		activeEmployee("emp-2", "Mona Adel"),
		activeEmployee("emp-3", "Omar Said"),
	)
	ctx := context.Background()

	// emp-2 already has a report for the period, so the bulk run fails it.
	_, err := fx.svc.Generate(ctx, salaryreport.GenerateReportRequest{EmployeeID: "emp-2", Month: 3, Year: 2026})
	require.NoError(t, err)

	result, err := fx.svc.GenerateAll(ctx, salaryreport.BulkGenerateRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.Len(t, result.Success, 2)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "emp-2", result.Failed[0].EmployeeID)
	assert.Equal(t, "Mona Adel", result.Failed[0].EmployeeName)
}

func TestGenerateAllSkipsInactiveEmployees(t *testing.T) {
	inactive := activeEmployee("emp-9", "Laila Fathy")
	inactive.IsActive = false
	fx := newFixture(activeEmployee("emp-1", "Ahmed Hassan"), inactive)

	result, err := fx.svc.GenerateAll(context.Background(), salaryreport.BulkGenerateRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.Len(t, result.Success, 1)
	assert.Empty(t, result.Failed)
}

func TestGetSummaryAggregatesPeriod(t *testing.T) {
	fx := newFixture(
		activeEmployee("emp-1", "Ahmed Hassan"),
		activeEmployee("emp-2", "Mona Adel"),
	)
	ctx := context.Background()
	fx.stats.byEmployee["emp-1"] = attendance.Statistics{
		PresentDays:        20,
		TotalOvertimeHours: decimal.NewFromInt(2),
		TotalLateHours:     decimal.Zero,
	}
	fx.stats.byEmployee["emp-2"] = attendance.Statistics{
		PresentDays:    18,
		AbsentDays:     3,
		TotalLateHours: decimal.NewFromInt(1),
	}

	_, err := fx.svc.GenerateAll(ctx, salaryreport.BulkGenerateRequest{Month: 4, Year: 2026})
	require.NoError(t, err)

	summary, err := fx.svc.GetSummary(ctx, 4, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Equal(t, "10000.00", summary.TotalBaseSalary.StringFixed(2))
	assert.Equal(t, "100.00", summary.TotalOvertimeAmount.StringFixed(2))
	assert.Equal(t, "30.00", summary.TotalDeductionAmount.StringFixed(2))
	assert.Equal(t, "10070.00", summary.TotalNetSalary.StringFixed(2))
	assert.Equal(t, 38, summary.TotalDaysPresent)
	assert.Equal(t, 3, summary.TotalDaysAbsent)
}

func TestGetForPrintFlattensReport(t *testing.T) {
	fx := newFixture(activeEmployee("emp-1", "Ahmed Hassan"))
	ctx := context.Background()

	created, err := fx.svc.Generate(ctx, salaryreport.GenerateReportRequest{EmployeeID: "emp-1", Month: 5, Year: 2026})
	require.NoError(t, err)

	// The fake store does not join employee fields; patch them the way
	// the SQL layer would.
	report, err := fx.reportRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	name, dept := "Ahmed Hassan", "Engineering"
	report.EmployeeName = &name
	report.DepartmentName = &dept
	fx.reportRepo.reports[report.ID] = report

	printable, err := fx.svc.GetForPrint(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Ahmed Hassan", printable.EmployeeName)
	assert.Equal(t, "Engineering", printable.Department)
	assert.Equal(t, 5, printable.Month)
	assert.Equal(t, "5000.00", printable.NetSalary.StringFixed(2))
	assert.NotEmpty(t, printable.GeneratedDate)
}

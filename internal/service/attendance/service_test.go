package attendance

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/holiday"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
	settingsvc "github.com/MohamedSalah50/hr-backend-go/internal/service/setting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) && existing.DeletedAt == nil {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok || att.DeletedAt != nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if _, ok := f.records[att.ID]; !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	att.UpdatedAt = time.Now()
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) SoftDelete(_ context.Context, id string) error {
	att, ok := f.records[id]
	if !ok || att.DeletedAt != nil {
		return attendance.ErrAttendanceNotFound
	}
	now := time.Now()
	att.DeletedAt = &now
	f.records[id] = att
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var result []attendance.Attendance
	for _, att := range f.records {
		if att.DeletedAt != nil {
			continue
		}
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		result = append(result, att)
	}
	return result, int64(len(result)), nil
}

func (f *fakeAttendanceRepo) GetStatistics(_ context.Context, employeeID string, from, to time.Time) (attendance.Statistics, error) {
	stats := attendance.Statistics{
		TotalLateHours:     decimal.Zero,
		TotalOvertimeHours: decimal.Zero,
	}
	for _, att := range f.records {
		if att.DeletedAt != nil || att.EmployeeID != employeeID {
			continue
		}
		if att.Date.Before(from) || att.Date.After(to) {
			continue
		}
		switch att.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusHoliday:
			stats.Holidays++
		case attendance.StatusSickLeave:
			stats.SickLeave++
		}
		stats.TotalLateHours = stats.TotalLateHours.Add(att.LateHours)
		stats.TotalOvertimeHours = stats.TotalOvertimeHours.Add(att.OvertimeHours)
	}
	return stats, nil
}

func (f *fakeAttendanceRepo) EmployeeIDsWithRecord(_ context.Context, date time.Time) ([]string, error) {
	var ids []string
	for _, att := range f.records {
		if att.DeletedAt == nil && att.Date.Equal(date) {
			ids = append(ids, att.EmployeeID)
		}
	}
	return ids, nil
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
	for _, emp := range emps {
		f.byID[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.byID[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ExistsByNationalID(_ context.Context, nationalID string, excludeID *string) (bool, error) {
	for _, emp := range f.byID {
		if excludeID != nil && emp.ID == *excludeID {
			continue
		}
		if emp.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var result []employee.Employee
	for _, emp := range f.byID {
		result = append(result, emp)
	}
	return result, int64(len(result)), nil
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

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, id string, isActive bool) error {
	emp, ok := f.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = isActive
	f.byID[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeHolidayRepo struct {
	holidays []holiday.OfficialHoliday
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.OfficialHoliday) (holiday.OfficialHoliday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, _ string) (holiday.OfficialHoliday, error) {
	return holiday.OfficialHoliday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) List(_ context.Context, _ *int) ([]holiday.OfficialHoliday, int64, error) {
	return f.holidays, int64(len(f.holidays)), nil
}

func (f *fakeHolidayRepo) ListForRange(_ context.Context, _, _ time.Time) ([]holiday.OfficialHoliday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) Update(_ context.Context, _ holiday.UpdateHolidayRequest) error {
	return nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, _ string) error {
	return nil
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

func (f *fakeSettingRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:           "emp-1",
		FullName:     "Ahmed Hassan",
		NationalID:   "29801011234567",
		CheckInTime:  "09:00",
		CheckOutTime: "17:00",
		IsActive:     true,
	}
}

func newTestService(attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, holRepo *fakeHolidayRepo) attendance.AttendanceService {
	return NewAttendanceService(attRepo, empRepo, holRepo, settingsvc.NewSettingService(&fakeSettingRepo{}))
}

func TestCreateComputesHours(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})

	// 2026-01-05 is a Monday.
	got, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-01-05",
		CheckIn:    strPtr("09:20"),
		CheckOut:   strPtr("18:10"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), got.Status)
	assert.Equal(t, "0.33", got.LateHours.StringFixed(2))
	assert.Equal(t, "1.17", got.OvertimeHours.StringFixed(2))
	require.NotNil(t, got.EmployeeName)
	assert.Equal(t, "Ahmed Hassan", *got.EmployeeName)
}

func TestCreateRejectsDuplicateDay(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})
	ctx := context.Background()

	req := attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-01-05",
		CheckIn:    strPtr("09:00"),
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)
}

func TestCreateUnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeHolidayRepo{})

	_, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "missing",
		Date:       "2026-01-05",
		CheckIn:    strPtr("09:00"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateOnConfiguredWeekend(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})

	// 2026-01-09 is a Friday, a default weekend day.
	got, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-01-09",
		CheckIn:    strPtr("09:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusHoliday), got.Status)
	assert.True(t, got.LateHours.IsZero())
	assert.Nil(t, got.CheckIn)
}

func TestCreateOnRecurringHoliday(t *testing.T) {
	holRepo := &fakeHolidayRepo{holidays: []holiday.OfficialHoliday{{
		ID:          "hol-1",
		Name:        "Revolution Day",
		Date:        time.Date(2011, time.January, 25, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
	}}}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee()), holRepo)

	// Jan 25 2027 is a Monday; the recurring holiday still wins.
	got, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2027-01-25",
		CheckIn:    strPtr("09:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusHoliday), got.Status)
}

func TestUpdateRecomputesHours(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-01-05",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("17:00"),
	})
	require.NoError(t, err)
	assert.True(t, created.LateHours.IsZero())

	updated, err := svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID:      created.ID,
		CheckIn: strPtr("10:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1.00", updated.LateHours.StringFixed(2))
	assert.True(t, updated.OvertimeHours.IsZero())
}

func TestUpdateToSickLeaveClearsPunches(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-01-05",
		CheckIn:    strPtr("09:45"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID:     created.ID,
		Status: strPtr(string(attendance.StatusSickLeave)),
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusSickLeave), updated.Status)
	assert.Nil(t, updated.CheckIn)
	assert.True(t, updated.LateHours.IsZero())
}

func TestGetStatistics(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})
	ctx := context.Background()

	days := []struct {
		date     string
		checkIn  *string
		checkOut *string
		status   *string
	}{
		{"2026-01-05", strPtr("09:30"), strPtr("17:00"), nil},                        // 0.5h late
		{"2026-01-06", strPtr("09:00"), strPtr("18:00"), nil},                        // 1h overtime
		{"2026-01-07", nil, nil, strPtr(string(attendance.StatusAbsent))},            //
		{"2026-01-08", nil, nil, strPtr(string(attendance.StatusSickLeave))},         //
		{"2026-01-09", nil, nil, nil},                                                // Friday, weekend
	}
	for _, d := range days {
		_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       d.date,
			CheckIn:    d.checkIn,
			CheckOut:   d.checkOut,
			Status:     d.status,
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetStatistics(ctx, "emp-1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, 31, stats.TotalDays)
	assert.Equal(t, 2, stats.PresentDays)
	assert.Equal(t, 1, stats.AbsentDays)
	assert.Equal(t, 1, stats.SickLeave)
	assert.Equal(t, 1, stats.Holidays)
	assert.Equal(t, "0.50", stats.TotalLateHours.StringFixed(2))
	assert.Equal(t, "1.00", stats.TotalOvertimeHours.StringFixed(2))
}

func TestSoftDeletedRecordsLeaveStatistics(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-01-05",
		CheckIn:    strPtr("09:30"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, created.ID))

	stats, err := svc.GetStatistics(ctx, "emp-1", 1, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.PresentDays)
	assert.True(t, stats.TotalLateHours.IsZero())

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-01-05",
		CheckIn:    strPtr("09:15"),
		CheckOut:   strPtr("17:30"),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportExcel(ctx, attendance.AttendanceFilter{}, &buf))

	// Import the exported workbook into a fresh store.
	svc2 := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})
	result, err := svc2.ImportExcel(ctx, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Errors)
}

func TestImportCollectsRowErrors(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee()), &fakeHolidayRepo{})
	ctx := context.Background()

	// Export two rows, one for an employee that will not exist on import.
	ghost := testEmployee()
	ghost.ID = "emp-2"
	ghost.FullName = "Mona Adel"
	srcSvc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee(), ghost), &fakeHolidayRepo{})
	for _, empID := range []string{"emp-1", "emp-2"} {
		_, err := srcSvc.Create(ctx, attendance.CreateAttendanceRequest{
			EmployeeID: empID,
			Date:       "2026-01-05",
			CheckIn:    strPtr("09:00"),
		})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, srcSvc.ExportExcel(ctx, attendance.AttendanceFilter{}, &buf))

	result, err := svc.ImportExcel(ctx, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Errors)
	require.Len(t, result.ErrorDetails, 1)
	assert.GreaterOrEqual(t, result.ErrorDetails[0].Row, 2)
}

package attendance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/holiday"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	settingService setting.SettingService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	settingService setting.SettingService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		settingService: settingService,
	}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	day, err := s.dayContext(ctx, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	result, err := Classify(Schedule{CheckIn: emp.CheckInTime, CheckOut: emp.CheckOutTime}, day, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:    emp.ID,
		Date:          date,
		CheckIn:       result.CheckIn,
		CheckOut:      result.CheckOut,
		Status:        result.Status,
		LateHours:     result.LateHours,
		OvertimeHours: result.OvertimeHours,
		Notes:         req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	return mapToResponse(created), nil
}

func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToResponse(att), nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, att.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil {
		att.Date, _ = time.Parse("2006-01-02", *req.Date)
	}
	if req.CheckIn != nil {
		att.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		att.CheckOut = req.CheckOut
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}

	// Re-run classification so the hour fields stay consistent with the
	// effective punches and calendar
	day, err := s.dayContext(ctx, att.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	statusStr := string(att.Status)
	result, err := Classify(
		Schedule{CheckIn: emp.CheckInTime, CheckOut: emp.CheckOutTime},
		day,
		attendance.CreateAttendanceRequest{
			EmployeeID: att.EmployeeID,
			Date:       att.Date.Format("2006-01-02"),
			CheckIn:    att.CheckIn,
			CheckOut:   att.CheckOut,
			Status:     &statusStr,
		},
	)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att.Status = result.Status
	att.CheckIn = result.CheckIn
	att.CheckOut = result.CheckOut
	att.LateHours = result.LateHours
	att.OvertimeHours = result.OvertimeHours

	updated, err := s.attendanceRepo.Update(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated.EmployeeName = &emp.FullName
	return mapToResponse(updated), nil
}

func (s *AttendanceServiceImpl) SoftDelete(ctx context.Context, id string) error {
	return s.attendanceRepo.SoftDelete(ctx, id)
}

func (s *AttendanceServiceImpl) Search(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 50
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		result = append(result, mapToResponse(att))
	}

	return attendance.ListAttendanceResponse{Data: result, Total: total}, nil
}

func (s *AttendanceServiceImpl) GetStatistics(ctx context.Context, employeeID string, month, year int) (attendance.StatisticsResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.StatisticsResponse{}, err
	}

	from, to := monthRange(month, year)
	stats, err := s.attendanceRepo.GetStatistics(ctx, employeeID, from, to)
	if err != nil {
		return attendance.StatisticsResponse{}, fmt.Errorf("failed to aggregate attendance statistics: %w", err)
	}

	return attendance.StatisticsResponse{
		TotalDays:          to.Day(),
		PresentDays:        stats.PresentDays,
		AbsentDays:         stats.AbsentDays,
		Holidays:           stats.Holidays,
		SickLeave:          stats.SickLeave,
		TotalLateHours:     stats.TotalLateHours,
		TotalOvertimeHours: stats.TotalOvertimeHours,
	}, nil
}

func (s *AttendanceServiceImpl) ExportExcel(ctx context.Context, filter attendance.AttendanceFilter, w io.Writer) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	// Export ignores pagination
	filter.Page = 1
	filter.Limit = 100000

	records, _, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return err
	}

	return writeWorkbook(records, w)
}

func (s *AttendanceServiceImpl) ImportExcel(ctx context.Context, r io.Reader) (attendance.ImportResult, error) {
	rows, err := readWorkbook(r)
	if err != nil {
		return attendance.ImportResult{}, err
	}

	result := attendance.ImportResult{ErrorDetails: []attendance.ImportRowError{}}
	for _, row := range rows {
		if _, err := s.Create(ctx, row.Request); err != nil {
			result.Errors++
			result.ErrorDetails = append(result.ErrorDetails, attendance.ImportRowError{
				Row:   row.Number,
				Error: err.Error(),
			})
			continue
		}
		result.Imported++
	}

	return result, nil
}

// dayContext resolves the weekend/holiday facts for one date.
func (s *AttendanceServiceImpl) dayContext(ctx context.Context, date time.Time) (DayContext, error) {
	settings, err := s.settingService.Resolve(ctx)
	if err != nil {
		return DayContext{}, err
	}

	holidays, err := s.holidayRepo.ListForRange(ctx, date, date)
	if err != nil {
		return DayContext{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	day := DayContext{IsWeekend: settings.IsWeekend(date.Weekday())}
	for _, h := range holidays {
		if h.Matches(date) {
			day.IsHoliday = true
			break
		}
	}
	return day, nil
}

func monthRange(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

func mapToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		EmployeeName:   att.EmployeeName,
		DepartmentName: att.DepartmentName,
		Date:           att.Date.Format("2006-01-02"),
		CheckIn:        att.CheckIn,
		CheckOut:       att.CheckOut,
		Status:         string(att.Status),
		LateHours:      att.LateHours,
		OvertimeHours:  att.OvertimeHours,
		Notes:          att.Notes,
		CreatedAt:      att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      att.UpdatedAt.Format(time.RFC3339),
	}
}

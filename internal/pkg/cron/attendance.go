package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/holiday"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
)

// AttendanceJobs marks employees absent for days they never showed up.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	settingService setting.SettingService
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	settingService setting.SettingService,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		settingService: settingService,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees creates an absent record for yesterday for every
// active employee with no record on that date. Weekend days and official
// holidays are skipped entirely.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run in the first hour after midnight
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	return j.markAbsentForDate(ctx, yesterday)
}

func (j *AttendanceJobs) markAbsentForDate(ctx context.Context, date time.Time) error {
	slog.Info("Cron: Starting mark absent employees job", "date", date.Format("2006-01-02"))

	settings, err := j.settingService.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve settings: %w", err)
	}

	if settings.IsWeekend(date.Weekday()) {
		slog.Debug("Cron: Skipping weekend day", "date", date.Format("2006-01-02"))
		return nil
	}

	holidays, err := j.holidayRepo.ListForRange(ctx, date, date)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}
	for _, h := range holidays {
		if h.Matches(date) {
			slog.Debug("Cron: Skipping official holiday", "date", date.Format("2006-01-02"), "holiday", h.Name)
			return nil
		}
	}

	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	recordedIDs, err := j.attendanceRepo.EmployeeIDsWithRecord(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get recorded employees: %w", err)
	}
	recorded := make(map[string]struct{}, len(recordedIDs))
	for _, id := range recordedIDs {
		recorded[id] = struct{}{}
	}

	markedCount := 0
	for _, emp := range employees {
		if _, ok := recorded[emp.ID]; ok {
			continue
		}

		_, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: Failed to mark employee absent",
				"employee_id", emp.ID,
				"date", date.Format("2006-01-02"),
				"error", err)
			continue
		}
		markedCount++
	}

	slog.Info("Cron: Marked absent employees", "count", markedCount)
	return nil
}

package attendance

import (
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Schedule is an employee's scheduled working window, "HH:MM" wall-clock.
type Schedule struct {
	CheckIn  string
	CheckOut string
}

// DayContext carries the calendar facts for one date, resolved from the
// weekend configuration and the official-holiday calendar.
type DayContext struct {
	IsWeekend bool
	IsHoliday bool
}

// Classification is the outcome of classifying one employee-day.
type Classification struct {
	Status        attendance.Status
	CheckIn       *string
	CheckOut      *string
	LateHours     decimal.Decimal
	OvertimeHours decimal.Decimal
}

var sixty = decimal.NewFromInt(60)

// Classify assigns a status to one employee-day and computes late and
// overtime hours from the punches.
//
// Weekend days and official holidays always classify as holiday with zero
// hour fields, whatever the punches say. Absent and sick-leave days carry no
// punches. A present day requires a check-in; late hours grow per minute
// arrived after the scheduled check-in, overtime hours per minute worked
// past the scheduled check-out, both floored at zero and rounded to two
// decimals.
func Classify(sched Schedule, day DayContext, req attendance.CreateAttendanceRequest) (Classification, error) {
	if day.IsWeekend || day.IsHoliday {
		return Classification{
			Status:        attendance.StatusHoliday,
			LateHours:     decimal.Zero,
			OvertimeHours: decimal.Zero,
		}, nil
	}

	status := attendance.StatusPresent
	if req.Status != nil {
		status = attendance.Status(*req.Status)
	}

	if status != attendance.StatusPresent {
		return Classification{
			Status:        status,
			LateHours:     decimal.Zero,
			OvertimeHours: decimal.Zero,
		}, nil
	}

	if req.CheckIn == nil {
		return Classification{}, validator.ValidationErrors{
			{Field: "checkIn", Message: "is required when status is present"},
		}
	}

	schedIn, ok := validator.MinutesOfDay(sched.CheckIn)
	if !ok {
		return Classification{}, validator.ValidationErrors{
			{Field: "checkInTime", Message: "employee schedule is malformed"},
		}
	}
	schedOut, ok := validator.MinutesOfDay(sched.CheckOut)
	if !ok {
		return Classification{}, validator.ValidationErrors{
			{Field: "checkOutTime", Message: "employee schedule is malformed"},
		}
	}

	actualIn, _ := validator.MinutesOfDay(*req.CheckIn)
	lateHours := hoursFromMinutes(actualIn - schedIn)

	overtimeHours := decimal.Zero
	if req.CheckOut != nil {
		actualOut, _ := validator.MinutesOfDay(*req.CheckOut)
		overtimeHours = hoursFromMinutes(actualOut - schedOut)
	}

	return Classification{
		Status:        attendance.StatusPresent,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		LateHours:     lateHours,
		OvertimeHours: overtimeHours,
	}, nil
}

// hoursFromMinutes converts a minute delta to hours, floored at zero and
// rounded to 2 decimals.
func hoursFromMinutes(mins int) decimal.Decimal {
	if mins <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(mins)).Div(sixty).Round(2)
}

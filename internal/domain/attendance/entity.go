package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent   Status = "present"
	StatusAbsent    Status = "absent"
	StatusHoliday   Status = "holiday"
	StatusSickLeave Status = "sick_leave"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusHoliday, StatusSickLeave:
		return true
	}
	return false
}

// Attendance is one record per employee per calendar date.
// LateHours and OvertimeHours are non-zero only when Status is present.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       *string // "HH:MM", present only
	CheckOut      *string // "HH:MM", present only
	Status        Status
	LateHours     decimal.Decimal
	OvertimeHours decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	// Joined fields
	EmployeeName   *string
	DepartmentID   *string
	DepartmentName *string
}

// Statistics is the per-employee aggregate over a date range.
type Statistics struct {
	TotalDays          int
	PresentDays        int
	AbsentDays         int
	Holidays           int
	SickLeave          int
	TotalLateHours     decimal.Decimal
	TotalOvertimeHours decimal.Decimal
}

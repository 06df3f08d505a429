package attendance

import (
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"checkIn,omitempty"`
	CheckOut   *string `json:"checkOut,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.CheckIn != nil && !validator.IsValidTimeHHMM(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "checkIn", Message: "must be in HH:MM format"})
	}
	if r.CheckOut != nil && !validator.IsValidTimeHHMM(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "checkOut", Message: "must be in HH:MM format"})
	}
	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, holiday, sick_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	Date     *string `json:"date,omitempty"`
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.CheckIn != nil && !validator.IsValidTimeHHMM(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "checkIn", Message: "must be in HH:MM format"})
	}
	if r.CheckOut != nil && !validator.IsValidTimeHHMM(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "checkOut", Message: "must be in HH:MM format"})
	}
	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, holiday, sick_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID   *string `json:"employeeId,omitempty"`
	EmployeeName *string `json:"employeeName,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	DateFrom     *string `json:"dateFrom,omitempty"`
	DateTo       *string `json:"dateTo,omitempty"`
	Page         int     `json:"page,omitempty"`
	Limit        int     `json:"limit,omitempty"`
}

func (r *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if r.DateFrom != nil {
		if _, ok := validator.IsValidDate(*r.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{Field: "dateFrom", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.DateTo != nil {
		if _, ok := validator.IsValidDate(*r.DateTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "dateTo", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	EmployeeName   *string         `json:"employeeName,omitempty"`
	DepartmentName *string         `json:"departmentName,omitempty"`
	Date           string          `json:"date"`
	CheckIn        *string         `json:"checkIn,omitempty"`
	CheckOut       *string         `json:"checkOut,omitempty"`
	Status         string          `json:"status"`
	LateHours      decimal.Decimal `json:"lateHours"`
	OvertimeHours  decimal.Decimal `json:"overtimeHours"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

type ListAttendanceResponse struct {
	Data  []AttendanceResponse `json:"data"`
	Total int64                `json:"total"`
}

type StatisticsResponse struct {
	TotalDays          int             `json:"totalDays"`
	PresentDays        int             `json:"presentDays"`
	AbsentDays         int             `json:"absentDays"`
	Holidays           int             `json:"holidays"`
	SickLeave          int             `json:"sickLeave"`
	TotalLateHours     decimal.Decimal `json:"totalLateHours"`
	TotalOvertimeHours decimal.Decimal `json:"totalOvertimeHours"`
}

// ImportResult reports the outcome of an .xlsx import, row by row.
type ImportResult struct {
	Imported     int              `json:"imported"`
	Errors       int              `json:"errors"`
	ErrorDetails []ImportRowError `json:"errorDetails"`
}

type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

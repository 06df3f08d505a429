package salaryreport

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinReportYear is the earliest report period the business accepts.
const MinReportYear = 2008

// SalaryReport is a derived, recomputable entity keyed by
// (employee, month, year). BaseSalary and the rate-derived amounts are
// snapshots taken at generation time.
//
// Invariant: NetSalary = BaseSalary + OvertimeAmount - DeductionAmount.
type SalaryReport struct {
	ID              string
	EmployeeID      string
	Month           int
	Year            int
	BaseSalary      decimal.Decimal
	DaysPresent     int
	DaysAbsent      int
	Holidays        int
	SickLeave       int
	OvertimeHours   decimal.Decimal
	LateHours       decimal.Decimal
	OvertimeAmount  decimal.Decimal
	DeductionAmount decimal.Decimal
	NetSalary       decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName   *string
	NationalID     *string
	DepartmentID   *string
	DepartmentName *string
}

// Summary aggregates all reports of one period.
type Summary struct {
	Month                int
	Year                 int
	TotalEmployees       int
	TotalBaseSalary      decimal.Decimal
	TotalOvertimeAmount  decimal.Decimal
	TotalDeductionAmount decimal.Decimal
	TotalNetSalary       decimal.Decimal
	TotalOvertimeHours   decimal.Decimal
	TotalLateHours       decimal.Decimal
	TotalDaysPresent     int
	TotalDaysAbsent      int
}

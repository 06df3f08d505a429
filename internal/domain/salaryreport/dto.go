package salaryreport

import (
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateReportRequest struct {
	EmployeeID string `json:"employeeId"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	errs = append(errs, validatePeriod(r.Month, r.Year)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkGenerateRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *BulkGenerateRequest) Validate() error {
	if errs := validatePeriod(r.Month, r.Year); len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if year < MinReportYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2008 or later"})
	}
	return errs
}

type SearchReportRequest struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
}

func (r *SearchReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != nil && (*r.Month < 1 || *r.Month > 12) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year != nil && *r.Year < MinReportYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2008 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportEmployee is the nested employee block the dashboard expects on
// every report.
type ReportEmployee struct {
	ID         string            `json:"id"`
	FullName   string            `json:"fullName"`
	NationalID string            `json:"nationalId"`
	Department *ReportDepartment `json:"departmentId,omitempty"`
}

type ReportDepartment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SalaryReportResponse struct {
	ID              string          `json:"id"`
	Employee        ReportEmployee  `json:"employeeId"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	DaysPresent     int             `json:"daysPresent"`
	DaysAbsent      int             `json:"daysAbsent"`
	Holidays        int             `json:"holidays"`
	SickLeave       int             `json:"sickLeave"`
	OvertimeHours   decimal.Decimal `json:"overtimeHours"`
	LateHours       decimal.Decimal `json:"lateHours"`
	OvertimeAmount  decimal.Decimal `json:"overtimeAmount"`
	DeductionAmount decimal.Decimal `json:"deductionAmount"`
	NetSalary       decimal.Decimal `json:"netSalary"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

type ListReportResponse struct {
	Data  []SalaryReportResponse `json:"data"`
	Total int64                  `json:"total"`
}

type BulkSuccessEntry struct {
	EmployeeID   string               `json:"employeeId"`
	EmployeeName string               `json:"employeeName"`
	Report       SalaryReportResponse `json:"report"`
}

type BulkFailedEntry struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Error        string `json:"error"`
}

type BulkGenerateResponse struct {
	Success []BulkSuccessEntry `json:"success"`
	Failed  []BulkFailedEntry  `json:"failed"`
}

type SummaryResponse struct {
	Month                int             `json:"month"`
	Year                 int             `json:"year"`
	TotalEmployees       int             `json:"totalEmployees"`
	TotalBaseSalary      decimal.Decimal `json:"totalBaseSalary"`
	TotalOvertimeAmount  decimal.Decimal `json:"totalOvertimeAmount"`
	TotalDeductionAmount decimal.Decimal `json:"totalDeductionAmount"`
	TotalNetSalary       decimal.Decimal `json:"totalNetSalary"`
	TotalOvertimeHours   decimal.Decimal `json:"totalOvertimeHours"`
	TotalLateHours       decimal.Decimal `json:"totalLateHours"`
	TotalDaysPresent     int             `json:"totalDaysPresent"`
	TotalDaysAbsent      int             `json:"totalDaysAbsent"`
}

// PrintResponse is the flattened payslip view.
type PrintResponse struct {
	EmployeeName    string          `json:"employeeName"`
	NationalID      string          `json:"nationalId"`
	Department      string          `json:"department"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	DaysPresent     int             `json:"daysPresent"`
	DaysAbsent      int             `json:"daysAbsent"`
	OvertimeHours   decimal.Decimal `json:"overtimeHours"`
	LateHours       decimal.Decimal `json:"lateHours"`
	OvertimeAmount  decimal.Decimal `json:"overtimeAmount"`
	DeductionAmount decimal.Decimal `json:"deductionAmount"`
	NetSalary       decimal.Decimal `json:"netSalary"`
	GeneratedDate   string          `json:"generatedDate"`
}

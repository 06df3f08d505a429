package employee

import (
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName     string          `json:"fullName"`
	NationalID   string          `json:"nationalId"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	BirthDate    string          `json:"birthDate"`
	Gender       string          `json:"gender"`
	Nationality  string          `json:"nationality"`
	ContractDate string          `json:"contractDate"`
	BaseSalary   decimal.Decimal `json:"baseSalary"`
	CheckInTime  string          `json:"checkInTime"`
	CheckOutTime string          `json:"checkOutTime"`
	DepartmentID string          `json:"departmentId"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "is required"})
	}
	if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{Field: "nationalId", Message: "must be a 14-digit national ID"})
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if _, ok := validator.IsValidDate(r.BirthDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "birthDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Gender != string(Male) && r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be 'male' or 'female'"})
	}
	if _, ok := validator.IsValidDate(r.ContractDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "contractDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "must be greater than zero"})
	}

	inMins, inOK := validator.MinutesOfDay(r.CheckInTime)
	if !inOK {
		errs = append(errs, validator.ValidationError{Field: "checkInTime", Message: "must be in HH:MM format"})
	}
	outMins, outOK := validator.MinutesOfDay(r.CheckOutTime)
	if !outOK {
		errs = append(errs, validator.ValidationError{Field: "checkOutTime", Message: "must be in HH:MM format"})
	}
	if inOK && outOK && outMins <= inMins {
		errs = append(errs, validator.ValidationError{Field: "checkOutTime", Message: "must be after checkInTime"})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "departmentId", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	FullName     *string          `json:"fullName,omitempty"`
	NationalID   *string          `json:"nationalId,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Address      *string          `json:"address,omitempty"`
	BirthDate    *string          `json:"birthDate,omitempty"`
	Gender       *string          `json:"gender,omitempty"`
	Nationality  *string          `json:"nationality,omitempty"`
	ContractDate *string          `json:"contractDate,omitempty"`
	BaseSalary   *decimal.Decimal `json:"baseSalary,omitempty"`
	CheckInTime  *string          `json:"checkInTime,omitempty"`
	CheckOutTime *string          `json:"checkOutTime,omitempty"`
	DepartmentID *string          `json:"departmentId,omitempty"`
	IsActive     *bool            `json:"isActive,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "must not be empty"})
	}
	if r.NationalID != nil && !validator.IsValidNationalID(*r.NationalID) {
		errs = append(errs, validator.ValidationError{Field: "nationalId", Message: "must be a 14-digit national ID"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "birthDate", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.Gender != nil && *r.Gender != string(Male) && *r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be 'male' or 'female'"})
	}
	if r.ContractDate != nil {
		if _, ok := validator.IsValidDate(*r.ContractDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "contractDate", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.BaseSalary != nil && !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "must be greater than zero"})
	}
	if r.CheckInTime != nil && !validator.IsValidTimeHHMM(*r.CheckInTime) {
		errs = append(errs, validator.ValidationError{Field: "checkInTime", Message: "must be in HH:MM format"})
	}
	if r.CheckOutTime != nil && !validator.IsValidTimeHHMM(*r.CheckOutTime) {
		errs = append(errs, validator.ValidationError{Field: "checkOutTime", Message: "must be in HH:MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search       *string
	DepartmentID *string
	ActiveOnly   bool
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"fullName"`
	NationalID     string          `json:"nationalId"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	BirthDate      string          `json:"birthDate"`
	Gender         string          `json:"gender"`
	Nationality    string          `json:"nationality"`
	ContractDate   string          `json:"contractDate"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	CheckInTime    string          `json:"checkInTime"`
	CheckOutTime   string          `json:"checkOutTime"`
	DepartmentID   string          `json:"departmentId"`
	DepartmentName *string         `json:"departmentName,omitempty"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

type ListEmployeeResponse struct {
	Data  []EmployeeResponse `json:"data"`
	Total int64              `json:"total"`
}

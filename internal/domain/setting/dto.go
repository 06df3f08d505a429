package setting

import (
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertSettingRequest struct {
	Key         string  `json:"key"`
	Value       any     `json:"value"`
	DataType    string  `json:"dataType"`
	Description *string `json:"description,omitempty"`
}

func (r *UpsertSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "is required"})
	}
	switch DataType(r.DataType) {
	case DataTypeString, DataTypeNumber, DataTypeBoolean, DataTypeArray, DataTypeObject:
	default:
		errs = append(errs, validator.ValidationError{Field: "dataType", Message: "must be one of string, number, boolean, array, object"})
	}
	if r.Value == nil {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingResponse struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Value       any     `json:"value"`
	DataType    string  `json:"dataType"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type ListSettingResponse struct {
	Data  []SettingResponse `json:"data"`
	Total int64             `json:"total"`
}

type OvertimeDeductionSettings struct {
	OvertimeRatePerHour  decimal.Decimal `json:"overtimeRatePerHour"`
	DeductionRatePerHour decimal.Decimal `json:"deductionRatePerHour"`
	WorkingHoursPerDay   int             `json:"workingHoursPerDay"`
}

func (r *OvertimeDeductionSettings) Validate() error {
	var errs validator.ValidationErrors

	if !r.OvertimeRatePerHour.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "overtimeRatePerHour", Message: "must be greater than zero"})
	}
	if !r.DeductionRatePerHour.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "deductionRatePerHour", Message: "must be greater than zero"})
	}
	if r.WorkingHoursPerDay <= 0 || r.WorkingHoursPerDay > 24 {
		errs = append(errs, validator.ValidationError{Field: "workingHoursPerDay", Message: "must be between 1 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WeekendSettings struct {
	WeekendDays []string `json:"weekendDays"`
}

func (r *WeekendSettings) Validate() error {
	var errs validator.ValidationErrors

	if len(r.WeekendDays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "weekendDays", Message: "at least one weekend day is required"})
	}
	for _, day := range r.WeekendDays {
		if !validator.IsInSlice(day, PermittedWeekendDays) {
			errs = append(errs, validator.ValidationError{Field: "weekendDays", Message: "only Friday and Saturday are permitted"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

package setting

import (
	"time"

	"github.com/shopspring/decimal"
)

type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeNumber  DataType = "number"
	DataTypeBoolean DataType = "boolean"
	DataTypeArray   DataType = "array"
	DataTypeObject  DataType = "object"
)

// Setting is one keyed configuration value. There is exactly one row per key;
// writes go through an upsert.
type Setting struct {
	ID          string
	Key         string
	Value       any
	DataType    DataType
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Keys used by the payroll engine.
const (
	KeyOvertimeRatePerHour  = "overtime_rate_per_hour"
	KeyDeductionRatePerHour = "deduction_rate_per_hour"
	KeyWeekendDays          = "weekend_days"
	KeyWorkingHoursPerDay   = "working_hours_per_day"
)

// PermittedWeekendDays is the business rule: only Friday and Saturday
// may be configured as weekend days.
var PermittedWeekendDays = []string{"Friday", "Saturday"}

// EngineSettings is the resolved configuration the attendance classifier and
// salary generator consume.
type EngineSettings struct {
	OvertimeRatePerHour  decimal.Decimal
	DeductionRatePerHour decimal.Decimal
	WorkingHoursPerDay   int
	WeekendDays          []string
}

// Defaults mirror the values the system is seeded with.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		OvertimeRatePerHour:  decimal.NewFromInt(50),
		DeductionRatePerHour: decimal.NewFromInt(30),
		WorkingHoursPerDay:   8,
		WeekendDays:          []string{"Friday", "Saturday"},
	}
}

// IsWeekend reports whether the given weekday is configured as a weekend day.
func (s EngineSettings) IsWeekend(day time.Weekday) bool {
	for _, d := range s.WeekendDays {
		if d == day.String() {
			return true
		}
	}
	return false
}

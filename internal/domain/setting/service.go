package setting

import "context"

// SettingService exposes the generic key/value store plus the typed
// accessors the payroll engine and the dashboard settings page use.
type SettingService interface {
	Upsert(ctx context.Context, req UpsertSettingRequest) (SettingResponse, error)
	GetByKey(ctx context.Context, key string) (SettingResponse, error)
	List(ctx context.Context) (ListSettingResponse, error)
	Delete(ctx context.Context, key string) error

	GetOvertimeDeduction(ctx context.Context) (OvertimeDeductionSettings, error)
	SaveOvertimeDeduction(ctx context.Context, req OvertimeDeductionSettings) (OvertimeDeductionSettings, error)
	GetWeekend(ctx context.Context) (WeekendSettings, error)
	SaveWeekend(ctx context.Context, req WeekendSettings) (WeekendSettings, error)

	// Resolve returns the full engine configuration, falling back to
	// defaults for unset keys.
	Resolve(ctx context.Context) (EngineSettings, error)
}

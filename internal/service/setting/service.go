package setting

import (
	"context"
	"errors"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
	"github.com/shopspring/decimal"
)

type SettingServiceImpl struct {
	settingRepo setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) setting.SettingService {
	return &SettingServiceImpl{settingRepo: settingRepo}
}

func (s *SettingServiceImpl) Upsert(ctx context.Context, req setting.UpsertSettingRequest) (setting.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.SettingResponse{}, err
	}

	saved, err := s.settingRepo.Upsert(ctx, setting.Setting{
		Key:         req.Key,
		Value:       req.Value,
		DataType:    setting.DataType(req.DataType),
		Description: req.Description,
	})
	if err != nil {
		return setting.SettingResponse{}, err
	}

	return mapToResponse(saved), nil
}

func (s *SettingServiceImpl) GetByKey(ctx context.Context, key string) (setting.SettingResponse, error) {
	found, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return setting.SettingResponse{}, err
	}
	return mapToResponse(found), nil
}

func (s *SettingServiceImpl) List(ctx context.Context) (setting.ListSettingResponse, error) {
	settings, total, err := s.settingRepo.List(ctx)
	if err != nil {
		return setting.ListSettingResponse{}, err
	}

	result := make([]setting.SettingResponse, 0, len(settings))
	for _, item := range settings {
		result = append(result, mapToResponse(item))
	}

	return setting.ListSettingResponse{Data: result, Total: total}, nil
}

func (s *SettingServiceImpl) Delete(ctx context.Context, key string) error {
	return s.settingRepo.Delete(ctx, key)
}

func (s *SettingServiceImpl) GetOvertimeDeduction(ctx context.Context) (setting.OvertimeDeductionSettings, error) {
	resolved, err := s.Resolve(ctx)
	if err != nil {
		return setting.OvertimeDeductionSettings{}, err
	}

	return setting.OvertimeDeductionSettings{
		OvertimeRatePerHour:  resolved.OvertimeRatePerHour,
		DeductionRatePerHour: resolved.DeductionRatePerHour,
		WorkingHoursPerDay:   resolved.WorkingHoursPerDay,
	}, nil
}

func (s *SettingServiceImpl) SaveOvertimeDeduction(ctx context.Context, req setting.OvertimeDeductionSettings) (setting.OvertimeDeductionSettings, error) {
	if err := req.Validate(); err != nil {
		return setting.OvertimeDeductionSettings{}, err
	}

	pairs := []setting.Setting{
		{Key: setting.KeyOvertimeRatePerHour, Value: req.OvertimeRatePerHour, DataType: setting.DataTypeNumber},
		{Key: setting.KeyDeductionRatePerHour, Value: req.DeductionRatePerHour, DataType: setting.DataTypeNumber},
		{Key: setting.KeyWorkingHoursPerDay, Value: req.WorkingHoursPerDay, DataType: setting.DataTypeNumber},
	}
	for _, pair := range pairs {
		if _, err := s.settingRepo.Upsert(ctx, pair); err != nil {
			return setting.OvertimeDeductionSettings{}, err
		}
	}

	return req, nil
}

func (s *SettingServiceImpl) GetWeekend(ctx context.Context) (setting.WeekendSettings, error) {
	resolved, err := s.Resolve(ctx)
	if err != nil {
		return setting.WeekendSettings{}, err
	}
	return setting.WeekendSettings{WeekendDays: resolved.WeekendDays}, nil
}

func (s *SettingServiceImpl) SaveWeekend(ctx context.Context, req setting.WeekendSettings) (setting.WeekendSettings, error) {
	if err := req.Validate(); err != nil {
		return setting.WeekendSettings{}, err
	}

	if _, err := s.settingRepo.Upsert(ctx, setting.Setting{
		Key:      setting.KeyWeekendDays,
		Value:    req.WeekendDays,
		DataType: setting.DataTypeArray,
	}); err != nil {
		return setting.WeekendSettings{}, err
	}

	return req, nil
}

// Resolve builds the engine configuration from stored keys, falling back to
// defaults for anything unset.
func (s *SettingServiceImpl) Resolve(ctx context.Context) (setting.EngineSettings, error) {
	resolved := setting.DefaultEngineSettings()

	if v, err := s.lookupDecimal(ctx, setting.KeyOvertimeRatePerHour); err != nil {
		return setting.EngineSettings{}, err
	} else if v != nil {
		resolved.OvertimeRatePerHour = *v
	}

	if v, err := s.lookupDecimal(ctx, setting.KeyDeductionRatePerHour); err != nil {
		return setting.EngineSettings{}, err
	} else if v != nil {
		resolved.DeductionRatePerHour = *v
	}

	if v, err := s.lookupDecimal(ctx, setting.KeyWorkingHoursPerDay); err != nil {
		return setting.EngineSettings{}, err
	} else if v != nil {
		resolved.WorkingHoursPerDay = int(v.IntPart())
	}

	stored, err := s.settingRepo.GetByKey(ctx, setting.KeyWeekendDays)
	switch {
	case errors.Is(err, setting.ErrSettingNotFound):
	case err != nil:
		return setting.EngineSettings{}, err
	default:
		if days := stringsFromAny(stored.Value); len(days) > 0 {
			resolved.WeekendDays = days
		}
	}

	return resolved, nil
}

func (s *SettingServiceImpl) lookupDecimal(ctx context.Context, key string) (*decimal.Decimal, error) {
	stored, err := s.settingRepo.GetByKey(ctx, key)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	v, ok := decimalFromAny(stored.Value)
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// decimalFromAny coerces the loosely-typed setting value. JSON numbers
// arrive as float64; values written by SaveOvertimeDeduction round-trip as
// decimal.Decimal.
func decimalFromAny(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case decimal.Decimal:
		return value, true
	case float64:
		return decimal.NewFromFloat(value), true
	case int:
		return decimal.NewFromInt(int64(value)), true
	case int64:
		return decimal.NewFromInt(value), true
	case string:
		d, err := decimal.NewFromString(value)
		return d, err == nil
	}
	return decimal.Zero, false
}

func stringsFromAny(v any) []string {
	switch value := v.(type) {
	case []string:
		return value
	case []any:
		result := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

func mapToResponse(s setting.Setting) setting.SettingResponse {
	return setting.SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		DataType:    string(s.DataType),
		Description: s.Description,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

// Upsert implements setting.SettingRepository. The value column is jsonb;
// one row per key.
func (s *settingRepositoryImpl) Upsert(ctx context.Context, newSetting setting.Setting) (setting.Setting, error) {
	q := GetQuerier(ctx, s.db)

	value, err := json.Marshal(newSetting.Value)
	if err != nil {
		return setting.Setting{}, fmt.Errorf("failed to encode setting value: %w", err)
	}

	query := `
		INSERT INTO settings (key, value, data_type, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			data_type = EXCLUDED.data_type,
			description = COALESCE(EXCLUDED.description, settings.description),
			updated_at = NOW()
		RETURNING id, key, value, data_type, description, created_at, updated_at
	`

	return s.scanSetting(q.QueryRow(ctx, query, newSetting.Key, value, newSetting.DataType, newSetting.Description))
}

// GetByKey implements setting.SettingRepository.
func (s *settingRepositoryImpl) GetByKey(ctx context.Context, key string) (setting.Setting, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, key, value, data_type, description, created_at, updated_at
		FROM settings
		WHERE key = $1
	`

	found, err := s.scanSetting(q.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, err
	}
	return found, nil
}

// List implements setting.SettingRepository.
func (s *settingRepositoryImpl) List(ctx context.Context) ([]setting.Setting, int64, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, key, value, data_type, description, created_at, updated_at
		FROM settings
		ORDER BY key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []setting.Setting
	for rows.Next() {
		item, err := s.scanSetting(rows)
		if err != nil {
			return nil, 0, err
		}
		settings = append(settings, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return settings, int64(len(settings)), nil
}

// Delete implements setting.SettingRepository.
func (s *settingRepositoryImpl) Delete(ctx context.Context, key string) error {
	q := GetQuerier(ctx, s.db)

	query := `DELETE FROM settings WHERE key = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, key).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.ErrSettingNotFound
		}
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	return nil
}

func (s *settingRepositoryImpl) scanSetting(row pgx.Row) (setting.Setting, error) {
	var item setting.Setting
	var raw []byte
	err := row.Scan(
		&item.ID, &item.Key, &raw, &item.DataType, &item.Description,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return setting.Setting{}, err
	}

	if err := json.Unmarshal(raw, &item.Value); err != nil {
		return setting.Setting{}, fmt.Errorf("failed to decode setting %q: %w", item.Key, err)
	}
	return item, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/holiday"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.OfficialHoliday) (holiday.OfficialHoliday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO official_holidays (name, date, year, is_recurring)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, date, year, is_recurring, created_at, updated_at
	`

	var created holiday.OfficialHoliday
	err := q.QueryRow(ctx, query,
		newHoliday.Name, newHoliday.Date, newHoliday.Year, newHoliday.IsRecurring,
	).Scan(
		&created.ID, &created.Name, &created.Date, &created.Year,
		&created.IsRecurring, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "official_holidays_date_key") {
			return holiday.OfficialHoliday{}, holiday.ErrHolidayExists
		}
		return holiday.OfficialHoliday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// GetByID implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.OfficialHoliday, error) {
	if !isValidID(id) {
		return holiday.OfficialHoliday{}, holiday.ErrHolidayNotFound
	}
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, name, date, year, is_recurring, created_at, updated_at
		FROM official_holidays
		WHERE id = $1
	`

	var found holiday.OfficialHoliday
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Name, &found.Date, &found.Year,
		&found.IsRecurring, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.OfficialHoliday{}, holiday.ErrHolidayNotFound
		}
		return holiday.OfficialHoliday{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return found, nil
}

// List implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) List(ctx context.Context, year *int) ([]holiday.OfficialHoliday, int64, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, name, date, year, is_recurring, created_at, updated_at,
			COUNT(*) OVER() AS total
		FROM official_holidays
		WHERE $1::int IS NULL OR year = $1 OR is_recurring
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.OfficialHoliday
	var total int64
	for rows.Next() {
		var item holiday.OfficialHoliday
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Date, &item.Year,
			&item.IsRecurring, &item.CreatedAt, &item.UpdatedAt, &total,
		); err != nil {
			return nil, 0, err
		}
		holidays = append(holidays, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return holidays, total, nil
}

// ListForRange implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListForRange(ctx context.Context, from, to time.Time) ([]holiday.OfficialHoliday, error) {
	q := GetQuerier(ctx, h.db)

	// Recurring holidays apply to every year, so they always come back.
	query := `
		SELECT id, name, date, year, is_recurring, created_at, updated_at
		FROM official_holidays
		WHERE is_recurring OR (date BETWEEN $1 AND $2)
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays for range: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.OfficialHoliday
	for rows.Next() {
		var item holiday.OfficialHoliday
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Date, &item.Year,
			&item.IsRecurring, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		holidays = append(holidays, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// Update implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) error {
	q := GetQuerier(ctx, h.db)

	query := `
		UPDATE official_holidays
		SET name = COALESCE($2, name),
			date = COALESCE($3::date, date),
			year = COALESCE(EXTRACT(YEAR FROM $3::date)::int, year),
			is_recurring = COALESCE($4, is_recurring),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.ID, req.Name, req.Date, req.IsRecurring).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		if isUniqueViolation(err, "official_holidays_date_key") {
			return holiday.ErrHolidayExists
		}
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	return nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	query := `DELETE FROM official_holidays WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

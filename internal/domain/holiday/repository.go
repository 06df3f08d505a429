package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h OfficialHoliday) (OfficialHoliday, error)
	GetByID(ctx context.Context, id string) (OfficialHoliday, error)
	List(ctx context.Context, year *int) ([]OfficialHoliday, int64, error)

	// ListForRange returns holidays relevant to a date range: those dated
	// inside the range plus all recurring ones regardless of year.
	ListForRange(ctx context.Context, from, to time.Time) ([]OfficialHoliday, error)

	Update(ctx context.Context, req UpdateHolidayRequest) error
	Delete(ctx context.Context, id string) error
}

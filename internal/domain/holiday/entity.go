package holiday

import "time"

type OfficialHoliday struct {
	ID          string
	Name        string
	Date        time.Time
	Year        int
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Matches reports whether the holiday falls on the given calendar date.
// Recurring holidays match on day and month in any year.
func (h OfficialHoliday) Matches(date time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() && h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
}

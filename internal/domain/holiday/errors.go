package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("official holiday not found")
	ErrHolidayExists   = errors.New("official holiday already exists for this date")
)

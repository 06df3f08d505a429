package holiday

import "github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Year        int    `json:"year"`
	IsRecurring *bool  `json:"isRecurring,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Year == 0 && ok {
		r.Year = date.Year()
	}
	if ok && r.Year != date.Year() {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must match the year of the date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Year        *int    `json:"year,omitempty"`
	IsRecurring *bool   `json:"isRecurring,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Year        int    `json:"year"`
	IsRecurring bool   `json:"isRecurring"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type ListHolidayResponse struct {
	Data  []HolidayResponse `json:"data"`
	Total int64             `json:"total"`
}

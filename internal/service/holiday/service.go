package holiday

import (
	"context"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	isRecurring := false
	if req.IsRecurring != nil {
		isRecurring = *req.IsRecurring
	}

	created, err := s.holidayRepo.Create(ctx, holiday.OfficialHoliday{
		Name:        req.Name,
		Date:        date,
		Year:        date.Year(),
		IsRecurring: isRecurring,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return mapToResponse(h), nil
}

func (s *HolidayServiceImpl) List(ctx context.Context, year *int) (holiday.ListHolidayResponse, error) {
	holidays, total, err := s.holidayRepo.List(ctx, year)
	if err != nil {
		return holiday.ListHolidayResponse{}, err
	}

	result := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, mapToResponse(h))
	}

	return holiday.ListHolidayResponse{Data: result, Total: total}, nil
}

func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	if err := s.holidayRepo.Update(ctx, req); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func mapToResponse(h holiday.OfficialHoliday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Year:        h.Year,
		IsRecurring: h.IsRecurring,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   h.UpdatedAt.Format(time.RFC3339),
	}
}

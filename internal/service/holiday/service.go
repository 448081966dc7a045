package holiday

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/google/uuid"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	newHoliday := req.ToHoliday()
	if err := s.ensureDateFree(ctx, newHoliday, ""); err != nil {
		return holiday.HolidayResponse{}, err
	}

	newHoliday.ID = uuid.Must(uuid.NewV7()).String()
	created, err := s.holidayRepo.Create(ctx, newHoliday)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.NewHolidayResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	if year < 1970 || year > 9999 {
		return nil, holiday.ErrInvalidYear
	}

	holidays, err := s.holidayRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(h))
	}
	return responses, nil
}

// UpdateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) UpdateHoliday(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated := req.Apply(existing)
	if !updated.Date.Equal(existing.Date) {
		if err := s.ensureDateFree(ctx, updated, existing.ID); err != nil {
			return holiday.HolidayResponse{}, err
		}
	}

	saved, err := s.holidayRepo.Update(ctx, updated)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.NewHolidayResponse(saved), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func (s *HolidayServiceImpl) ensureDateFree(ctx context.Context, h holiday.Holiday, selfID string) error {
	existing, err := s.holidayRepo.GetByDate(ctx, h.Date)
	if err != nil {
		return fmt.Errorf("failed to check holiday date: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return holiday.ErrHolidayDateExists
	}
	return nil
}

package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	Update(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}

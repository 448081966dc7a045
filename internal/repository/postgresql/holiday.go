package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const holidayColumns = `id, date, name, created_at, updated_at`

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

func translateHolidayError(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return holiday.ErrHolidayNotFound
	}
	if isConstraintViolation(err, "holidays_date_key") {
		return holiday.ErrHolidayDateExists
	}
	return fmt.Errorf("failed to %s holiday: %w", action, err)
}

func (h *holidayRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	rows, err := q.Query(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE `+where+` ORDER BY date`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	holidays := []holiday.Holiday{}
	for rows.Next() {
		hol, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, hol)
	}
	return holidays, rows.Err()
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `INSERT INTO holidays (id, date, name) VALUES ($1, $2, $3) RETURNING ` + holidayColumns
	created, err := scanHoliday(q.QueryRow(ctx, query, newHoliday.ID, newHoliday.Date, newHoliday.Name))
	if err != nil {
		return holiday.Holiday{}, translateHolidayError(err, "create")
	}
	return created, nil
}

// GetByID implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	hol, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE id = $1`, id))
	if err != nil {
		return holiday.Holiday{}, translateHolidayError(err, "get")
	}
	return hol, nil
}

// GetByDate implements holiday.HolidayRepository. A free date yields nil.
func (h *holidayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	hol, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE date = $1::date`, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday by date: %w", err)
	}
	return &hol, nil
}

// ListByYear implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return h.list(ctx, "EXTRACT(YEAR FROM date) = $1", year)
}

// ListInRange implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	return h.list(ctx, "date BETWEEN $1::date AND $2::date", start, end)
}

// Update implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Update(ctx context.Context, hol holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		UPDATE holidays SET date = $2, name = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + holidayColumns
	updated, err := scanHoliday(q.QueryRow(ctx, query, hol.ID, hol.Date, hol.Name))
	if err != nil {
		return holiday.Holiday{}, translateHolidayError(err, "update")
	}
	return updated, nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

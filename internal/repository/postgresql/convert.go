package postgresql

import (
	"errors"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	uniqueViolation    = "23505"
	exclusionViolation = "23P01"
)

// isConstraintViolation reports whether err is a unique or exclusion violation, optionally of a named constraint.
func isConstraintViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolation && pgErr.Code != exclusionViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func timeParam(t *schedule.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: int64(*t) * 60_000_000, Valid: true}
}

func timeValue(t pgtype.Time) *schedule.TimeOfDay {
	if !t.Valid {
		return nil
	}
	v := schedule.TimeOfDay(t.Microseconds / 60_000_000)
	return &v
}

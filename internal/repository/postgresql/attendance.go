package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const attendanceRecordColumns = `id, employee_id, date, morning_check_in, morning_check_out, afternoon_check_in,
	afternoon_check_out, on_leave, leave_type, notes, created_at, updated_at`

type attendanceRecordRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRecordRepository(db *database.DB) attendance.AttendanceRecordRepository {
	return &attendanceRecordRepositoryImpl{db: db}
}

func scanAttendanceRecord(row pgx.Row) (attendance.DailyAttendanceRecord, error) {
	var (
		rec                  attendance.DailyAttendanceRecord
		mIn, mOut, aIn, aOut pgtype.Time
	)
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &mIn, &mOut, &aIn, &aOut,
		&rec.OnLeave, &rec.LeaveType, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.DailyAttendanceRecord{}, err
	}
	rec.MorningCheckIn = timeValue(mIn)
	rec.MorningCheckOut = timeValue(mOut)
	rec.AfternoonCheckIn = timeValue(aIn)
	rec.AfternoonCheckOut = timeValue(aOut)
	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.DailyAttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceRecordColumns + ` FROM attendance_records WHERE employee_id = $1 AND date = $2::date`
	rec, err := scanAttendanceRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return &rec, nil
}

// GetInRange implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.DailyAttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceRecordColumns + `
		FROM attendance_records
		WHERE employee_id = ANY($1) AND date BETWEEN $2::date AND $3::date
		ORDER BY employee_id, date`

	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}
	defer rows.Close()

	records := []attendance.DailyAttendanceRecord{}
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) Upsert(ctx context.Context, record attendance.DailyAttendanceRecord) (attendance.DailyAttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, morning_check_in, morning_check_out,
			afternoon_check_in, afternoon_check_out, on_leave, leave_type, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			morning_check_in = EXCLUDED.morning_check_in,
			morning_check_out = EXCLUDED.morning_check_out,
			afternoon_check_in = EXCLUDED.afternoon_check_in,
			afternoon_check_out = EXCLUDED.afternoon_check_out,
			on_leave = EXCLUDED.on_leave,
			leave_type = EXCLUDED.leave_type,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + attendanceRecordColumns

	saved, err := scanAttendanceRecord(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date,
		timeParam(record.MorningCheckIn), timeParam(record.MorningCheckOut),
		timeParam(record.AfternoonCheckIn), timeParam(record.AfternoonCheckOut),
		record.OnLeave, record.LeaveType, record.Notes,
	))
	if err != nil {
		return attendance.DailyAttendanceRecord{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return saved, nil
}

// ========================================
// TEMPORARY EXITS
// ========================================

const temporaryExitColumns = `id, employee_id, date, exit_time, return_time, reason, created_at, updated_at`

type temporaryExitRepositoryImpl struct {
	db *database.DB
}

func NewTemporaryExitRepository(db *database.DB) attendance.TemporaryExitRepository {
	return &temporaryExitRepositoryImpl{db: db}
}

func scanTemporaryExit(row pgx.Row) (attendance.TemporaryExit, error) {
	var (
		exit           attendance.TemporaryExit
		exitAt, backAt pgtype.Time
	)
	err := row.Scan(&exit.ID, &exit.EmployeeID, &exit.Date, &exitAt, &backAt, &exit.Reason, &exit.CreatedAt, &exit.UpdatedAt)
	if err != nil {
		return attendance.TemporaryExit{}, err
	}
	exit.ExitTime = *timeValue(exitAt)
	exit.ReturnTime = timeValue(backAt)
	return exit, nil
}

func (t *temporaryExitRepositoryImpl) queryExits(ctx context.Context, where string, args ...interface{}) ([]attendance.TemporaryExit, error) {
	q := GetQuerier(ctx, t.db)

	rows, err := q.Query(ctx, `SELECT `+temporaryExitColumns+` FROM temporary_exits WHERE `+where+` ORDER BY date, exit_time`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get temporary exits: %w", err)
	}
	defer rows.Close()

	exits := []attendance.TemporaryExit{}
	for rows.Next() {
		exit, err := scanTemporaryExit(rows)
		if err != nil {
			return nil, err
		}
		exits = append(exits, exit)
	}
	return exits, rows.Err()
}

// Create implements attendance.TemporaryExitRepository.
func (t *temporaryExitRepositoryImpl) Create(ctx context.Context, exit attendance.TemporaryExit) (attendance.TemporaryExit, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO temporary_exits (id, employee_id, date, exit_time, return_time, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + temporaryExitColumns

	created, err := scanTemporaryExit(q.QueryRow(ctx, query,
		exit.ID, exit.EmployeeID, exit.Date, timeParam(&exit.ExitTime), timeParam(exit.ReturnTime), exit.Reason))
	if err != nil {
		return attendance.TemporaryExit{}, fmt.Errorf("failed to create temporary exit: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.TemporaryExitRepository.
func (t *temporaryExitRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.TemporaryExit, error) {
	q := GetQuerier(ctx, t.db)

	exit, err := scanTemporaryExit(q.QueryRow(ctx, `SELECT `+temporaryExitColumns+` FROM temporary_exits WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TemporaryExit{}, attendance.ErrTemporaryExitNotFound
		}
		return attendance.TemporaryExit{}, fmt.Errorf("failed to get temporary exit: %w", err)
	}
	return exit, nil
}

// Update implements attendance.TemporaryExitRepository.
func (t *temporaryExitRepositoryImpl) Update(ctx context.Context, exit attendance.TemporaryExit) (attendance.TemporaryExit, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE temporary_exits
		SET exit_time = $2, return_time = $3, reason = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + temporaryExitColumns

	updated, err := scanTemporaryExit(q.QueryRow(ctx, query, exit.ID, timeParam(&exit.ExitTime), timeParam(exit.ReturnTime), exit.Reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TemporaryExit{}, attendance.ErrTemporaryExitNotFound
		}
		return attendance.TemporaryExit{}, fmt.Errorf("failed to update temporary exit: %w", err)
	}
	return updated, nil
}

// Delete implements attendance.TemporaryExitRepository.
func (t *temporaryExitRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `DELETE FROM temporary_exits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete temporary exit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrTemporaryExitNotFound
	}
	return nil
}

// GetByEmployeeAndDate implements attendance.TemporaryExitRepository.
func (t *temporaryExitRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.TemporaryExit, error) {
	return t.queryExits(ctx, "employee_id = $1 AND date = $2::date", employeeID, date)
}

// GetInRange implements attendance.TemporaryExitRepository.
func (t *temporaryExitRepositoryImpl) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.TemporaryExit, error) {
	return t.queryExits(ctx, "employee_id = ANY($1) AND date BETWEEN $2::date AND $3::date", employeeIDs, start, end)
}

// ========================================
// DAILY STATUS SNAPSHOTS
// ========================================

type dailyStatusRepositoryImpl struct {
	db *database.DB
}

func NewDailyStatusRepository(db *database.DB) attendance.DailyStatusRepository {
	return &dailyStatusRepositoryImpl{db: db}
}

// UpsertBatch implements attendance.DailyStatusRepository. All rows go out in one round trip.
func (d *dailyStatusRepositoryImpl) UpsertBatch(ctx context.Context, snapshots []attendance.DailyStatusSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO attendance_daily_statuses (employee_id, date, work_schedule_id, status, worked_minutes,
			missed_minutes, late_minutes, early_departure_minutes, is_holiday, is_work_day, open_exit_anomaly, evaluated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			work_schedule_id = EXCLUDED.work_schedule_id,
			status = EXCLUDED.status,
			worked_minutes = EXCLUDED.worked_minutes,
			missed_minutes = EXCLUDED.missed_minutes,
			late_minutes = EXCLUDED.late_minutes,
			early_departure_minutes = EXCLUDED.early_departure_minutes,
			is_holiday = EXCLUDED.is_holiday,
			is_work_day = EXCLUDED.is_work_day,
			open_exit_anomaly = EXCLUDED.open_exit_anomaly,
			evaluated_at = EXCLUDED.evaluated_at`

	batch := &pgx.Batch{}
	for _, s := range snapshots {
		batch.Queue(query, s.EmployeeID, s.Date, s.WorkScheduleID, string(s.Status), s.WorkedMinutes,
			s.MissedMinutes, s.LateMinutes, s.EarlyDepartureMinutes, s.IsHoliday, s.IsWorkDay, s.OpenExitAnomaly, s.EvaluatedAt)
	}

	results := q.SendBatch(ctx, batch)
	for range snapshots {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to upsert daily status: %w", err)
		}
	}
	return results.Close()
}

package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	dailyStatusRepo   attendance.DailyStatusRepository
	loc               *time.Location
	now               func() time.Time
}

func NewAttendanceJobs(
	attendanceService attendance.AttendanceService,
	dailyStatusRepo attendance.DailyStatusRepository,
	loc *time.Location,
	now func() time.Time,
) *AttendanceJobs {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceJobs{
		attendanceService: attendanceService,
		dailyStatusRepo:   dailyStatusRepo,
		loc:               loc,
		now:               now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(Job{
		Name:     "snapshot_daily_statuses",
		Interval: interval,
		Timeout:  10 * time.Minute,
		Fn:       j.SnapshotDailyStatuses,
	})
}

// SnapshotDailyStatuses evaluates yesterday for every active employee and stores the result.
// Re-running it for the same date overwrites the previous snapshot.
func (j *AttendanceJobs) SnapshotDailyStatuses(ctx context.Context) error {
	local := j.now().In(j.loc)
	yesterday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return j.SnapshotDate(ctx, yesterday)
}

func (j *AttendanceJobs) SnapshotDate(ctx context.Context, date time.Time) error {
	day := date.Format("2006-01-02")
	slog.Info("cron: snapshotting daily statuses", "date", day)

	evaluations, err := j.attendanceService.EvaluateActiveEmployees(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to evaluate employees for %s: %w", day, err)
	}

	evaluatedAt := j.now()
	snapshots := make([]attendance.DailyStatusSnapshot, 0, len(evaluations))
	for _, ev := range evaluations {
		if ev.Result.OpenExitAnomaly {
			slog.Warn("cron: temporary exit never closed",
				"employee_id", ev.Employee.ID,
				"employee_code", ev.Employee.EmployeeCode,
				"date", day)
		}
		snapshots = append(snapshots, ev.Snapshot(evaluatedAt))
	}

	if err := j.dailyStatusRepo.UpsertBatch(ctx, snapshots); err != nil {
		return fmt.Errorf("failed to store daily statuses for %s: %w", day, err)
	}

	slog.Info("cron: daily statuses stored", "date", day, "count", len(snapshots))
	return nil
}

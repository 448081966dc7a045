package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	attendance.AttendanceService
	evaluations []attendance.DayEvaluation
	err         error
	gotDate     time.Time
}

func (f *fakeAttendanceService) EvaluateActiveEmployees(_ context.Context, date time.Time) ([]attendance.DayEvaluation, error) {
	f.gotDate = date
	return f.evaluations, f.err
}

type fakeDailyStatusRepo struct {
	stored []attendance.DailyStatusSnapshot
	calls  int
}

func (f *fakeDailyStatusRepo) UpsertBatch(_ context.Context, snapshots []attendance.DailyStatusSnapshot) error {
	f.calls++
	f.stored = append(f.stored, snapshots...)
	return nil
}

func TestSnapshotDailyStatuses(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	// 2025-03-11 01:30 in Jakarta is still 2025-03-10 in UTC; yesterday is the 10th in local time.
	now := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	svc := &fakeAttendanceService{evaluations: []attendance.DayEvaluation{
		{
			Employee:  employee.Employee{ID: "e1", EmployeeCode: "0001-0001"},
			Schedule:  schedule.ScheduleDefinition{ID: "ws1"},
			IsWorkDay: true,
			Result:    attendance.EvaluatedStatus{Status: attendance.StatusPresent, WorkedMinutes: 420},
		},
		{
			Employee:  employee.Employee{ID: "e2", EmployeeCode: "0001-0002"},
			Schedule:  schedule.ScheduleDefinition{ID: "ws1"},
			IsWorkDay: true,
			Result:    attendance.EvaluatedStatus{Status: attendance.StatusLate, OpenExitAnomaly: true},
		},
	}}
	repo := &fakeDailyStatusRepo{}
	jobs := NewAttendanceJobs(svc, repo, jakarta, func() time.Time { return now })

	require.NoError(t, jobs.SnapshotDailyStatuses(context.Background()))

	assert.Equal(t, "2025-03-10", svc.gotDate.Format("2006-01-02"))
	require.Len(t, repo.stored, 2)
	assert.Equal(t, "e1", repo.stored[0].EmployeeID)
	assert.Equal(t, "ws1", repo.stored[0].WorkScheduleID)
	assert.Equal(t, 420, repo.stored[0].WorkedMinutes)
	assert.True(t, repo.stored[1].OpenExitAnomaly)
	assert.Equal(t, now, repo.stored[1].EvaluatedAt)
}

func TestSnapshotDailyStatuses_EvaluationError(t *testing.T) {
	svc := &fakeAttendanceService{err: errors.New("db down")}
	repo := &fakeDailyStatusRepo{}
	jobs := NewAttendanceJobs(svc, repo, nil, nil)

	err := jobs.SnapshotDailyStatuses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Zero(t, repo.calls)
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var runs []string
	s.AddJob(Job{Name: "a", Interval: time.Hour, Fn: func(ctx context.Context) error {
		runs = append(runs, "a")
		return errors.New("boom")
	}})
	s.AddJob(Job{Name: "b", Interval: time.Hour, Fn: func(ctx context.Context) error {
		runs = append(runs, "b")
		return nil
	}})

	err := s.RunOnce(context.Background())
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []string{"a", "b"}, runs)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)
	s.AddJob(Job{Name: "tick", Interval: time.Hour, Fn: func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}

package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var truncatedTables = []string{
	"attendance_daily_statuses",
	"temporary_exits",
	"attendance_records",
	"long_absences",
	"holidays",
	"employee_schedule_assignments",
	"work_schedules",
	"employees",
	"refresh_tokens",
	"users",
}

// newTestDatabase connects to TEST_DATABASE_URL, migrates it and empties every table.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))

	for _, table := range truncatedTables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "truncate %s", table)
	}
	return db
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func createEmployee(t *testing.T, db *database.DB, code, name string) employee.Employee {
	t.Helper()
	emp, err := postgresql.NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		ID:           newID(),
		EmployeeCode: code,
		FullName:     name,
		IsActive:     true,
	})
	require.NoError(t, err)
	return emp
}

func createSchedule(t *testing.T, db *database.DB, name string, isDefault bool) schedule.ScheduleDefinition {
	t.Helper()
	ws, err := postgresql.NewWorkScheduleRepository(db).Create(context.Background(), schedule.ScheduleDefinition{
		ID:               newID(),
		Name:             name,
		MorningStart:     schedule.TimeOfDay(9 * 60),
		MorningEnd:       schedule.TimeOfDay(12 * 60),
		AfternoonStart:   schedule.TimeOfDay(13 * 60),
		AfternoonEnd:     schedule.TimeOfDay(17 * 60),
		ToleranceMinutes: 15,
		IsDefault:        isDefault,
	})
	require.NoError(t, err)
	return ws
}

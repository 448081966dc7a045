package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkScheduleRepository(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewWorkScheduleRepository(db)

	standard := createSchedule(t, db, "Standard", true)
	assert.Equal(t, schedule.TimeOfDay(9*60), standard.MorningStart)
	assert.Equal(t, schedule.DefaultWorkDays, standard.WorkDays)

	_, err := repo.Create(ctx, schedule.ScheduleDefinition{
		ID: newID(), Name: "Standard",
		MorningStart: 8 * 60, MorningEnd: 12 * 60, AfternoonStart: 13 * 60, AfternoonEnd: 16 * 60,
	})
	assert.ErrorIs(t, err, schedule.ErrWorkScheduleNameExists)

	def, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, standard.ID, def.ID)

	// Switching the default inside one transaction keeps a single default.
	early := createSchedule(t, db, "Early", false)
	runInTx := postgresql.NewTxRunner(db)
	err = runInTx(ctx, func(txCtx context.Context) error {
		if err := repo.ClearDefault(txCtx, early.ID); err != nil {
			return err
		}
		early.IsDefault = true
		_, err := repo.Update(txCtx, early)
		return err
	})
	require.NoError(t, err)

	def, err = repo.GetDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, early.ID, def.ID)

	byID, err := repo.GetByIDs(ctx, []string{standard.ID, early.ID})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
}

func TestEmployeeScheduleAssignmentRepository(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeScheduleAssignmentRepository(db)

	emp := createEmployee(t, db, "0002-0001", "Carla Lopez")
	ws := createSchedule(t, db, "Standard", true)

	end := day("2025-03-31")
	first, err := repo.Create(ctx, schedule.EmployeeScheduleAssignment{
		ID: newID(), EmployeeID: emp.ID, WorkScheduleID: ws.ID, StartDate: day("2025-03-01"), EndDate: &end,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, schedule.EmployeeScheduleAssignment{
		ID: newID(), EmployeeID: emp.ID, WorkScheduleID: ws.ID, StartDate: day("2025-03-31"),
	})
	assert.ErrorIs(t, err, schedule.ErrOverlappingScheduleAssignment)

	_, err = repo.Create(ctx, schedule.EmployeeScheduleAssignment{
		ID: newID(), EmployeeID: emp.ID, WorkScheduleID: ws.ID, StartDate: day("2025-04-01"),
	})
	require.NoError(t, err)

	active, err := repo.GetActive(ctx, emp.ID, day("2025-03-15"))
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, first.ID, active.ID)
	require.NotNil(t, active.WorkScheduleName)
	assert.Equal(t, "Standard", *active.WorkScheduleName)

	none, err := repo.GetActive(ctx, emp.ID, day("2025-02-15"))
	require.NoError(t, err)
	assert.Nil(t, none)

	inRange, err := repo.GetInRange(ctx, []string{emp.ID}, day("2025-03-20"), day("2025-04-10"))
	require.NoError(t, err)
	assert.Len(t, inRange, 2)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, schedule.ErrEmployeeScheduleAssignmentNotFound)
}

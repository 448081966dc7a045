package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWorkScheduleRepo struct {
	items map[string]schedule.ScheduleDefinition
}

func (m *memWorkScheduleRepo) Create(ctx context.Context, ws schedule.ScheduleDefinition) (schedule.ScheduleDefinition, error) {
	for _, existing := range m.items {
		if existing.Name == ws.Name {
			return schedule.ScheduleDefinition{}, schedule.ErrWorkScheduleNameExists
		}
	}
	m.items[ws.ID] = ws
	return ws, nil
}

func (m *memWorkScheduleRepo) GetByID(ctx context.Context, id string) (schedule.ScheduleDefinition, error) {
	ws, ok := m.items[id]
	if !ok || ws.DeletedAt != nil {
		return schedule.ScheduleDefinition{}, schedule.ErrWorkScheduleNotFound
	}
	return ws, nil
}

func (m *memWorkScheduleRepo) GetDefault(ctx context.Context) (schedule.ScheduleDefinition, error) {
	for _, ws := range m.items {
		if ws.IsDefault && ws.DeletedAt == nil {
			return ws, nil
		}
	}
	return schedule.ScheduleDefinition{}, schedule.ErrNoDefaultSchedule
}

func (m *memWorkScheduleRepo) List(ctx context.Context, filter schedule.WorkScheduleFilter) ([]schedule.ScheduleDefinition, int64, error) {
	var out []schedule.ScheduleDefinition
	for _, ws := range m.items {
		if ws.DeletedAt == nil {
			out = append(out, ws)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memWorkScheduleRepo) Update(ctx context.Context, ws schedule.ScheduleDefinition) (schedule.ScheduleDefinition, error) {
	m.items[ws.ID] = ws
	return ws, nil
}

func (m *memWorkScheduleRepo) ClearDefault(ctx context.Context, exceptID string) error {
	for id, ws := range m.items {
		if id != exceptID {
			ws.IsDefault = false
			m.items[id] = ws
		}
	}
	return nil
}

func (m *memWorkScheduleRepo) SoftDelete(ctx context.Context, id string) error {
	ws, ok := m.items[id]
	if !ok || ws.DeletedAt != nil {
		return schedule.ErrWorkScheduleNotFound
	}
	now := time.Now()
	ws.DeletedAt = &now
	m.items[id] = ws
	return nil
}

func (m *memWorkScheduleRepo) GetByIDs(ctx context.Context, ids []string) (map[string]schedule.ScheduleDefinition, error) {
	out := make(map[string]schedule.ScheduleDefinition, len(ids))
	for _, id := range ids {
		if ws, ok := m.items[id]; ok {
			out[id] = ws
		}
	}
	return out, nil
}

type memAssignmentRepo struct {
	items []schedule.EmployeeScheduleAssignment
}

func (m *memAssignmentRepo) Create(ctx context.Context, a schedule.EmployeeScheduleAssignment) (schedule.EmployeeScheduleAssignment, error) {
	m.items = append(m.items, a)
	return a, nil
}

func (m *memAssignmentRepo) GetByID(ctx context.Context, id string) (schedule.EmployeeScheduleAssignment, error) {
	return schedule.EmployeeScheduleAssignment{}, errors.New("not implemented")
}

func (m *memAssignmentRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.EmployeeScheduleAssignment, error) {
	var out []schedule.EmployeeScheduleAssignment
	for _, a := range m.items {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAssignmentRepo) GetActive(ctx context.Context, employeeID string, date time.Time) (*schedule.EmployeeScheduleAssignment, error) {
	for _, a := range m.items {
		if a.EmployeeID == employeeID && a.Covers(date) {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memAssignmentRepo) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]schedule.EmployeeScheduleAssignment, error) {
	return nil, errors.New("not implemented")
}

func (m *memAssignmentRepo) Delete(ctx context.Context, id string) error {
	for i, a := range m.items {
		if a.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return schedule.ErrEmployeeScheduleAssignmentNotFound
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
	ids map[string]bool
}

func (m *memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !m.ids[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, IsActive: true}, nil
}

func passthroughTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (schedule.ScheduleService, *memWorkScheduleRepo, *memAssignmentRepo) {
	ws := &memWorkScheduleRepo{items: map[string]schedule.ScheduleDefinition{}}
	as := &memAssignmentRepo{}
	emps := &memEmployeeRepo{ids: map[string]bool{"emp-1": true}}
	return NewScheduleService(passthroughTx, ws, as, emps), ws, as
}

func intPtr(i int) *int { return &i }

func createRequest(name string, isDefault bool) schedule.CreateWorkScheduleRequest {
	return schedule.CreateWorkScheduleRequest{
		Name:             name,
		MorningStart:     "09:00",
		MorningEnd:       "12:00",
		AfternoonStart:   "13:00",
		AfternoonEnd:     "17:00",
		ToleranceMinutes: intPtr(15),
		IsDefault:        isDefault,
	}
}

func TestCreateWorkSchedule_SingleDefault(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	first, err := svc.CreateWorkSchedule(ctx, createRequest("Office", true))
	require.NoError(t, err)
	assert.Equal(t, 420, first.ScheduledMinutes)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, first.WorkDays)

	second, err := svc.CreateWorkSchedule(ctx, createRequest("Office 2", true))
	require.NoError(t, err)

	assert.False(t, repo.items[first.ID].IsDefault)
	assert.True(t, repo.items[second.ID].IsDefault)

	_, err = svc.CreateWorkSchedule(ctx, createRequest("Office", false))
	assert.ErrorIs(t, err, schedule.ErrWorkScheduleNameExists)
}

func TestCreateWorkSchedule_InvalidOrder(t *testing.T) {
	req := createRequest("Broken", false)
	req.MorningEnd = "13:30"

	svc, _, _ := newTestService()
	_, err := svc.CreateWorkSchedule(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "schedule")
}

func TestUpdateWorkSchedule(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	def, err := svc.CreateWorkSchedule(ctx, createRequest("Office", true))
	require.NoError(t, err)
	other, err := svc.CreateWorkSchedule(ctx, createRequest("Night", false))
	require.NoError(t, err)

	updated, err := svc.UpdateWorkSchedule(ctx, schedule.UpdateWorkScheduleRequest{ID: other.ID, ToleranceMinutes: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.ToleranceMinutes)

	bad := "11:30"
	_, err = svc.UpdateWorkSchedule(ctx, schedule.UpdateWorkScheduleRequest{ID: other.ID, AfternoonStart: &bad})
	assert.ErrorIs(t, err, schedule.ErrInvalidScheduleOrder)

	no := false
	_, err = svc.UpdateWorkSchedule(ctx, schedule.UpdateWorkScheduleRequest{ID: def.ID, IsDefault: &no})
	assert.ErrorIs(t, err, schedule.ErrDefaultRequired)

	assert.ErrorIs(t, svc.DeleteWorkSchedule(ctx, def.ID), schedule.ErrCannotDeleteDefault)
	assert.NoError(t, svc.DeleteWorkSchedule(ctx, other.ID))
	_, err = svc.GetWorkSchedule(ctx, other.ID)
	assert.ErrorIs(t, err, schedule.ErrWorkScheduleNotFound)
}

func TestAssignSchedule(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	def, err := svc.CreateWorkSchedule(ctx, createRequest("Office", true))
	require.NoError(t, err)
	night, err := svc.CreateWorkSchedule(ctx, createRequest("Night", false))
	require.NoError(t, err)

	end := "2025-03-31"
	assigned, err := svc.AssignSchedule(ctx, schedule.AssignScheduleRequest{
		WorkScheduleID: night.ID, EmployeeID: "emp-1", StartDate: "2025-03-01", EndDate: &end,
	})
	require.NoError(t, err)
	require.NotNil(t, assigned.WorkScheduleName)
	assert.Equal(t, "Night", *assigned.WorkScheduleName)

	_, err = svc.AssignSchedule(ctx, schedule.AssignScheduleRequest{
		WorkScheduleID: def.ID, EmployeeID: "emp-1", StartDate: "2025-03-15",
	})
	assert.ErrorIs(t, err, schedule.ErrOverlappingScheduleAssignment)

	_, err = svc.AssignSchedule(ctx, schedule.AssignScheduleRequest{
		WorkScheduleID: def.ID, EmployeeID: "emp-404", StartDate: "2025-03-15",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	active, err := svc.GetActiveScheduleForEmployee(ctx, "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, night.ID, active.ID)

	active, err = svc.GetActiveScheduleForEmployee(ctx, "emp-1", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, def.ID, active.ID)

	list, err := svc.ListEmployeeAssignments(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, svc.DeleteAssignment(ctx, list[0].ID))
	assert.ErrorIs(t, svc.DeleteAssignment(ctx, list[0].ID), schedule.ErrEmployeeScheduleAssignmentNotFound)
}

func TestGetActiveScheduleForEmployee_DeletedScheduleStaysAssigned(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	_, err := svc.CreateWorkSchedule(ctx, createRequest("Office", true))
	require.NoError(t, err)
	night, err := svc.CreateWorkSchedule(ctx, createRequest("Night", false))
	require.NoError(t, err)

	_, err = svc.AssignSchedule(ctx, schedule.AssignScheduleRequest{
		WorkScheduleID: night.ID, EmployeeID: "emp-1", StartDate: "2025-03-01",
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteWorkSchedule(ctx, night.ID))

	_, err = svc.GetWorkSchedule(ctx, night.ID)
	assert.ErrorIs(t, err, schedule.ErrWorkScheduleNotFound)

	active, err := svc.GetActiveScheduleForEmployee(ctx, "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, night.ID, active.ID)
	assert.NotNil(t, active.DeletedAt)
}

package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memEmployeeRepo struct {
	items map[string]employee.Employee
}

func (m *memEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	m.items[e.ID] = e
	return e, nil
}

func (m *memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := m.items[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *memEmployeeRepo) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, e := range m.items {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range m.items {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (m *memEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (m *memEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	m.items[e.ID] = e
	return e, nil
}

func (m *memEmployeeRepo) SoftDelete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(m.items, id)
	return nil
}

func TestEmployeeService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &memEmployeeRepo{items: map[string]employee.Employee{}}
	svc := NewEmployeeService(repo)

	dept := "Support"
	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "0001-0001", FullName: "Amina Diallo", Department: &dept,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.ID)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmployeeCode: "0001-0001", FullName: "Someone Else"})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmployeeCode: "A1", FullName: "Bad Code"})
	assert.ErrorContains(t, err, "employee_code")

	inactive := false
	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Support", *updated.Department)

	list, err := svc.ListEmployees(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, "1-1 of 1 results", list.Showing)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))
	_, err = svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, created.ID), employee.ErrEmployeeNotFound)
}

package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	alice := createEmployee(t, db, "0001-0001", "Alice Martin")
	createEmployee(t, db, "0001-0002", "Bob Durand")

	t.Run("duplicate code", func(t *testing.T) {
		_, err := repo.Create(ctx, employee.Employee{ID: newID(), EmployeeCode: "0001-0001", FullName: "Clone", IsActive: true})
		assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
	})

	t.Run("search", func(t *testing.T) {
		search := "alice"
		list, total, err := repo.List(ctx, employee.EmployeeFilter{Search: &search, Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, alice.ID, list[0].ID)
	})

	t.Run("soft delete frees the code", func(t *testing.T) {
		require.NoError(t, repo.SoftDelete(ctx, alice.ID))

		_, err := repo.GetByID(ctx, alice.ID)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 1)

		createEmployee(t, db, "0001-0001", "Alice Again")
	})

	t.Run("dashboard head count", func(t *testing.T) {
		stats, err := postgresql.NewDashboardRepository(db).GetEmployeeSummary(ctx, day("2000-01-01"))
		require.NoError(t, err)
		assert.Equal(t, dashboard.EmployeeSummaryStats{Total: 2, Active: 2}, stats)
	})
}

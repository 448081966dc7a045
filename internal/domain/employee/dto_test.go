package employee

import (
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateEmployeeRequest
		wantField string
	}{
		{"valid", CreateEmployeeRequest{EmployeeCode: "2024-0001", FullName: "Amina Diallo"}, ""},
		{"missing code", CreateEmployeeRequest{FullName: "Amina Diallo"}, "employee_code"},
		{"bad code", CreateEmployeeRequest{EmployeeCode: "24-1", FullName: "Amina Diallo"}, "employee_code"},
		{"missing name", CreateEmployeeRequest{EmployeeCode: "2024-0001"}, "full_name"},
		{"bad email", CreateEmployeeRequest{EmployeeCode: "2024-0001", FullName: "A", Email: strPtr("nope")}, "email"},
		{"bad hire date", CreateEmployeeRequest{EmployeeCode: "2024-0001", FullName: "A", HireDate: strPtr("2024/01/01")}, "hire_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestCreateEmployeeRequest_ToEmployee(t *testing.T) {
	req := CreateEmployeeRequest{EmployeeCode: "2024-0001", FullName: "  Amina Diallo ", HireDate: strPtr("2024-03-01")}
	require.NoError(t, req.Validate())

	e := req.ToEmployee()
	assert.Equal(t, "Amina Diallo", e.FullName)
	assert.True(t, e.IsActive)
	require.NotNil(t, e.HireDate)
	assert.Equal(t, "2024-03-01", e.HireDate.Format("2006-01-02"))
}

func TestUpdateEmployeeRequest_Apply(t *testing.T) {
	inactive := false
	req := UpdateEmployeeRequest{ID: "x", Department: strPtr("Support"), IsActive: &inactive}
	require.NoError(t, req.Validate())

	e := req.Apply(Employee{ID: "x", FullName: "Amina Diallo", IsActive: true})
	assert.Equal(t, "Amina Diallo", e.FullName)
	assert.Equal(t, "Support", *e.Department)
	assert.False(t, e.IsActive)
}

func TestEmployeeFilter_Defaults(t *testing.T) {
	f := EmployeeFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, "full_name", f.SortBy)
	assert.Equal(t, "asc", f.SortOrder)

	f = EmployeeFilter{SortBy: "salary", Limit: 500}
	err := f.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "sort_by")
	assert.Contains(t, verrs.ToMap(), "limit")
}

package schedule

import (
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func validCreateRequest() CreateWorkScheduleRequest {
	return CreateWorkScheduleRequest{
		Name:             "Office",
		MorningStart:     "09:00",
		MorningEnd:       "12:00",
		AfternoonStart:   "13:00",
		AfternoonEnd:     "17:00",
		ToleranceMinutes: intPtr(15),
	}
}

func TestCreateWorkScheduleRequest_Validate(t *testing.T) {
	req := validCreateRequest()
	require.NoError(t, req.Validate())

	def := req.ToDefinition()
	assert.Equal(t, 420, def.ScheduledMinutes())
	assert.Equal(t, DefaultWorkDays, def.WorkDays)
}

func TestCreateWorkScheduleRequest_ValidateErrors(t *testing.T) {
	req := validCreateRequest()
	req.Name = " "
	req.ToleranceMinutes = intPtr(-1)
	req.MorningStart = "9am"
	req.WorkDays = []int{1, 8}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "tolerance_minutes")
	assert.Contains(t, fields, "morning_start")
	assert.Contains(t, fields, "work_days")
}

func TestCreateWorkScheduleRequest_ValidateOrder(t *testing.T) {
	req := validCreateRequest()
	req.AfternoonStart = "11:00"

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, ErrInvalidScheduleOrder.Error(), errs.ToMap()["schedule"])
}

func TestUpdateWorkScheduleRequest_Apply(t *testing.T) {
	start := "08:30"
	req := UpdateWorkScheduleRequest{ID: "x", MorningStart: &start, ToleranceMinutes: intPtr(5)}
	require.NoError(t, req.Validate())

	updated := req.Apply(officeHours())
	assert.Equal(t, "08:30", updated.MorningStart.String())
	assert.Equal(t, 5, updated.ToleranceMinutes)
	assert.Equal(t, "17:00", updated.AfternoonEnd.String())
}

func TestAssignScheduleRequest_Validate(t *testing.T) {
	end := "2024-01-01"
	req := AssignScheduleRequest{WorkScheduleID: "s", EmployeeID: "e", StartDate: "2024-02-01", EndDate: &end}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")

	req.EndDate = nil
	assert.NoError(t, req.Validate())
}

func TestWorkScheduleFilter_Defaults(t *testing.T) {
	f := WorkScheduleFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, "name", f.SortBy)
	assert.Equal(t, "asc", f.SortOrder)
	assert.Equal(t, 20, f.Limit)

	f = WorkScheduleFilter{SortBy: "type"}
	assert.Error(t, f.Validate())
}

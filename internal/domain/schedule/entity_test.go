package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func officeHours() ScheduleDefinition {
	return ScheduleDefinition{
		MorningStart:     MustParseTimeOfDay("09:00"),
		MorningEnd:       MustParseTimeOfDay("12:00"),
		AfternoonStart:   MustParseTimeOfDay("13:00"),
		AfternoonEnd:     MustParseTimeOfDay("17:00"),
		ToleranceMinutes: 15,
	}
}

func TestScheduleDefinition_CheckOrder(t *testing.T) {
	assert.True(t, officeHours().CheckOrder())

	contiguous := officeHours()
	contiguous.AfternoonStart = contiguous.MorningEnd
	assert.True(t, contiguous.CheckOrder(), "morning end may equal afternoon start")

	inverted := officeHours()
	inverted.MorningEnd = MustParseTimeOfDay("08:00")
	assert.False(t, inverted.CheckOrder())

	overlapping := officeHours()
	overlapping.AfternoonStart = MustParseTimeOfDay("11:00")
	assert.False(t, overlapping.CheckOrder())
}

func TestScheduleDefinition_ScheduledMinutes(t *testing.T) {
	s := officeHours()
	assert.Equal(t, 180, s.MorningMinutes())
	assert.Equal(t, 240, s.AfternoonMinutes())
	assert.Equal(t, 420, s.ScheduledMinutes())
}

func TestScheduleDefinition_IsWorkDay(t *testing.T) {
	s := officeHours()
	assert.True(t, s.IsWorkDay(time.Monday))
	assert.True(t, s.IsWorkDay(time.Friday))
	assert.False(t, s.IsWorkDay(time.Saturday))
	assert.False(t, s.IsWorkDay(time.Sunday))

	s.WorkDays = []int{6, 7}
	assert.True(t, s.IsWorkDay(time.Sunday))
	assert.False(t, s.IsWorkDay(time.Monday))
}

func TestEmployeeScheduleAssignment_CoversAndOverlaps(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	end := day(10)

	a := EmployeeScheduleAssignment{StartDate: day(1), EndDate: &end}
	assert.True(t, a.Covers(day(1)))
	assert.True(t, a.Covers(day(10)))
	assert.False(t, a.Covers(day(11)))

	openEnded := EmployeeScheduleAssignment{StartDate: day(11)}
	assert.True(t, openEnded.Covers(day(30)))
	assert.False(t, a.Overlaps(openEnded))

	startsInside := EmployeeScheduleAssignment{StartDate: day(10)}
	assert.True(t, a.Overlaps(startsInside))
	assert.True(t, startsInside.Overlaps(a))
}

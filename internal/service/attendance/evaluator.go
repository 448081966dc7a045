package attendance

import (
	"slices"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
)

// Evaluator evaluates days against the clock of the configured location.
type Evaluator struct {
	loc *time.Location
	now func() time.Time
}

func NewEvaluator(loc *time.Location, now func() time.Time) *Evaluator {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Evaluator{loc: loc, now: now}
}

func (e *Evaluator) Evaluate(s schedule.ScheduleDefinition, r attendance.DailyAttendanceRecord, exits []attendance.TemporaryExit) attendance.EvaluatedStatus {
	return Evaluate(s, r, exits, e.now(), e.loc)
}

// Today returns the current calendar date in the evaluator's location, at midnight UTC.
func (e *Evaluator) Today() time.Time {
	n := e.now().In(e.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

type span struct {
	from, to schedule.TimeOfDay
}

// Evaluate derives the status of one day. It never fails: malformed halves count zero worked minutes.
// now is only used to close open exits on the current date of loc.
func Evaluate(s schedule.ScheduleDefinition, r attendance.DailyAttendanceRecord, exits []attendance.TemporaryExit, now time.Time, loc *time.Location) attendance.EvaluatedStatus {
	res := attendance.EvaluatedStatus{ScheduledMinutes: s.ScheduledMinutes()}

	if r.OnLeave {
		res.Status = attendance.StatusOnLeave
		res.LeaveType = r.LeaveType
		res.MissedMinutes = res.ScheduledMinutes
		return res
	}
	if !r.HasAnyCheck() {
		res.Status = attendance.StatusAbsent
		res.MissedMinutes = res.ScheduledMinutes
		return res
	}

	var spans []span
	var sp *span
	res.Morning, sp = evaluateHalf(s.MorningStart, s.MorningEnd, s.ToleranceMinutes, r.MorningCheckIn, r.MorningCheckOut)
	if sp != nil {
		spans = append(spans, *sp)
	}
	res.Afternoon, sp = evaluateHalf(s.AfternoonStart, s.AfternoonEnd, s.ToleranceMinutes, r.AfternoonCheckIn, r.AfternoonCheckOut)
	if sp != nil {
		spans = append(spans, *sp)
	}

	res.ExitMinutes, res.OpenExitAnomaly = exitMinutes(spans, exits, r.Date, now, loc)
	res.WorkedMinutes = max(0, res.Morning.WorkedMinutes+res.Afternoon.WorkedMinutes-res.ExitMinutes)
	res.MissedMinutes = max(0, res.ScheduledMinutes-res.WorkedMinutes)
	res.LateMinutes = res.Morning.LateMinutes + res.Afternoon.LateMinutes
	res.EarlyDepartureMinutes = res.Morning.EarlyDepartureMinutes + res.Afternoon.EarlyDepartureMinutes

	switch {
	case res.Morning.Late || res.Afternoon.Late:
		res.Status = attendance.StatusLate
	case res.Morning.EarlyDeparture || res.Afternoon.EarlyDeparture:
		res.Status = attendance.StatusEarlyDeparture
	default:
		res.Status = attendance.StatusPresent
	}
	return res
}

// evaluateHalf returns the half-day flags and, when both check times are present and ordered, the span
// between arrival and departure. An arrival inside the grace window is credited from the scheduled start
// in the worked minutes, while the span keeps the actual arrival.
func evaluateHalf(start, end schedule.TimeOfDay, tolerance int, in, out *schedule.TimeOfDay) (attendance.HalfDay, *span) {
	var h attendance.HalfDay
	graceEnd := start.Add(tolerance)

	if in != nil && in.After(graceEnd) {
		h.Late = true
		h.LateMinutes = in.Sub(start)
	}
	if out != nil && out.Before(end) {
		h.EarlyDeparture = true
		h.EarlyDepartureMinutes = end.Sub(*out)
	}
	if in == nil || out == nil || out.Before(*in) {
		return h, nil
	}

	from := *in
	if from.After(start) && !from.After(graceEnd) {
		from = start
	}
	h.Recorded = true
	h.WorkedMinutes = out.Sub(from)
	return h, &span{from: *in, to: *out}
}

// exitMinutes sums the parts of the exits that overlap a worked span. An open exit runs until now on the
// current date, is ignored on a future date and is reported as an anomaly on a past date.
func exitMinutes(spans []span, exits []attendance.TemporaryExit, date time.Time, now time.Time, loc *time.Location) (total int, anomaly bool) {
	if len(exits) == 0 {
		return 0, false
	}
	spans = mergeSpans(spans)
	nowLocal := now.In(loc)
	day := date.Format("2006-01-02")
	today := nowLocal.Format("2006-01-02")

	for _, e := range exits {
		to := e.ReturnTime
		if to == nil {
			switch {
			case day < today:
				anomaly = true
				continue
			case day > today:
				continue
			}
			current := schedule.Of(nowLocal)
			to = &current
		}
		for _, sp := range spans {
			from := max(e.ExitTime, sp.from)
			until := min(*to, sp.to)
			if until.After(from) {
				total += until.Sub(from)
			}
		}
	}
	return total, anomaly
}

// mergeSpans joins overlapping or touching spans so a minute is never clipped twice.
func mergeSpans(spans []span) []span {
	if len(spans) < 2 {
		return spans
	}
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b span) int { return int(a.from) - int(b.from) })

	merged := sorted[:1]
	for _, sp := range sorted[1:] {
		last := &merged[len(merged)-1]
		if sp.from.After(last.to) {
			merged = append(merged, sp)
			continue
		}
		last.to = max(last.to, sp.to)
	}
	return merged
}

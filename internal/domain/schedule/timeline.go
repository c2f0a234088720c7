package schedule

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

const minutesPerDay = 1440

// ExpectedMinutes returns end-start minus the break, wrapping overnight shifts.
func ExpectedMinutes(start, end string, breakMinutes int) (int, error) {
	if !validator.IsValidClock(start) || !validator.IsValidClock(end) {
		return 0, ErrInvalidClockTime
	}
	startMin, err := utils.ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := utils.ParseClock(end)
	if err != nil {
		return 0, err
	}
	raw := endMin - startMin - breakMinutes
	if raw < 0 {
		raw += minutesPerDay
	}
	return raw, nil
}

// Timeline resolves an employee's schedule rows for any date.
type Timeline struct {
	schedules       []EmployeeSchedule
	defaultExpected int
	defaultWorkDays []int
}

// NewTimeline sorts rows by EffectiveFrom descending so At can stop at the first cover.
func NewTimeline(rows []EmployeeSchedule, defaultExpected int, defaultWorkDays []int) Timeline {
	sorted := append([]EmployeeSchedule(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom.After(sorted[j].EffectiveFrom)
	})
	return Timeline{
		schedules:       sorted,
		defaultExpected: defaultExpected,
		defaultWorkDays: defaultWorkDays,
	}
}

// At picks the covering row with the latest EffectiveFrom. With no covering row
// the default schedule applies.
func (t Timeline) At(date time.Time) ResolvedSchedule {
	date = utils.NormalizeDate(date)
	for _, s := range t.schedules {
		if s.Covers(date) {
			return t.resolve(s)
		}
	}
	return t.fallback()
}

func (t Timeline) fallback() ResolvedSchedule {
	return ResolvedSchedule{
		WorkDays:        append([]int(nil), t.defaultWorkDays...),
		ExpectedMinutes: t.defaultExpected,
		IsDefault:       true,
	}
}

// resolve merges template and custom fields; template values win when both are set.
func (t Timeline) resolve(s EmployeeSchedule) ResolvedSchedule {
	id := s.ID
	r := ResolvedSchedule{ScheduleID: &id}

	if tpl := s.Template; tpl != nil {
		r.StartTime = tpl.StartTime
		r.EndTime = tpl.EndTime
		r.BreakMinutes = tpl.BreakMinutes
		r.WorkDays = append([]int(nil), tpl.WorkDays...)
	}
	if r.StartTime == "" && s.CustomStartTime != nil {
		r.StartTime = *s.CustomStartTime
	}
	if r.EndTime == "" && s.CustomEndTime != nil {
		r.EndTime = *s.CustomEndTime
	}
	if s.Template == nil && s.CustomBreakMinutes != nil {
		r.BreakMinutes = *s.CustomBreakMinutes
	}
	if len(r.WorkDays) == 0 {
		r.WorkDays = append([]int(nil), s.CustomWorkDays...)
	}
	if len(r.WorkDays) == 0 {
		r.WorkDays = append([]int(nil), t.defaultWorkDays...)
	}

	r.ExpectedMinutes = t.defaultExpected
	if r.StartTime != "" && r.EndTime != "" {
		if expected, err := ExpectedMinutes(r.StartTime, r.EndTime, r.BreakMinutes); err == nil {
			r.ExpectedMinutes = expected
		}
	}
	return r
}

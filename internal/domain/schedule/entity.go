package schedule

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

// ShiftTemplate is a named company shift. Edits apply forward only; rows referenced
// by history are never rewritten.
type ShiftTemplate struct {
	ID           string
	CompanyID    string
	Name         string
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	BreakMinutes int
	WorkDays     []int // 1=Monday, ..., 7=Sunday
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeSchedule binds an employee to a template or to inline custom values
// for the range [EffectiveFrom, EffectiveTo]. A nil EffectiveTo is open ended.
type EmployeeSchedule struct {
	ID                 string
	EmployeeID         string
	ShiftTemplateID    *string
	CustomStartTime    *string
	CustomEndTime      *string
	CustomBreakMinutes *int
	CustomWorkDays     []int
	EffectiveFrom      time.Time
	EffectiveTo        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined
	Template *ShiftTemplate
}

// Covers reports whether date falls inside the schedule's effective range.
func (s EmployeeSchedule) Covers(date time.Time) bool {
	if date.Before(s.EffectiveFrom) {
		return false
	}
	return s.EffectiveTo == nil || !date.After(*s.EffectiveTo)
}

// ResolvedSchedule is the shift that applies to one employee on one date.
type ResolvedSchedule struct {
	ScheduleID      *string
	WorkDays        []int
	StartTime       string
	EndTime         string
	BreakMinutes    int
	ExpectedMinutes int
	IsDefault       bool
}

// IsWorkDay reports whether the ISO weekday is scheduled.
func (r ResolvedSchedule) IsWorkDay(isoWeekday int) bool {
	for _, d := range r.WorkDays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}

// HasStartTime reports whether lateness can be measured against this schedule.
func (r ResolvedSchedule) HasStartTime() bool {
	return validator.IsValidClock(r.StartTime)
}

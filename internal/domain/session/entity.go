package session

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusEdited    Status = "edited"
	StatusCancelled Status = "cancelled"
)

// Counted reports whether sessions with this status feed aggregation.
func (s Status) Counted() bool {
	return s != StatusCancelled
}

// Closed reports whether the session has been calculated at least once.
func (s Status) Closed() bool {
	return s == StatusCompleted || s == StatusEdited
}

// WorkSession is one clock-in/clock-out pair. SessionDate is the clock-in date.
type WorkSession struct {
	ID                 string
	EmployeeID         string
	CompanyID          string
	ClockIn            time.Time
	ClockOut           *time.Time
	SessionDate        time.Time
	TotalMinutes       int
	RegularMinutes     int
	OvertimeMinutes    int
	OvertimeMultiplier decimal.Decimal
	Status             Status
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DurationMinutes returns the rounded length of a closed session.
func (s WorkSession) DurationMinutes() (int, error) {
	if s.ClockOut == nil {
		return 0, ErrIncomplete
	}
	if s.ClockOut.Before(s.ClockIn) {
		return 0, ErrInvalidInterval
	}
	d := s.ClockOut.Sub(s.ClockIn)
	return int(decimal.NewFromInt(d.Milliseconds()).Div(decimal.NewFromInt(60000)).Round(0).IntPart()), nil
}

// CalculationResult is the outcome of calculating one session.
type CalculationResult struct {
	SessionID          string
	EmployeeID         string
	SessionDate        time.Time
	TotalMinutes       int
	RegularMinutes     int
	OvertimeMinutes    int
	OvertimeMultiplier decimal.Decimal
	WorkDayType        holiday.WorkDayType
	IsHoliday          bool
	Status             Status

	// DailySummaryError is set when the session was saved but the daily
	// summary recalculation that follows it failed.
	DailySummaryError error
}

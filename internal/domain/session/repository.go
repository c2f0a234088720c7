package session

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Calculation holds the computed columns written back after calculate_session.
type Calculation struct {
	TotalMinutes       int
	RegularMinutes     int
	OvertimeMinutes    int
	OvertimeMultiplier decimal.Decimal
	Status             Status
}

// RangeFilter selects sessions by session date. A nil CompanyID spans all companies.
type RangeFilter struct {
	CompanyID *string
	From      time.Time
	To        time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, s WorkSession) (WorkSession, error)
	GetByID(ctx context.Context, id string) (WorkSession, error)

	// GetActiveByEmployeeID returns ErrSessionNotFound when the employee is not clocked in.
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (WorkSession, error)

	// Update writes clock times, session date, status and notes.
	Update(ctx context.Context, s WorkSession) error
	UpdateCalculation(ctx context.Context, id string, c Calculation) error

	// ListCountedByEmployeeAndDate returns non-cancelled sessions ordered by clock_in.
	ListCountedByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]WorkSession, error)

	// SumClosedMinutes sums total_minutes of completed and edited sessions whose
	// session date lies in [from, to], leaving out excludeID.
	SumClosedMinutes(ctx context.Context, employeeID string, from, to time.Time, excludeID string) (int, error)

	// ListCountedInRange returns non-cancelled sessions ordered by clock_in.
	ListCountedInRange(ctx context.Context, filter RangeFilter) ([]WorkSession, error)
}
